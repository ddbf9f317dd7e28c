package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

// RefreshToken is a persisted refresh token row.
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// TokenRepository handles database operations for refresh tokens
type TokenRepository struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{
		db: db,
	}
}

// Store persists a refresh token for a user.
func (r *TokenRepository) Store(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
	`

	_, err := querier(ctx, r.db).Exec(ctx, query, userID, token, expiresAt)
	if err != nil {
		return fmt.Errorf("error storing refresh token: %w", err)
	}

	return nil
}

// Get retrieves a refresh token by its value.
func (r *TokenRepository) Get(ctx context.Context, token string) (*RefreshToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var rt RefreshToken
	err := querier(ctx, r.db).QueryRow(ctx, query, token).Scan(
		&rt.ID,
		&rt.UserID,
		&rt.Token,
		&rt.ExpiresAt,
		&rt.Revoked,
		&rt.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error retrieving refresh token: %w", err)
	}

	return &rt, nil
}

// Revoke marks a refresh token as revoked.
func (r *TokenRepository) Revoke(ctx context.Context, token string) error {
	query := `
		UPDATE refresh_tokens
		SET revoked = TRUE
		WHERE token = $1
	`

	_, err := querier(ctx, r.db).Exec(ctx, query, token)
	if err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}

	return nil
}

// DeleteExpired removes refresh tokens past their expiry.
func (r *TokenRepository) DeleteExpired(ctx context.Context) error {
	_, err := querier(ctx, r.db).Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return fmt.Errorf("error deleting expired refresh tokens: %w", err)
	}

	return nil
}
