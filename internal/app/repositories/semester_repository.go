package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
	"github.com/selin/acadcore/internal/pkg/dberrors"
)

// SemesterRepository handles database operations for semesters
type SemesterRepository struct {
	db *pgxpool.Pool
}

// NewSemesterRepository creates a new semester repository
func NewSemesterRepository(db *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{
		db: db,
	}
}

// Create inserts a new semester and sets its generated ID.
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	query := `
		INSERT INTO semesters (year, term)
		VALUES ($1, $2)
		RETURNING id
	`

	err := querier(ctx, r.db).QueryRow(ctx, query, semester.Year, semester.Term).Scan(&semester.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_semesters_year_term") {
			return apperrors.ErrSemesterAlreadyExists
		}
		return fmt.Errorf("error creating semester: %w", err)
	}

	return nil
}

// GetByID retrieves a semester by ID
func (r *SemesterRepository) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	query := `
		SELECT id, year, term
		FROM semesters
		WHERE id = $1
	`

	var semester models.Semester
	err := querier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&semester.ID,
		&semester.Year,
		&semester.Term,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, fmt.Errorf("error retrieving semester: %w", err)
	}

	return &semester, nil
}

// GetAll retrieves all semesters in chronological order
func (r *SemesterRepository) GetAll(ctx context.Context) ([]*models.Semester, error) {
	query := `
		SELECT id, year, term
		FROM semesters
		ORDER BY year, term
	`

	rows, err := querier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []*models.Semester
	for rows.Next() {
		var semester models.Semester
		if err := rows.Scan(
			&semester.ID,
			&semester.Year,
			&semester.Term,
		); err != nil {
			return nil, err
		}
		semesters = append(semesters, &semester)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return semesters, nil
}

// ExistsByYearTerm checks whether a semester exists for (year, term)
func (r *SemesterRepository) ExistsByYearTerm(ctx context.Context, year int, term models.Term) (bool, error) {
	var exists bool
	err := querier(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM semesters WHERE year = $1 AND term = $2)`,
		year, term).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking semester existence: %w", err)
	}

	return exists, nil
}
