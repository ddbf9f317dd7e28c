// Package seed creates default data the application needs at startup.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/app/repositories"
	"github.com/selin/acadcore/internal/config"
	"github.com/selin/acadcore/internal/pkg/auth"
)

// CreateDefaultData ensures the configured admin account exists. Student
// and teacher accounts register themselves; the admin cannot.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return errors.Join(errors.New("error checking if admin user exists"), err)
	}
	if exists {
		return nil
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Creating default admin user")

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return errors.Join(errors.New("error hashing admin password"), err)
	}

	admin := &models.User{
		Email:     cfg.Admin.Email,
		Password:  hashedPassword,
		FirstName: "System",
		LastName:  "Admin",
		RoleType:  models.RoleAdmin,
		IsActive:  true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return errors.Join(errors.New("error creating admin user"), err)
	}

	return nil
}
