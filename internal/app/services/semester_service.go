package services

import (
	"context"
	"fmt"

	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

// SemesterStore is the persistence contract for semesters.
type SemesterStore interface {
	Create(ctx context.Context, semester *models.Semester) error
	GetByID(ctx context.Context, id int64) (*models.Semester, error)
	GetAll(ctx context.Context) ([]*models.Semester, error)
	ExistsByYearTerm(ctx context.Context, year int, term models.Term) (bool, error)
}

// SemesterService handles semester creation and lookup. Semesters are
// immutable once created.
type SemesterService struct {
	semesters SemesterStore
	tx        Transactor
}

// NewSemesterService creates a new semester service instance
func NewSemesterService(semesters SemesterStore, tx Transactor) *SemesterService {
	return &SemesterService{
		semesters: semesters,
		tx:        tx,
	}
}

// CreateSemester creates a new academic semester if it does not already
// exist for (year, term).
func (s *SemesterService) CreateSemester(ctx context.Context, year int, term models.Term) (*models.Semester, error) {
	if year <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "year must be a positive integer")
	}
	if !term.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("term must be %s or %s", models.TermFirst, models.TermSecond))
	}

	semester := &models.Semester{Year: year, Term: term}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.semesters.ExistsByYearTerm(ctx, year, term)
		if err != nil {
			return fmt.Errorf("error checking semester existence: %w", err)
		}
		if exists {
			return apperrors.NewCustomError(apperrors.ErrSemesterAlreadyExists,
				fmt.Sprintf("semester %d-%s already exists", year, term))
		}

		return s.semesters.Create(ctx, semester)
	})
	if err != nil {
		return nil, err
	}

	return semester, nil
}

// ListSemesters retrieves all semesters in chronological order.
func (s *SemesterService) ListSemesters(ctx context.Context) ([]*models.Semester, error) {
	semesters, err := s.semesters.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving semesters: %w", err)
	}
	return semesters, nil
}

// GetSemesterByID retrieves a semester by ID.
func (s *SemesterService) GetSemesterByID(ctx context.Context, id int64) (*models.Semester, error) {
	if id <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid semester ID")
	}

	return s.semesters.GetByID(ctx, id)
}
