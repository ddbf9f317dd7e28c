package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

func newSemesterService(semesters ...*models.Semester) *SemesterService {
	return NewSemesterService(newFakeSemesters(semesters...), fakeTx{})
}

func TestCreateSemester(t *testing.T) {
	svc := newSemesterService()

	semester, err := svc.CreateSemester(context.Background(), 2026, models.TermFirst)
	require.NoError(t, err)
	assert.NotZero(t, semester.ID)
	assert.Equal(t, 2026, semester.Year)
	assert.Equal(t, models.TermFirst, semester.Term)
}

func TestCreateSemesterDuplicate(t *testing.T) {
	svc := newSemesterService()

	_, err := svc.CreateSemester(context.Background(), 2026, models.TermFirst)
	require.NoError(t, err)

	_, err = svc.CreateSemester(context.Background(), 2026, models.TermFirst)
	assert.ErrorIs(t, err, apperrors.ErrSemesterAlreadyExists)

	// Same year, other term is a different semester
	_, err = svc.CreateSemester(context.Background(), 2026, models.TermSecond)
	assert.NoError(t, err)
}

func TestCreateSemesterValidation(t *testing.T) {
	svc := newSemesterService()

	_, err := svc.CreateSemester(context.Background(), 0, models.TermFirst)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateSemester(context.Background(), 2026, models.Term("SUMMER"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetSemesterByID(t *testing.T) {
	svc := newSemesterService(&models.Semester{ID: 1, Year: 2026, Term: models.TermFirst})

	semester, err := svc.GetSemesterByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2026, semester.Year)

	_, err = svc.GetSemesterByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)

	_, err = svc.GetSemesterByID(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListSemesters(t *testing.T) {
	svc := newSemesterService(
		&models.Semester{ID: 1, Year: 2025, Term: models.TermSecond},
		&models.Semester{ID: 2, Year: 2026, Term: models.TermFirst},
	)

	semesters, err := svc.ListSemesters(context.Background())
	require.NoError(t, err)
	assert.Len(t, semesters, 2)
}
