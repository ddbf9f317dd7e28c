package services

import (
	"context"
	"fmt"

	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

// TeacherLoadStore is the persistence contract for teacher credit loads.
type TeacherLoadStore interface {
	Create(ctx context.Context, load *models.TeacherLoad) error
	Get(ctx context.Context, teacherID, semesterID int64) (*models.TeacherLoad, error)
	GetForUpdate(ctx context.Context, teacherID, semesterID int64) (*models.TeacherLoad, error)
	Exists(ctx context.Context, teacherID, semesterID int64) (bool, error)
}

// StudentLoadStore is the persistence contract for student credit loads.
type StudentLoadStore interface {
	Create(ctx context.Context, load *models.StudentLoad) error
	Get(ctx context.Context, studentID, semesterID int64) (*models.StudentLoad, error)
	GetForUpdate(ctx context.Context, studentID, semesterID int64) (*models.StudentLoad, error)
	Exists(ctx context.Context, studentID, semesterID int64) (bool, error)
}

// LoadService assigns per-semester credit ceilings to students and
// teachers. A load is created exactly once per (person, semester) and is
// never updated or deleted afterwards.
type LoadService struct {
	teacherLoads TeacherLoadStore
	studentLoads StudentLoadStore
	users        UserReader
	semesters    SemesterReader
	tx           Transactor
}

// NewLoadService creates a new load service instance
func NewLoadService(teacherLoads TeacherLoadStore, studentLoads StudentLoadStore, users UserReader, semesters SemesterReader, tx Transactor) *LoadService {
	return &LoadService{
		teacherLoads: teacherLoads,
		studentLoads: studentLoads,
		users:        users,
		semesters:    semesters,
		tx:           tx,
	}
}

// AssignTeacherLoad assigns a credit ceiling to a teacher for a semester.
func (s *LoadService) AssignTeacherLoad(ctx context.Context, teacherID, semesterID int64, maxCredits int) (*models.TeacherLoad, error) {
	teacher, err := s.users.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	if err := requireRole(teacher, models.RoleTeacher, "only teachers can have a teaching load assigned"); err != nil {
		return nil, err
	}

	if maxCredits <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "max credits must be a positive integer")
	}

	semester, err := s.semesters.GetByID(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	load := &models.TeacherLoad{
		TeacherID:  teacher.ID,
		SemesterID: semester.ID,
		MaxCredits: maxCredits,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.teacherLoads.Exists(ctx, teacher.ID, semester.ID)
		if err != nil {
			return fmt.Errorf("error checking teacher load existence: %w", err)
		}
		if exists {
			return apperrors.NewCustomError(apperrors.ErrLoadAlreadyAssigned,
				fmt.Sprintf("teacher already has a load for semester %d-%s", semester.Year, semester.Term))
		}

		return s.teacherLoads.Create(ctx, load)
	})
	if err != nil {
		return nil, err
	}

	return load, nil
}

// AssignStudentLoad assigns a credit ceiling to a student for a semester.
func (s *LoadService) AssignStudentLoad(ctx context.Context, studentID, semesterID int64, maxCredits int) (*models.StudentLoad, error) {
	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if err := requireRole(student, models.RoleStudent, "only students can have a semester load assigned"); err != nil {
		return nil, err
	}

	if maxCredits <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "max credits must be a positive integer")
	}

	semester, err := s.semesters.GetByID(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	load := &models.StudentLoad{
		StudentID:  student.ID,
		SemesterID: semester.ID,
		MaxCredits: maxCredits,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.studentLoads.Exists(ctx, student.ID, semester.ID)
		if err != nil {
			return fmt.Errorf("error checking student load existence: %w", err)
		}
		if exists {
			return apperrors.NewCustomError(apperrors.ErrLoadAlreadyAssigned,
				fmt.Sprintf("student already has a load for semester %d-%s", semester.Year, semester.Term))
		}

		return s.studentLoads.Create(ctx, load)
	})
	if err != nil {
		return nil, err
	}

	return load, nil
}

// GetTeacherMaxCredits retrieves the credit ceiling configured for a
// teacher in a semester.
func (s *LoadService) GetTeacherMaxCredits(ctx context.Context, teacherID, semesterID int64) (int, error) {
	if teacherID <= 0 || semesterID <= 0 {
		return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid teacher or semester ID")
	}

	load, err := s.teacherLoads.Get(ctx, teacherID, semesterID)
	if err != nil {
		return 0, err
	}

	return load.MaxCredits, nil
}

// requireRole enforces that the user holds exactly the wanted role.
func requireRole(user *models.User, want models.RoleType, message string) error {
	switch user.RoleType {
	case want:
		return nil
	case models.RoleAdmin, models.RoleStudent, models.RoleTeacher:
		return apperrors.NewCustomError(apperrors.ErrRoleViolation, message)
	default:
		return fmt.Errorf("user %d has unknown role %q", user.ID, user.RoleType)
	}
}
