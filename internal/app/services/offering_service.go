package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

// OfferingStore is the persistence contract for course offerings.
type OfferingStore interface {
	Create(ctx context.Context, offering *models.CourseOffering) error
	Exists(ctx context.Context, teacherID, semesterID, courseID int64) (bool, error)
	SumCredits(ctx context.Context, teacherID, semesterID int64) (int, error)
	GetByTeacherAndSemester(ctx context.Context, teacherID, semesterID int64) ([]*models.CourseOffering, error)
}

// OfferingService creates course offerings against a teacher's credit
// load. The whole check-then-act sequence runs in one transaction with
// the load row locked, so concurrent calls for the same (teacher,
// semester) cannot jointly overshoot the ceiling.
type OfferingService struct {
	offerings    OfferingStore
	teacherLoads TeacherLoadStore
	users        UserReader
	semesters    SemesterReader
	courses      CourseReader
	tx           Transactor
}

// NewOfferingService creates a new offering service instance
func NewOfferingService(offerings OfferingStore, teacherLoads TeacherLoadStore, users UserReader, semesters SemesterReader, courses CourseReader, tx Transactor) *OfferingService {
	return &OfferingService{
		offerings:    offerings,
		teacherLoads: teacherLoads,
		users:        users,
		semesters:    semesters,
		courses:      courses,
		tx:           tx,
	}
}

// CreateCourseOffering creates an offering for a teacher in a given
// semester, ensuring the teacher does not exceed their credit limit.
func (s *OfferingService) CreateCourseOffering(ctx context.Context, teacherID, semesterID, courseID int64) (*models.CourseOffering, error) {
	teacher, err := s.users.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	semester, err := s.semesters.GetByID(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	offering := &models.CourseOffering{
		CourseID:   course.ID,
		TeacherID:  teacher.ID,
		SemesterID: semester.ID,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		// Locking the load row serializes concurrent offerings against
		// the same (teacher, semester) ceiling.
		load, err := s.teacherLoads.GetForUpdate(ctx, teacher.ID, semester.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrLoadNotFound) {
				return apperrors.NewCustomError(apperrors.ErrLoadNotConfigured,
					"teacher has no configured credit limit for this semester")
			}
			return err
		}

		exists, err := s.offerings.Exists(ctx, teacher.ID, semester.ID, course.ID)
		if err != nil {
			return fmt.Errorf("error checking offering existence: %w", err)
		}
		if exists {
			return apperrors.ErrOfferingAlreadyExists
		}

		currentCredits, err := s.offerings.SumCredits(ctx, teacher.ID, semester.ID)
		if err != nil {
			return err
		}

		if currentCredits+course.Credits > load.MaxCredits {
			return apperrors.NewCustomError(apperrors.ErrCreditLimitExceeded,
				fmt.Sprintf("teacher cannot exceed %d credits in semester (current=%d, new=%d)",
					load.MaxCredits, currentCredits, course.Credits))
		}

		return s.offerings.Create(ctx, offering)
	})
	if err != nil {
		return nil, err
	}

	offering.Course = course
	offering.Semester = semester
	return offering, nil
}

// GetTeacherCoursesBySemester retrieves the courses a teacher offers in
// the given semester.
func (s *OfferingService) GetTeacherCoursesBySemester(ctx context.Context, teacherID, semesterID int64) ([]*models.Course, error) {
	teacher, err := s.users.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	if err := requireRole(teacher, models.RoleTeacher, "only teachers have assigned courses"); err != nil {
		return nil, err
	}

	semester, err := s.semesters.GetByID(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	offerings, err := s.offerings.GetByTeacherAndSemester(ctx, teacher.ID, semester.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher offerings: %w", err)
	}

	courses := make([]*models.Course, 0, len(offerings))
	for _, offering := range offerings {
		courses = append(courses, offering.Course)
	}

	return courses, nil
}
