package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

// EnrollmentStore is the persistence contract for enrollments.
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Exists(ctx context.Context, studentID, semesterID, courseID int64) (bool, error)
	SumCredits(ctx context.Context, studentID, semesterID int64) (int, error)
	Get(ctx context.Context, studentID, semesterID, courseID int64) (*models.Enrollment, error)
	UpdateGrade(ctx context.Context, enrollmentID int64, grade float64) error
	GetByStudentAndSemester(ctx context.Context, studentID, semesterID int64) ([]*models.Enrollment, error)
}

// EnrollmentService enrolls students in courses against their semester
// credit load. Like offerings, the whole check-then-act sequence runs in
// one transaction with the load row locked.
type EnrollmentService struct {
	enrollments  EnrollmentStore
	studentLoads StudentLoadStore
	users        UserReader
	semesters    SemesterReader
	courses      CourseReader
	tx           Transactor
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollments EnrollmentStore, studentLoads StudentLoadStore, users UserReader, semesters SemesterReader, courses CourseReader, tx Transactor) *EnrollmentService {
	return &EnrollmentService{
		enrollments:  enrollments,
		studentLoads: studentLoads,
		users:        users,
		semesters:    semesters,
		courses:      courses,
		tx:           tx,
	}
}

// EnrollStudentInCourse enrolls a student in a course for a semester,
// validating the student's role, credit limit and duplicates.
func (s *EnrollmentService) EnrollStudentInCourse(ctx context.Context, studentID, semesterID, courseID int64) (*models.Enrollment, error) {
	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if err := requireRole(student, models.RoleStudent, "only users with the STUDENT role can enroll in courses"); err != nil {
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

	enrollment := &models.Enrollment{
		StudentID:  student.ID,
		SemesterID: semester.ID,
		CourseID:   course.ID,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		load, err := s.studentLoads.GetForUpdate(ctx, student.ID, semester.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrLoadNotFound) {
				return apperrors.NewCustomError(apperrors.ErrLoadNotConfigured,
					"student has no configured semester load")
			}
			return err
		}

		exists, err := s.enrollments.Exists(ctx, student.ID, semester.ID, course.ID)
		if err != nil {
			return fmt.Errorf("error checking enrollment existence: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyEnrolled
		}

		currentCredits, err := s.enrollments.SumCredits(ctx, student.ID, semester.ID)
		if err != nil {
			return err
		}

		if currentCredits+course.Credits > load.MaxCredits {
			return apperrors.NewCustomError(apperrors.ErrCreditLimitExceeded,
				fmt.Sprintf("enrollment would exceed credit limit (%d). Current: %d, New Course: %d",
					load.MaxCredits, currentCredits, course.Credits))
		}

		return s.enrollments.Create(ctx, enrollment)
	})
	if err != nil {
		return nil, err
	}

	enrollment.Course = course
	enrollment.Semester = semester
	return enrollment, nil
}

// GetStudentEnrollmentsBySemester retrieves a student's enrollments for
// the given semester with courses attached.
func (s *EnrollmentService) GetStudentEnrollmentsBySemester(ctx context.Context, studentID, semesterID int64) ([]*models.Enrollment, error) {
	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if err := requireRole(student, models.RoleStudent, "only students have enrollments"); err != nil {
		return nil, err
	}

	semester, err := s.semesters.GetByID(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollments.GetByStudentAndSemester(ctx, student.ID, semester.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}

	return enrollments, nil
}
