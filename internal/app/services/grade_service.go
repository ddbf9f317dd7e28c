package services

import (
	"context"
	"fmt"

	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

// Grade bounds for the closed interval accepted by GradeStudentInCourse.
const (
	MinGrade = 0.0
	MaxGrade = 5.0
)

// GradeService assigns grades to enrolled students. Only the teacher who
// offers the course in that semester may grade it; assigning again
// overwrites the previous grade without keeping history.
type GradeService struct {
	enrollments EnrollmentStore
	offerings   OfferingStore
	users       UserReader
	semesters   SemesterReader
	courses     CourseReader
	tx          Transactor
}

// NewGradeService creates a new grade service instance
func NewGradeService(enrollments EnrollmentStore, offerings OfferingStore, users UserReader, semesters SemesterReader, courses CourseReader, tx Transactor) *GradeService {
	return &GradeService{
		enrollments: enrollments,
		offerings:   offerings,
		users:       users,
		semesters:   semesters,
		courses:     courses,
		tx:          tx,
	}
}

// GradeStudentInCourse assigns a grade to a student in a specific course
// and semester, ensuring the teacher is authorized to teach that course.
func (s *GradeService) GradeStudentInCourse(ctx context.Context, teacherID, studentID, semesterID, courseID int64, grade float64) (*models.Enrollment, error) {
	teacher, err := s.users.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	if err := requireRole(teacher, models.RoleTeacher, "only teachers can assign grades"); err != nil {
		return nil, err
	}

	if grade < MinGrade || grade > MaxGrade {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidGrade,
			fmt.Sprintf("grade must be between %.1f and %.1f", MinGrade, MaxGrade))
	}

	student, err := s.users.GetByID(ctx, studentID)
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

	var enrollment *models.Enrollment
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		teaches, err := s.offerings.Exists(ctx, teacher.ID, semester.ID, course.ID)
		if err != nil {
			return fmt.Errorf("error checking offering existence: %w", err)
		}
		if !teaches {
			return apperrors.NewCustomError(apperrors.ErrNotOfferingTeacher,
				"you are not authorized to grade this course")
		}

		enrollment, err = s.enrollments.Get(ctx, student.ID, semester.ID, course.ID)
		if err != nil {
			return err
		}

		if err := s.enrollments.UpdateGrade(ctx, enrollment.ID, grade); err != nil {
			return err
		}

		enrollment.Grade = &grade
		return nil
	})
	if err != nil {
		return nil, err
	}

	enrollment.Course = course
	enrollment.Semester = semester
	return enrollment, nil
}
