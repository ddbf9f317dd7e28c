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

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment (grade unset) and sets its generated ID.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, semester_id, course_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := querier(ctx, r.db).QueryRow(ctx, query,
		enrollment.StudentID, enrollment.SemesterID, enrollment.CourseID).Scan(&enrollment.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_enrollments_student_semester_course") {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// Exists checks whether an enrollment exists for the exact
// (student, semester, course) triple.
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, semesterID, courseID int64) (bool, error) {
	var exists bool
	err := querier(ctx, r.db).QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM enrollments
			WHERE student_id = $1 AND semester_id = $2 AND course_id = $3
		)`,
		studentID, semesterID, courseID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

// SumCredits returns the total credits of all courses the student is
// enrolled in for the given semester. Returns 0 when there are none.
func (r *EnrollmentRepository) SumCredits(ctx context.Context, studentID, semesterID int64) (int, error) {
	var total int
	err := querier(ctx, r.db).QueryRow(ctx, `
		SELECT COALESCE(SUM(c.credits), 0)
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1 AND e.semester_id = $2`,
		studentID, semesterID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("error aggregating enrollment credits: %w", err)
	}

	return total, nil
}

// Get retrieves the enrollment for (student, semester, course).
func (r *EnrollmentRepository) Get(ctx context.Context, studentID, semesterID, courseID int64) (*models.Enrollment, error) {
	query := `
		SELECT id, student_id, semester_id, course_id, grade
		FROM enrollments
		WHERE student_id = $1 AND semester_id = $2 AND course_id = $3
	`

	var enrollment models.Enrollment
	err := querier(ctx, r.db).QueryRow(ctx, query, studentID, semesterID, courseID).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.SemesterID,
		&enrollment.CourseID,
		&enrollment.Grade,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// UpdateGrade sets (or overwrites) the grade on an enrollment.
func (r *EnrollmentRepository) UpdateGrade(ctx context.Context, enrollmentID int64, grade float64) error {
	query := `
		UPDATE enrollments
		SET grade = $1
		WHERE id = $2
	`

	cmdTag, err := querier(ctx, r.db).Exec(ctx, query, grade, enrollmentID)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// GetByStudentAndSemester retrieves all enrollments of a student in a
// semester with their courses attached.
func (r *EnrollmentRepository) GetByStudentAndSemester(ctx context.Context, studentID, semesterID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.semester_id, e.course_id, e.grade,
		       c.id, c.code, c.name, c.credits
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1 AND e.semester_id = $2
		ORDER BY c.code
	`

	rows, err := querier(ctx, r.db).Query(ctx, query, studentID, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var course models.Course
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.SemesterID,
			&enrollment.CourseID,
			&enrollment.Grade,
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Credits,
		); err != nil {
			return nil, err
		}
		enrollment.Course = &course
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}
