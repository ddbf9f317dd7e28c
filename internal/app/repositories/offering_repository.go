package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
	"github.com/selin/acadcore/internal/pkg/dberrors"
)

// OfferingRepository handles database operations for course offerings
type OfferingRepository struct {
	db *pgxpool.Pool
}

// NewOfferingRepository creates a new offering repository
func NewOfferingRepository(db *pgxpool.Pool) *OfferingRepository {
	return &OfferingRepository{
		db: db,
	}
}

// Create inserts a new course offering and sets its generated ID.
func (r *OfferingRepository) Create(ctx context.Context, offering *models.CourseOffering) error {
	query := `
		INSERT INTO course_offerings (course_id, teacher_id, semester_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := querier(ctx, r.db).QueryRow(ctx, query,
		offering.CourseID, offering.TeacherID, offering.SemesterID).Scan(&offering.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_offerings_course_semester_teacher") {
			return apperrors.ErrOfferingAlreadyExists
		}
		return fmt.Errorf("error creating course offering: %w", err)
	}

	return nil
}

// Exists checks whether an offering exists for the exact
// (teacher, semester, course) triple.
func (r *OfferingRepository) Exists(ctx context.Context, teacherID, semesterID, courseID int64) (bool, error) {
	var exists bool
	err := querier(ctx, r.db).QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM course_offerings
			WHERE teacher_id = $1 AND semester_id = $2 AND course_id = $3
		)`,
		teacherID, semesterID, courseID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking offering existence: %w", err)
	}

	return exists, nil
}

// SumCredits returns the total credits of all courses the teacher offers
// in the given semester. Returns 0 when there are no offerings.
func (r *OfferingRepository) SumCredits(ctx context.Context, teacherID, semesterID int64) (int, error) {
	var total int
	err := querier(ctx, r.db).QueryRow(ctx, `
		SELECT COALESCE(SUM(c.credits), 0)
		FROM course_offerings o
		JOIN courses c ON c.id = o.course_id
		WHERE o.teacher_id = $1 AND o.semester_id = $2`,
		teacherID, semesterID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("error aggregating offering credits: %w", err)
	}

	return total, nil
}

// GetByTeacherAndSemester retrieves all offerings of a teacher in a
// semester with their courses attached.
func (r *OfferingRepository) GetByTeacherAndSemester(ctx context.Context, teacherID, semesterID int64) ([]*models.CourseOffering, error) {
	query := `
		SELECT o.id, o.course_id, o.teacher_id, o.semester_id,
		       c.id, c.code, c.name, c.credits
		FROM course_offerings o
		JOIN courses c ON c.id = o.course_id
		WHERE o.teacher_id = $1 AND o.semester_id = $2
		ORDER BY c.code
	`

	rows, err := querier(ctx, r.db).Query(ctx, query, teacherID, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offerings []*models.CourseOffering
	for rows.Next() {
		var offering models.CourseOffering
		var course models.Course
		if err := rows.Scan(
			&offering.ID,
			&offering.CourseID,
			&offering.TeacherID,
			&offering.SemesterID,
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Credits,
		); err != nil {
			return nil, err
		}
		offering.Course = &course
		offerings = append(offerings, &offering)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offerings, nil
}
