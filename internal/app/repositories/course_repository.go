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

// CourseRepository handles database operations for courses and their
// prerequisite edges
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course and sets its generated ID. Prerequisite
// edges are added separately with AddPrerequisite inside the same
// transaction scope.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, name, credits)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := querier(ctx, r.db).QueryRow(ctx, query, course.Code, course.Name, course.Credits).Scan(&course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// AddPrerequisite inserts a prerequisite edge from course to prerequisite.
func (r *CourseRepository) AddPrerequisite(ctx context.Context, courseID, prerequisiteID int64) error {
	query := `
		INSERT INTO course_prerequisites (course_id, prerequisite_id)
		VALUES ($1, $2)
	`

	_, err := querier(ctx, r.db).Exec(ctx, query, courseID, prerequisiteID)
	if err != nil {
		if dberrors.IsCheckViolation(err, "ck_prerequisite_not_self") {
			return apperrors.ErrCourseSelfPrerequisite
		}
		return fmt.Errorf("error adding prerequisite: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, code, name, credits
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := querier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Credits,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetByCode retrieves a course by its unique code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := `
		SELECT id, code, name, credits
		FROM courses
		WHERE code = $1
	`

	var course models.Course
	err := querier(ctx, r.db).QueryRow(ctx, query, code).Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Credits,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course by code: %w", err)
	}

	return &course, nil
}

// GetByIDs retrieves all courses matching the given IDs. Order is not
// guaranteed; callers must check for missing IDs themselves.
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, code, name, credits
		FROM courses
		WHERE id = ANY($1)
	`

	rows, err := querier(ctx, r.db).Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, code, name, credits
		FROM courses
		ORDER BY code
	`

	rows, err := querier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetBySemester retrieves the distinct set of courses that have at least
// one offering in the given semester.
func (r *CourseRepository) GetBySemester(ctx context.Context, semesterID int64) ([]*models.Course, error) {
	query := `
		SELECT DISTINCT c.id, c.code, c.name, c.credits
		FROM courses c
		JOIN course_offerings o ON o.course_id = c.id
		WHERE o.semester_id = $1
		ORDER BY c.code
	`

	rows, err := querier(ctx, r.db).Query(ctx, query, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetPrerequisites retrieves the direct prerequisites of a course.
func (r *CourseRepository) GetPrerequisites(ctx context.Context, courseID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.code, c.name, c.credits
		FROM courses c
		JOIN course_prerequisites p ON p.prerequisite_id = c.id
		WHERE p.course_id = $1
		ORDER BY c.code
	`

	rows, err := querier(ctx, r.db).Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

func scanCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Credits,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
