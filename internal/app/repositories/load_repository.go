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

// TeacherLoadRepository handles database operations for teacher credit loads
type TeacherLoadRepository struct {
	db *pgxpool.Pool
}

// NewTeacherLoadRepository creates a new teacher load repository
func NewTeacherLoadRepository(db *pgxpool.Pool) *TeacherLoadRepository {
	return &TeacherLoadRepository{
		db: db,
	}
}

// Create inserts a new teacher load and sets its generated ID.
func (r *TeacherLoadRepository) Create(ctx context.Context, load *models.TeacherLoad) error {
	query := `
		INSERT INTO teacher_loads (teacher_id, semester_id, max_credits)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := querier(ctx, r.db).QueryRow(ctx, query,
		load.TeacherID, load.SemesterID, load.MaxCredits).Scan(&load.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_teacher_loads_teacher_semester") {
			return apperrors.ErrLoadAlreadyAssigned
		}
		return fmt.Errorf("error creating teacher load: %w", err)
	}

	return nil
}

// Get retrieves the teacher load for (teacher, semester).
func (r *TeacherLoadRepository) Get(ctx context.Context, teacherID, semesterID int64) (*models.TeacherLoad, error) {
	query := `
		SELECT id, teacher_id, semester_id, max_credits
		FROM teacher_loads
		WHERE teacher_id = $1 AND semester_id = $2
	`

	return scanTeacherLoad(querier(ctx, r.db).QueryRow(ctx, query, teacherID, semesterID))
}

// GetForUpdate retrieves the teacher load for (teacher, semester) and
// locks the row for the remainder of the ambient transaction. The lock
// serializes concurrent offering creation against the same load.
func (r *TeacherLoadRepository) GetForUpdate(ctx context.Context, teacherID, semesterID int64) (*models.TeacherLoad, error) {
	query := `
		SELECT id, teacher_id, semester_id, max_credits
		FROM teacher_loads
		WHERE teacher_id = $1 AND semester_id = $2
		FOR UPDATE
	`

	return scanTeacherLoad(querier(ctx, r.db).QueryRow(ctx, query, teacherID, semesterID))
}

// Exists checks whether a teacher load exists for (teacher, semester).
func (r *TeacherLoadRepository) Exists(ctx context.Context, teacherID, semesterID int64) (bool, error) {
	var exists bool
	err := querier(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teacher_loads WHERE teacher_id = $1 AND semester_id = $2)`,
		teacherID, semesterID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking teacher load existence: %w", err)
	}

	return exists, nil
}

func scanTeacherLoad(row pgx.Row) (*models.TeacherLoad, error) {
	var load models.TeacherLoad
	err := row.Scan(
		&load.ID,
		&load.TeacherID,
		&load.SemesterID,
		&load.MaxCredits,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLoadNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher load: %w", err)
	}

	return &load, nil
}

// StudentLoadRepository handles database operations for student credit loads
type StudentLoadRepository struct {
	db *pgxpool.Pool
}

// NewStudentLoadRepository creates a new student load repository
func NewStudentLoadRepository(db *pgxpool.Pool) *StudentLoadRepository {
	return &StudentLoadRepository{
		db: db,
	}
}

// Create inserts a new student load and sets its generated ID.
func (r *StudentLoadRepository) Create(ctx context.Context, load *models.StudentLoad) error {
	query := `
		INSERT INTO student_loads (student_id, semester_id, max_credits)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := querier(ctx, r.db).QueryRow(ctx, query,
		load.StudentID, load.SemesterID, load.MaxCredits).Scan(&load.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_student_loads_student_semester") {
			return apperrors.ErrLoadAlreadyAssigned
		}
		return fmt.Errorf("error creating student load: %w", err)
	}

	return nil
}

// Get retrieves the student load for (student, semester).
func (r *StudentLoadRepository) Get(ctx context.Context, studentID, semesterID int64) (*models.StudentLoad, error) {
	query := `
		SELECT id, student_id, semester_id, max_credits
		FROM student_loads
		WHERE student_id = $1 AND semester_id = $2
	`

	return scanStudentLoad(querier(ctx, r.db).QueryRow(ctx, query, studentID, semesterID))
}

// GetForUpdate retrieves the student load for (student, semester) and
// locks the row for the remainder of the ambient transaction.
func (r *StudentLoadRepository) GetForUpdate(ctx context.Context, studentID, semesterID int64) (*models.StudentLoad, error) {
	query := `
		SELECT id, student_id, semester_id, max_credits
		FROM student_loads
		WHERE student_id = $1 AND semester_id = $2
		FOR UPDATE
	`

	return scanStudentLoad(querier(ctx, r.db).QueryRow(ctx, query, studentID, semesterID))
}

// Exists checks whether a student load exists for (student, semester).
func (r *StudentLoadRepository) Exists(ctx context.Context, studentID, semesterID int64) (bool, error) {
	var exists bool
	err := querier(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM student_loads WHERE student_id = $1 AND semester_id = $2)`,
		studentID, semesterID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student load existence: %w", err)
	}

	return exists, nil
}

func scanStudentLoad(row pgx.Row) (*models.StudentLoad, error) {
	var load models.StudentLoad
	err := row.Scan(
		&load.ID,
		&load.StudentID,
		&load.SemesterID,
		&load.MaxCredits,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLoadNotFound
		}
		return nil, fmt.Errorf("error retrieving student load: %w", err)
	}

	return &load, nil
}
