package services

import (
	"context"

	"github.com/selin/acadcore/internal/app/models"
)

// Services defined in this package:
// - AuthService: registration, login and token refresh
// - SemesterService: semester creation and lookup
// - CourseService: course catalog and prerequisite management
// - LoadService: per-semester credit limits for students and teachers
// - OfferingService: course offerings against a teacher's load
// - EnrollmentService: student enrollments against a student's load
// - GradeService: grade assignment by the offering's teacher
//
// Every mutating operation runs inside a Transactor scope: all of its
// checks and writes commit together or not at all.

// Transactor runs a function within an atomic transaction scope. The
// scope is carried in the context; any error rolls the whole scope back.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserReader looks up users for role and identity checks.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// SemesterReader looks up semesters referenced by other operations.
type SemesterReader interface {
	GetByID(ctx context.Context, id int64) (*models.Semester, error)
}

// CourseReader looks up courses referenced by other operations.
type CourseReader interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}
