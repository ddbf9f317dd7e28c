package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	SemesterRepository    *SemesterRepository
	CourseRepository      *CourseRepository
	TeacherLoadRepository *TeacherLoadRepository
	StudentLoadRepository *StudentLoadRepository
	OfferingRepository    *OfferingRepository
	EnrollmentRepository  *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		SemesterRepository:    NewSemesterRepository(db),
		CourseRepository:      NewCourseRepository(db),
		TeacherLoadRepository: NewTeacherLoadRepository(db),
		StudentLoadRepository: NewStudentLoadRepository(db),
		OfferingRepository:    NewOfferingRepository(db),
		EnrollmentRepository:  NewEnrollmentRepository(db),
	}
}
