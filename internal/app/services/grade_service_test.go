package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

type gradeFixture struct {
	svc         *GradeService
	offerings   *fakeOfferings
	enrollments *fakeEnrollments
}

// newGradeFixture seeds teacher 2 offering CS101 in semester 1 and
// student 3 enrolled in it, ungraded. Teacher 4 offers nothing.
func newGradeFixture(t *testing.T) *gradeFixture {
	t.Helper()

	users := newFakeUsers(
		&models.User{ID: 1, Email: "admin@acadcore.app", RoleType: models.RoleAdmin},
		&models.User{ID: 2, Email: "teacher@acadcore.app", RoleType: models.RoleTeacher},
		&models.User{ID: 3, Email: "student@acadcore.app", RoleType: models.RoleStudent},
		&models.User{ID: 4, Email: "other.teacher@acadcore.app", RoleType: models.RoleTeacher},
	)
	semesters := newFakeSemesters(&models.Semester{ID: 1, Year: 2026, Term: models.TermFirst})
	courses := newFakeCourses(
		&models.Course{ID: 1, Code: "CS101", Name: "Intro to Programming", Credits: 4},
		&models.Course{ID: 2, Code: "MATH101", Name: "Calculus I", Credits: 2},
	)
	offerings := newFakeOfferings(courses)
	enrollments := newFakeEnrollments(courses)

	ctx := context.Background()
	require.NoError(t, offerings.Create(ctx, &models.CourseOffering{CourseID: 1, TeacherID: 2, SemesterID: 1}))
	require.NoError(t, enrollments.Create(ctx, &models.Enrollment{StudentID: 3, SemesterID: 1, CourseID: 1}))

	return &gradeFixture{
		svc:         NewGradeService(enrollments, offerings, users, semesters, courses, fakeTx{}),
		offerings:   offerings,
		enrollments: enrollments,
	}
}

func TestGradeStudentInCourse(t *testing.T) {
	f := newGradeFixture(t)
	ctx := context.Background()

	enrollment, err := f.svc.GradeStudentInCourse(ctx, 2, 3, 1, 1, 4.5)
	require.NoError(t, err)
	require.NotNil(t, enrollment.Grade)
	assert.InDelta(t, 4.5, *enrollment.Grade, 0.001)
	require.NotNil(t, enrollment.Course)
	assert.Equal(t, "CS101", enrollment.Course.Code)

	stored, err := f.enrollments.Get(ctx, 3, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, stored.Grade)
	assert.InDelta(t, 4.5, *stored.Grade, 0.001)
}

func TestGradeOverwritesPreviousGrade(t *testing.T) {
	f := newGradeFixture(t)
	ctx := context.Background()

	_, err := f.svc.GradeStudentInCourse(ctx, 2, 3, 1, 1, 2.0)
	require.NoError(t, err)

	enrollment, err := f.svc.GradeStudentInCourse(ctx, 2, 3, 1, 1, 4.0)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, *enrollment.Grade, 0.001)
}

func TestGradeBounds(t *testing.T) {
	tests := []struct {
		name  string
		grade float64
		valid bool
	}{
		{"minimum", 0.0, true},
		{"maximum", 5.0, true},
		{"below minimum", -0.1, false},
		{"above maximum", 5.1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newGradeFixture(t)

			_, err := f.svc.GradeStudentInCourse(context.Background(), 2, 3, 1, 1, tc.grade)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)
			}
		})
	}
}

func TestGradeRoleViolation(t *testing.T) {
	f := newGradeFixture(t)
	ctx := context.Background()

	_, err := f.svc.GradeStudentInCourse(ctx, 3, 3, 1, 1, 4.0)
	assert.ErrorIs(t, err, apperrors.ErrRoleViolation)

	_, err = f.svc.GradeStudentInCourse(ctx, 1, 3, 1, 1, 4.0)
	assert.ErrorIs(t, err, apperrors.ErrRoleViolation)
}

func TestGradeNotOfferingTeacher(t *testing.T) {
	f := newGradeFixture(t)

	// teacher 4 exists but does not offer CS101 this semester
	_, err := f.svc.GradeStudentInCourse(context.Background(), 4, 3, 1, 1, 4.0)
	assert.ErrorIs(t, err, apperrors.ErrNotOfferingTeacher)
}

func TestGradeStudentNotEnrolled(t *testing.T) {
	f := newGradeFixture(t)
	ctx := context.Background()

	// teacher 2 also offers MATH101, but student 3 is not enrolled in it
	require.NoError(t, f.offerings.Create(ctx, &models.CourseOffering{CourseID: 2, TeacherID: 2, SemesterID: 1}))

	_, err := f.svc.GradeStudentInCourse(ctx, 2, 3, 1, 2, 4.0)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestGradeNotFound(t *testing.T) {
	f := newGradeFixture(t)
	ctx := context.Background()

	_, err := f.svc.GradeStudentInCourse(ctx, 99, 3, 1, 1, 4.0)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = f.svc.GradeStudentInCourse(ctx, 2, 99, 1, 1, 4.0)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = f.svc.GradeStudentInCourse(ctx, 2, 3, 99, 1, 4.0)
	assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)

	_, err = f.svc.GradeStudentInCourse(ctx, 2, 3, 1, 99, 4.0)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
