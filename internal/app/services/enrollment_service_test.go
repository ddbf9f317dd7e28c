package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

type enrollmentFixture struct {
	svc     *EnrollmentService
	loadSvc *LoadService
}

func newEnrollmentFixture() *enrollmentFixture {
	users := newFakeUsers(
		&models.User{ID: 1, Email: "admin@acadcore.app", RoleType: models.RoleAdmin},
		&models.User{ID: 2, Email: "teacher@acadcore.app", RoleType: models.RoleTeacher},
		&models.User{ID: 3, Email: "student@acadcore.app", RoleType: models.RoleStudent},
	)
	semesters := newFakeSemesters(&models.Semester{ID: 1, Year: 2026, Term: models.TermFirst})
	courses := newFakeCourses(
		&models.Course{ID: 1, Code: "CS101", Name: "Intro to Programming", Credits: 4},
		&models.Course{ID: 2, Code: "MATH101", Name: "Calculus I", Credits: 2},
		&models.Course{ID: 3, Code: "PHYS101", Name: "Physics I", Credits: 3},
	)
	studentLoads := newFakeStudentLoads()
	enrollments := newFakeEnrollments(courses)

	return &enrollmentFixture{
		svc:     NewEnrollmentService(enrollments, studentLoads, users, semesters, courses, fakeTx{}),
		loadSvc: NewLoadService(newFakeTeacherLoads(), studentLoads, users, semesters, fakeTx{}),
	}
}

func TestEnrollStudentInCourse(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	_, err := f.loadSvc.AssignStudentLoad(ctx, 3, 1, 20)
	require.NoError(t, err)

	enrollment, err := f.svc.EnrollStudentInCourse(ctx, 3, 1, 1)
	require.NoError(t, err)
	assert.NotZero(t, enrollment.ID)
	assert.Equal(t, int64(3), enrollment.StudentID)
	assert.Nil(t, enrollment.Grade)
	require.NotNil(t, enrollment.Course)
	assert.Equal(t, "CS101", enrollment.Course.Code)
}

func TestEnrollRoleViolation(t *testing.T) {
	f := newEnrollmentFixture()

	// the role check fires before any load lookup
	_, err := f.svc.EnrollStudentInCourse(context.Background(), 2, 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrRoleViolation)
	assert.Contains(t, err.Error(), "STUDENT role")
}

func TestEnrollNoLoad(t *testing.T) {
	f := newEnrollmentFixture()

	_, err := f.svc.EnrollStudentInCourse(context.Background(), 3, 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrLoadNotConfigured)
}

func TestEnrollDuplicate(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	_, err := f.loadSvc.AssignStudentLoad(ctx, 3, 1, 20)
	require.NoError(t, err)

	_, err = f.svc.EnrollStudentInCourse(ctx, 3, 1, 1)
	require.NoError(t, err)

	_, err = f.svc.EnrollStudentInCourse(ctx, 3, 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestEnrollCreditLimit(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	_, err := f.loadSvc.AssignStudentLoad(ctx, 3, 1, 6)
	require.NoError(t, err)

	// 4 + 2 credits reach the limit of 6 exactly
	_, err = f.svc.EnrollStudentInCourse(ctx, 3, 1, 1)
	require.NoError(t, err)
	_, err = f.svc.EnrollStudentInCourse(ctx, 3, 1, 2)
	require.NoError(t, err)

	_, err = f.svc.EnrollStudentInCourse(ctx, 3, 1, 3)
	assert.ErrorIs(t, err, apperrors.ErrCreditLimitExceeded)
	assert.Contains(t, err.Error(), "exceed credit limit (6)")
}

// Mirror of the offering race: two enrollments near the student's
// ceiling are serialized by the lock on the load row, so exactly one
// commits and the enrolled credits stay within the limit.
func TestEnrollConcurrentNearLimit(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		users := newFakeUsers(
			&models.User{ID: 3, Email: "student@acadcore.app", RoleType: models.RoleStudent},
		)
		semesters := newFakeSemesters(&models.Semester{ID: 1, Year: 2026, Term: models.TermFirst})
		courses := newFakeCourses(
			&models.Course{ID: 1, Code: "CS101", Name: "Intro to Programming", Credits: 4},
			&models.Course{ID: 3, Code: "PHYS101", Name: "Physics I", Credits: 3},
		)
		studentLoads := &lockingStudentLoads{fakeStudentLoads: newFakeStudentLoads(), table: newLockTable()}
		enrollments := newFakeEnrollments(courses)
		svc := NewEnrollmentService(enrollments, studentLoads, users, semesters, courses, rowLockTx{})

		require.NoError(t, studentLoads.Create(ctx, &models.StudentLoad{StudentID: 3, SemesterID: 1, MaxCredits: 6}))

		start := make(chan struct{})
		errs := make(chan error, 2)
		for _, courseID := range []int64{1, 3} {
			go func(id int64) {
				<-start
				_, err := svc.EnrollStudentInCourse(ctx, 3, 1, id)
				errs <- err
			}(courseID)
		}
		close(start)

		rejected := 0
		for j := 0; j < 2; j++ {
			if err := <-errs; err != nil {
				assert.ErrorIs(t, err, apperrors.ErrCreditLimitExceeded)
				rejected++
			}
		}
		require.Equal(t, 1, rejected)

		total, err := enrollments.SumCredits(ctx, 3, 1)
		require.NoError(t, err)
		assert.LessOrEqual(t, total, 6)
	}
}

func TestEnrollNotFound(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	_, err := f.svc.EnrollStudentInCourse(ctx, 99, 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = f.svc.EnrollStudentInCourse(ctx, 3, 99, 1)
	assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)

	_, err = f.svc.EnrollStudentInCourse(ctx, 3, 1, 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetStudentEnrollmentsBySemester(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	_, err := f.loadSvc.AssignStudentLoad(ctx, 3, 1, 20)
	require.NoError(t, err)
	_, err = f.svc.EnrollStudentInCourse(ctx, 3, 1, 1)
	require.NoError(t, err)
	_, err = f.svc.EnrollStudentInCourse(ctx, 3, 1, 3)
	require.NoError(t, err)

	enrollments, err := f.svc.GetStudentEnrollmentsBySemester(ctx, 3, 1)
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	for _, e := range enrollments {
		assert.NotNil(t, e.Course)
		assert.Nil(t, e.Grade)
	}
}

func TestGetStudentEnrollmentsRoleViolation(t *testing.T) {
	f := newEnrollmentFixture()

	_, err := f.svc.GetStudentEnrollmentsBySemester(context.Background(), 2, 1)
	assert.ErrorIs(t, err, apperrors.ErrRoleViolation)
}
