package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

type offeringFixture struct {
	svc          *OfferingService
	loadSvc      *LoadService
	teacherLoads *fakeTeacherLoads
	offerings    *fakeOfferings
}

func newOfferingFixture() *offeringFixture {
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
	teacherLoads := newFakeTeacherLoads()
	offerings := newFakeOfferings(courses)

	return &offeringFixture{
		svc:          NewOfferingService(offerings, teacherLoads, users, semesters, courses, fakeTx{}),
		loadSvc:      NewLoadService(teacherLoads, newFakeStudentLoads(), users, semesters, fakeTx{}),
		teacherLoads: teacherLoads,
		offerings:    offerings,
	}
}

func TestCreateCourseOffering(t *testing.T) {
	f := newOfferingFixture()
	ctx := context.Background()

	_, err := f.loadSvc.AssignTeacherLoad(ctx, 2, 1, 6)
	require.NoError(t, err)

	offering, err := f.svc.CreateCourseOffering(ctx, 2, 1, 1)
	require.NoError(t, err)
	assert.NotZero(t, offering.ID)
	assert.Equal(t, int64(2), offering.TeacherID)
	require.NotNil(t, offering.Course)
	assert.Equal(t, "CS101", offering.Course.Code)
}

func TestCreateCourseOfferingCreditLimit(t *testing.T) {
	f := newOfferingFixture()
	ctx := context.Background()

	_, err := f.loadSvc.AssignTeacherLoad(ctx, 2, 1, 6)
	require.NoError(t, err)

	// 4 + 2 credits hit the ceiling of 6 exactly
	_, err = f.svc.CreateCourseOffering(ctx, 2, 1, 1)
	require.NoError(t, err)
	_, err = f.svc.CreateCourseOffering(ctx, 2, 1, 2)
	require.NoError(t, err)

	// a third course of any size must be rejected
	_, err = f.svc.CreateCourseOffering(ctx, 2, 1, 3)
	assert.ErrorIs(t, err, apperrors.ErrCreditLimitExceeded)
	assert.Contains(t, err.Error(), "teacher cannot exceed 6 credits")
}

func TestCreateCourseOfferingRejectionLeavesNoState(t *testing.T) {
	f := newOfferingFixture()
	ctx := context.Background()

	_, err := f.loadSvc.AssignTeacherLoad(ctx, 2, 1, 6)
	require.NoError(t, err)

	// 4 credits fit (4/6)
	_, err = f.svc.CreateCourseOffering(ctx, 2, 1, 1)
	require.NoError(t, err)

	// 3 more would overshoot (4+3=7>6)
	_, err = f.svc.CreateCourseOffering(ctx, 2, 1, 3)
	require.ErrorIs(t, err, apperrors.ErrCreditLimitExceeded)

	// the rejected offering left nothing behind: 2 credits still fit
	_, err = f.svc.CreateCourseOffering(ctx, 2, 1, 2)
	require.NoError(t, err)

	total, err := f.offerings.SumCredits(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
}

func TestCreateCourseOfferingNoLoad(t *testing.T) {
	f := newOfferingFixture()

	_, err := f.svc.CreateCourseOffering(context.Background(), 2, 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrLoadNotConfigured)
}

func TestCreateCourseOfferingDuplicate(t *testing.T) {
	f := newOfferingFixture()
	ctx := context.Background()

	_, err := f.loadSvc.AssignTeacherLoad(ctx, 2, 1, 10)
	require.NoError(t, err)

	_, err = f.svc.CreateCourseOffering(ctx, 2, 1, 1)
	require.NoError(t, err)

	_, err = f.svc.CreateCourseOffering(ctx, 2, 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrOfferingAlreadyExists)
}

func TestCreateCourseOfferingNotFound(t *testing.T) {
	f := newOfferingFixture()
	ctx := context.Background()

	_, err := f.svc.CreateCourseOffering(ctx, 99, 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = f.svc.CreateCourseOffering(ctx, 2, 99, 1)
	assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)

	_, err = f.svc.CreateCourseOffering(ctx, 2, 1, 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

// Two offerings racing for the last credits of the same load must be
// serialized by the lock on the load row: exactly one commits, and the
// committed credits never overshoot the ceiling.
func TestCreateCourseOfferingConcurrentNearLimit(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		users := newFakeUsers(
			&models.User{ID: 2, Email: "teacher@acadcore.app", RoleType: models.RoleTeacher},
		)
		semesters := newFakeSemesters(&models.Semester{ID: 1, Year: 2026, Term: models.TermFirst})
		courses := newFakeCourses(
			&models.Course{ID: 1, Code: "CS101", Name: "Intro to Programming", Credits: 4},
			&models.Course{ID: 3, Code: "PHYS101", Name: "Physics I", Credits: 3},
		)
		teacherLoads := &lockingTeacherLoads{fakeTeacherLoads: newFakeTeacherLoads(), table: newLockTable()}
		offerings := newFakeOfferings(courses)
		svc := NewOfferingService(offerings, teacherLoads, users, semesters, courses, rowLockTx{})

		require.NoError(t, teacherLoads.Create(ctx, &models.TeacherLoad{TeacherID: 2, SemesterID: 1, MaxCredits: 6}))

		// each offering fits on its own (4<=6, 3<=6); together they
		// would overshoot (4+3=7>6)
		start := make(chan struct{})
		errs := make(chan error, 2)
		for _, courseID := range []int64{1, 3} {
			go func(id int64) {
				<-start
				_, err := svc.CreateCourseOffering(ctx, 2, 1, id)
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

		total, err := offerings.SumCredits(ctx, 2, 1)
		require.NoError(t, err)
		assert.LessOrEqual(t, total, 6)
	}
}

func TestGetTeacherCoursesBySemester(t *testing.T) {
	f := newOfferingFixture()
	ctx := context.Background()

	_, err := f.loadSvc.AssignTeacherLoad(ctx, 2, 1, 10)
	require.NoError(t, err)
	_, err = f.svc.CreateCourseOffering(ctx, 2, 1, 1)
	require.NoError(t, err)
	_, err = f.svc.CreateCourseOffering(ctx, 2, 1, 2)
	require.NoError(t, err)

	courses, err := f.svc.GetTeacherCoursesBySemester(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, courses, 2)

	codes := []string{courses[0].Code, courses[1].Code}
	assert.ElementsMatch(t, []string{"CS101", "MATH101"}, codes)
}

func TestGetTeacherCoursesRoleViolation(t *testing.T) {
	f := newOfferingFixture()

	_, err := f.svc.GetTeacherCoursesBySemester(context.Background(), 3, 1)
	assert.ErrorIs(t, err, apperrors.ErrRoleViolation)
}
