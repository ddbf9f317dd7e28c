package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

func TestCreateCourse(t *testing.T) {
	store := newFakeCourses()
	svc := NewCourseService(store, fakeTx{})

	course, err := svc.CreateCourse(context.Background(), "CS101", "Introduction to Programming", 4, nil)
	require.NoError(t, err)
	assert.NotZero(t, course.ID)
	assert.Equal(t, "CS101", course.Code)
	assert.Equal(t, 4, course.Credits)
	assert.Empty(t, course.Prerequisites)
}

func TestCreateCourseWithPrerequisites(t *testing.T) {
	store := newFakeCourses(
		&models.Course{ID: 1, Code: "CS101", Name: "Introduction to Programming", Credits: 4},
		&models.Course{ID: 2, Code: "MATH101", Name: "Calculus I", Credits: 3},
	)
	svc := NewCourseService(store, fakeTx{})

	course, err := svc.CreateCourse(context.Background(), "CS201", "Data Structures", 4, []int64{1, 2})
	require.NoError(t, err)
	require.Len(t, course.Prerequisites, 2)

	loaded, err := svc.GetCourseByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Prerequisites, 2)
}

func TestCreateCourseMissingPrerequisites(t *testing.T) {
	store := newFakeCourses(&models.Course{ID: 1, Code: "CS101", Name: "Introduction to Programming", Credits: 4})
	svc := NewCourseService(store, fakeTx{})

	_, err := svc.CreateCourse(context.Background(), "CS201", "Data Structures", 4, []int64{1, 7, 9})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "[7 9]")

	// Nothing persisted on failure
	_, err = svc.GetCourseByCode(context.Background(), "CS201")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCreateCourseSelfPrerequisite(t *testing.T) {
	store := newFakeCourses(&models.Course{ID: 1, Code: "CS101", Name: "Introduction to Programming", Credits: 4})
	svc := NewCourseService(store, fakeTx{})

	// A new course listing an existing course with its own code
	_, err := svc.CreateCourse(context.Background(), "CS101", "Intro again", 4, []int64{1})
	assert.ErrorIs(t, err, apperrors.ErrCourseSelfPrerequisite)
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	store := newFakeCourses(&models.Course{ID: 1, Code: "CS101", Name: "Introduction to Programming", Credits: 4})
	svc := NewCourseService(store, fakeTx{})

	_, err := svc.CreateCourse(context.Background(), "CS101", "Another intro", 3, nil)
	assert.ErrorIs(t, err, apperrors.ErrCourseCodeExists)
}

func TestCreateCourseValidation(t *testing.T) {
	svc := NewCourseService(newFakeCourses(), fakeTx{})

	tests := []struct {
		name    string
		code    string
		course  string
		credits int
	}{
		{"empty code", "", "Some Course", 4},
		{"empty name", "CS101", "", 4},
		{"zero credits", "CS101", "Some Course", 0},
		{"negative credits", "CS101", "Some Course", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCourse(context.Background(), tt.code, tt.course, tt.credits, nil)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestGetCourseByCode(t *testing.T) {
	store := newFakeCourses(&models.Course{ID: 1, Code: "CS101", Name: "Introduction to Programming", Credits: 4})
	svc := NewCourseService(store, fakeTx{})

	course, err := svc.GetCourseByCode(context.Background(), "CS101")
	require.NoError(t, err)
	assert.Equal(t, int64(1), course.ID)

	_, err = svc.GetCourseByCode(context.Background(), "CS999")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetCoursesBySemester(t *testing.T) {
	ctx := context.Background()
	store := newFakeCourses(
		&models.Course{ID: 1, Code: "CS101", Name: "Intro to Programming", Credits: 4},
		&models.Course{ID: 2, Code: "MATH101", Name: "Calculus I", Credits: 2},
		&models.Course{ID: 3, Code: "PHYS101", Name: "Physics I", Credits: 3},
	)
	offerings := newFakeOfferings(store)
	svc := NewCourseService(store, fakeTx{})

	// CS101 is offered twice by two teachers; MATH101 once; PHYS101
	// only in another semester
	require.NoError(t, offerings.Create(ctx, &models.CourseOffering{CourseID: 1, TeacherID: 2, SemesterID: 1}))
	require.NoError(t, offerings.Create(ctx, &models.CourseOffering{CourseID: 1, TeacherID: 4, SemesterID: 1}))
	require.NoError(t, offerings.Create(ctx, &models.CourseOffering{CourseID: 2, TeacherID: 2, SemesterID: 1}))
	require.NoError(t, offerings.Create(ctx, &models.CourseOffering{CourseID: 3, TeacherID: 2, SemesterID: 2}))

	courses, err := svc.GetCoursesBySemester(ctx, 1)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	codes := []string{courses[0].Code, courses[1].Code}
	assert.ElementsMatch(t, []string{"CS101", "MATH101"}, codes)

	_, err = svc.GetCoursesBySemester(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
