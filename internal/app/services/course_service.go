package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

// CourseStore is the persistence contract for courses and their
// prerequisite edges.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	AddPrerequisite(ctx context.Context, courseID, prerequisiteID int64) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetBySemester(ctx context.Context, semesterID int64) ([]*models.Course, error)
	GetPrerequisites(ctx context.Context, courseID int64) ([]*models.Course, error)
}

// CourseService manages the course catalog. Prerequisite edges are
// validated against direct self-reference only; transitive cycles
// (A requires B requires A) are not detected.
type CourseService struct {
	courses CourseStore
	tx      Transactor
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore, tx Transactor) *CourseService {
	return &CourseService{
		courses: courses,
		tx:      tx,
	}
}

// CreateCourse creates a course and its prerequisite edges atomically.
// If any check fails, nothing is persisted.
func (s *CourseService) CreateCourse(ctx context.Context, code, name string, credits int, prerequisiteIDs []int64) (*models.Course, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)

	if code == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "course code cannot be empty")
	}
	if name == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "course name cannot be empty")
	}
	if credits <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "credits must be greater than zero")
	}

	course := &models.Course{Code: code, Name: name, Credits: credits}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		prerequisites, err := s.resolveCourses(ctx, prerequisiteIDs)
		if err != nil {
			return err
		}

		// A course listing its own code as a prerequisite would become
		// its own prerequisite the moment it is saved.
		for _, prereq := range prerequisites {
			if prereq.Code == code {
				return apperrors.NewCustomError(apperrors.ErrCourseSelfPrerequisite,
					fmt.Sprintf("course %s cannot be its own prerequisite", code))
			}
		}

		if err := s.courses.Create(ctx, course); err != nil {
			return err
		}

		for _, prereq := range prerequisites {
			if prereq.ID == course.ID {
				return apperrors.NewCustomError(apperrors.ErrCourseSelfPrerequisite,
					fmt.Sprintf("course %s cannot be its own prerequisite", code))
			}
			if err := s.courses.AddPrerequisite(ctx, course.ID, prereq.ID); err != nil {
				return err
			}
		}

		course.Prerequisites = prerequisites
		return nil
	})
	if err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourseByID retrieves a course by ID with its prerequisites attached.
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid course ID")
	}

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.attachPrerequisites(ctx, course)
}

// GetCourseByCode retrieves a course by its unique code with its
// prerequisites attached.
func (s *CourseService) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "course code cannot be empty")
	}

	course, err := s.courses.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	return s.attachPrerequisites(ctx, course)
}

// GetCoursesByIDs retrieves the courses matching the given IDs, failing
// when any ID has no matching course.
func (s *CourseService) GetCoursesByIDs(ctx context.Context, ids []int64) ([]*models.Course, error) {
	return s.resolveCourses(ctx, ids)
}

// GetAllCourses retrieves all courses in the catalog.
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCoursesBySemester retrieves the distinct courses that have at least
// one offering in the given semester.
func (s *CourseService) GetCoursesBySemester(ctx context.Context, semesterID int64) ([]*models.Course, error) {
	if semesterID <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid semester ID")
	}

	courses, err := s.courses.GetBySemester(ctx, semesterID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses by semester: %w", err)
	}
	return courses, nil
}

// resolveCourses loads courses by ID and fails with the list of missing
// IDs when any is absent.
func (s *CourseService) resolveCourses(ctx context.Context, ids []int64) ([]*models.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	courses, err := s.courses.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses by IDs: %w", err)
	}

	found := make(map[int64]bool, len(courses))
	for _, course := range courses {
		found[course.ID] = true
	}

	var missing []int64
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("courses not found for IDs: %v", missing))
	}

	return courses, nil
}

func (s *CourseService) attachPrerequisites(ctx context.Context, course *models.Course) (*models.Course, error) {
	prerequisites, err := s.courses.GetPrerequisites(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving prerequisites: %w", err)
	}
	course.Prerequisites = prerequisites
	return course, nil
}
