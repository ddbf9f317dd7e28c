package dto

import "github.com/selin/acadcore/internal/app/models"

// CreateCourseRequest represents the data needed to create a course
type CreateCourseRequest struct {
	Code            string  `json:"code" binding:"required" example:"CS101"`
	Name            string  `json:"name" binding:"required" example:"Introduction to Programming"`
	Credits         int     `json:"credits" binding:"required,min=1" example:"4"`
	PrerequisiteIDs []int64 `json:"prerequisiteIds" example:"2,3"`
}

// CourseResponse represents course information
type CourseResponse struct {
	ID            int64            `json:"id" example:"1"`
	Code          string           `json:"code" example:"CS101"`
	Name          string           `json:"name" example:"Introduction to Programming"`
	Credits       int              `json:"credits" example:"4"`
	Prerequisites []CourseResponse `json:"prerequisites,omitempty"`
}

// NewCourseResponse maps a course model to its response form, including
// one level of prerequisites.
func NewCourseResponse(course *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:      course.ID,
		Code:    course.Code,
		Name:    course.Name,
		Credits: course.Credits,
	}
	for _, p := range course.Prerequisites {
		resp.Prerequisites = append(resp.Prerequisites, CourseResponse{
			ID:      p.ID,
			Code:    p.Code,
			Name:    p.Name,
			Credits: p.Credits,
		})
	}
	return resp
}

// NewCourseListResponse maps a slice of courses to response form.
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		responses = append(responses, NewCourseResponse(c))
	}
	return responses
}
