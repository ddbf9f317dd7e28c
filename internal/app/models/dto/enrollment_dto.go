package dto

import "github.com/selin/acadcore/internal/app/models"

// EnrollRequest represents a student's enrollment in a course. StudentID
// is only honored for admin callers; students always enroll themselves.
type EnrollRequest struct {
	StudentID  int64 `json:"studentId" binding:"omitempty,min=1" example:"7"`
	SemesterID int64 `json:"semesterId" binding:"required,min=1" example:"1"`
	CourseID   int64 `json:"courseId" binding:"required,min=1" example:"1"`
}

// AssignGradeRequest represents a grade assignment. TeacherID is only
// honored for admin callers; teachers always grade as themselves.
type AssignGradeRequest struct {
	TeacherID  int64   `json:"teacherId" binding:"omitempty,min=1" example:"5"`
	StudentID  int64   `json:"studentId" binding:"required,min=1" example:"7"`
	SemesterID int64   `json:"semesterId" binding:"required,min=1" example:"1"`
	CourseID   int64   `json:"courseId" binding:"required,min=1" example:"1"`
	Grade      float64 `json:"grade" binding:"min=0,max=5" example:"4.5"`
}

// EnrollmentResponse represents an enrollment record
type EnrollmentResponse struct {
	ID         int64           `json:"id" example:"1"`
	StudentID  int64           `json:"studentId" example:"7"`
	SemesterID int64           `json:"semesterId" example:"1"`
	CourseID   int64           `json:"courseId" example:"1"`
	Grade      *float64        `json:"grade,omitempty" example:"4.5"`
	Course     *CourseResponse `json:"course,omitempty"`
}

// NewEnrollmentResponse maps an enrollment model to its response form.
func NewEnrollmentResponse(enrollment *models.Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:         enrollment.ID,
		StudentID:  enrollment.StudentID,
		SemesterID: enrollment.SemesterID,
		CourseID:   enrollment.CourseID,
		Grade:      enrollment.Grade,
	}
	if enrollment.Course != nil {
		course := NewCourseResponse(enrollment.Course)
		resp.Course = &course
	}
	return resp
}

// NewEnrollmentListResponse maps a slice of enrollments to response form.
func NewEnrollmentListResponse(enrollments []*models.Enrollment) []EnrollmentResponse {
	responses := make([]EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		responses = append(responses, NewEnrollmentResponse(e))
	}
	return responses
}
