package dto

import "github.com/selin/acadcore/internal/app/models"

// CreateOfferingRequest represents the data needed to offer a course
type CreateOfferingRequest struct {
	CourseID   int64 `json:"courseId" binding:"required,min=1" example:"1"`
	TeacherID  int64 `json:"teacherId" binding:"required,min=1" example:"5"`
	SemesterID int64 `json:"semesterId" binding:"required,min=1" example:"1"`
}

// OfferingResponse represents a course offering
type OfferingResponse struct {
	ID         int64           `json:"id" example:"1"`
	CourseID   int64           `json:"courseId" example:"1"`
	TeacherID  int64           `json:"teacherId" example:"5"`
	SemesterID int64           `json:"semesterId" example:"1"`
	Course     *CourseResponse `json:"course,omitempty"`
}

// NewOfferingResponse maps an offering model to its response form.
func NewOfferingResponse(offering *models.CourseOffering) OfferingResponse {
	resp := OfferingResponse{
		ID:         offering.ID,
		CourseID:   offering.CourseID,
		TeacherID:  offering.TeacherID,
		SemesterID: offering.SemesterID,
	}
	if offering.Course != nil {
		course := NewCourseResponse(offering.Course)
		resp.Course = &course
	}
	return resp
}
