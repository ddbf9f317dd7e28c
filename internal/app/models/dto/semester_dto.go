package dto

import "github.com/selin/acadcore/internal/app/models"

// CreateSemesterRequest represents the data needed to create a semester
type CreateSemesterRequest struct {
	Year int    `json:"year" binding:"required,min=1" example:"2026"`
	Term string `json:"term" binding:"required,oneof=FIRST SECOND" example:"FIRST" enums:"FIRST,SECOND"`
}

// SemesterResponse represents semester information
type SemesterResponse struct {
	ID   int64  `json:"id" example:"1"`
	Year int    `json:"year" example:"2026"`
	Term string `json:"term" example:"FIRST" enums:"FIRST,SECOND"`
}

// NewSemesterResponse maps a semester model to its response form.
func NewSemesterResponse(semester *models.Semester) SemesterResponse {
	return SemesterResponse{
		ID:   semester.ID,
		Year: semester.Year,
		Term: string(semester.Term),
	}
}

// NewSemesterListResponse maps a slice of semesters to response form.
func NewSemesterListResponse(semesters []*models.Semester) []SemesterResponse {
	responses := make([]SemesterResponse, 0, len(semesters))
	for _, s := range semesters {
		responses = append(responses, NewSemesterResponse(s))
	}
	return responses
}
