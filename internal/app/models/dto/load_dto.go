package dto

import "github.com/selin/acadcore/internal/app/models"

// AssignTeacherLoadRequest represents a teacher's credit limit for a semester
type AssignTeacherLoadRequest struct {
	TeacherID  int64 `json:"teacherId" binding:"required,min=1" example:"5"`
	SemesterID int64 `json:"semesterId" binding:"required,min=1" example:"1"`
	MaxCredits int   `json:"maxCredits" binding:"required,min=1" example:"10"`
}

// AssignStudentLoadRequest represents a student's credit limit for a semester
type AssignStudentLoadRequest struct {
	StudentID  int64 `json:"studentId" binding:"required,min=1" example:"7"`
	SemesterID int64 `json:"semesterId" binding:"required,min=1" example:"1"`
	MaxCredits int   `json:"maxCredits" binding:"required,min=1" example:"20"`
}

// TeacherLoadResponse represents a teacher load record
type TeacherLoadResponse struct {
	ID         int64 `json:"id" example:"1"`
	TeacherID  int64 `json:"teacherId" example:"5"`
	SemesterID int64 `json:"semesterId" example:"1"`
	MaxCredits int   `json:"maxCredits" example:"10"`
}

// StudentLoadResponse represents a student load record
type StudentLoadResponse struct {
	ID         int64 `json:"id" example:"1"`
	StudentID  int64 `json:"studentId" example:"7"`
	SemesterID int64 `json:"semesterId" example:"1"`
	MaxCredits int   `json:"maxCredits" example:"20"`
}

// NewTeacherLoadResponse maps a teacher load model to its response form.
func NewTeacherLoadResponse(load *models.TeacherLoad) TeacherLoadResponse {
	return TeacherLoadResponse{
		ID:         load.ID,
		TeacherID:  load.TeacherID,
		SemesterID: load.SemesterID,
		MaxCredits: load.MaxCredits,
	}
}

// NewStudentLoadResponse maps a student load model to its response form.
func NewStudentLoadResponse(load *models.StudentLoad) StudentLoadResponse {
	return StudentLoadResponse{
		ID:         load.ID,
		StudentID:  load.StudentID,
		SemesterID: load.SemesterID,
		MaxCredits: load.MaxCredits,
	}
}
