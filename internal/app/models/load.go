package models

// TeacherLoad is the credit ceiling for a teacher's offerings in one
// semester. Unique on (teacher, semester); created once, never updated.
type TeacherLoad struct {
	ID         int64 `json:"id" db:"id"`
	TeacherID  int64 `json:"teacherId" db:"teacher_id"`
	SemesterID int64 `json:"semesterId" db:"semester_id"`
	MaxCredits int   `json:"maxCredits" db:"max_credits"`
}

// StudentLoad is the credit ceiling for a student's enrollments in one
// semester. Unique on (student, semester); created once, never updated.
type StudentLoad struct {
	ID         int64 `json:"id" db:"id"`
	StudentID  int64 `json:"studentId" db:"student_id"`
	SemesterID int64 `json:"semesterId" db:"semester_id"`
	MaxCredits int   `json:"maxCredits" db:"max_credits"`
}
