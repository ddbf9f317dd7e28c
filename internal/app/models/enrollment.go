package models

// Enrollment binds a student to a course in a semester. Unique on
// (student, semester, course). Grade is nil until the offering's teacher
// assigns one; assigning again overwrites the previous value.
type Enrollment struct {
	ID         int64    `json:"id" db:"id"`
	StudentID  int64    `json:"studentId" db:"student_id"`
	SemesterID int64    `json:"semesterId" db:"semester_id"`
	CourseID   int64    `json:"courseId" db:"course_id"`
	Grade      *float64 `json:"grade,omitempty" db:"grade"`

	// Relations (populated when needed)
	Student  *User     `json:"student,omitempty"`
	Semester *Semester `json:"semester,omitempty"`
	Course   *Course   `json:"course,omitempty"`
}
