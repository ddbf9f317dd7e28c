package models

// CourseOffering represents a teacher offering a course in a given semester.
// Unique on (course, semester, teacher) and immutable once created.
type CourseOffering struct {
	ID         int64 `json:"id" db:"id"`
	CourseID   int64 `json:"courseId" db:"course_id"`
	TeacherID  int64 `json:"teacherId" db:"teacher_id"`
	SemesterID int64 `json:"semesterId" db:"semester_id"`

	// Relations (populated when needed)
	Course   *Course   `json:"course,omitempty"`
	Teacher  *User     `json:"teacher,omitempty"`
	Semester *Semester `json:"semester,omitempty"`
}
