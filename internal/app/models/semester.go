package models

// Semester represents an academic semester, unique on (year, term).
// Semesters are immutable once created.
type Semester struct {
	ID   int64 `json:"id" db:"id"`
	Year int   `json:"year" db:"year"`
	Term Term  `json:"term" db:"term"`
}
