package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStudent RoleType = "STUDENT"
	RoleTeacher RoleType = "TEACHER"
)

// IsValid reports whether the role is one of the known roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleTeacher:
		return true
	}
	return false
}

// Term represents a semester term
type Term string

// Term constants
const (
	TermFirst  Term = "FIRST"
	TermSecond Term = "SECOND"
)

// IsValid reports whether the term is one of the known terms.
func (t Term) IsValid() bool {
	switch t {
	case TermFirst, TermSecond:
		return true
	}
	return false
}
