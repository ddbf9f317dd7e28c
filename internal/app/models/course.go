package models

// Course represents a course in the catalog.
type Course struct {
	ID      int64  `json:"id" db:"id"`
	Code    string `json:"code" db:"code"`
	Name    string `json:"name" db:"name"`
	Credits int    `json:"credits" db:"credits"`

	// Prerequisites holds the courses that must be completed before this
	// one. Only direct edges are stored; cycles longer than one hop are
	// not detected.
	Prerequisites []*Course `json:"prerequisites,omitempty"`
}
