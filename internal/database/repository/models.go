package repository

import "time"

// Image represents an images row.
type Image struct {
	ID         string
	Title      *string
	ImageURL   *string
	SortOrder  int
	SourceHash *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Setting represents one persisted object property.
type Setting struct {
	Object    string
	Property  string
	Value     string
	UpdatedAt time.Time
}
