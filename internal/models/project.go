package models

import "time"

// Project represents a single tracked project on the board.
// Projects are created through the store's add operation and only the
// Status field ever changes after creation (via the store's move operation).
type Project struct {
	ID          string
	Title       string
	Description string
	PeopleCount int
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
