package models

import "fmt"

// Status is the lifecycle state of a project. It is the only mutable
// field on a Project.
type Status int

const (
	StatusActive Status = iota
	StatusFinished
)

// Statuses lists every status in board order (left-to-right columns).
var Statuses = []Status{StatusActive, StatusFinished}

// String returns the lowercase wire/storage form of the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Display returns the human-readable column title for the status.
func (s Status) Display() string {
	switch s {
	case StatusActive:
		return "Active Projects"
	case StatusFinished:
		return "Finished Projects"
	default:
		return s.String()
	}
}

// MarshalJSON encodes the status in its storage form so CLI JSON output
// stays readable and round-trips through ParseStatus.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// ParseStatus converts the storage form back into a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "active":
		return StatusActive, nil
	case "finished":
		return StatusFinished, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}
