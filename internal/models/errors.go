package models

import "errors"

// Domain-specific errors shared across packages
var (
	// ErrUnknownStatus indicates a status string that is neither "active" nor "finished"
	ErrUnknownStatus = errors.New("unknown project status")

	// ErrProjectNotFound indicates a lookup by id that matched nothing
	ErrProjectNotFound = errors.New("project not found")
)
