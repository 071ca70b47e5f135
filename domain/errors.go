package domain

import "errors"

var (
	// ErrTitleRequired rejects create/update input whose title is blank
	// after trimming. Nothing is written when it is returned.
	ErrTitleRequired = errors.New("title is required")

	// ErrNotFound means no sheet row matches the requested task.
	ErrNotFound = errors.New("task not found")
)
