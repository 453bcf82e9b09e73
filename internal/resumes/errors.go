package resumes

import "errors"

var (
	// ErrNoRecord indicates the user has never saved a resume.
	ErrNoRecord = errors.New("no resume found")

	// ErrInvalidInput indicates a missing owner.
	ErrInvalidInput = errors.New("invalid input")
)
