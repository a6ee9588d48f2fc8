package view

import "errors"

var (
	// ErrFetchFailed wraps any failure reported by a source.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrInvalidTransition is returned for LoadMore outside the all-employees view.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrTransitionInFlight is returned when a transition starts while another is running.
	ErrTransitionInFlight = errors.New("another transition is in progress")
)
