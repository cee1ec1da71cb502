package bot

import "errors"

var (
	// ErrEventText indicates the inbound event is missing its text field.
	ErrEventText = errors.New("event is missing text")
	// ErrEventChannel indicates the inbound event is missing its channel field.
	ErrEventChannel = errors.New("event is missing channel")
)
