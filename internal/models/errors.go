package models

import "errors"

// Error taxonomy surfaced by the services. Handlers map these onto HTTP
// statuses with errors.Is; anything unmatched is treated as a storage
// failure.
var (
	ErrInvalidInput       = errors.New("validation fails")
	ErrPastDate           = errors.New("meetup date must be in the future")
	ErrMeetupNotFound     = errors.New("meetup not found")
	ErrNotOwner           = errors.New("user does not own this meetup")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
