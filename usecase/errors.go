package usecase

import "errors"

var (
	// ErrUserNotFound signals an external identity with no user row.
	ErrUserNotFound = errors.New("user not found")

	// ErrUnknownParticipant signals that a send_message sender or receiver
	// could not be resolved; the relay drops the message silently.
	ErrUnknownParticipant = errors.New("unknown participant")

	// ErrFileNotFound signals an unknown attachment identity.
	ErrFileNotFound = errors.New("file not found")
)
