package conversation

import "errors"

var (
	ErrEmptyMessage    = errors.New("conversation: message is empty")
	ErrBusy            = errors.New("conversation: a turn is already in progress")
	ErrTurnCancelled   = errors.New("conversation: turn cancelled")
	ErrClosed          = errors.New("conversation: session closed")
	ErrMessageNotFound = errors.New("conversation: message not found")
	ErrButtonNotFound  = errors.New("conversation: button not found")
	ErrInvalidFeedback = errors.New("conversation: feedback must be positive or negative")
)
