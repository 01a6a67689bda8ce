package app

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when an operation references a profile id
	// that is not in the directory.
	ErrNotFound = errors.New("profile not found")

	// ErrEmptyMessage is returned by Submit for blank input.
	ErrEmptyMessage = errors.New("empty message")

	// ErrReplyPending is returned by Submit while an assistant reply is
	// still scheduled. One outstanding reply per conversation.
	ErrReplyPending = errors.New("reply already pending")

	// ErrConversationClosed is returned by Submit after Close.
	ErrConversationClosed = errors.New("conversation closed")
)

// ValidationError lists the profile fields that failed validation. The
// directory is left untouched when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile fields: %s", strings.Join(e.Fields, ", "))
}
