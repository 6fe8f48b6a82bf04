package core

import "errors"

var (
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomExists           = errors.New("room already exists")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidLink          = errors.New("invalid conversation link")
	ErrInvariantViolation   = errors.New("room invariant violated")

	// ErrVersionConflict is returned by stores when the stored version moved.
	ErrVersionConflict = errors.New("version conflict")
	// ErrConflict means conflict retries were exhausted.
	ErrConflict     = errors.New("conflict")
	ErrStoreTimeout = errors.New("store timeout")
	ErrStore        = errors.New("store error")
)
