package model

import "errors"

// Common errors used across the application
var (
	// Card errors
	ErrUnassignedCard        = errors.New("card is not assigned to a player")
	ErrDuplicateEnrollment   = errors.New("card is already enrolled")
	ErrSameRecipientAsSender = errors.New("recipient card is the same as sender")
	ErrInvalidIdentity       = errors.New("invalid card identity")

	// Registry errors
	ErrRegistryFull       = errors.New("all player slots are assigned")
	ErrSlotOutOfRange     = errors.New("player slot out of range")
	ErrInvalidPlayerCount = errors.New("invalid player count")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
)
