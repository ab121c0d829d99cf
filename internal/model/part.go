package model

import "time"

type Part struct {
	// Globally unique identifier, assigned by the store.
	ID string
	// Manufacturer part code. Required.
	Code string
	// Human-readable description. Required.
	Description string
	Status      Status
	Note        string
	// Timestamp when the record was created.
	CreatedAt *time.Time
}

type PartsFilter struct {
	Status Status
	// Case-insensitive substring match on the part code.
	Code string
}
