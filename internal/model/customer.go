package model

import "time"

type Status string

const (
	StatusActive   Status = "ativo"
	StatusInactive Status = "inativo"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Customer is a customer, a mechanic, or both. Records are never hard-deleted;
// flipping Status to inactive is the only supported removal.
type Customer struct {
	// Globally unique identifier, assigned by the store.
	ID string
	// Legal or full name. Required.
	Name string
	// Trade name / nickname.
	TradeName string
	// Role flags; at least one must be set.
	Type CustomerType
	Status Status
	Note   string
	// Timestamp when the record was created.
	CreatedAt *time.Time
}

type CustomerType struct {
	Customer bool
	Mechanic bool
}

func (t CustomerType) Empty() bool { return !t.Customer && !t.Mechanic }

type CustomersFilter struct {
	Status       Status
	OnlyCustomer bool
	OnlyMechanic bool
}
