package model

import "time"

type Supplier struct {
	// Globally unique identifier, assigned by the store.
	ID string
	// Legal name. Required.
	LegalName string
	// Trade name.
	TradeName string
	// Tax identifier (CNPJ), 14 to 18 characters. Required.
	TaxID  string
	Status Status
	Note   string
	// Timestamp when the record was created.
	CreatedAt *time.Time
}

type SuppliersFilter struct {
	Status Status
}
