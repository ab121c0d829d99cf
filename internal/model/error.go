package model

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrValidation      = errors.New("validation failed")

	ErrCustomerNotFound    = errors.New("customer not found")
	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrPartNotFound        = errors.New("part not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrReferenceNotFound marks a transaction save that points to a
	// customer, mechanic, part or supplier that is not in the store.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// ErrNothingToExport is returned when an export target holds no records.
	ErrNothingToExport = errors.New("nothing to export")

	// ErrMalformedFile marks an uploaded backup file that could not be parsed.
	ErrMalformedFile = errors.New("file may be corrupted or malformed")

	// ErrUnknownCollection marks an import aimed at a collection that is not
	// part of the backup set.
	ErrUnknownCollection = errors.New("unknown collection")
)
