package model

import "time"

type TransactionKind string

const (
	KindReturn   TransactionKind = "devolucao"
	KindWarranty TransactionKind = "garantia"
)

func (k TransactionKind) Valid() bool {
	return k == KindReturn || k == KindWarranty
}

type RequisitionAction string

const (
	RequisitionAltered RequisitionAction = "alterada"
	RequisitionDeleted RequisitionAction = "deletada"
)

type ReturnAction string

const (
	ReturnPending  ReturnAction = "pendente"
	ReturnApproved ReturnAction = "aprovado"
	ReturnRejected ReturnAction = "rejeitado"
)

func (a ReturnAction) Valid() bool {
	return a == ReturnPending || a == ReturnApproved || a == ReturnRejected
}

// Transaction is a part return or a warranty claim. The *Name fields are
// snapshots of the referenced records taken at creation time and are not kept
// in sync with later edits. Records are append-only; only the warranty
// return-action fields may be edited afterwards.
type Transaction struct {
	ID   string
	Kind TransactionKind

	PartID          string
	PartDescription string
	Quantity        int64

	CustomerID   string
	CustomerName string
	MechanicID   string
	MechanicName string

	SaleDate *time.Time
	// Server time at creation.
	TransactionDate    *time.Time
	SaleRequisition    string
	Note               string

	// Set when Kind == KindReturn.
	Return *ReturnDetails
	// Set when Kind == KindWarranty.
	Warranty *WarrantyDetails
}

type ReturnDetails struct {
	RequisitionAction RequisitionAction
}

type WarrantyDetails struct {
	SupplierID      string
	SupplierName    string
	ReportedDefect  string
	OutboundInvoice string
	InboundInvoice  string
	PartValue       float64
	ReturnAction    ReturnAction
	CreditInvoice   string
}

type TransactionsFilter struct {
	Kind       TransactionKind
	PartID     string
	CustomerID string
	SaleFrom   *time.Time
	SaleTo     *time.Time
}
