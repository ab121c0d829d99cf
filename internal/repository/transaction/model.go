package repository

import "time"

// TransactionEntity stores both variants in one flat document; the
// tipoMovimentacao tag tells which of the optional field groups is live.
type TransactionEntity struct {
	ID   string `bson:"_id"`
	Kind string `bson:"tipoMovimentacao"`

	PartID          string `bson:"pecaId"`
	PartDescription string `bson:"descricaoPeca"`
	Quantity        int64  `bson:"quantidade"`

	CustomerID   string `bson:"clienteId"`
	CustomerName string `bson:"nomeCliente"`
	MechanicID   string `bson:"mecanicoId,omitempty"`
	MechanicName string `bson:"nomeMecanico,omitempty"`

	SaleDate        *time.Time `bson:"dataVenda,omitempty"`
	TransactionDate *time.Time `bson:"dataMovimentacao"`
	SaleRequisition string     `bson:"requisicaoVenda,omitempty"`
	Note            string     `bson:"observacao,omitempty"`

	// Return variant.
	RequisitionAction string `bson:"acaoRequisicao,omitempty"`

	// Warranty variant.
	SupplierID      string  `bson:"fornecedorId,omitempty"`
	SupplierName    string  `bson:"nomeFornecedor,omitempty"`
	ReportedDefect  string  `bson:"defeitoRelatado,omitempty"`
	OutboundInvoice string  `bson:"notaFiscalSaida,omitempty"`
	InboundInvoice  string  `bson:"notaFiscalEntrada,omitempty"`
	PartValue       float64 `bson:"valorPeca,omitempty"`
	ReturnAction    string  `bson:"acaoRetorno,omitempty"`
	CreditInvoice   string  `bson:"notaFiscalRetorno,omitempty"`
}
