package v1

import (
	"time"

	"github.com/chwpym/autoreturns/internal/model"
)

type createdResponse struct {
	ID string `json:"id"`
}

type returnActionRequest struct {
	Action        string `json:"acaoRetorno"`
	CreditInvoice string `json:"notaFiscalRetorno"`
}

type returnDetailsDTO struct {
	RequisitionAction string `json:"acaoRequisicao"`
}

type warrantyDetailsDTO struct {
	SupplierID      string  `json:"fornecedorId"`
	SupplierName    string  `json:"nomeFornecedor,omitempty"`
	ReportedDefect  string  `json:"defeitoRelatado,omitempty"`
	OutboundInvoice string  `json:"notaFiscalSaida,omitempty"`
	InboundInvoice  string  `json:"notaFiscalEntrada,omitempty"`
	PartValue       float64 `json:"valorPeca,omitempty"`
	ReturnAction    string  `json:"acaoRetorno,omitempty"`
	CreditInvoice   string  `json:"notaFiscalRetorno,omitempty"`
}

type transactionRequest struct {
	Kind            string              `json:"tipoMovimentacao"`
	PartID          string              `json:"pecaId"`
	Quantity        int64               `json:"quantidade"`
	CustomerID      string              `json:"clienteId"`
	MechanicID      string              `json:"mecanicoId"`
	SaleDate        *time.Time          `json:"dataVenda"`
	SaleRequisition string              `json:"requisicaoVenda"`
	Note            string              `json:"observacao"`
	Return          *returnDetailsDTO   `json:"devolucao"`
	Warranty        *warrantyDetailsDTO `json:"garantia"`
}

func (req transactionRequest) toModel() *model.Transaction {
	tr := &model.Transaction{
		Kind:            model.TransactionKind(req.Kind),
		PartID:          req.PartID,
		Quantity:        req.Quantity,
		CustomerID:      req.CustomerID,
		MechanicID:      req.MechanicID,
		SaleDate:        req.SaleDate,
		SaleRequisition: req.SaleRequisition,
		Note:            req.Note,
	}

	if req.Return != nil {
		tr.Return = &model.ReturnDetails{
			RequisitionAction: model.RequisitionAction(req.Return.RequisitionAction),
		}
	}
	if req.Warranty != nil {
		tr.Warranty = &model.WarrantyDetails{
			SupplierID:      req.Warranty.SupplierID,
			ReportedDefect:  req.Warranty.ReportedDefect,
			OutboundInvoice: req.Warranty.OutboundInvoice,
			InboundInvoice:  req.Warranty.InboundInvoice,
			PartValue:       req.Warranty.PartValue,
			ReturnAction:    model.ReturnAction(req.Warranty.ReturnAction),
		}
	}

	return tr
}

type transactionResponse struct {
	ID              string              `json:"id"`
	Kind            string              `json:"tipoMovimentacao"`
	PartID          string              `json:"pecaId"`
	PartDescription string              `json:"descricaoPeca,omitempty"`
	Quantity        int64               `json:"quantidade"`
	CustomerID      string              `json:"clienteId"`
	CustomerName    string              `json:"nomeCliente,omitempty"`
	MechanicID      string              `json:"mecanicoId,omitempty"`
	MechanicName    string              `json:"nomeMecanico,omitempty"`
	SaleDate        *time.Time          `json:"dataVenda,omitempty"`
	TransactionDate *time.Time          `json:"dataMovimentacao,omitempty"`
	SaleRequisition string              `json:"requisicaoVenda,omitempty"`
	Note            string              `json:"observacao,omitempty"`
	Return          *returnDetailsDTO   `json:"devolucao,omitempty"`
	Warranty        *warrantyDetailsDTO `json:"garantia,omitempty"`
}

func transactionToResponse(tr *model.Transaction) transactionResponse {
	res := transactionResponse{
		ID:              tr.ID,
		Kind:            string(tr.Kind),
		PartID:          tr.PartID,
		PartDescription: tr.PartDescription,
		Quantity:        tr.Quantity,
		CustomerID:      tr.CustomerID,
		CustomerName:    tr.CustomerName,
		MechanicID:      tr.MechanicID,
		MechanicName:    tr.MechanicName,
		SaleDate:        tr.SaleDate,
		TransactionDate: tr.TransactionDate,
		SaleRequisition: tr.SaleRequisition,
		Note:            tr.Note,
	}

	if tr.Return != nil {
		res.Return = &returnDetailsDTO{
			RequisitionAction: string(tr.Return.RequisitionAction),
		}
	}
	if tr.Warranty != nil {
		res.Warranty = &warrantyDetailsDTO{
			SupplierID:      tr.Warranty.SupplierID,
			SupplierName:    tr.Warranty.SupplierName,
			ReportedDefect:  tr.Warranty.ReportedDefect,
			OutboundInvoice: tr.Warranty.OutboundInvoice,
			InboundInvoice:  tr.Warranty.InboundInvoice,
			PartValue:       tr.Warranty.PartValue,
			ReturnAction:    string(tr.Warranty.ReturnAction),
			CreditInvoice:   tr.Warranty.CreditInvoice,
		}
	}

	return res
}

type pagedResponse struct {
	Items []transactionResponse `json:"items"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

func pagedTransactionsToResponse(p *model.Paged[*model.Transaction]) pagedResponse {
	items := make([]transactionResponse, len(p.Items))
	for i, tr := range p.Items {
		items[i] = transactionToResponse(tr)
	}
	return pagedResponse{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit}
}
