package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/chwpym/autoreturns/internal/model"
)

func EntityToModel(e *TransactionEntity) *model.Transaction {
	if e == nil {
		return nil
	}

	out := &model.Transaction{
		ID:              e.ID,
		Kind:            model.TransactionKind(e.Kind),
		PartID:          e.PartID,
		PartDescription: e.PartDescription,
		Quantity:        e.Quantity,
		CustomerID:      e.CustomerID,
		CustomerName:    e.CustomerName,
		MechanicID:      e.MechanicID,
		MechanicName:    e.MechanicName,
		SaleDate:        e.SaleDate,
		TransactionDate: e.TransactionDate,
		SaleRequisition: e.SaleRequisition,
		Note:            e.Note,
	}

	switch out.Kind {
	case model.KindReturn:
		out.Return = &model.ReturnDetails{
			RequisitionAction: model.RequisitionAction(e.RequisitionAction),
		}
	case model.KindWarranty:
		out.Warranty = &model.WarrantyDetails{
			SupplierID:      e.SupplierID,
			SupplierName:    e.SupplierName,
			ReportedDefect:  e.ReportedDefect,
			OutboundInvoice: e.OutboundInvoice,
			InboundInvoice:  e.InboundInvoice,
			PartValue:       e.PartValue,
			ReturnAction:    model.ReturnAction(e.ReturnAction),
			CreditInvoice:   e.CreditInvoice,
		}
	}

	return out
}

func EntityFromModel(t *model.Transaction) *TransactionEntity {
	if t == nil {
		return nil
	}

	out := &TransactionEntity{
		ID:              t.ID,
		Kind:            string(t.Kind),
		PartID:          t.PartID,
		PartDescription: t.PartDescription,
		Quantity:        t.Quantity,
		CustomerID:      t.CustomerID,
		CustomerName:    t.CustomerName,
		MechanicID:      t.MechanicID,
		MechanicName:    t.MechanicName,
		SaleDate:        t.SaleDate,
		TransactionDate: t.TransactionDate,
		SaleRequisition: t.SaleRequisition,
		Note:            t.Note,
	}

	if t.Return != nil {
		out.RequisitionAction = string(t.Return.RequisitionAction)
	}
	if t.Warranty != nil {
		out.SupplierID = t.Warranty.SupplierID
		out.SupplierName = t.Warranty.SupplierName
		out.ReportedDefect = t.Warranty.ReportedDefect
		out.OutboundInvoice = t.Warranty.OutboundInvoice
		out.InboundInvoice = t.Warranty.InboundInvoice
		out.PartValue = t.Warranty.PartValue
		out.ReturnAction = string(t.Warranty.ReturnAction)
		out.CreditInvoice = t.Warranty.CreditInvoice
	}

	return out
}

func BuildMongoFilter(f model.TransactionsFilter) bson.M {
	q := bson.M{}

	if f.Kind != "" {
		q["tipoMovimentacao"] = string(f.Kind)
	}
	if f.PartID != "" {
		q["pecaId"] = f.PartID
	}
	if f.CustomerID != "" {
		q["clienteId"] = f.CustomerID
	}

	saleRange := bson.M{}
	if f.SaleFrom != nil {
		saleRange["$gte"] = *f.SaleFrom
	}
	if f.SaleTo != nil {
		saleRange["$lte"] = *f.SaleTo
	}
	if len(saleRange) > 0 {
		q["dataVenda"] = saleRange
	}

	return q
}
