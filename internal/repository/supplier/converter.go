package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/chwpym/autoreturns/internal/model"
)

func EntityToModel(e *SupplierEntity) *model.Supplier {
	if e == nil {
		return nil
	}

	return &model.Supplier{
		ID:        e.ID,
		LegalName: e.LegalName,
		TradeName: e.TradeName,
		TaxID:     e.TaxID,
		Status:    model.Status(e.Status),
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func EntityFromModel(s *model.Supplier) *SupplierEntity {
	if s == nil {
		return nil
	}

	return &SupplierEntity{
		ID:        s.ID,
		LegalName: s.LegalName,
		TradeName: s.TradeName,
		TaxID:     s.TaxID,
		Status:    string(s.Status),
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
	}
}

func BuildMongoFilter(f model.SuppliersFilter) bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = string(f.Status)
	}
	return q
}
