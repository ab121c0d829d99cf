package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/chwpym/autoreturns/internal/model"
)

func EntityToModel(e *CustomerEntity) *model.Customer {
	if e == nil {
		return nil
	}

	return &model.Customer{
		ID:        e.ID,
		Name:      e.Name,
		TradeName: e.TradeName,
		Type: model.CustomerType{
			Customer: e.Type.Customer,
			Mechanic: e.Type.Mechanic,
		},
		Status:    model.Status(e.Status),
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func EntityFromModel(c *model.Customer) *CustomerEntity {
	if c == nil {
		return nil
	}

	return &CustomerEntity{
		ID:        c.ID,
		Name:      c.Name,
		TradeName: c.TradeName,
		Type: CustomerTypeDoc{
			Customer: c.Type.Customer,
			Mechanic: c.Type.Mechanic,
		},
		Status:    string(c.Status),
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
	}
}

func BuildMongoFilter(f model.CustomersFilter) bson.M {
	q := bson.M{}

	if f.Status != "" {
		q["status"] = string(f.Status)
	}
	if f.OnlyCustomer {
		q["tipo.cliente"] = true
	}
	if f.OnlyMechanic {
		q["tipo.mecanico"] = true
	}

	return q
}
