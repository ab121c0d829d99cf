package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/chwpym/autoreturns/internal/model"
)

func EntityToModel(e *PartEntity) *model.Part {
	if e == nil {
		return nil
	}

	return &model.Part{
		ID:          e.ID,
		Code:        e.Code,
		Description: e.Description,
		Status:      model.Status(e.Status),
		Note:        e.Note,
		CreatedAt:   e.CreatedAt,
	}
}

func EntityFromModel(p *model.Part) *PartEntity {
	if p == nil {
		return nil
	}

	return &PartEntity{
		ID:          p.ID,
		Code:        p.Code,
		Description: p.Description,
		Status:      string(p.Status),
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
	}
}

func BuildMongoFilter(f model.PartsFilter) bson.M {
	q := bson.M{}

	if f.Status != "" {
		q["status"] = string(f.Status)
	}
	if f.Code != "" {
		q["codigoPeca"] = bson.M{"$regex": f.Code, "$options": "i"}
	}

	return q
}
