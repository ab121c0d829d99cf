package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/chwpym/autoreturns/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewSupplierRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Create(ctx context.Context, s *model.Supplier) (string, error) {
	const op = "repository.supplier.Create"

	s.ID = uuid.NewString()
	if s.CreatedAt == nil || s.CreatedAt.IsZero() {
		s.CreatedAt = lo.ToPtr(time.Now())
	}

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(s)); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.ID, nil
}

func (r *repository) ByID(ctx context.Context, id string) (*model.Supplier, error) {
	const op = "repository.supplier.ByID"

	var ent SupplierEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) Update(ctx context.Context, s *model.Supplier) error {
	const op = "repository.supplier.Update"

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, EntityFromModel(s))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrSupplierNotFound
	}

	return nil
}

func (r *repository) SetStatus(ctx context.Context, id string, status model.Status) error {
	const op = "repository.supplier.SetStatus"

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrSupplierNotFound
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	filter model.SuppliersFilter,
	pg model.Pagination,
) ([]*model.Supplier, int64, error) {
	const op = "repository.supplier.List"

	q := BuildMongoFilter(filter)
	pg = pg.Normalized()

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("%s count: %w", op, err)
	}

	cur, err := r.coll.Find(ctx, q, options.Find().
		SetSort(bson.D{{Key: "razaoSocial", Value: 1}}).
		SetSkip(pg.Skip()).
		SetLimit(int64(pg.Limit)),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*model.Supplier, 0)
	for cur.Next(ctx) {
		var ent SupplierEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, 0, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, total, nil
}
