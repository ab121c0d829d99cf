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

func NewCustomerRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Create(ctx context.Context, c *model.Customer) (string, error) {
	const op = "repository.customer.Create"

	c.ID = uuid.NewString()
	if c.CreatedAt == nil || c.CreatedAt.IsZero() {
		c.CreatedAt = lo.ToPtr(time.Now())
	}

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(c)); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return c.ID, nil
}

func (r *repository) ByID(ctx context.Context, id string) (*model.Customer, error) {
	const op = "repository.customer.ByID"

	var ent CustomerEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) Update(ctx context.Context, c *model.Customer) error {
	const op = "repository.customer.Update"

	ent := EntityFromModel(c)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, ent)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrCustomerNotFound
	}

	return nil
}

func (r *repository) SetStatus(ctx context.Context, id string, status model.Status) error {
	const op = "repository.customer.SetStatus"

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrCustomerNotFound
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	filter model.CustomersFilter,
	pg model.Pagination,
) ([]*model.Customer, int64, error) {
	const op = "repository.customer.List"

	q := BuildMongoFilter(filter)
	pg = pg.Normalized()

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("%s count: %w", op, err)
	}

	cur, err := r.coll.Find(ctx, q, options.Find().
		SetSort(bson.D{{Key: "nomeRazaoSocial", Value: 1}}).
		SetSkip(pg.Skip()).
		SetLimit(int64(pg.Limit)),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*model.Customer, 0)
	for cur.Next(ctx) {
		var ent CustomerEntity
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
