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

func NewTransactionRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Create(ctx context.Context, t *model.Transaction) (string, error) {
	const op = "repository.transaction.Create"

	t.ID = uuid.NewString()
	if t.TransactionDate == nil || t.TransactionDate.IsZero() {
		t.TransactionDate = lo.ToPtr(time.Now())
	}

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(t)); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return t.ID, nil
}

func (r *repository) ByID(ctx context.Context, id string) (*model.Transaction, error) {
	const op = "repository.transaction.ByID"

	var ent TransactionEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

// UpdateReturnAction is the only mutation supported after creation: the
// warranty follow-up fields.
func (r *repository) UpdateReturnAction(
	ctx context.Context,
	id string,
	action model.ReturnAction,
	creditInvoice string,
) error {
	const op = "repository.transaction.UpdateReturnAction"

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "tipoMovimentacao": string(model.KindWarranty)},
		bson.M{"$set": bson.M{
			"acaoRetorno":       string(action),
			"notaFiscalRetorno": creditInvoice,
		}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrTransactionNotFound
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	filter model.TransactionsFilter,
	pg model.Pagination,
) ([]*model.Transaction, int64, error) {
	const op = "repository.transaction.List"

	q := BuildMongoFilter(filter)
	pg = pg.Normalized()

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("%s count: %w", op, err)
	}

	cur, err := r.coll.Find(ctx, q, options.Find().
		SetSort(bson.D{{Key: "dataMovimentacao", Value: -1}}).
		SetSkip(pg.Skip()).
		SetLimit(int64(pg.Limit)),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*model.Transaction, 0)
	for cur.Next(ctx) {
		var ent TransactionEntity
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
