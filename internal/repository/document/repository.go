// Package repository provides raw, schema-free access to whole collections.
// The backup and restore pipeline works on documents as they are stored,
// without going through the typed entity repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/chwpym/autoreturns/internal/model"
)

type repository struct {
	db *mongo.Database
}

func NewDocumentRepository(db *mongo.Database) *repository {
	return &repository{db: db}
}

func (r *repository) ListAll(ctx context.Context, collection string) ([]model.RawDocument, error) {
	const op = "repository.document.ListAll"

	cur, err := r.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, collection, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]model.RawDocument, 0)
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s %s decode: %w", op, collection, err)
		}

		body := Normalize(raw).(map[string]any)
		id, _ := body["_id"].(string)
		delete(body, "_id")

		out = append(out, model.RawDocument{ID: id, Body: body})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s %s cursor: %w", op, collection, err)
	}

	return out, nil
}

// Insert writes a new document under a fresh store-assigned identifier. Any
// caller-supplied id in the body is ignored.
func (r *repository) Insert(ctx context.Context, collection string, body map[string]any) (string, error) {
	const op = "repository.document.Insert"

	doc := make(bson.M, len(body)+1)
	for key, value := range body {
		doc[key] = value
	}
	doc["_id"] = uuid.NewString()

	if _, err := r.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("%s %s: %w", op, collection, err)
	}

	return doc["_id"].(string), nil
}

// BulkUpsert applies every write inside one transaction; either all documents
// land or none do.
func (r *repository) BulkUpsert(ctx context.Context, writes []model.DocumentWrite) error {
	const op = "repository.document.BulkUpsert"

	if len(writes) == 0 {
		return nil
	}

	sess, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("%s session: %w", op, err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(ctx context.Context) (any, error) {
		for _, w := range writes {
			doc := make(bson.M, len(w.Body)+1)
			for key, value := range w.Body {
				doc[key] = value
			}
			doc["_id"] = w.ID

			_, err := r.db.Collection(w.Collection).ReplaceOne(ctx,
				bson.M{"_id": w.ID},
				doc,
				options.Replace().SetUpsert(true),
			)
			if err != nil {
				return nil, fmt.Errorf("upsert %s/%s: %w", w.Collection, w.ID, err)
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
