package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/chwpym/autoreturns/internal/model"
)

// repository holds the singleton documents: the company profile and the
// advisory last-backup marker. Both live at fixed identifiers.
type repository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Company(ctx context.Context) (*model.Company, error) {
	const op = "repository.settings.Company"

	var ent CompanyEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": companyDocID}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &model.Company{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.Company{
		Name:    ent.Name,
		Address: ent.Address,
		Phone:   ent.Phone,
		Email:   ent.Email,
		Website: ent.Website,
		TaxID:   ent.TaxID,
		LogoURL: ent.LogoURL,
	}, nil
}

// SaveCompany merges at the field level: only non-empty incoming fields are
// written, so a partial save never wipes stored values.
func (r *repository) SaveCompany(ctx context.Context, c *model.Company) error {
	const op = "repository.settings.SaveCompany"

	set := bson.M{}
	for field, value := range map[string]string{
		"nome":     c.Name,
		"endereco": c.Address,
		"telefone": c.Phone,
		"email":    c.Email,
		"site":     c.Website,
		"cnpj":     c.TaxID,
		"logoUrl":  c.LogoURL,
	} {
		if value != "" {
			set[field] = value
		}
	}
	if len(set) == 0 {
		return nil
	}

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": companyDocID},
		bson.M{"$set": set},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) LastBackup(ctx context.Context) (*time.Time, error) {
	const op = "repository.settings.LastBackup"

	var ent backupStateEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": backupDocID}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ent.LastBackup, nil
}

// SetLastBackup is last-writer-wins; the marker is advisory only.
func (r *repository) SetLastBackup(ctx context.Context, at time.Time) error {
	const op = "repository.settings.SetLastBackup"

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": backupDocID},
		bson.M{"$set": bson.M{"lastBackup": at}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
