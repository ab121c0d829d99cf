package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/chwpym/autoreturns/internal/backup"
	"github.com/chwpym/autoreturns/internal/model"
	"github.com/chwpym/autoreturns/pkg/logger"
)

// Required column per collection for CSV rows. Transactions have no required
// column on import.
var requiredColumn = map[string]string{
	model.CollectionCustomers: "nomeRazaoSocial",
	model.CollectionSuppliers: "razaoSocial",
	model.CollectionParts:     "codigoPeca",
}

// RestoreJSON replays a full JSON backup into the store. Identifiers from the
// file are reused verbatim and every write belongs to one atomic batch: the
// restore either applies completely or not at all.
func (s *service) RestoreJSON(ctx context.Context, data []byte) (int, error) {
	const op = "backup.service.RestoreJSON"

	snap, err := backup.UnmarshalSnapshot(data)
	if err != nil {
		logger.Error(ctx, "parse backup file", logger.ErrorF(err))
		return 0, errors.Join(model.ErrMalformedFile, err)
	}

	for collection := range snap {
		if !model.KnownCollection(collection) {
			return 0, errors.Join(model.ErrUnknownCollection, fmt.Errorf("%q", collection))
		}
	}

	writes := make([]model.DocumentWrite, 0)
	for _, collection := range model.BackupCollections() {
		for _, record := range snap[collection] {
			id, body, err := backup.SplitID(record)
			if err != nil {
				return 0, errors.Join(model.ErrMalformedFile, fmt.Errorf("%s: %w", collection, err))
			}
			writes = append(writes, model.DocumentWrite{Collection: collection, ID: id, Body: body})
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	if err := s.docs.BulkUpsert(ctx, writes); err != nil {
		logger.Error(ctx, "restore batch write", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "backup restored", logger.Int("records", len(writes)))
	return len(writes), nil
}

// ImportCSV adds rows of an uploaded CSV to one collection. Rows are handled
// independently and concurrently; a bad row is skipped and counted, never
// aborting the rest. Identifiers from the file are always discarded.
func (s *service) ImportCSV(
	ctx context.Context,
	collection string,
	data []byte,
) (model.ImportSummary, error) {
	const op = "backup.service.ImportCSV"

	if !model.KnownCollection(collection) {
		return model.ImportSummary{}, model.ErrUnknownCollection
	}

	rows, err := backup.UnmarshalCSV(data)
	if err != nil {
		logger.Error(ctx, "parse csv file", logger.ErrorF(err))
		return model.ImportSummary{}, errors.Join(model.ErrMalformedFile, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	// One result slot per row; each goroutine settles exactly its own, so the
	// final reduction cannot lose updates.
	results := make([]bool, len(rows))
	var wg sync.WaitGroup
	for i, row := range rows {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.importRow(ctx, collection, row); err != nil {
				logger.Warn(ctx, "csv row skipped",
					logger.String("collection", collection),
					logger.Int("row", i+1),
					logger.ErrorF(err),
				)
				return
			}
			results[i] = true
		}()
	}
	wg.Wait()

	added := lo.CountBy(results, func(ok bool) bool { return ok })
	summary := model.ImportSummary{Added: added, Skipped: len(rows) - added}

	logger.Info(ctx, "csv import finished",
		logger.String("collection", collection),
		logger.Int("added", summary.Added),
		logger.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

func (s *service) importRow(ctx context.Context, collection string, row map[string]string) error {
	if column, ok := requiredColumn[collection]; ok {
		if strings.TrimSpace(row[column]) == "" {
			return fmt.Errorf("%w: missing %s", model.ErrValidation, column)
		}
	}

	_, err := s.docs.Insert(ctx, collection, reshapeRow(row))
	return err
}

// reshapeRow turns a CSV row into a document body: the id column is dropped
// (the store assigns a fresh identifier) and the flattened customer type
// flags collapse back into a nested tipo object with boolean values.
func reshapeRow(row map[string]string) map[string]any {
	body := make(map[string]any, len(row))
	tipo := make(map[string]any)

	for key, value := range row {
		switch key {
		case "id":
			// Never reuse identifiers coming from a CSV file.
		case "tipo.cliente":
			tipo["cliente"] = value == "true"
		case "tipo.mecanico":
			tipo["mecanico"] = value == "true"
		default:
			body[key] = value
		}
	}
	if len(tipo) > 0 {
		body["tipo"] = tipo
	}

	return body
}
