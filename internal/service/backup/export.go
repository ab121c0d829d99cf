package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/chwpym/autoreturns/internal/backup"
	"github.com/chwpym/autoreturns/internal/model"
	"github.com/chwpym/autoreturns/pkg/logger"
)

// ExportJSON serializes every watched collection into one pretty-printed JSON
// document with identifiers inlined and timestamps tagged. Any fetch or
// encode error aborts the whole export; no partial file is produced.
func (s *service) ExportJSON(ctx context.Context) (*model.BackupFile, error) {
	const op = "backup.service.ExportJSON"

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	snap := make(backup.Snapshot, len(model.BackupCollections()))
	for _, collection := range model.BackupCollections() {
		docs, err := s.docs.ListAll(ctx, collection)
		if err != nil {
			logger.Error(ctx, "fetch collection for export",
				logger.String("collection", collection), logger.ErrorF(err))
			return nil, fmt.Errorf("%s %s: %w", op, collection, err)
		}

		records := make([]map[string]any, len(docs))
		for i, doc := range docs {
			records[i] = backup.TagID(doc.ID, doc.Body)
		}
		snap[collection] = records
	}

	data, err := backup.MarshalSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.markBackupDone(ctx)

	return &model.BackupFile{
		Name: fmt.Sprintf("backup_completo_%s.json", s.now().Format(filenameDateLayout)),
		MIME: mimeJSON,
		Data: data,
	}, nil
}

// ExportCSV renders one collection as a spreadsheet-ready CSV with the
// identifier as an explicit id column. An empty collection yields
// ErrNothingToExport and no file.
func (s *service) ExportCSV(ctx context.Context, collection string) (*model.BackupFile, error) {
	const op = "backup.service.ExportCSV"

	if !model.KnownCollection(collection) {
		return nil, model.ErrUnknownCollection
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	data, err := s.collectionCSV(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, collection, err)
	}

	return &model.BackupFile{
		Name: fmt.Sprintf("backup_%s_%s.csv", collection, s.now().Format(filenameDateLayout)),
		MIME: mimeCSV,
		Data: data,
	}, nil
}

// ExportArchive bundles one CSV per non-empty collection into a flat ZIP.
// With every collection empty there is nothing to bundle and
// ErrNothingToExport is returned.
func (s *service) ExportArchive(ctx context.Context) (*model.BackupFile, error) {
	const op = "backup.service.ExportArchive"

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	files := make([]backup.ArchiveFile, 0, len(model.BackupCollections()))
	for _, collection := range model.BackupCollections() {
		data, err := s.collectionCSV(ctx, collection)
		if err != nil {
			if errors.Is(err, model.ErrNothingToExport) {
				continue
			}
			return nil, fmt.Errorf("%s %s: %w", op, collection, err)
		}
		files = append(files, backup.ArchiveFile{Name: collection + ".csv", Data: data})
	}
	if len(files) == 0 {
		return nil, model.ErrNothingToExport
	}

	blob, err := backup.BuildArchive(files)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.markBackupDone(ctx)

	return &model.BackupFile{
		Name: fmt.Sprintf("backup_geral_%s.zip", s.now().Format(filenameDateLayout)),
		MIME: mimeZIP,
		Data: blob,
	}, nil
}

func (s *service) collectionCSV(ctx context.Context, collection string) ([]byte, error) {
	docs, err := s.docs.ListAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, model.ErrNothingToExport
	}

	records := make([]map[string]any, len(docs))
	for i, doc := range docs {
		flat := backup.Flatten(doc.Body)
		flat["id"] = doc.ID
		records[i] = flat
	}

	return backup.MarshalCSV(backup.HeaderOrder(records[0], "id"), records)
}

// markBackupDone bumps the advisory marker; the export itself already
// succeeded, so a failure here is only logged.
func (s *service) markBackupDone(ctx context.Context) {
	if err := s.state.SetLastBackup(ctx, s.now()); err != nil {
		logger.Warn(ctx, "failed to record last backup time", logger.ErrorF(err))
	}
}
