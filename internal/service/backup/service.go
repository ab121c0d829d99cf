// Package service orchestrates the backup and restore pipeline: exporting the
// watched collections to JSON, CSV, and ZIP artifacts and importing uploaded
// files back into the store.
package service

import (
	"context"
	"time"

	"github.com/chwpym/autoreturns/internal/model"
)

const (
	mimeJSON = "application/json"
	mimeCSV  = "text/csv"
	mimeZIP  = "application/zip"

	filenameDateLayout = "2006-01-02"
)

type DocumentRepository interface {
	ListAll(ctx context.Context, collection string) ([]model.RawDocument, error)
	Insert(ctx context.Context, collection string, body map[string]any) (string, error)
	BulkUpsert(ctx context.Context, writes []model.DocumentWrite) error
}

type BackupStateRepository interface {
	LastBackup(ctx context.Context) (*time.Time, error)
	SetLastBackup(ctx context.Context, at time.Time) error
}

type service struct {
	docs      DocumentRepository
	state     BackupStateRepository
	opTimeout time.Duration
	now       func() time.Time
}

func NewBackupService(
	docs DocumentRepository,
	state BackupStateRepository,
	opTimeout time.Duration,
) *service {
	return &service{
		docs:      docs,
		state:     state,
		opTimeout: opTimeout,
		now:       time.Now,
	}
}

// LastBackup reports the advisory staleness marker; nil means no backup was
// ever taken.
func (s *service) LastBackup(ctx context.Context) (*time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	return s.state.LastBackup(ctx)
}
