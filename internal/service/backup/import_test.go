package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chwpym/autoreturns/internal/model"
	"github.com/chwpym/autoreturns/internal/service/mocks"
)

func TestServiceRestoreJSON(t *testing.T) {
	t.Parallel()

	type deps struct {
		docs  *mocks.MockDocumentRepository
		state *mocks.MockBackupStateRepository
	}

	tests := []struct {
		name   string
		data   []byte
		setup  func(d deps)
		assert func(t *testing.T, count int, err error, d deps)
	}{
		{
			name:  "malformed json is rejected before any write",
			data:  []byte(`{"clientes": [`),
			setup: func(d deps) {},
			assert: func(t *testing.T, count int, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrMalformedFile)
				assert.Zero(t, count)

				d.docs.AssertNotCalled(t, "BulkUpsert", mock.Anything, mock.Anything)
			},
		},
		{
			name:  "unknown collection in the file is rejected",
			data:  []byte(`{"usuarios": []}`),
			setup: func(d deps) {},
			assert: func(t *testing.T, count int, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrUnknownCollection)
				assert.ErrorContains(t, err, "usuarios")

				d.docs.AssertNotCalled(t, "BulkUpsert", mock.Anything, mock.Anything)
			},
		},
		{
			name:  "record without an identifier is rejected",
			data:  []byte(`{"clientes": [{"nomeRazaoSocial": "Maria Souza"}]}`),
			setup: func(d deps) {},
			assert: func(t *testing.T, count int, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrMalformedFile)

				d.docs.AssertNotCalled(t, "BulkUpsert", mock.Anything, mock.Anything)
			},
		},
		{
			name: "keeps the identifier and decodes tagged timestamps",
			data: []byte(`{
				"clientes": [{
					"_id": "xyz",
					"nomeRazaoSocial": "Maria Souza",
					"dataCadastro": {"_type": "timestamp", "value": "2024-01-31T23:59:59.123Z"}
				}],
				"pecas": [{"_id": "p1", "codigoPeca": "FLT-001"}]
			}`),
			setup: func(d deps) {
				wantRegistered := time.Date(2024, 1, 31, 23, 59, 59, 123_000_000, time.UTC)

				d.docs.
					On("BulkUpsert", mock.Anything, mock.MatchedBy(func(writes []model.DocumentWrite) bool {
						if len(writes) != 2 {
							return false
						}
						customer := writes[0]
						if customer.Collection != model.CollectionCustomers || customer.ID != "xyz" {
							return false
						}
						if _, hasID := customer.Body["_id"]; hasID {
							return false
						}
						ts, ok := customer.Body["dataCadastro"].(time.Time)
						if !ok || !ts.Equal(wantRegistered) {
							return false
						}
						part := writes[1]
						return part.Collection == model.CollectionParts && part.ID == "p1"
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, count int, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, 2, count)
			},
		},
		{
			name: "batch write failure restores nothing",
			data: []byte(`{"clientes": [{"_id": "c1", "nomeRazaoSocial": "Maria Souza"}]}`),
			setup: func(d deps) {
				d.docs.
					On("BulkUpsert", mock.Anything, mock.Anything).
					Return(errors.New("transaction aborted")).
					Once()
			},
			assert: func(t *testing.T, count int, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "transaction aborted")
				assert.Zero(t, count)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				docs:  mocks.NewMockDocumentRepository(t),
				state: mocks.NewMockBackupStateRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newTestService(d.docs, d.state)

			count, err := svc.RestoreJSON(context.Background(), tt.data)
			tt.assert(t, count, err, d)
		})
	}
}

func TestServiceImportCSV(t *testing.T) {
	t.Parallel()

	type deps struct {
		docs  *mocks.MockDocumentRepository
		state *mocks.MockBackupStateRepository
	}

	customersCSV := []byte("id,nomeRazaoSocial,tipo.cliente,tipo.mecanico\n" +
		"old-1,Maria Souza,true,false\n" +
		"old-2,,true,false\n" +
		"old-3,Jose Lima,false,true\n")

	tests := []struct {
		name       string
		collection string
		data       []byte
		setup      func(d deps)
		assert     func(t *testing.T, res model.ImportSummary, err error, d deps)
	}{
		{
			name:       "unknown collection is rejected up front",
			collection: "usuarios",
			data:       customersCSV,
			setup:      func(d deps) {},
			assert: func(t *testing.T, res model.ImportSummary, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrUnknownCollection)

				d.docs.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:       "empty file has no header to read",
			collection: model.CollectionCustomers,
			data:       []byte(""),
			setup:      func(d deps) {},
			assert: func(t *testing.T, res model.ImportSummary, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrMalformedFile)
			},
		},
		{
			name:       "invalid rows are skipped, not fatal",
			collection: model.CollectionCustomers,
			data:       customersCSV,
			setup: func(d deps) {
				d.docs.
					On("Insert", mock.Anything, model.CollectionCustomers, mock.MatchedBy(func(body map[string]any) bool {
						_, hasID := body["id"]
						return !hasID && body["nomeRazaoSocial"] != ""
					})).
					Return(uuid.NewString(), nil).
					Twice()
			},
			assert: func(t *testing.T, res model.ImportSummary, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, model.ImportSummary{Added: 2, Skipped: 1}, res)
			},
		},
		{
			name:       "type flags collapse back into a nested object",
			collection: model.CollectionCustomers,
			data: []byte("id,nomeRazaoSocial,tipo.cliente,tipo.mecanico\n" +
				"old-1,Maria Souza,true,false\n"),
			setup: func(d deps) {
				d.docs.
					On("Insert", mock.Anything, model.CollectionCustomers, mock.MatchedBy(func(body map[string]any) bool {
						tipo, ok := body["tipo"].(map[string]any)
						if !ok {
							return false
						}
						return tipo["cliente"] == true && tipo["mecanico"] == false
					})).
					Return(uuid.NewString(), nil).
					Once()
			},
			assert: func(t *testing.T, res model.ImportSummary, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, model.ImportSummary{Added: 1, Skipped: 0}, res)
			},
		},
		{
			name:       "store failure counts the row as skipped",
			collection: model.CollectionParts,
			data: []byte("codigoPeca,descricao\n" +
				"FLT-001,Filtro de oleo\n" +
				"FLT-002,Filtro de ar\n"),
			setup: func(d deps) {
				d.docs.
					On("Insert", mock.Anything, model.CollectionParts, mock.MatchedBy(func(body map[string]any) bool {
						return body["codigoPeca"] == "FLT-001"
					})).
					Return("", errors.New("db write failed")).
					Once()
				d.docs.
					On("Insert", mock.Anything, model.CollectionParts, mock.MatchedBy(func(body map[string]any) bool {
						return body["codigoPeca"] == "FLT-002"
					})).
					Return(uuid.NewString(), nil).
					Once()
			},
			assert: func(t *testing.T, res model.ImportSummary, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, model.ImportSummary{Added: 1, Skipped: 1}, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				docs:  mocks.NewMockDocumentRepository(t),
				state: mocks.NewMockBackupStateRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newTestService(d.docs, d.state)

			res, err := svc.ImportCSV(context.Background(), tt.collection, tt.data)
			tt.assert(t, res, err, d)
		})
	}
}
