package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chwpym/autoreturns/internal/model"
	"github.com/chwpym/autoreturns/internal/service/mocks"
)

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockCustomerRepository
	}

	customerID := gofakeit.UUID()

	tests := []struct {
		name     string
		customer *model.Customer
		setup    func(d deps)
		assert   func(t *testing.T, id string, err error, d deps)
	}{
		{
			name:     "validation error: blank name",
			customer: &model.Customer{Name: "   ", Type: model.CustomerType{Customer: true}},
			setup:    func(d deps) {},
			assert: func(t *testing.T, id string, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.ErrorContains(t, err, "name is required")
				assert.Empty(t, id)

				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name:     "validation error: no type flag set",
			customer: &model.Customer{Name: gofakeit.Name()},
			setup:    func(d deps) {},
			assert: func(t *testing.T, id string, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.ErrorContains(t, err, "type flag")
				assert.Empty(t, id)
			},
		},
		{
			name:     "repository error is wrapped",
			customer: &model.Customer{Name: gofakeit.Name(), Type: model.CustomerType{Mechanic: true}},
			setup: func(d deps) {
				d.repository.
					On("Create", mock.Anything, mock.Anything).
					Return("", errors.New("db write failed")).
					Once()
			},
			assert: func(t *testing.T, id string, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "db write failed")
				assert.Empty(t, id)
			},
		},
		{
			name: "success: trims the name and defaults status to active",
			customer: &model.Customer{
				Name: "  Maria Souza  ",
				Type: model.CustomerType{Customer: true, Mechanic: true},
			},
			setup: func(d deps) {
				d.repository.
					On("Create", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
						return c.Name == "Maria Souza" && c.Status == model.StatusActive
					})).
					Return(customerID, nil).
					Once()
			},
			assert: func(t *testing.T, id string, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, customerID, id)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockCustomerRepository(t)}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := NewCustomerService(d.repository, time.Second)

			id, err := svc.Create(context.Background(), tt.customer)
			tt.assert(t, id, err, d)
		})
	}
}

func TestServiceByID(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockCustomerRepository
	}

	customerID := gofakeit.UUID()
	wantCustomer := &model.Customer{
		ID:     customerID,
		Name:   gofakeit.Name(),
		Type:   model.CustomerType{Customer: true},
		Status: model.StatusActive,
	}

	tests := []struct {
		name       string
		customerID string
		setup      func(d deps)
		assert     func(t *testing.T, res *model.Customer, err error, d deps)
	}{
		{
			name:       "validation error: empty id after trim",
			customerID: "   ",
			setup:      func(d deps) {},
			assert: func(t *testing.T, res *model.Customer, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidArgument)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "ByID", mock.Anything, mock.Anything)
			},
		},
		{
			name:       "not found is passed through",
			customerID: customerID,
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, customerID).
					Return(nil, model.ErrCustomerNotFound).
					Once()
			},
			assert: func(t *testing.T, res *model.Customer, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrCustomerNotFound)
				assert.Nil(t, res)
			},
		},
		{
			name:       "success: trims the id",
			customerID: "\t " + customerID + " \n",
			setup: func(d deps) {
				d.repository.
					On("ByID", mock.Anything, customerID).
					Return(wantCustomer, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Customer, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, wantCustomer, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockCustomerRepository(t)}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := NewCustomerService(d.repository, time.Second)

			res, err := svc.ByID(context.Background(), tt.customerID)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceSetStatus(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockCustomerRepository
	}

	customerID := gofakeit.UUID()

	tests := []struct {
		name       string
		customerID string
		status     model.Status
		setup      func(d deps)
		assert     func(t *testing.T, err error, d deps)
	}{
		{
			name:       "validation error: unknown status",
			customerID: customerID,
			status:     model.Status("arquivado"),
			setup:      func(d deps) {},
			assert: func(t *testing.T, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)

				d.repository.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:       "success: flips to inactive",
			customerID: customerID,
			status:     model.StatusInactive,
			setup: func(d deps) {
				d.repository.
					On("SetStatus", mock.Anything, customerID, model.StatusInactive).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockCustomerRepository(t)}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := NewCustomerService(d.repository, time.Second)

			err := svc.SetStatus(context.Background(), tt.customerID, tt.status)
			tt.assert(t, err, d)
		})
	}
}

func TestServiceList(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockCustomerRepository
	}

	customers := []*model.Customer{
		{ID: gofakeit.UUID(), Name: gofakeit.Name(), Status: model.StatusActive},
		{ID: gofakeit.UUID(), Name: gofakeit.Name(), Status: model.StatusActive},
	}

	tests := []struct {
		name   string
		pg     model.Pagination
		setup  func(d deps)
		assert func(t *testing.T, res *model.Paged[*model.Customer], err error, d deps)
	}{
		{
			name: "normalizes out-of-range pagination",
			pg:   model.Pagination{Page: -3, Limit: 0},
			setup: func(d deps) {
				d.repository.
					On("List", mock.Anything, model.CustomersFilter{}, mock.MatchedBy(func(pg model.Pagination) bool {
						return pg.Page >= 1 && pg.Limit >= 1
					})).
					Return(customers, int64(2), nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Paged[*model.Customer], err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, customers, res.Items)
				assert.EqualValues(t, 2, res.Total)
				assert.Equal(t, 1, res.Page)
			},
		},
		{
			name: "repository error is wrapped",
			pg:   model.Pagination{Page: 1, Limit: 20},
			setup: func(d deps) {
				d.repository.
					On("List", mock.Anything, model.CustomersFilter{}, mock.Anything).
					Return(nil, int64(0), errors.New("db read failed")).
					Once()
			},
			assert: func(t *testing.T, res *model.Paged[*model.Customer], err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "db read failed")
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockCustomerRepository(t)}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := NewCustomerService(d.repository, time.Second)

			res, err := svc.List(context.Background(), model.CustomersFilter{}, tt.pg)
			tt.assert(t, res, err, d)
		})
	}
}
