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
		repository *mocks.MockTransactionRepository
		customers  *mocks.MockCustomerRepository
		parts      *mocks.MockPartRepository
		suppliers  *mocks.MockSupplierRepository
	}

	newSvc := func(d deps) *service {
		return NewTransactionService(d.repository, d.customers, d.parts, d.suppliers, time.Second)
	}

	transactionID := gofakeit.UUID()
	partID := gofakeit.UUID()
	customerID := gofakeit.UUID()
	mechanicID := gofakeit.UUID()
	supplierID := gofakeit.UUID()

	part := &model.Part{ID: partID, Code: "FLT-001", Description: "Filtro de oleo"}
	customer := &model.Customer{ID: customerID, Name: "Maria Souza", Type: model.CustomerType{Customer: true}}
	mechanic := &model.Customer{ID: mechanicID, Name: "Jose Lima", Type: model.CustomerType{Mechanic: true}}
	supplier := &model.Supplier{ID: supplierID, LegalName: "Pecas Fortes LTDA", TaxID: "12345678000190"}

	newReturn := func() *model.Transaction {
		return &model.Transaction{
			Kind:       model.KindReturn,
			PartID:     partID,
			CustomerID: customerID,
			Quantity:   2,
			Return:     &model.ReturnDetails{RequisitionAction: model.RequisitionAltered},
		}
	}
	newWarranty := func() *model.Transaction {
		return &model.Transaction{
			Kind:       model.KindWarranty,
			PartID:     partID,
			CustomerID: customerID,
			Quantity:   1,
			Warranty: &model.WarrantyDetails{
				SupplierID:     supplierID,
				ReportedDefect: gofakeit.Sentence(4),
			},
		}
	}

	tests := []struct {
		name        string
		transaction *model.Transaction
		setup       func(d deps)
		assert      func(t *testing.T, id string, err error, d deps, tr *model.Transaction)
	}{
		{
			name: "validation error: unknown kind",
			transaction: &model.Transaction{
				Kind:       model.TransactionKind("emprestimo"),
				PartID:     partID,
				CustomerID: customerID,
				Quantity:   1,
			},
			setup: func(d deps) {},
			assert: func(t *testing.T, id string, err error, d deps, tr *model.Transaction) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Empty(t, id)

				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "validation error: non-positive quantity",
			transaction: func() *model.Transaction {
				tr := newReturn()
				tr.Quantity = 0
				return tr
			}(),
			setup: func(d deps) {},
			assert: func(t *testing.T, id string, err error, d deps, tr *model.Transaction) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.ErrorContains(t, err, "quantity")
			},
		},
		{
			name: "validation error: return without details",
			transaction: func() *model.Transaction {
				tr := newReturn()
				tr.Return = nil
				return tr
			}(),
			setup: func(d deps) {},
			assert: func(t *testing.T, id string, err error, d deps, tr *model.Transaction) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name: "validation error: warranty without supplier",
			transaction: func() *model.Transaction {
				tr := newWarranty()
				tr.Warranty.SupplierID = ""
				return tr
			}(),
			setup: func(d deps) {},
			assert: func(t *testing.T, id string, err error, d deps, tr *model.Transaction) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.ErrorContains(t, err, "supplier")
			},
		},
		{
			name:        "missing part reference fails the save",
			transaction: newReturn(),
			setup: func(d deps) {
				d.parts.
					On("ByID", mock.Anything, partID).
					Return(nil, model.ErrPartNotFound).
					Once()
			},
			assert: func(t *testing.T, id string, err error, d deps, tr *model.Transaction) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrReferenceNotFound)
				assert.Empty(t, id)

				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name:        "missing customer reference fails the save",
			transaction: newReturn(),
			setup: func(d deps) {
				d.parts.On("ByID", mock.Anything, partID).Return(part, nil).Once()
				d.customers.
					On("ByID", mock.Anything, customerID).
					Return(nil, model.ErrCustomerNotFound).
					Once()
			},
			assert: func(t *testing.T, id string, err error, d deps, tr *model.Transaction) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrReferenceNotFound)

				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name:        "success: return snapshots part and customer names",
			transaction: newReturn(),
			setup: func(d deps) {
				d.parts.On("ByID", mock.Anything, partID).Return(part, nil).Once()
				d.customers.On("ByID", mock.Anything, customerID).Return(customer, nil).Once()
				d.repository.
					On("Create", mock.Anything, mock.MatchedBy(func(tr *model.Transaction) bool {
						return tr.PartDescription == part.Description &&
							tr.CustomerName == customer.Name
					})).
					Return(transactionID, nil).
					Once()
			},
			assert: func(t *testing.T, id string, err error, d deps, tr *model.Transaction) {
				require.NoError(t, err)
				assert.Equal(t, transactionID, id)
				assert.Equal(t, part.Description, tr.PartDescription)
				assert.Equal(t, customer.Name, tr.CustomerName)
			},
		},
		{
			name: "success: mechanic is resolved when referenced",
			transaction: func() *model.Transaction {
				tr := newReturn()
				tr.MechanicID = mechanicID
				return tr
			}(),
			setup: func(d deps) {
				d.parts.On("ByID", mock.Anything, partID).Return(part, nil).Once()
				d.customers.On("ByID", mock.Anything, customerID).Return(customer, nil).Once()
				d.customers.On("ByID", mock.Anything, mechanicID).Return(mechanic, nil).Once()
				d.repository.
					On("Create", mock.Anything, mock.Anything).
					Return(transactionID, nil).
					Once()
			},
			assert: func(t *testing.T, id string, err error, d deps, tr *model.Transaction) {
				require.NoError(t, err)
				assert.Equal(t, mechanic.Name, tr.MechanicName)
			},
		},
		{
			name:        "success: warranty snapshots the supplier and defaults the action",
			transaction: newWarranty(),
			setup: func(d deps) {
				d.parts.On("ByID", mock.Anything, partID).Return(part, nil).Once()
				d.customers.On("ByID", mock.Anything, customerID).Return(customer, nil).Once()
				d.suppliers.On("ByID", mock.Anything, supplierID).Return(supplier, nil).Once()
				d.repository.
					On("Create", mock.Anything, mock.MatchedBy(func(tr *model.Transaction) bool {
						return tr.Warranty.SupplierName == supplier.LegalName &&
							tr.Warranty.ReturnAction == model.ReturnPending
					})).
					Return(transactionID, nil).
					Once()
			},
			assert: func(t *testing.T, id string, err error, d deps, tr *model.Transaction) {
				require.NoError(t, err)
				assert.Equal(t, transactionID, id)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockTransactionRepository(t),
				customers:  mocks.NewMockCustomerRepository(t),
				parts:      mocks.NewMockPartRepository(t),
				suppliers:  mocks.NewMockSupplierRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			id, err := svc.Create(context.Background(), tt.transaction)
			tt.assert(t, id, err, d, tt.transaction)
		})
	}
}

func TestServiceUpdateReturnAction(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockTransactionRepository
		customers  *mocks.MockCustomerRepository
		parts      *mocks.MockPartRepository
		suppliers  *mocks.MockSupplierRepository
	}

	transactionID := gofakeit.UUID()

	tests := []struct {
		name          string
		transactionID string
		action        model.ReturnAction
		creditInvoice string
		setup         func(d deps)
		assert        func(t *testing.T, err error, d deps)
	}{
		{
			name:          "validation error: empty id",
			transactionID: "  ",
			action:        model.ReturnApproved,
			setup:         func(d deps) {},
			assert: func(t *testing.T, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidArgument)

				d.repository.AssertNotCalled(t, "UpdateReturnAction",
					mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:          "validation error: unknown action",
			transactionID: transactionID,
			action:        model.ReturnAction("cancelado"),
			setup:         func(d deps) {},
			assert: func(t *testing.T, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name:          "not found is passed through",
			transactionID: transactionID,
			action:        model.ReturnRejected,
			setup: func(d deps) {
				d.repository.
					On("UpdateReturnAction", mock.Anything, transactionID, model.ReturnRejected, "").
					Return(model.ErrTransactionNotFound).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrTransactionNotFound)
			},
		},
		{
			name:          "success: approval records the credit invoice",
			transactionID: transactionID,
			action:        model.ReturnApproved,
			creditInvoice: "NF-778899",
			setup: func(d deps) {
				d.repository.
					On("UpdateReturnAction", mock.Anything, transactionID, model.ReturnApproved, "NF-778899").
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

			d := deps{
				repository: mocks.NewMockTransactionRepository(t),
				customers:  mocks.NewMockCustomerRepository(t),
				parts:      mocks.NewMockPartRepository(t),
				suppliers:  mocks.NewMockSupplierRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := NewTransactionService(d.repository, d.customers, d.parts, d.suppliers, time.Second)

			err := svc.UpdateReturnAction(
				context.Background(), tt.transactionID, tt.action, tt.creditInvoice)
			tt.assert(t, err, d)
		})
	}
}

func TestServiceList(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockTransactionRepository
		customers  *mocks.MockCustomerRepository
		parts      *mocks.MockPartRepository
		suppliers  *mocks.MockSupplierRepository
	}

	transactions := []*model.Transaction{
		{ID: gofakeit.UUID(), Kind: model.KindReturn},
		{ID: gofakeit.UUID(), Kind: model.KindWarranty},
	}

	tests := []struct {
		name   string
		filter model.TransactionsFilter
		setup  func(d deps)
		assert func(t *testing.T, res *model.Paged[*model.Transaction], err error, d deps)
	}{
		{
			name:   "kind filter is forwarded",
			filter: model.TransactionsFilter{Kind: model.KindWarranty},
			setup: func(d deps) {
				d.repository.
					On("List", mock.Anything, model.TransactionsFilter{Kind: model.KindWarranty}, mock.Anything).
					Return(transactions[1:], int64(1), nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Paged[*model.Transaction], err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Len(t, res.Items, 1)
			},
		},
		{
			name:   "repository error is wrapped",
			filter: model.TransactionsFilter{},
			setup: func(d deps) {
				d.repository.
					On("List", mock.Anything, model.TransactionsFilter{}, mock.Anything).
					Return(nil, int64(0), errors.New("db read failed")).
					Once()
			},
			assert: func(t *testing.T, res *model.Paged[*model.Transaction], err error, d deps) {
				require.Error(t, err)
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockTransactionRepository(t),
				customers:  mocks.NewMockCustomerRepository(t),
				parts:      mocks.NewMockPartRepository(t),
				suppliers:  mocks.NewMockSupplierRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := NewTransactionService(d.repository, d.customers, d.parts, d.suppliers, time.Second)

			res, err := svc.List(context.Background(), tt.filter, model.Pagination{})
			tt.assert(t, res, err, d)
		})
	}
}
