package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chwpym/autoreturns/internal/model"
	"github.com/chwpym/autoreturns/pkg/logger"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *model.Transaction) (string, error)
	ByID(ctx context.Context, id string) (*model.Transaction, error)
	UpdateReturnAction(ctx context.Context, id string, action model.ReturnAction, creditInvoice string) error
	List(ctx context.Context, filter model.TransactionsFilter, pg model.Pagination) ([]*model.Transaction, int64, error)
}

type CustomerReader interface {
	ByID(ctx context.Context, id string) (*model.Customer, error)
}

type PartReader interface {
	ByID(ctx context.Context, id string) (*model.Part, error)
}

type SupplierReader interface {
	ByID(ctx context.Context, id string) (*model.Supplier, error)
}

type service struct {
	repo      TransactionRepository
	customers CustomerReader
	parts     PartReader
	suppliers SupplierReader
	dbTimeout time.Duration
}

func NewTransactionService(
	repo TransactionRepository,
	customers CustomerReader,
	parts PartReader,
	suppliers SupplierReader,
	dbTimeout time.Duration,
) *service {
	return &service{
		repo:      repo,
		customers: customers,
		parts:     parts,
		suppliers: suppliers,
		dbTimeout: dbTimeout,
	}
}

// Create resolves every referenced record and snapshots its display name into
// the transaction before writing. A missing reference fails the save; nothing
// is written.
func (s *service) Create(ctx context.Context, t *model.Transaction) (string, error) {
	const op = "transaction.service.Create"
	log := logger.With(
		logger.String("kind", string(t.Kind)),
		logger.String("part_id", t.PartID),
	)

	if err := validate(t); err != nil {
		log.Error(ctx, "transaction validation", logger.ErrorF(err))
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	if err := s.snapshotReferences(ctx, t); err != nil {
		log.Error(ctx, "resolve references", logger.ErrorF(err))
		return "", err
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		log.Error(ctx, "repository create transaction", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "transaction created", logger.String("transaction_id", id))
	return id, nil
}

func (s *service) ByID(ctx context.Context, id string) (*model.Transaction, error) {
	const op = "transaction.service.ByID"

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	t, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// UpdateReturnAction edits the warranty follow-up fields; everything else in
// a transaction is append-only.
func (s *service) UpdateReturnAction(
	ctx context.Context,
	id string,
	action model.ReturnAction,
	creditInvoice string,
) error {
	const op = "transaction.service.UpdateReturnAction"

	if strings.TrimSpace(id) == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}
	if !action.Valid() {
		return errors.Join(model.ErrValidation, errors.New("invalid return action"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	if err := s.repo.UpdateReturnAction(ctx, id, action, creditInvoice); err != nil {
		logger.Error(ctx, "repository update return action", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) List(
	ctx context.Context,
	filter model.TransactionsFilter,
	pg model.Pagination,
) (*model.Paged[*model.Transaction], error) {
	const op = "transaction.service.List"

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	pg = pg.Normalized()
	items, total, err := s.repo.List(ctx, filter, pg)
	if err != nil {
		logger.Error(ctx, "repository list transactions", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.Paged[*model.Transaction]{Items: items, Total: total, Page: pg.Page, Limit: pg.Limit}, nil
}

func (s *service) snapshotReferences(ctx context.Context, t *model.Transaction) error {
	part, err := s.parts.ByID(ctx, t.PartID)
	if err != nil {
		return referenceErr("part", t.PartID, err)
	}
	t.PartDescription = part.Description

	customer, err := s.customers.ByID(ctx, t.CustomerID)
	if err != nil {
		return referenceErr("customer", t.CustomerID, err)
	}
	t.CustomerName = customer.Name

	if t.MechanicID != "" {
		mechanic, err := s.customers.ByID(ctx, t.MechanicID)
		if err != nil {
			return referenceErr("mechanic", t.MechanicID, err)
		}
		t.MechanicName = mechanic.Name
	}

	if t.Kind == model.KindWarranty {
		supplier, err := s.suppliers.ByID(ctx, t.Warranty.SupplierID)
		if err != nil {
			return referenceErr("supplier", t.Warranty.SupplierID, err)
		}
		t.Warranty.SupplierName = supplier.LegalName
	}

	return nil
}

func referenceErr(kind, id string, err error) error {
	if errors.Is(err, model.ErrCustomerNotFound) ||
		errors.Is(err, model.ErrPartNotFound) ||
		errors.Is(err, model.ErrSupplierNotFound) {
		return errors.Join(model.ErrReferenceNotFound, fmt.Errorf("%s %q", kind, id))
	}
	return fmt.Errorf("resolve %s %q: %w", kind, id, err)
}

func validate(t *model.Transaction) error {
	if !t.Kind.Valid() {
		return errors.Join(model.ErrValidation, errors.New("invalid transaction kind"))
	}
	if strings.TrimSpace(t.PartID) == "" {
		return errors.Join(model.ErrValidation, errors.New("part reference is required"))
	}
	if strings.TrimSpace(t.CustomerID) == "" {
		return errors.Join(model.ErrValidation, errors.New("customer reference is required"))
	}
	if t.Quantity <= 0 {
		return errors.Join(model.ErrValidation, errors.New("quantity must be positive"))
	}

	switch t.Kind {
	case model.KindReturn:
		if t.Return == nil {
			return errors.Join(model.ErrValidation, errors.New("return details are required"))
		}
		if a := t.Return.RequisitionAction; a != model.RequisitionAltered && a != model.RequisitionDeleted {
			return errors.Join(model.ErrValidation, errors.New("invalid requisition action"))
		}
	case model.KindWarranty:
		if t.Warranty == nil {
			return errors.Join(model.ErrValidation, errors.New("warranty details are required"))
		}
		if strings.TrimSpace(t.Warranty.SupplierID) == "" {
			return errors.Join(model.ErrValidation, errors.New("supplier reference is required"))
		}
		if t.Warranty.ReturnAction == "" {
			t.Warranty.ReturnAction = model.ReturnPending
		}
		if !t.Warranty.ReturnAction.Valid() {
			return errors.Join(model.ErrValidation, errors.New("invalid return action"))
		}
	}

	return nil
}
