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

const (
	taxIDMinLen = 14
	taxIDMaxLen = 18
)

type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) (string, error)
	ByID(ctx context.Context, id string) (*model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) error
	SetStatus(ctx context.Context, id string, status model.Status) error
	List(ctx context.Context, filter model.SuppliersFilter, pg model.Pagination) ([]*model.Supplier, int64, error)
}

type service struct {
	repo      SupplierRepository
	dbTimeout time.Duration
}

func NewSupplierService(repo SupplierRepository, dbTimeout time.Duration) *service {
	return &service{repo: repo, dbTimeout: dbTimeout}
}

func (s *service) Create(ctx context.Context, sup *model.Supplier) (string, error) {
	const op = "supplier.service.Create"

	if err := validate(sup); err != nil {
		logger.Error(ctx, "supplier validation", logger.ErrorF(err))
		return "", err
	}
	if sup.Status == "" {
		sup.Status = model.StatusActive
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	id, err := s.repo.Create(ctx, sup)
	if err != nil {
		logger.Error(ctx, "repository create supplier", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "supplier created",
		logger.String("supplier_id", id),
		logger.String("legal_name", sup.LegalName),
	)
	return id, nil
}

func (s *service) Update(ctx context.Context, sup *model.Supplier) error {
	const op = "supplier.service.Update"

	if strings.TrimSpace(sup.ID) == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}
	if err := validate(sup); err != nil {
		return err
	}
	if !sup.Status.Valid() {
		return errors.Join(model.ErrValidation, errors.New("invalid status"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	if err := s.repo.Update(ctx, sup); err != nil {
		logger.Error(ctx, "repository update supplier", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) ByID(ctx context.Context, id string) (*model.Supplier, error) {
	const op = "supplier.service.ByID"

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	sup, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sup, nil
}

func (s *service) SetStatus(ctx context.Context, id string, status model.Status) error {
	const op = "supplier.service.SetStatus"

	if strings.TrimSpace(id) == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}
	if !status.Valid() {
		return errors.Join(model.ErrValidation, errors.New("invalid status"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) List(
	ctx context.Context,
	filter model.SuppliersFilter,
	pg model.Pagination,
) (*model.Paged[*model.Supplier], error) {
	const op = "supplier.service.List"

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	pg = pg.Normalized()
	items, total, err := s.repo.List(ctx, filter, pg)
	if err != nil {
		logger.Error(ctx, "repository list suppliers", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.Paged[*model.Supplier]{Items: items, Total: total, Page: pg.Page, Limit: pg.Limit}, nil
}

func validate(sup *model.Supplier) error {
	sup.LegalName = strings.TrimSpace(sup.LegalName)
	sup.TaxID = strings.TrimSpace(sup.TaxID)

	if sup.LegalName == "" {
		return errors.Join(model.ErrValidation, errors.New("legal name is required"))
	}
	if n := len(sup.TaxID); n < taxIDMinLen || n > taxIDMaxLen {
		return errors.Join(model.ErrValidation,
			fmt.Errorf("tax id must have between %d and %d characters", taxIDMinLen, taxIDMaxLen))
	}
	return nil
}
