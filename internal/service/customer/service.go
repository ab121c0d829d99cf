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

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (string, error)
	ByID(ctx context.Context, id string) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	SetStatus(ctx context.Context, id string, status model.Status) error
	List(ctx context.Context, filter model.CustomersFilter, pg model.Pagination) ([]*model.Customer, int64, error)
}

type service struct {
	repo      CustomerRepository
	dbTimeout time.Duration
}

func NewCustomerService(repo CustomerRepository, dbTimeout time.Duration) *service {
	return &service{repo: repo, dbTimeout: dbTimeout}
}

func (s *service) Create(ctx context.Context, c *model.Customer) (string, error) {
	const op = "customer.service.Create"

	if err := validate(c); err != nil {
		logger.Error(ctx, "customer validation", logger.ErrorF(err))
		return "", err
	}
	if c.Status == "" {
		c.Status = model.StatusActive
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		logger.Error(ctx, "repository create customer", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "customer created",
		logger.String("customer_id", id),
		logger.String("name", c.Name),
	)
	return id, nil
}

func (s *service) Update(ctx context.Context, c *model.Customer) error {
	const op = "customer.service.Update"

	if strings.TrimSpace(c.ID) == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}
	if err := validate(c); err != nil {
		return err
	}
	if !c.Status.Valid() {
		return errors.Join(model.ErrValidation, errors.New("invalid status"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	if err := s.repo.Update(ctx, c); err != nil {
		logger.Error(ctx, "repository update customer", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) ByID(ctx context.Context, id string) (*model.Customer, error) {
	const op = "customer.service.ByID"

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	c, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// SetStatus is the only supported removal: records flip to inactive, never
// get deleted.
func (s *service) SetStatus(ctx context.Context, id string, status model.Status) error {
	const op = "customer.service.SetStatus"

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
	filter model.CustomersFilter,
	pg model.Pagination,
) (*model.Paged[*model.Customer], error) {
	const op = "customer.service.List"

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	pg = pg.Normalized()
	items, total, err := s.repo.List(ctx, filter, pg)
	if err != nil {
		logger.Error(ctx, "repository list customers", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.Paged[*model.Customer]{Items: items, Total: total, Page: pg.Page, Limit: pg.Limit}, nil
}

func validate(c *model.Customer) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return errors.Join(model.ErrValidation, errors.New("name is required"))
	}
	if c.Type.Empty() {
		return errors.Join(model.ErrValidation, errors.New("at least one type flag must be set"))
	}
	return nil
}
