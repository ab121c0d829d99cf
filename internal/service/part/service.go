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

type PartRepository interface {
	Create(ctx context.Context, p *model.Part) (string, error)
	ByID(ctx context.Context, id string) (*model.Part, error)
	Update(ctx context.Context, p *model.Part) error
	SetStatus(ctx context.Context, id string, status model.Status) error
	List(ctx context.Context, filter model.PartsFilter, pg model.Pagination) ([]*model.Part, int64, error)
}

type service struct {
	repo      PartRepository
	dbTimeout time.Duration
}

func NewPartService(repo PartRepository, dbTimeout time.Duration) *service {
	return &service{repo: repo, dbTimeout: dbTimeout}
}

func (s *service) Create(ctx context.Context, p *model.Part) (string, error) {
	const op = "part.service.Create"

	if err := validate(p); err != nil {
		logger.Error(ctx, "part validation", logger.ErrorF(err))
		return "", err
	}
	if p.Status == "" {
		p.Status = model.StatusActive
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		logger.Error(ctx, "repository create part", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "part created",
		logger.String("part_id", id),
		logger.String("code", p.Code),
	)
	return id, nil
}

func (s *service) Update(ctx context.Context, p *model.Part) error {
	const op = "part.service.Update"

	if strings.TrimSpace(p.ID) == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}
	if err := validate(p); err != nil {
		return err
	}
	if !p.Status.Valid() {
		return errors.Join(model.ErrValidation, errors.New("invalid status"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	if err := s.repo.Update(ctx, p); err != nil {
		logger.Error(ctx, "repository update part", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) ByID(ctx context.Context, id string) (*model.Part, error) {
	const op = "part.service.ByID"

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	p, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s *service) SetStatus(ctx context.Context, id string, status model.Status) error {
	const op = "part.service.SetStatus"

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
	filter model.PartsFilter,
	pg model.Pagination,
) (*model.Paged[*model.Part], error) {
	const op = "part.service.List"

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	pg = pg.Normalized()
	items, total, err := s.repo.List(ctx, filter, pg)
	if err != nil {
		logger.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.Paged[*model.Part]{Items: items, Total: total, Page: pg.Page, Limit: pg.Limit}, nil
}

func validate(p *model.Part) error {
	p.Code = strings.TrimSpace(p.Code)
	p.Description = strings.TrimSpace(p.Description)

	if p.Code == "" {
		return errors.Join(model.ErrValidation, errors.New("part code is required"))
	}
	if p.Description == "" {
		return errors.Join(model.ErrValidation, errors.New("description is required"))
	}
	return nil
}
