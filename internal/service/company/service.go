package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chwpym/autoreturns/internal/model"
	"github.com/chwpym/autoreturns/pkg/logger"
)

type SettingsRepository interface {
	Company(ctx context.Context) (*model.Company, error)
	SaveCompany(ctx context.Context, c *model.Company) error
}

type service struct {
	repo      SettingsRepository
	dbTimeout time.Duration
}

func NewCompanyService(repo SettingsRepository, dbTimeout time.Duration) *service {
	return &service{repo: repo, dbTimeout: dbTimeout}
}

// Get returns the shop profile; an absent profile reads as the zero value.
func (s *service) Get(ctx context.Context) (*model.Company, error) {
	const op = "company.service.Get"

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	c, err := s.repo.Company(ctx)
	if err != nil {
		logger.Error(ctx, "repository read company", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s *service) Save(ctx context.Context, c *model.Company) error {
	const op = "company.service.Save"

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	if err := s.repo.SaveCompany(ctx, c); err != nil {
		logger.Error(ctx, "repository save company", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "company profile saved", logger.String("name", c.Name))
	return nil
}
