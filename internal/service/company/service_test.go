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

func TestServiceGet(t *testing.T) {
	t.Parallel()

	t.Run("absent profile reads as the zero value", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockSettingsRepository(t)
		repo.On("Company", mock.Anything).Return(&model.Company{}, nil).Once()

		svc := NewCompanyService(repo, time.Second)

		res, err := svc.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, &model.Company{}, res)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockSettingsRepository(t)
		repo.On("Company", mock.Anything).Return(nil, errors.New("db read failed")).Once()

		svc := NewCompanyService(repo, time.Second)

		res, err := svc.Get(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, "db read failed")
		assert.Nil(t, res)
	})
}

func TestServiceSave(t *testing.T) {
	t.Parallel()

	company := &model.Company{
		Name:  gofakeit.Company(),
		Phone: gofakeit.Phone(),
		Email: gofakeit.Email(),
		TaxID: "12345678000190",
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockSettingsRepository(t)
		repo.On("SaveCompany", mock.Anything, company).Return(nil).Once()

		svc := NewCompanyService(repo, time.Second)

		require.NoError(t, svc.Save(context.Background(), company))
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockSettingsRepository(t)
		repo.
			On("SaveCompany", mock.Anything, company).
			Return(errors.New("db write failed")).
			Once()

		svc := NewCompanyService(repo, time.Second)

		err := svc.Save(context.Background(), company)
		require.Error(t, err)
		assert.ErrorContains(t, err, "db write failed")
	})
}
