package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/papelaria/internal/application/dto"
	"github.com/jhoicas/papelaria/internal/application/usecase"
	"github.com/jhoicas/papelaria/internal/domain"
	"github.com/jhoicas/papelaria/internal/infrastructure/memory"
)

func TestProductUseCase_RegisterNoEsIdempotente(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.NewStore(0).Products(), nil, nil)
	in := dto.RegisterProductRequest{Name: "Pen", Price: decimal.RequireFromString("2.50"), Stock: 10}

	a, err := uc.Register(ctx, in)
	require.NoError(t, err)
	b, err := uc.Register(ctx, in)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	got, err := uc.Search(ctx, "Pen")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestProductUseCase_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewStore(0).Products(), nil, nil)
	for _, in := range []dto.RegisterProductRequest{
		{Name: "", Price: decimal.NewFromInt(1), Stock: 1},
		{Name: "  ", Price: decimal.NewFromInt(1), Stock: 1},
		{Name: "Pen", Price: decimal.NewFromInt(-1), Stock: 1},
		{Name: "Pen", Price: decimal.NewFromInt(1), Stock: -1},
	} {
		_, err := uc.Register(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}

func TestProductUseCase_GetByID(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.NewStore(0).Products(), nil, nil)
	p, err := uc.Register(ctx, dto.RegisterProductRequest{Name: "Pen", Price: decimal.Zero, Stock: 0})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pen", got.Name)
	assert.Zero(t, got.Stock)

	_, err = uc.GetByID(ctx, p.ID+1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.GetByID(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_SearchVacioNoEsError(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewStore(0).Products(), nil, nil)
	got, err := uc.Search(context.Background(), "nada")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
