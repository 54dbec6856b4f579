package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/papelaria/internal/domain"
	"github.com/jhoicas/papelaria/internal/domain/entity"
	"github.com/jhoicas/papelaria/internal/domain/repository"
	"github.com/jhoicas/papelaria/internal/infrastructure/memory"
)

func newProduct(t *testing.T, s *memory.Store, name string, stock int64) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Price: decimal.RequireFromString("2.50"), Stock: stock}
	require.NoError(t, s.Products().Create(context.Background(), p))
	return p
}

func TestCustomerRepo_CPFUnico(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore(0)
	repo := s.Customers()

	first := &entity.Customer{NationalID: "11144477735", Name: "Ana"}
	require.NoError(t, repo.Create(ctx, first))
	assert.EqualValues(t, 1, first.ID)

	err := repo.Create(ctx, &entity.Customer{NationalID: "11144477735", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := repo.GetByNationalID(ctx, "11144477735")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name, "el duplicado no debe modificar el registro existente")

	_, err = repo.GetByNationalID(ctx, "52998224725")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_NombresRepetidosCreanProductosDistintos(t *testing.T) {
	s := memory.NewStore(0)
	a := newProduct(t, s, "Pen", 10)
	b := newProduct(t, s, "Pen", 10)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestProductRepo_SearchByName(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore(0)
	newProduct(t, s, "Caneta Azul", 5)
	newProduct(t, s, "Lápis", 5)
	newProduct(t, s, "CANETA vermelha", 5)

	got, err := s.Products().SearchByName(ctx, "caneta")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Caneta Azul", got[0].Name)
	assert.Equal(t, "CANETA vermelha", got[1].Name)
	assert.Less(t, got[0].ID, got[1].ID)

	got, err = s.Products().SearchByName(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 3, "fragmento vacío coincide con todo")

	got, err = s.Products().SearchByName(ctx, "borracha")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProductRepo_DecrementStock(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore(0)
	p := newProduct(t, s, "Pen", 3)

	assert.ErrorIs(t, s.Products().DecrementStock(ctx, p.ID, 4), domain.ErrInsufficientStock)
	require.NoError(t, s.Products().DecrementStock(ctx, p.ID, 3))
	assert.ErrorIs(t, s.Products().DecrementStock(ctx, p.ID, 1), domain.ErrInsufficientStock)
	assert.ErrorIs(t, s.Products().DecrementStock(ctx, 99, 1), domain.ErrNotFound)

	got, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Stock)
}

func TestSaleRepo_IntegridadReferencial(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore(0)
	p := newProduct(t, s, "Pen", 3)

	err := s.Sales().Create(ctx, &entity.Sale{CustomerNationalID: "11144477735", ProductID: p.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrStorage)

	list, err := s.Sales().ListByCustomer(ctx, "11144477735")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_RunRollbackDescartaTodo(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore(0)
	p := newProduct(t, s, "Pen", 10)
	require.NoError(t, s.Customers().Create(ctx, &entity.Customer{NationalID: "11144477735", Name: "Ana"}))
	boom := errors.New("falla simulada")

	err := s.Run(ctx, func(c repository.CustomerRepository, pr repository.ProductRepository, sr repository.SaleRepository) error {
		require.NoError(t, pr.DecrementStock(ctx, p.ID, 4))
		require.NoError(t, sr.Create(ctx, &entity.Sale{CustomerNationalID: "11144477735", ProductID: p.ID, Quantity: 4}))
		require.NoError(t, c.AddPurchasedQuantity(ctx, "11144477735", 4))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 10, got.Stock)
	cust, err := s.Customers().GetByNationalID(ctx, "11144477735")
	require.NoError(t, err)
	assert.Zero(t, cust.PurchasedQuantity)
	sales, err := s.Sales().ListByCustomer(ctx, "11144477735")
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestStore_RunCommit(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore(0)
	p := newProduct(t, s, "Pen", 10)
	require.NoError(t, s.Customers().Create(ctx, &entity.Customer{NationalID: "11144477735", Name: "Ana"}))

	var sale entity.Sale
	err := s.Run(ctx, func(c repository.CustomerRepository, pr repository.ProductRepository, sr repository.SaleRepository) error {
		if err := pr.DecrementStock(ctx, p.ID, 4); err != nil {
			return err
		}
		sale = entity.Sale{CustomerNationalID: "11144477735", ProductID: p.ID, Quantity: 4}
		if err := sr.Create(ctx, &sale); err != nil {
			return err
		}
		return c.AddPurchasedQuantity(ctx, "11144477735", 4)
	})
	require.NoError(t, err)

	got, err := s.Sales().GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, got.Quantity)
	prod, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 6, prod.Stock)
}

func TestStore_EsperaDeBloqueoAcotada(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore(20 * time.Millisecond)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- s.Run(ctx, func(repository.CustomerRepository, repository.ProductRepository, repository.SaleRepository) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	_, err := s.Products().GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.ErrorIs(t, err, domain.ErrStorage)

	close(release)
	require.NoError(t, <-done)
}

func TestStore_ContextoCancelado(t *testing.T) {
	s := memory.NewStore(time.Second)
	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = s.Run(context.Background(), func(repository.CustomerRepository, repository.ProductRepository, repository.SaleRepository) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Products().SearchByName(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepos_DevuelvenCopias(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore(0)
	p := newProduct(t, s, "Pen", 10)

	got, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	got.Stock = 0

	again, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 10, again.Stock)
}
