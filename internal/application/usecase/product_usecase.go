package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/papelaria/internal/application/dto"
	"github.com/jhoicas/papelaria/internal/application/ports"
	"github.com/jhoicas/papelaria/internal/domain"
	"github.com/jhoicas/papelaria/internal/domain/entity"
	"github.com/jhoicas/papelaria/internal/domain/repository"
	"github.com/jhoicas/papelaria/pkg/logger"
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso para productos. Stock solo cambia vía ventas.
type ProductUseCase struct {
	repo    repository.ProductRepository
	metrics ports.SalesMetrics
	log     *logger.Logger
}

// NewProductUseCase construye el caso de uso. metrics y log pueden ser nil.
func NewProductUseCase(repo repository.ProductRepository, metrics ports.SalesMetrics, log *logger.Logger) *ProductUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, metrics: metrics, log: log.Component("products")}
}

// Register crea un producto. El nombre no es único: dos registros iguales crean dos productos.
func (uc *ProductUseCase) Register(ctx context.Context, in dto.RegisterProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del producto es requerido", domain.ErrInvalidInput)
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	product := &entity.Product{
		Name:      name,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.metrics.ObserveRegistration("product")
	uc.log.Info().Int64("product_id", product.ID).Str("name", product.Name).Int64("stock", product.Stock).Msg("producto registrado")
	return dto.FromProduct(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id de producto inválido", domain.ErrInvalidInput)
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromProduct(p), nil
}

// Search devuelve los productos cuyo nombre contiene fragment (puede ser vacía).
func (uc *ProductUseCase) Search(ctx context.Context, fragment string) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.SearchByName(ctx, fragment)
	if err != nil {
		return nil, err
	}
	return dto.FromProducts(list), nil
}
