package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/papelaria/internal/application/dto"
	"github.com/jhoicas/papelaria/internal/application/ports"
	"github.com/jhoicas/papelaria/internal/domain"
	"github.com/jhoicas/papelaria/internal/domain/entity"
	"github.com/jhoicas/papelaria/internal/domain/repository"
	"github.com/jhoicas/papelaria/pkg/logger"
)

// SaleUseCase registra ventas de forma transaccional: bloqueo de la fila del producto,
// verificación de stock, descuento de stock, alta de la venta y acumulado del cliente,
// todo con Commit o Rollback como una sola unidad.
type SaleUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	metrics      ports.SalesMetrics
	log          *logger.Logger
	now          func() time.Time
}

// NewSaleUseCase construye el caso de uso. metrics y log pueden ser nil.
func NewSaleUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	metrics ports.SalesMetrics,
	log *logger.Logger,
) *SaleUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SaleUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		metrics:      metrics,
		log:          log.Component("sales"),
		now:          time.Now,
	}
}

// SellInputDTO entrada para registrar una venta.
type SellInputDTO struct {
	ProductID          int64
	CustomerNationalID string
	Quantity           int64
}

// Sell ejecuta la venta. Errores: domain.ErrInvalidInput (cantidad < 1, referencias vacías),
// domain.ErrNotFound (cliente o producto), domain.ErrInsufficientStock (cantidad > stock),
// domain.ErrStorage / domain.ErrTransient (almacenamiento). Ante cualquier error no hay cambios.
func (uc *SaleUseCase) Sell(ctx context.Context, input SellInputDTO) (*dto.SaleResponse, error) {
	input.CustomerNationalID = strings.TrimSpace(input.CustomerNationalID)
	if err := validateSellInput(input); err != nil {
		uc.metrics.ObserveRejectedSale("invalid_input")
		return nil, err
	}

	started := uc.now()
	sale := &entity.Sale{
		TransactionID:      uuid.New().String(),
		CustomerNationalID: input.CustomerNationalID,
		ProductID:          input.ProductID,
		Quantity:           input.Quantity,
		CreatedAt:          started,
	}
	var stockAfter int64

	err := uc.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		if _, err := customerRepo.GetByNationalID(ctx, input.CustomerNationalID); err != nil {
			return err
		}
		// Bloquea la fila del producto para que ventas concurrentes lean el stock confirmado
		product, err := productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if input.Quantity > product.Stock {
			return fmt.Errorf("%w: solicitado %d, disponible %d", domain.ErrInsufficientStock, input.Quantity, product.Stock)
		}
		if err := productRepo.DecrementStock(ctx, product.ID, input.Quantity); err != nil {
			return err
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		if err := customerRepo.AddPurchasedQuantity(ctx, input.CustomerNationalID, input.Quantity); err != nil {
			return err
		}
		stockAfter = product.Stock - input.Quantity
		return nil
	})
	if err != nil {
		uc.reject(input, err)
		return nil, err
	}

	uc.metrics.ObserveSale(input.Quantity, started)
	uc.log.Info().
		Int64("sale_id", sale.ID).
		Str("transaction_id", sale.TransactionID).
		Int64("product_id", input.ProductID).
		Str("national_id", input.CustomerNationalID).
		Int64("quantity", input.Quantity).
		Int64("stock", stockAfter).
		Msg("venta registrada")
	return dto.FromSale(sale), nil
}

// SellFromRequest adapta el request HTTP al caso de uso Sell.
func (uc *SaleUseCase) SellFromRequest(ctx context.Context, in dto.SellRequest) (*dto.SaleResponse, error) {
	return uc.Sell(ctx, SellInputDTO{
		ProductID:          in.ProductID,
		CustomerNationalID: in.CustomerNationalID,
		Quantity:           in.Quantity,
	})
}

// GetByID obtiene una venta.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id de venta inválido", domain.ErrInvalidInput)
	}
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromSale(sale), nil
}

// ListByCustomer lista las ventas de un cliente ordenadas por ID; domain.ErrNotFound si el cliente no existe.
func (uc *SaleUseCase) ListByCustomer(ctx context.Context, nationalID string) ([]*dto.SaleResponse, error) {
	nationalID = strings.TrimSpace(nationalID)
	if _, err := uc.customerRepo.GetByNationalID(ctx, nationalID); err != nil {
		return nil, err
	}
	list, err := uc.saleRepo.ListByCustomer(ctx, nationalID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.FromSale(s))
	}
	return out, nil
}

func validateSellInput(input SellInputDTO) error {
	switch {
	case input.Quantity < 1:
		return fmt.Errorf("%w: la cantidad debe ser al menos 1", domain.ErrInvalidInput)
	case input.ProductID <= 0:
		return fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	case input.CustomerNationalID == "":
		return fmt.Errorf("%w: CPF del cliente requerido", domain.ErrInvalidInput)
	}
	return nil
}

func (uc *SaleUseCase) reject(input SellInputDTO, err error) {
	reason := "storage"
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		reason = "insufficient_stock"
	case errors.Is(err, domain.ErrNotFound):
		reason = "not_found"
	case errors.Is(err, domain.ErrTransient):
		reason = "transient"
	}
	uc.metrics.ObserveRejectedSale(reason)

	ev := uc.log.Warn()
	if reason == "storage" || reason == "transient" {
		ev = uc.log.Error()
	}
	ev.Err(err).
		Int64("product_id", input.ProductID).
		Str("national_id", input.CustomerNationalID).
		Int64("quantity", input.Quantity).
		Str("reason", reason).
		Msg("venta rechazada")
}
