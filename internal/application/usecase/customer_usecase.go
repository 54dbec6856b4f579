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
	"github.com/jhoicas/papelaria/pkg/docbr"
	"github.com/jhoicas/papelaria/pkg/logger"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo    repository.CustomerRepository
	metrics ports.SalesMetrics
	log     *logger.Logger
}

// NewCustomerUseCase construye el caso de uso. metrics y log pueden ser nil.
func NewCustomerUseCase(repo repository.CustomerRepository, metrics ports.SalesMetrics, log *logger.Logger) *CustomerUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CustomerUseCase{repo: repo, metrics: metrics, log: log.Component("customers")}
}

// Register valida y crea un cliente. La validación ocurre antes de tocar el almacenamiento;
// el CPF repetido lo rechaza la restricción única del almacenamiento (domain.ErrDuplicate).
func (uc *CustomerUseCase) Register(ctx context.Context, in dto.RegisterCustomerRequest) (*dto.CustomerResponse, error) {
	if err := ValidateCustomer(in); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		NationalID: in.NationalID,
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.TrimSpace(in.Email),
		Phone:      docbr.NormalizePhone(in.Phone),
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		uc.log.Warn().Err(err).Str("national_id", in.NationalID).Msg("registro de cliente rechazado")
		return nil, err
	}
	uc.metrics.ObserveRegistration("customer")
	uc.log.Info().Int64("customer_id", customer.ID).Str("national_id", customer.NationalID).Msg("cliente registrado")
	return dto.FromCustomer(customer), nil
}

// GetByNationalID obtiene un cliente por CPF.
func (uc *CustomerUseCase) GetByNationalID(ctx context.Context, nationalID string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByNationalID(ctx, strings.TrimSpace(nationalID))
	if err != nil {
		return nil, err
	}
	return dto.FromCustomer(c), nil
}

// ValidateCustomer aplica las reglas de registro: CPF válido, nombre no vacío ni solo dígitos,
// teléfono de 11 dígitos. El email no se valida.
func ValidateCustomer(in dto.RegisterCustomerRequest) error {
	if in.NationalID == "" || !docbr.ValidateCPF(in.NationalID) {
		return fmt.Errorf("%w: CPF inválido", domain.ErrInvalidInput)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || isDigits(name) {
		return fmt.Errorf("%w: el nombre no puede estar vacío ni contener solo números", domain.ErrInvalidInput)
	}
	if !docbr.ValidatePhone(in.Phone) {
		return fmt.Errorf("%w: teléfono inválido", domain.ErrInvalidInput)
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
