package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/papelaria/internal/application/dto"
	"github.com/jhoicas/papelaria/internal/application/inventory"
	"github.com/jhoicas/papelaria/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc    *usecase.CustomerUseCase
	sales *inventory.SaleUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, sales *inventory.SaleUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, sales: sales}
}

// Register godoc
// @Summary      Registrar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCustomerRequest  true  "national_id (CPF, 11 dígitos), name, email, phone (11 dígitos)"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener cliente por CPF
// @Tags         customers
// @Produce      json
// @Param        nationalId  path  string  true  "CPF"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{nationalId} [get]
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByNationalID(c.UserContext(), c.Params("nationalId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListSales GET /api/customers/:nationalId/sales
func (h *CustomerHandler) ListSales(c *fiber.Ctx) error {
	list, err := h.sales.ListByCustomer(c.UserContext(), c.Params("nationalId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SaleListResponse{Items: list})
}
