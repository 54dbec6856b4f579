package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/papelaria/internal/application/dto"
	"github.com/jhoicas/papelaria/internal/application/inventory"
	"github.com/jhoicas/papelaria/internal/application/usecase"
	"github.com/jhoicas/papelaria/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	finder *inventory.ProductFinder
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, finder *inventory.ProductFinder) *ProductHandler {
	return &ProductHandler{uc: uc, finder: finder}
}

// Register godoc
// @Summary      Registrar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterProductRequest  true  "name, price, stock"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Search GET /api/products?q=fragmento
// Sin coincidencias responde 404 NO_MATCH para que el cliente informe "ningún producto encontrado".
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	list, err := h.finder.Find(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ProductListResponse{Items: list})
}

// GetByID GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return writeError(c, fmt.Errorf("%w: id de producto inválido", domain.ErrInvalidInput))
	}
	out, err := h.uc.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
