package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/papelaria/internal/application/inventory"
	"github.com/jhoicas/papelaria/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC    *usecase.CustomerUseCase
	ProductUC     *usecase.ProductUseCase
	SaleUC        *inventory.SaleUseCase
	ProductFinder *inventory.ProductFinder
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.SaleUC)
	customers.Post("/", customerHandler.Register)
	customers.Get("/:nationalId", customerHandler.Get)
	customers.Get("/:nationalId/sales", customerHandler.ListSales)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ProductFinder)
	products.Post("/", productHandler.Register)
	products.Get("/", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Sell)
	sales.Get("/:id", saleHandler.GetByID)
}
