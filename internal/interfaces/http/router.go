package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinivet/pos-api/internal/application/auth"
	"github.com/clinivet/pos-api/internal/application/pos"
	"github.com/clinivet/pos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateSale *pos.CreateSaleUseCase
	SaleQuery  *pos.SaleQueryUseCase
	Receipt    *pos.ReceiptUseCase
	Inventory  *pos.InventoryQueryUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (Bearer Token + rol con permiso de caja)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequirePOSRole())

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleQuery, deps.Receipt, deps.Log)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Inventory (protegido, solo lectura)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Inventory, deps.Log)
	inventory.Get("/", inventoryHandler.List)
}
