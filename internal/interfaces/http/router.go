package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-api/internal/application/auth"
	"github.com/jhoicas/storefront-api/internal/application/catalog"
	"github.com/jhoicas/storefront-api/internal/application/orders"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *catalog.CatalogUseCase
	CreateOrder *orders.CreateOrderUseCase
	OrderQuery  *orders.OrderQueryUseCase
	Receipt     *orders.ReceiptUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
// Público: registro, login, catálogo y confirmación de orden (checkout de
// invitado). Protegido con Bearer Token: perfil, historial, detalle y
// comprobante.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", catalogHandler.List)

	// Órdenes
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderQuery, deps.Receipt)
	api.Post("/orders", orderHandler.Create) // público: permite invitados

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	userHandler := NewUserHandler(deps.AuthUC)
	protected.Put("/users/:id", userHandler.UpdateProfile)

	protected.Get("/orders/:user_id", orderHandler.ListByUser)
	protected.Get("/orders/:order_id/items", orderHandler.ListItems)
	protected.Get("/orders/:order_id/receipt", orderHandler.Receipt)
}
