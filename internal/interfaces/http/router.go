package http

import (
	"github.com/gofiber/fiber/v2"

	"ferreteria-backend/internal/application/billing"
	"ferreteria-backend/internal/application/inventory"
	"ferreteria-backend/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC        *usecase.ClientUseCase
	CategoryUC      *usecase.CategoryUseCase
	SupplierUC      *usecase.SupplierUseCase
	ProductUC       *usecase.ProductUseCase
	PaymentMethodUC *usecase.PaymentMethodUseCase
	OrderUC         *usecase.PurchaseOrderUseCase
	InvoiceUC       *usecase.InvoiceUseCase

	RegisterMovement *inventory.RegisterMovementUseCase

	CreateSale *billing.CreateSaleUseCase
	SaleLines  *billing.SaleLinesUseCase
	VoidSale   *billing.VoidSaleUseCase
	SaleQuery  *billing.SaleQueryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clientes
	clients := api.Group("/clientes")
	clientHandler := NewClientHandler(deps.ClientUC, deps.SaleQuery)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Get("/:id/compras", clientHandler.Purchases)

	// Categorías
	categories := api.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Proveedores
	suppliers := api.Group("/proveedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Productos
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/precio", productHandler.GetPrice)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movimientos de stock
	movements := api.Group("/movimientos")
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)

	// Medios de pago
	methods := api.Group("/medios-de-pago")
	methodHandler := NewPaymentMethodHandler(deps.PaymentMethodUC)
	methods.Post("/", methodHandler.Create)
	methods.Get("/", methodHandler.List)
	methods.Get("/:id", methodHandler.GetByID)
	methods.Delete("/:id", methodHandler.Delete)

	// Pedidos a proveedores
	orders := api.Group("/pedidos")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/recibir", orderHandler.MarkReceived)
	orders.Delete("/:id", orderHandler.Delete)

	// Ventas y sus líneas
	sales := api.Group("/ventas")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleLines, deps.VoidSale, deps.SaleQuery)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Put("/items/:id", saleHandler.UpdateLine)
	sales.Delete("/items/:id", saleHandler.RemoveLine)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Post("/:id/anular", saleHandler.Void)
	sales.Post("/:id/items", saleHandler.AddLine)

	// Facturas
	invoices := api.Group("/facturas")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Delete("/:id", invoiceHandler.Delete)
}
