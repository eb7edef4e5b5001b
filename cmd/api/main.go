package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"ferreteria-backend/internal/application/billing"
	"ferreteria-backend/internal/application/inventory"
	"ferreteria-backend/internal/application/usecase"
	"ferreteria-backend/internal/infrastructure/postgres"
	httpRouter "ferreteria-backend/internal/interfaces/http"
	"ferreteria-backend/pkg/config"
	"ferreteria-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.DB.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	clientRepo := postgres.NewClientRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	methodRepo := postgres.NewPaymentMethodRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	adjuster := inventory.NewStockAdjuster()
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, adjuster, movementRepo)

	clientUC := usecase.NewClientUseCase(clientRepo, saleRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	methodUC := usecase.NewPaymentMethodUseCase(methodRepo)
	orderUC := usecase.NewPurchaseOrderUseCase(txRunner, adjuster, orderRepo, supplierRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo)

	createSaleUC := billing.NewCreateSaleUseCase(txRunner, adjuster, clientRepo, methodRepo)
	saleLinesUC := billing.NewSaleLinesUseCase(txRunner, adjuster)
	voidSaleUC := billing.NewVoidSaleUseCase(txRunner, adjuster)
	saleQueryUC := billing.NewSaleQueryUseCase(saleRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:         clientUC,
		CategoryUC:       categoryUC,
		SupplierUC:       supplierUC,
		ProductUC:        productUC,
		PaymentMethodUC:  methodUC,
		OrderUC:          orderUC,
		InvoiceUC:        invoiceUC,
		RegisterMovement: registerMovementUC,
		CreateSale:       createSaleUC,
		SaleLines:        saleLinesUC,
		VoidSale:         voidSaleUC,
		SaleQuery:        saleQueryUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
