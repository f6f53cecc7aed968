package routes

import (
	"context"
	"log"
	"net/http"

	_ "gst_invoice/docs"
	"gst_invoice/internal/adapter/http/handlers"
	"gst_invoice/internal/adapter/http/middleware"
	"gst_invoice/internal/adapter/persistence/storage"
	"gst_invoice/internal/domain/entities"
	"gst_invoice/internal/infrastructure/config"
	"gst_invoice/internal/infrastructure/objectstore"
	"gst_invoice/internal/infrastructure/pdf"
	"gst_invoice/internal/infrastructure/shopify"
	"gst_invoice/internal/infrastructure/templating"
	"gst_invoice/internal/usecase"
	"gst_invoice/internal/usecase/interfaces"
	"gst_invoice/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	invoiceUseCase, err := NewInvoiceUseCase(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize invoice pipeline: %v", err)
	}

	m := metrics.NewServerMetrics(prometheus.DefaultRegisterer)
	router := NewRouter(invoiceUseCase, m, prometheus.DefaultGatherer)

	log.Printf("GST Invoice app listening on %s (invoices: %s)", cfg.Port, cfg.InvoiceDir)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

// NewInvoiceUseCase wires the invoice pipeline from configuration.
func NewInvoiceUseCase(ctx context.Context, cfg config.Config) (*usecase.InvoiceUseCase, error) {
	gateway, err := shopify.NewShopifyGateway(cfg.ShopifyBaseURL, cfg.ShopifyAPIVersion, cfg.AccessToken, cfg.ShopifyTimeout)
	if err != nil {
		return nil, err
	}

	tmpl, err := templating.NewInvoiceTemplate(cfg.TemplatePath)
	if err != nil {
		return nil, err
	}

	invoiceStorage, err := newInvoiceStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	renderer := pdf.NewRodRenderer(cfg.ChromeBin, cfg.RenderTimeout)

	return usecase.NewInvoiceUseCase(gateway, tmpl, renderer, invoiceStorage, usecase.InvoiceOptions{
		Seller: entities.Party{
			Name:    cfg.SellerName,
			Address: cfg.SellerAddress,
			GSTIN:   cfg.SellerGSTIN,
		},
		Location:          cfg.InvoiceLocation,
		EnrichConcurrency: cfg.EnrichConcurrency,
	}), nil
}

func newInvoiceStorage(ctx context.Context, cfg config.Config) (interfaces.IInvoiceStorage, error) {
	fsStorage, err := storage.NewFilesystemInvoiceStorage(cfg.InvoiceDir)
	if err != nil {
		return nil, err
	}
	if !cfg.S3.Enabled() {
		return fsStorage, nil
	}

	client, err := objectstore.NewS3Client(ctx, cfg.S3)
	if err != nil {
		return nil, err
	}
	log.Printf("[invoice][storage] s3 mirror enabled bucket=%s prefix=%s", cfg.S3.Bucket, cfg.S3.Prefix)
	return storage.NewMirroredInvoiceStorage(fsStorage, storage.NewS3InvoiceStorage(client, cfg.S3.Bucket, cfg.S3.Prefix)), nil
}

// NewRouter builds the HTTP router around an invoice use case.
func NewRouter(invoiceUseCase usecase.IInvoiceUseCase, m *metrics.ServerMetrics, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))

	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase, m)

	addPingRoutes(router)
	addInvoiceRoutes(router, invoiceHandler)
	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.ServerMetrics) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: request_id=%s %v", middleware.GetRequestID(c), recovered)
		c.String(http.StatusInternalServerError, "Internal server error")
		c.Abort()
	}))
	router.Use(m.Middleware())
}
