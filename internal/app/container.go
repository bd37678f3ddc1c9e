package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nekogravitycat/experience-booking/internal/api"
	"github.com/nekogravitycat/experience-booking/internal/booking"
	"github.com/nekogravitycat/experience-booking/internal/catalog"
	"github.com/nekogravitycat/experience-booking/internal/checkout"
	"github.com/nekogravitycat/experience-booking/internal/pricing"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction  bool
	ProdOrigins   []string
	Catalog       catalog.Repository // nil selects the built-in catalog
	TaxRate       decimal.Decimal
	PromoRules    map[string]pricing.Rule // nil selects the default promo table
	CheckoutDelay time.Duration
	SessionTTL    time.Duration
	Reference     checkout.ReferenceGenerator
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router       *gin.Engine
	SessionStore booking.Store
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Catalog Module
	catalogRepo := cfg.Catalog
	if catalogRepo == nil {
		catalogRepo = catalog.DefaultRepository()
	}
	catalogService := catalog.NewService(catalogRepo)

	// Pricing & Checkout
	engine := pricing.NewEngine(cfg.TaxRate, cfg.PromoRules)
	processor := checkout.NewProcessor(cfg.CheckoutDelay, cfg.Reference)

	// Booking Module
	store := booking.NewMemoryStore(cfg.SessionTTL)
	bookingService := booking.NewService(store, catalogService, engine, processor)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		CatalogService: catalogService,
		BookingService: bookingService,
	})

	return &Container{
		Router:       router,
		SessionStore: store,
	}
}
