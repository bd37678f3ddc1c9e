package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/experience-booking/internal/booking"
	bookingHttp "github.com/nekogravitycat/experience-booking/internal/booking/http"
	"github.com/nekogravitycat/experience-booking/internal/catalog"
	catalogHttp "github.com/nekogravitycat/experience-booking/internal/catalog/http"
)

// Config holds the services and settings the router is built from.
type Config struct {
	IsProduction   bool
	ProdOrigins    []string
	CatalogService catalog.Service
	BookingService booking.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Recovery) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery(), RequestLogger())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		catalogHttp.RegisterRoutes(v1, catalogHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
	}

	return r
}
