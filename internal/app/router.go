package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/handler"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	BookingHandler     *handler.BookingHandler
	CarHandler         *handler.CarHandler
	PartnerHandler     *handler.PartnerHandler
	CustomerHandler    *handler.CustomerHandler
	TransactionHandler *handler.TransactionHandler
	InvoiceHandler     *handler.InvoiceHandler
	RedisClient        *redis.Client // nil disables idempotency keys
	NewRelicApp        *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RedisClient != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics.
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Booking lifecycle.
		bookings := v1.Group("/bookings")
		{
			bookings.POST("", deps.BookingHandler.CreateBooking)
			bookings.GET("", deps.BookingHandler.GetAll)
			bookings.GET("/:id", deps.BookingHandler.GetBooking)
			bookings.POST("/:id/reschedule", deps.BookingHandler.RescheduleBooking)
			bookings.POST("/:id/activate", deps.BookingHandler.ActivateBooking)
			bookings.POST("/:id/complete", deps.BookingHandler.CompleteBooking)
			bookings.POST("/:id/cancel", deps.BookingHandler.CancelBooking)
		}

		// Fleet routes.
		cars := v1.Group("/cars")
		{
			cars.POST("", deps.CarHandler.CreateCar)
			cars.GET("", deps.CarHandler.GetAll)
			cars.GET("/:id", deps.CarHandler.GetCar)
			cars.GET("/:id/availability", deps.CarHandler.GetAvailability)
		}

		// Partner routes.
		partners := v1.Group("/partners")
		{
			partners.POST("", deps.PartnerHandler.CreatePartner)
			partners.GET("", deps.PartnerHandler.GetAll)
			partners.GET("/:id/settlement", deps.PartnerHandler.GetSettlement)
		}

		// Customer and driver master data.
		customers := v1.Group("/customers")
		{
			customers.POST("", deps.CustomerHandler.CreateCustomer)
			customers.GET("", deps.CustomerHandler.GetAll)
		}
		drivers := v1.Group("/drivers")
		{
			drivers.POST("", deps.CustomerHandler.CreateDriver)
			drivers.GET("", deps.CustomerHandler.GetAllDrivers)
		}

		// Ledger routes.
		transactions := v1.Group("/transactions")
		{
			transactions.POST("", deps.TransactionHandler.RecordTransaction)
			transactions.GET("", deps.TransactionHandler.GetAll)
		}

		// Collective invoice routes.
		invoices := v1.Group("/invoices")
		{
			invoices.POST("", deps.InvoiceHandler.Aggregate)
			invoices.GET("", deps.InvoiceHandler.GetAll)
			invoices.GET("/:id", deps.InvoiceHandler.GetInvoice)
			invoices.POST("/:id/void", deps.InvoiceHandler.VoidInvoice)
		}
	}

	return router
}
