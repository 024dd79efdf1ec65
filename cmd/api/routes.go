package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/langexchange/langexchange-api/internal/handlers"
	"github.com/langexchange/langexchange-api/internal/middleware"
	"github.com/langexchange/langexchange-api/pkg/metrics"
)

// Per-IP limit on POST /jwt. The front end re-issues the token on every
// auth state change, so the burst covers a burst of page reloads; only
// scripted token minting is throttled.
const (
	loginRate  = 5
	loginBurst = 30
)

// routeDeps carries everything the router needs
type routeDeps struct {
	serviceName    string
	allowedOrigins []string
	profileRoutes  bool

	authRateLimiter *middleware.RateLimiter
	verifier        middleware.TokenVerifier

	authHandler     *handlers.AuthHandler
	languageHandler *handlers.LanguageHandler
	tutorHandler    *handlers.TutorHandler
	bookingHandler  *handlers.BookingHandler
	healthHandler   *handlers.HealthHandler
}

// newRouter builds the engine with global middleware and all routes
func newRouter(d routeDeps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(otelgin.Middleware(d.serviceName))
	router.Use(middleware.ObservabilityMiddleware())
	if d.profileRoutes {
		router.Use(middleware.ProfileLabelsMiddleware())
	}
	router.Use(middleware.SecurityHeadersMiddleware())

	// Credentialed requests are accepted only from the configured front ends
	router.Use(cors.New(cors.Config{
		AllowOrigins:     d.allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimitMiddleware(middleware.DefaultMaxBodySize))

	registerRoutes(router, d)

	return router
}

func registerRoutes(router *gin.Engine, d routeDeps) {
	// Operational endpoints
	router.GET("/", d.healthHandler.Home)
	router.GET("/healthcheck", d.healthHandler.Healthcheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// Session
	router.POST("/jwt", d.authRateLimiter.Middleware(), d.authHandler.IssueToken)
	router.POST("/logout", d.authHandler.Logout)

	// Languages
	router.GET("/language", d.languageHandler.ListLanguages)

	// Tutors
	router.GET("/tutors", d.tutorHandler.ListTutors)
	router.POST("/tutors", d.tutorHandler.CreateTutor)
	router.GET("/tutors/:language", d.tutorHandler.ListTutorsByLanguage)
	router.DELETE("/tutors/:id", d.tutorHandler.DeleteTutor)
	router.GET("/tutor/:id", d.tutorHandler.GetTutor)
	router.PUT("/tutor/:id", d.tutorHandler.ReplaceTutor)
	router.GET("/mytutors/:email", middleware.TokenSessionMiddleware(d.verifier), d.tutorHandler.ListMyTutors)

	// Bookings
	router.GET("/bookTutor", d.bookingHandler.ListBookings)
	router.GET("/bookTutor/:email", d.bookingHandler.ListBookingsByEmail)
	router.POST("/bookTutor", d.bookingHandler.CreateBooking)
}
