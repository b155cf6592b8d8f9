package routes

import (
	"time"

	"lustrio/handlers"
	"lustrio/middleware"
	"lustrio/services/identity"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHotelRoutes registers hotel endpoints.
func RegisterHotelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/hotels", hb.GetHotelsHandler)
	r.POST("/hotels", hb.CreateHotelHandler)
	r.DELETE("/hotels/:id", hb.DeleteHotelHandler)
	r.GET("/hotel/:id", hb.GetHotelHandler)
}

// RegisterBookingRoutes registers the booking lifecycle and payment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/bookings", hb.CreateBookingHandler)
	r.GET("/bookings", hb.GetBookingsHandler)
	r.GET("/bookings/:email", hb.GetBookingsByEmailHandler)

	r.GET("/booking/:id", hb.GetBookingHandler)
	r.DELETE("/booking/:id", hb.CancelBookingHandler)
	r.PUT("/booking/:id", hb.ConfirmPaymentHandler)

	r.POST("/create-payment-intent", hb.CreatePaymentIntentHandler)
}

// RegisterFeedbackRoutes registers feedback endpoints.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/feedbacks", hb.CreateFeedbackHandler)
	r.GET("/feedbacks", hb.GetFeedbacksHandler)
}

// RegisterUserRoutes registers user endpoints. Only the promotion route
// resolves the caller's identity.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	verifier := hb.Verifier
	if verifier == nil {
		verifier = identity.Disabled{}
	}

	users := r.Group("/users")
	{
		users.POST("", hb.RegisterUserHandler)
		users.PUT("", hb.SignInUserHandler)
		users.PUT("/admin", middleware.IdentityMiddleware(verifier, hb.Logger), hb.PromoteAdminHandler)
		users.GET("/:email", hb.IsAdminHandler)
	}
}

// RegisterHealthRoutes registers liveness, health and metrics endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	r.GET("/health", hb.HealthHandler)
	if hb.Metrics != nil {
		r.GET("/metrics", gin.WrapH(hb.Metrics.Handler()))
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// It is the only place routes are added to the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(middleware.RequestIDMiddleware())
	if hb.Logger != nil {
		r.Use(middleware.LoggerMiddleware(hb.Logger))
	}
	if hb.Metrics != nil {
		r.Use(hb.Metrics.Middleware())
	}
	r.Use(cors.New(corsConfig(hb.AllowedOrigins)))

	RegisterHealthRoutes(r, hb)
	RegisterHotelRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterUserRoutes(r, hb)
}
