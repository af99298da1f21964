package router // router wires HTTP routes to their handlers and middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ankitmav/venue-booking/internal/auth"
	"github.com/ankitmav/venue-booking/internal/config"
	"github.com/ankitmav/venue-booking/internal/handler"
	"github.com/ankitmav/venue-booking/internal/middleware"
)

// Deps groups everything route registration needs. The redis client may be
// nil, in which case rate limiting and response caching are disabled.
type Deps struct {
	Auth     *handler.AuthHandler
	Bookings *handler.BookingHandler
	Admin    *handler.AdminHandler
	Reviews  *handler.ReviewHandler
	Tokens   *auth.TokenService
	RateCfg  config.RateLimitConfig
	Redis    *redis.Client
}

// Register attaches all application routes to the Echo instance.
func Register(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)

	protected := middleware.JWTAuth(d.Tokens)
	adminOnly := middleware.RequireRole("admin")

	// Auth. Login carries the rate limiter so credential stuffing is slowed
	// down; the other endpoints are either cheap or already token-gated.
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", d.Auth.Register)
	authGroup.POST("/login", d.Auth.Login, middleware.RateLimit(d.RateCfg, d.Redis))
	authGroup.POST("/refresh-token", d.Auth.Refresh)
	authGroup.POST("/forgot-password", d.Auth.ForgotPassword)
	authGroup.POST("/reset-password/:token", d.Auth.ResetPassword)
	authGroup.GET("/user", d.Auth.Me, protected)

	// Bookings: owned by the authenticated user.
	bookings := e.Group("/api/bookings", protected)
	bookings.POST("", d.Bookings.Create)
	bookings.GET("", d.Bookings.ListMine)
	bookings.PUT("/:id/confirm", d.Bookings.Confirm)

	// Admin dashboard: both gates compose, 401 before 403.
	admin := e.Group("/api/admin", protected, adminOnly)
	admin.GET("/bookings", d.Admin.ListBookings)
	admin.PUT("/bookings/:id", d.Admin.SetStatus)

	// Reviews: public listing (cached briefly), authenticated creation.
	e.GET("/api/reviews", d.Reviews.List, middleware.CacheJSON(d.Redis, "cache:reviews:recent", 30*time.Second))
	e.POST("/api/reviews", d.Reviews.Create, protected)
}
