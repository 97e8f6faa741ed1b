package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahyog/medical-store/internal/api/handler"
	"github.com/sahyog/medical-store/internal/api/middleware"
	"github.com/sahyog/medical-store/internal/core/service"
	mongodb "github.com/sahyog/medical-store/internal/infrastructure/db/mongo"
	redisdb "github.com/sahyog/medical-store/internal/infrastructure/db/redis"
)

const tokenTTL = 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("store"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	orderIdem := redisdb.NewOrderIdempotency(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, orderIdem, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)

	authn := middleware.Auth(jwtSecret)
	adminOnly := middleware.RequireAdmin(userRepo)

	// --- API routes ---
	g := e.Group("/api")

	g.POST("/auth/register", authHandler.Register)
	g.POST("/auth/login", authHandler.Login)

	g.GET("/users/profile", userHandler.Profile, authn)
	g.PUT("/users/profile", userHandler.UpdateProfile, authn)

	g.GET("/products", productHandler.List)
	g.POST("/products", productHandler.Create, authn, adminOnly)
	g.PUT("/products/:id", productHandler.Update, authn, adminOnly)
	g.DELETE("/products/:id", productHandler.Delete, authn, adminOnly)

	g.GET("/orders", orderHandler.List, authn, adminOnly)
	g.POST("/orders", orderHandler.Place, authn)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
