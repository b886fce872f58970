package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"stocktrack/internal/config"
	"stocktrack/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	reportHandler *handler.ReportHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// echo-jwt stores a golang-jwt v5 token in the context.
	secured.GET("/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, _ := token.Claims.(jwt.MapClaims)
		return c.JSON(http.StatusOK, echo.Map{"token_claims": claims})
	})

	// Product routes
	secured.POST("/products", productHandler.CreateProduct)
	secured.GET("/products", productHandler.ListProducts)
	secured.GET("/products/search", productHandler.SearchProducts)
	secured.GET("/products/export", reportHandler.ExportCSV)
	secured.GET("/products/:id", productHandler.GetProduct)
	secured.PUT("/products/:id/stock", productHandler.UpdateStock)
	secured.POST("/products/:id/premium", productHandler.MarkPremium)
	secured.GET("/products/:id/movements", productHandler.GetMovements)
	secured.DELETE("/products/:id", productHandler.DeleteProduct)

	// Report routes
	secured.GET("/reports/summary", reportHandler.Summary)
	secured.GET("/reports/low-stock", reportHandler.LowStock)
	secured.GET("/reports/value-distribution", reportHandler.ValueDistribution)

	// Demo data
	secured.GET("/seed/products", seedHandler.SeedProducts)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
