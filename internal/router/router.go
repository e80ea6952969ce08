package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"rockschool/internal/auth"
	"rockschool/internal/config"
	"rockschool/internal/errors"
	"rockschool/internal/handler"
	"rockschool/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	roles auth.RoleLookup,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	paymentHandler *handler.PaymentHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "School of Rock server is running")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/jwt", authHandler.IssueToken)
	e.POST("/users", userHandler.CreateUser)
	e.DELETE("/users/:id", userHandler.DeleteUser)
	e.PATCH("/users/admin/:id", userHandler.GrantAdmin)
	e.PATCH("/users/instructor/:id", userHandler.GrantInstructor)
	e.GET("/review", catalogHandler.ListReviews)
	e.GET("/classes", catalogHandler.ListClasses)
	e.GET("/classes/:id", catalogHandler.GetClass)
	e.GET("/instructors", catalogHandler.ListInstructors)
	e.POST("/classCart", cartHandler.AddItem)
	e.DELETE("/classCart/:id", cartHandler.RemoveItem)
	e.GET("/seed/catalog", seedHandler.SeedCatalog)

	// Secured routes (require JWT authentication). Missing or invalid
	// tokens are rejected 401 before any handler runs.
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: errors.ErrUnauthorized.Error(),
				Code:  "UNAUTHORIZED",
			})
		},
	}))

	secured.GET("/users", userHandler.ListUsers, auth.RequireRole(roles, model.RoleAdmin))
	secured.GET("/users/admin/:email", userHandler.CheckAdmin, auth.RequireSelf("email"))
	secured.GET("/classes/mine", catalogHandler.MyClasses, auth.RequireSelf("email"))
	secured.POST("/classes", catalogHandler.CreateClass, auth.RequireRole(roles, model.RoleInstructor))
	secured.PUT("/classes/:id", catalogHandler.ReplaceClass)
	secured.DELETE("/classes/:id", catalogHandler.DeleteClass)
	secured.GET("/classCart", cartHandler.GetCart, auth.RequireSelf("email"))
	secured.POST("/create-payment-intent", paymentHandler.CreateIntent)
	secured.POST("/payments", paymentHandler.RecordPayment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
