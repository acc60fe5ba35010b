package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taskriser/internal/auth"
	"taskriser/internal/handler"
	"taskriser/internal/logger"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	taskHandler *handler.TaskHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, World!")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/google", authHandler.GoogleAuth)
	// Registration alias kept for older clients. It used to forward an HTTP
	// call back to /api/auth/register; now it hits the same handler in-process.
	api.POST("/users/register", authHandler.Register)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ContextKey: auth.ContextKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.Verify(tokenString)
		},
		ErrorHandler: jwtErrorHandler,
	}))

	// User routes
	secured.GET("/users/me", userHandler.GetMe)
	secured.PUT("/users/me", userHandler.UpdateMe)
	secured.PUT("/users/update-profile", userHandler.UpdateProfile)
	secured.POST("/users/update-profile", userHandler.UpdateProfile)
	secured.POST("/users/update-exp", userHandler.UpdateExp)

	// Task routes
	secured.GET("/tasks", taskHandler.List)
	secured.POST("/tasks", taskHandler.Create)
	secured.PUT("/tasks/:id", taskHandler.Update)
	secured.DELETE("/tasks/:id", taskHandler.Delete)
}

// jwtErrorHandler maps the three token failure kinds to 401 with distinct
// messages and logs the kind server-side.
func jwtErrorHandler(c echo.Context, err error) error {
	kind := "missing"
	message := auth.ErrTokenMissing.Error()
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		kind = "expired"
		message = auth.ErrTokenExpired.Error()
	case errors.Is(err, auth.ErrTokenInvalid):
		kind = "invalid"
		message = auth.ErrTokenInvalid.Error()
	}
	logger.Log.Warnw("jwt verification failed", "kind", kind, "path", c.Path(), "err", err)
	return echo.NewHTTPError(http.StatusUnauthorized, message)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
