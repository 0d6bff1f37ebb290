package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"usersvc/internal/auth"
	apperrors "usersvc/internal/errors"
	"usersvc/internal/handler"
)

// Register wires routes and middleware. Which routes sit behind the auth
// gate is a static decision made here, not by the gate itself.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/login", authHandler.Login)

	// Protected routes (require a valid bearer token)
	protected := e.Group("", AuthGate(jwtService))
	protected.GET("/get-user-info", authHandler.GetUserInfo)
	protected.POST("/user", userHandler.CreateUser)
	protected.PUT("/user", userHandler.UpdateUser)
	protected.GET("/user/:id", userHandler.GetUser)
	protected.GET("/users", userHandler.ListUsers)
	protected.DELETE("/user/:id", userHandler.DeleteUser)
}

// AuthGate intercepts protected requests, validates the bearer token and
// stores the decoded claims under the "user" context key. An absent or
// malformed Authorization header short-circuits with MISSING_CREDENTIALS;
// a token that fails verification with INVALID_TOKEN.
func AuthGate(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			return jwtService.ValidateToken(raw)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return renderAuthError(c, apperrors.ErrMissingCredentials)
			}
			return renderAuthError(c, apperrors.ErrInvalidToken)
		},
	})
}

func renderAuthError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
