package middleware

import (
	"strings"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/jwt"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/requestcontext"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/utils"
	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUser holds the authenticated *models.User
	ContextKeyUser = "user"
	// ContextKeyUserID holds the authenticated user's uuid.UUID
	ContextKeyUserID = "user_id"
)

// JWTAuthMiddleware rejects requests without a valid bearer token
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			tokenString, ok := bearerToken(authHeader)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwt.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			setPrincipal(c, claims.User())
			return next(c)
		}
	}
}

// OptionalJWTMiddleware attaches the principal when a valid token is present
// and lets anonymous requests through untouched
func OptionalJWTMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)); ok {
				if claims, err := jwt.ValidateToken(tokenString, config.Secret); err == nil {
					setPrincipal(c, claims.User())
				}
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated principal, or nil for anonymous requests
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(ContextKeyUser).(*models.User)
	return user
}

func setPrincipal(c echo.Context, user *models.User) {
	c.Set(ContextKeyUser, user)
	c.Set(ContextKeyUserID, user.ID)
	c.SetRequest(c.Request().WithContext(requestcontext.WithUserID(c.Request().Context(), user.ID)))
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
