package middleware

import (
	"net/http"

	"rnote/internal/domain/entity"
	"rnote/internal/utils"
	"rnote/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserRepository interface {
	FindByUUID(uuid string) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	UserRepo    UserRepository
	TokenSecret []byte
}

// NewAuthMiddleware resolves the token subject (the user's public
// identifier) to the account record once per request and stores it in
// the request context; nothing authentication-related outlives the
// request.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := utils.ParseTokenDataCtx(c, cfg.TokenSecret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			user, err := cfg.UserRepo.FindByUUID(tokenData.Sub)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				// User deleted in DB but still has a valid token???
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			c.Set("user", user)
			c.Set("sub", tokenData.Sub)
			return next(c)
		}
	}
}
