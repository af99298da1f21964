package middleware // contains reusable HTTP middleware functions

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ankitmav/venue-booking/internal/auth"
)

// Context keys set by JWTAuth for downstream middleware and handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// through the token service and injects the resolved identity into the
// request context. On any verification failure the request is rejected with
// 401 and the protected handler never runs.
func JWTAuth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			ident, err := tokens.VerifyAccess(raw)
			if err != nil {
				msg := "invalid token"
				if errors.Is(err, auth.ErrTokenExpired) {
					msg = "token expired"
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": msg})
			}

			c.Set(CtxUserID, ident.UserID)
			c.Set(CtxRole, ident.Role)
			return next(c)
		}
	}
}
