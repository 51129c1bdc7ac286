package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corebank/banking-system/internal/core/domain"
)

// RequireRole restricts a route group to exactly one role. The API answers
// 403 on a mismatch; redirecting mismatched roles to their home view is the
// client's job, not the server's.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, _ := c.Get("role").(string)
			if domain.Role(current) != role {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
