package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
)

func HasPermission(user *AppUser, permission string) bool {
	if user == nil {
		return false
	}
	return user.Role == "admin" || slices.Contains(user.Permissions, permission)
}

func HasAnyPermission(user *AppUser, permissions ...string) bool {
	return slices.ContainsFunc(permissions, func(p string) bool {
		return HasPermission(user, p)
	})
}

// RequirePermission rejects requests whose user lacks permission.
func RequirePermission(permission string) echo.MiddlewareFunc {
	return requirePermissions(func(user *AppUser) bool {
		return HasPermission(user, permission)
	}, "Forbidden: missing permission "+permission)
}

// RequireAnyPermission rejects requests whose user has none of permissions.
func RequireAnyPermission(permissions ...string) echo.MiddlewareFunc {
	return requirePermissions(func(user *AppUser) bool {
		return HasAnyPermission(user, permissions...)
	}, "Forbidden: missing required permission")
}

func requirePermissions(allowed func(*AppUser) bool, denied string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := c.(*AppContext).User
			if user == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			if !allowed(user) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": denied})
			}
			return next(c)
		}
	}
}
