package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/job-portal-api/internal/core/domain"
	"github.com/talenthub/job-portal-api/internal/core/ports"
)

// RequireRole enforces that the authenticated account currently holds the
// given role. The role is re-read from the store rather than trusted from the
// token, so a stale JWT cannot outlive an account change.
func RequireRole(users ports.UserRepository, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}
			if user.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
