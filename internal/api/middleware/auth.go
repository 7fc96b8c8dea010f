package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/whelansws/booking-system/internal/api/metrics"
	"github.com/whelansws/booking-system/internal/core/domain"
	"github.com/whelansws/booking-system/internal/core/ports"
)

// Auth verifies the bearer token and injects the admin username into
// context. Failures surface as domain token errors; the central error
// handler maps them all to the same 401 body, so the distinction between
// missing, expired, and invalid only reaches metrics.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing").Inc()
				return domain.ErrTokenMissing
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("missing").Inc()
				return domain.ErrTokenMissing
			}

			username, err := verifier.VerifyToken(parts[1])
			if err != nil {
				reason := "invalid"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired"
				}
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				return err
			}

			c.Set("username", username)
			return next(c)
		}
	}
}
