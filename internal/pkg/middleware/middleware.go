package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	jwtpkg "github.com/nomadbikers/ridetrack/internal/pkg/jwt"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// ContextKeyUserID is the echo context key the auth middleware stores the
// authenticated member id under.
const ContextKeyUserID = "user_id"

// ContextKeyRole holds the authenticated member's role.
const ContextKeyRole = "user_role"

// Middleware bundles the shared echo middleware for the service.
type Middleware struct {
	cfg   *models.Config
	nrApp *newrelic.Application
}

// NewMiddleware creates the middleware bundle
func NewMiddleware(cfg *models.Config, nrApp *newrelic.Application) *Middleware {
	return &Middleware{cfg: cfg, nrApp: nrApp}
}

// RequestLogger logs every request with latency and status.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			fields := []logger.Field{
				logger.String("method", c.Request().Method),
				logger.String("path", c.Request().URL.Path),
				logger.Int("status", status),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
			}

			switch {
			case status >= 500:
				if err != nil {
					fields = append(fields, logger.Err(err))
				}
				logger.Error("Server error", fields...)
			case status >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request processed", fields...)
			}

			return err
		}
	}
}

// NewRelicTransaction wraps each request in a New Relic transaction and puts
// it on the request context so downstream segments attach to it.
func (m *Middleware) NewRelicTransaction() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.nrApp == nil {
				return next(c)
			}

			txn := m.nrApp.StartTransaction(c.Request().Method + " " + c.Path())
			defer txn.End()

			txn.SetWebRequestHTTP(c.Request())
			writer := txn.SetWebResponse(c.Response().Writer)
			c.Response().Writer = writer

			ctx := newrelic.NewContext(c.Request().Context(), txn)
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if err != nil {
				txn.NoticeError(err)
			}
			return err
		}
	}
}

// PanicRecovery converts handler panics into 500 responses.
func (m *Middleware) PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered",
						logger.Any("panic", r),
						logger.String("path", c.Request().URL.Path))
					err = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
				}
			}()
			return next(c)
		}
	}
}

// SessionAuth validates the Bearer session token and stores the member id and
// role on the context. The authentication handshake itself happens elsewhere;
// this only resolves the already-issued session.
func (m *Middleware) SessionAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			claims, err := jwtpkg.ValidateToken(strings.TrimPrefix(header, "Bearer "), m.cfg.JWT)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyRole, claims.Role)
			return next(c)
		}
	}
}
