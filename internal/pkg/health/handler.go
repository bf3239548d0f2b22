package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/nomadbikers/ridetrack/internal/pkg/nats"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Client.Ping(ctx).Err()
}

// NATSHealthChecker checks NATS connection health
type NATSHealthChecker struct {
	client *nats.Client
}

// NewNATSHealthChecker creates a new NATS health checker
func NewNATSHealthChecker(client *nats.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

// CheckHealth checks if NATS is healthy
func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	if !n.client.GetConn().IsConnected() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "nats disconnected")
	}
	return nil
}

// Handler serves the health endpoint over all registered checkers.
type Handler struct {
	checkers map[string]HealthChecker
}

// NewHandler creates a health handler
func NewHandler(checkers map[string]HealthChecker) *Handler {
	return &Handler{checkers: checkers}
}

// RegisterRoutes registers the health route
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Check)
}

// Check runs every checker with a short deadline and reports per-dependency
// status. Any failing dependency yields a 503.
func (h *Handler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checkers))
	for name, checker := range h.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	return c.JSON(status, results)
}
