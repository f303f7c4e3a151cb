package redis

import (
	"context"
	"strconv"
	"time"
)

type HealthCheck struct {
	Up      bool
	Details map[string]string
}

type HealthChecker struct {
	client *Client
}

func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client}
}

// HealthCheck pings the server and reports the pool state next to the outcome
func (h *HealthChecker) HealthCheck(ctx context.Context) HealthCheck {
	config := h.client.GetConfig()
	stats := h.client.Stats()

	check := HealthCheck{
		Up: true,
		Details: map[string]string{
			"address":     config.Addr(),
			"database":    strconv.Itoa(config.Database),
			"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
			"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
			"last_check":  time.Now().Format(time.RFC3339),
			"message":     "UP",
		},
	}

	if err := h.client.Ping(ctx); err != nil {
		check.Up = false
		check.Details["message"] = "ping failed: " + err.Error()
	}
	return check
}
