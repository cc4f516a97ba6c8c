package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (Database, RedisClient and EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Check names one dependency probed by the health endpoint.
type Check struct {
	Name    string
	Checker HealthChecker
}

const healthTimeout = 2 * time.Second

// HealthHandler probes every check and reports "degraded" with 503 when any
// of them fails. The response maps each check name to "ok" or "unreachable".
func HealthHandler(checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := map[string]string{"status": "ok"}
		for _, c := range checks {
			if err := c.Checker.Ping(ctx); err != nil {
				resp["status"] = "degraded"
				resp[c.Name] = "unreachable"
				continue
			}
			resp[c.Name] = "ok"
		}

		status := http.StatusOK
		if resp["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
