package handler

import (
	"net/http"
	"time"

	"fare-validator/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type dependencyHealth struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Any failing dependency turns the whole
// report degraded with a 503, so load balancers stop sending taps.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		report := make(map[string]dependencyHealth, len(checkers))
		status, code := "healthy", http.StatusOK

		for _, checker := range checkers {
			start := time.Now()
			err := checker.Ping(c.Request.Context())
			dep := dependencyHealth{Status: "healthy", LatencyMS: time.Since(start).Milliseconds()}
			if err != nil {
				dep.Status, dep.Error = "unhealthy", err.Error()
				status, code = "degraded", http.StatusServiceUnavailable
			}
			report[checker.Name()] = dep
		}

		c.JSON(code, gin.H{"status": status, "dependencies": report})
	}
}
