package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// HealthStatus is the health/readiness response body.
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	redis     *redis.Client
	snapshots SnapshotSource
	logger    *logrus.Logger
}

// NewHealthHandler creates a new health handler. redis may be nil when
// the feed cache is disabled.
func NewHealthHandler(redisClient *redis.Client, snapshots SnapshotSource, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		redis:     redisClient,
		snapshots: snapshots,
		logger:    logger,
	}
}

// GetHealth returns the basic health status
func (h *HealthHandler) GetHealth(c *gin.Context) {
	response := HealthStatus{
		Status:    "ok",
		Service:   "golf-pool",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			response.Status = "unhealthy"
			response.Checks["redis"] = "failed: " + err.Error()
		} else {
			response.Checks["redis"] = "ok"
		}
	} else {
		response.Checks["redis"] = "disabled"
	}

	statusCode := http.StatusOK
	if response.Status != "ok" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// GetReady returns the readiness status: the service is ready once a
// refresh cycle has completed and produced a servable snapshot.
func (h *HealthHandler) GetReady(c *gin.Context) {
	response := HealthStatus{
		Status:    "ready",
		Service:   "golf-pool",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	snapshot, fresh, err := h.snapshots.Snapshot(time.Now())
	switch {
	case snapshot != nil:
		response.Checks["snapshot"] = "ok"
		if !fresh {
			response.Checks["snapshot"] = "stale"
		}
	case err != nil:
		response.Status = "not_ready"
		response.Checks["snapshot"] = "failed: " + err.Error()
	default:
		response.Status = "not_ready"
		response.Checks["snapshot"] = "pending first refresh"
	}

	statusCode := http.StatusOK
	if response.Status != "ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
