package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fairwaylabs/golf-pool/internal/web"
)

// DashboardHandler serves the rendered HTML leaderboard page.
type DashboardHandler struct {
	snapshots SnapshotSource
	renderer  *web.Renderer
	interval  time.Duration
	logger    *logrus.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(snapshots SnapshotSource, renderer *web.Renderer, interval time.Duration, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		snapshots: snapshots,
		renderer:  renderer,
		interval:  interval,
		logger:    logger,
	}
}

// GetDashboard renders the leaderboard page for the last cycle, or the
// error panel when the last cycle failed. The page refreshes itself on
// the service's refresh interval via the Refresh header.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snapshot, fresh, err := h.snapshots.Snapshot(time.Now())

	status := http.StatusOK
	if snapshot == nil {
		status = http.StatusServiceUnavailable
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Header("Refresh", h.refreshHeader())
	c.Status(status)

	if renderErr := h.renderer.Dashboard(c.Writer, snapshot, fresh, err); renderErr != nil {
		h.logger.WithField("component", "dashboard_handler").WithError(renderErr).Error("Failed to render dashboard")
	}
}

func (h *DashboardHandler) refreshHeader() string {
	seconds := int(h.interval.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}
