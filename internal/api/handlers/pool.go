package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fairwaylabs/golf-pool/internal/models"
	"github.com/fairwaylabs/golf-pool/internal/utils"
)

// SnapshotSource is the slice of the refresh service the handlers need.
type SnapshotSource interface {
	Snapshot(now time.Time) (*models.Snapshot, bool, error)
	Refresh(ctx context.Context) (*models.Snapshot, error)
}

// leaderboardResponse wraps the ranked results with cycle metadata so
// API consumers can tell which fetch they are looking at.
type leaderboardResponse struct {
	CycleID     string              `json:"cycle_id"`
	FetchedAt   time.Time           `json:"fetched_at"`
	Fresh       bool                `json:"fresh"`
	WorstScore  int                 `json:"worst_score"`
	Leaderboard []models.TeamResult `json:"leaderboard"`
}

type summaryResponse struct {
	CycleID   string         `json:"cycle_id"`
	FetchedAt time.Time      `json:"fetched_at"`
	Fresh     bool           `json:"fresh"`
	Summary   models.Summary `json:"summary"`
}

// PoolHandler serves the pool leaderboard, summary and roster endpoints.
type PoolHandler struct {
	snapshots SnapshotSource
	teams     []models.Team
	logger    *logrus.Logger
}

// NewPoolHandler creates a new pool handler
func NewPoolHandler(snapshots SnapshotSource, teams []models.Team, logger *logrus.Logger) *PoolHandler {
	return &PoolHandler{
		snapshots: snapshots,
		teams:     teams,
		logger:    logger,
	}
}

// GetLeaderboard returns the ranked teams from the last refresh cycle.
func (h *PoolHandler) GetLeaderboard(c *gin.Context) {
	snapshot, fresh := h.currentSnapshot(c)
	if snapshot == nil {
		return
	}

	utils.SendSuccess(c, leaderboardResponse{
		CycleID:     snapshot.CycleID,
		FetchedAt:   snapshot.FetchedAt,
		Fresh:       fresh,
		WorstScore:  snapshot.WorstScore,
		Leaderboard: snapshot.Leaderboard,
	})
}

// GetSummary returns leader, best player and tier pick counts.
func (h *PoolHandler) GetSummary(c *gin.Context) {
	snapshot, fresh := h.currentSnapshot(c)
	if snapshot == nil {
		return
	}

	utils.SendSuccess(c, summaryResponse{
		CycleID:   snapshot.CycleID,
		FetchedAt: snapshot.FetchedAt,
		Fresh:     fresh,
		Summary:   snapshot.Summary,
	})
}

// GetTeams returns the static roster.
func (h *PoolHandler) GetTeams(c *gin.Context) {
	utils.SendSuccess(c, h.teams)
}

// TriggerRefresh forces a refresh cycle outside the schedule.
func (h *PoolHandler) TriggerRefresh(c *gin.Context) {
	snapshot, err := h.snapshots.Refresh(c.Request.Context())
	if err != nil {
		h.logger.WithField("component", "pool_handler").WithError(err).Error("Manual refresh failed")
		utils.SendServiceUnavailable(c, err.Error())
		return
	}

	utils.SendSuccessWithMessage(c, leaderboardResponse{
		CycleID:     snapshot.CycleID,
		FetchedAt:   snapshot.FetchedAt,
		Fresh:       true,
		WorstScore:  snapshot.WorstScore,
		Leaderboard: snapshot.Leaderboard,
	}, "refresh completed")
}

// currentSnapshot fetches the last cycle and writes the error response
// when there is nothing servable. Callers bail out on nil.
func (h *PoolHandler) currentSnapshot(c *gin.Context) (*models.Snapshot, bool) {
	snapshot, fresh, err := h.snapshots.Snapshot(time.Now())
	if snapshot != nil {
		return snapshot, fresh
	}

	if err != nil {
		utils.SendServiceUnavailable(c, err.Error())
	} else {
		utils.SendServiceUnavailable(c, "no refresh cycle has completed yet")
	}
	return nil, false
}
