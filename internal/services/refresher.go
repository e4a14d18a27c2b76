package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/fairwaylabs/golf-pool/internal/models"
	"github.com/fairwaylabs/golf-pool/internal/scoring"
)

var (
	refreshCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "golfpool_refresh_cycles_total",
		Help: "Refresh cycles by outcome.",
	}, []string{"status"})
	lastRefreshTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "golfpool_last_refresh_timestamp_seconds",
		Help: "Unix time of the last successful refresh cycle.",
	})
	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "golfpool_refresh_duration_seconds",
		Help:    "Wall time of a full refresh cycle (fetch plus scoring).",
		Buckets: prometheus.DefBuckets,
	})
)

// ScoresProvider is the slice of the feed client the refresher needs.
type ScoresProvider interface {
	GetScores(ctx context.Context) ([]models.PlayerRecord, error)
}

// RefreshService owns the single current snapshot. A cron job triggers
// one atomic recompute per interval; cycles never overlap and readers
// only ever see a complete snapshot or the last cycle's error, never a
// mix of old and new data.
type RefreshService struct {
	provider ScoresProvider
	teams    []models.Team
	breaker  *CircuitBreakerService
	logger   *logrus.Logger
	cron     *cron.Cron
	interval time.Duration

	refreshMu sync.Mutex // serializes cycles

	mu       sync.RWMutex // guards snapshot and lastErr
	snapshot *models.Snapshot
	lastErr  error

	isRunning bool
}

func NewRefreshService(
	provider ScoresProvider,
	teams []models.Team,
	breaker *CircuitBreakerService,
	interval time.Duration,
	logger *logrus.Logger,
) *RefreshService {
	cronLogger := cron.VerbosePrintfLogger(logger)

	return &RefreshService{
		provider: provider,
		teams:    teams,
		breaker:  breaker,
		logger:   logger,
		cron:     cron.New(cron.WithLogger(cronLogger)),
		interval: interval,
	}
}

// Start schedules the periodic refresh job and starts the scheduler.
func (s *RefreshService) Start() error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	if s.isRunning {
		return fmt.Errorf("refresh service is already running")
	}

	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.interval)
		defer cancel()
		if _, err := s.Refresh(ctx); err != nil {
			s.logger.WithField("component", "refresher").WithError(err).Error("Scheduled refresh cycle failed")
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule refresh job: %w", err)
	}

	s.cron.Start()
	s.isRunning = true

	s.logger.WithFields(logrus.Fields{
		"component": "refresher",
		"interval":  s.interval.String(),
		"teams":     len(s.teams),
	}).Info("Refresh service started")

	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *RefreshService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.refreshMu.Lock()
	s.isRunning = false
	s.refreshMu.Unlock()

	s.logger.WithField("component", "refresher").Info("Refresh service stopped")
}

// Refresh runs one full cycle: fetch through the circuit breaker, score
// every team, summarize, then swap the snapshot in. On any failure the
// cycle's error replaces the snapshot so stale data is never served.
func (s *RefreshService) Refresh(ctx context.Context) (*models.Snapshot, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	start := time.Now()
	cycleID := uuid.NewString()
	log := s.logger.WithFields(logrus.Fields{
		"component": "refresher",
		"cycle_id":  cycleID,
	})

	records, err := s.fetchScores(ctx)
	if err != nil {
		if !errors.Is(err, models.ErrFeedUnavailable) {
			err = fmt.Errorf("%w: %v", models.ErrFeedUnavailable, err)
		}
		s.recordFailure(err, log)
		return nil, err
	}

	// The penalty score must exist before any team is scored.
	worst, err := scoring.WorstScore(records)
	if err != nil {
		s.recordFailure(err, log)
		return nil, err
	}

	leaderboard, allScores, err := scoring.ScoreTeams(s.teams, records)
	if err != nil {
		s.recordFailure(err, log)
		return nil, err
	}

	snapshot := &models.Snapshot{
		CycleID:     cycleID,
		FetchedAt:   time.Now(),
		WorstScore:  worst,
		Leaderboard: leaderboard,
		Summary:     scoring.Summarize(leaderboard, allScores, s.teams),
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.lastErr = nil
	s.mu.Unlock()

	refreshCycles.WithLabelValues("success").Inc()
	lastRefreshTimestamp.Set(float64(snapshot.FetchedAt.Unix()))
	refreshDuration.Observe(time.Since(start).Seconds())

	log.WithFields(logrus.Fields{
		"teams":       len(leaderboard),
		"players":     len(records),
		"worst_score": worst,
		"duration":    time.Since(start).String(),
	}).Info("Refresh cycle completed")

	return snapshot, nil
}

func (s *RefreshService) fetchScores(ctx context.Context) ([]models.PlayerRecord, error) {
	result, err := s.breaker.Execute(FeedBreakerName, func() (interface{}, error) {
		return s.provider.GetScores(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.PlayerRecord), nil
}

func (s *RefreshService) recordFailure(err error, log *logrus.Entry) {
	s.mu.Lock()
	s.snapshot = nil
	s.lastErr = err
	s.mu.Unlock()

	refreshCycles.WithLabelValues("failure").Inc()
	log.WithError(err).Error("Refresh cycle failed")
}

// Snapshot returns the last completed cycle and whether it is still
// within the refresh interval. A nil snapshot with a non-nil error
// means the last cycle failed; nil/nil means no cycle has run yet.
func (s *RefreshService) Snapshot(now time.Time) (*models.Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, false, s.lastErr
	}
	fresh := now.Sub(s.snapshot.FetchedAt) < s.interval
	return s.snapshot, fresh, nil
}

// LastError returns the error from the most recent failed cycle, if the
// last cycle failed.
func (s *RefreshService) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
