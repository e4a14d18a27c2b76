package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/golf-pool/internal/models"
)

func healthRouter(source SnapshotSource) *gin.Engine {
	handler := NewHealthHandler(nil, source, testLogger())
	router := gin.New()
	router.GET("/health", handler.GetHealth)
	router.GET("/ready", handler.GetReady)
	return router
}

func TestGetHealth_CacheDisabled(t *testing.T) {
	router := healthRouter(&fakeSource{})

	w := performRequest(router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
}

func TestGetReady_WithSnapshot(t *testing.T) {
	router := healthRouter(&fakeSource{snapshot: testSnapshot(), fresh: true})

	w := performRequest(router, http.MethodGet, "/ready")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"snapshot":"ok"`)
}

func TestGetReady_StaleSnapshotStillReady(t *testing.T) {
	router := healthRouter(&fakeSource{snapshot: testSnapshot(), fresh: false})

	w := performRequest(router, http.MethodGet, "/ready")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"snapshot":"stale"`)
}

func TestGetReady_BeforeFirstCycle(t *testing.T) {
	router := healthRouter(&fakeSource{})

	w := performRequest(router, http.MethodGet, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "pending first refresh")
}

func TestGetReady_FailedCycle(t *testing.T) {
	router := healthRouter(&fakeSource{err: models.ErrFeedUnavailable})

	w := performRequest(router, http.MethodGet, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not_ready")
}
