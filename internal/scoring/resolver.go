package scoring

import (
	"strings"

	"github.com/fairwaylabs/golf-pool/internal/models"
)

// Player status values produced by resolution. The feed itself only
// guarantees "C" for cut players; anything absent defaults to OK.
const (
	StatusOK       = "OK"
	StatusCut      = "C"
	StatusNotFound = "NOT FOUND"
)

// FeedIndex maps a normalized player name to its feed record.
type FeedIndex map[string]models.PlayerRecord

// BuildFeedIndex indexes feed records by trimmed, lowercased name so
// roster lookups are case and whitespace insensitive. Later duplicates
// of the same name win, matching a plain map rebuild of the feed.
func BuildFeedIndex(records []models.PlayerRecord) FeedIndex {
	idx := make(FeedIndex, len(records))
	for _, rec := range records {
		idx[normalizeName(rec.Name)] = rec
	}
	return idx
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolve looks up a roster slot in the feed index. It never fails: a
// missing entry, a cut status, or an unparseable to-par token all come
// back as a penalized player whose AdjustedScore is filled in by the
// aggregator with the cycle's worst score.
func Resolve(name string, idx FeedIndex) models.ResolvedPlayer {
	display := strings.TrimSpace(name)

	rec, found := idx[normalizeName(name)]
	if !found {
		return models.ResolvedPlayer{
			Name:      display,
			Penalized: true,
			Status:    StatusNotFound,
		}
	}

	status := rec.Status
	if status == "" {
		status = StatusOK
	}

	resolved := models.ResolvedPlayer{
		Name:   display,
		Status: status,
		ID:     rec.ID,
	}

	score, ok := NormalizeToPar(rec.ToPar)
	if !ok || strings.EqualFold(status, StatusCut) {
		resolved.Penalized = true
		return resolved
	}

	resolved.AdjustedScore = score
	return resolved
}
