package scoring

import (
	"sort"
	"strings"

	"github.com/fairwaylabs/golf-pool/internal/models"
)

// Summarize derives the sidebar facts from a scored leaderboard: the
// leading team, the single best adjusted score among all picks (first
// occurrence wins ties), and per-tier pick frequencies sorted by
// descending count with first-seen order preserved among equals.
func Summarize(leaderboard []models.TeamResult, allScores []models.PlayerScore, teams []models.Team) models.Summary {
	summary := models.Summary{}

	if len(leaderboard) > 0 {
		summary.Leader = leaderboard[0].Team.Name
	}

	if len(allScores) > 0 {
		best := allScores[0]
		for _, ps := range allScores[1:] {
			if ps.AdjustedScore < best.AdjustedScore {
				best = ps
			}
		}
		summary.BestPlayer = best
	}

	summary.TierPicks = make([]models.TierPicks, 0, models.TeamSize)
	for tier := 0; tier < models.TeamSize; tier++ {
		picks := make([]models.PickCount, 0, len(teams))
		seen := make(map[string]int, len(teams))

		for _, team := range teams {
			if tier >= len(team.Players) {
				continue
			}
			name := strings.TrimSpace(team.Players[tier])
			if i, ok := seen[name]; ok {
				picks[i].Count++
				continue
			}
			seen[name] = len(picks)
			picks = append(picks, models.PickCount{Name: name, Count: 1})
		}

		sort.SliceStable(picks, func(i, j int) bool {
			return picks[i].Count > picks[j].Count
		})

		summary.TierPicks = append(summary.TierPicks, models.TierPicks{
			Tier:  tier + 1,
			Picks: picks,
		})
	}

	return summary
}
