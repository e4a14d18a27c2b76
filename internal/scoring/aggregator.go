package scoring

import (
	"sort"

	"github.com/fairwaylabs/golf-pool/internal/models"
)

// countedScores is how many of a team's six adjusted scores count
// toward its total (best five, worst one dropped).
const countedScores = models.TeamSize - 1

// WorstScore returns the maximum normalizable to-par across the raw
// feed. The pool deliberately includes cut players' own scores; the
// penalty only overrides them downstream when a team picked them.
// Returns ErrNoResolvableScores when nothing in the feed normalizes.
func WorstScore(records []models.PlayerRecord) (int, error) {
	worst, found := 0, false
	for _, rec := range records {
		score, ok := NormalizeToPar(rec.ToPar)
		if !ok {
			continue
		}
		if !found || score > worst {
			worst, found = score, true
		}
	}
	if !found {
		return 0, models.ErrNoResolvableScores
	}
	return worst, nil
}

// ScoreTeams runs one full aggregation pass: resolves every roster slot
// against the feed, substitutes the worst score for penalized players,
// totals the best five of six per team, and returns the results sorted
// ascending by total. Ties keep roster order (stable sort). The second
// return value is every (player, adjusted score) pair in team/tier
// iteration order, for the summary reporter.
func ScoreTeams(teams []models.Team, records []models.PlayerRecord) ([]models.TeamResult, []models.PlayerScore, error) {
	worst, err := WorstScore(records)
	if err != nil {
		return nil, nil, err
	}

	idx := BuildFeedIndex(records)

	results := make([]models.TeamResult, 0, len(teams))
	allScores := make([]models.PlayerScore, 0, len(teams)*models.TeamSize)

	for _, team := range teams {
		result := models.TeamResult{
			Team:    team,
			Players: make([]models.ResolvedPlayer, 0, models.TeamSize),
		}
		adjusted := make([]int, 0, models.TeamSize)

		for _, slot := range team.Players {
			player := Resolve(slot, idx)
			if player.Penalized {
				player.AdjustedScore = worst
			}
			result.Players = append(result.Players, player)
			adjusted = append(adjusted, player.AdjustedScore)
			allScores = append(allScores, models.PlayerScore{
				Name:          player.Name,
				AdjustedScore: player.AdjustedScore,
			})
		}

		sort.Ints(adjusted)
		for _, score := range adjusted[:countedScores] {
			result.Total += score
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Total < results[j].Total
	})

	return results, allScores, nil
}
