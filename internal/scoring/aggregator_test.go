package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/golf-pool/internal/models"
)

func sixOf(names ...string) []string {
	players := make([]string, 0, models.TeamSize)
	for len(players) < models.TeamSize {
		players = append(players, names[len(players)%len(names)])
	}
	return players
}

func TestWorstScore_MaxOverRawFeed(t *testing.T) {
	records := []models.PlayerRecord{
		{Name: "A", ToPar: "E"},
		{Name: "B", ToPar: "-3"},
		{Name: "C", ToPar: "5", Status: "C"},
		{Name: "D", ToPar: "junk"},
	}

	worst, err := WorstScore(records)
	require.NoError(t, err)
	// Cut players' own scores stay in the pool; only unparseable
	// tokens are excluded.
	assert.Equal(t, 5, worst)
}

func TestWorstScore_NoResolvableScores(t *testing.T) {
	records := []models.PlayerRecord{
		{Name: "A", ToPar: ""},
		{Name: "B", ToPar: "WD"},
	}

	_, err := WorstScore(records)
	assert.ErrorIs(t, err, models.ErrNoResolvableScores)
}

func TestWorstScore_AllNegative(t *testing.T) {
	records := []models.PlayerRecord{
		{Name: "A", ToPar: "-8"},
		{Name: "B", ToPar: "-2"},
	}

	worst, err := WorstScore(records)
	require.NoError(t, err)
	assert.Equal(t, -2, worst)
}

func TestScoreTeams_BestFiveOfSix(t *testing.T) {
	records := []models.PlayerRecord{
		{Name: "A", ToPar: "E"},
		{Name: "B", ToPar: "-3"},
		{Name: "C", ToPar: "5", Status: "C"},
	}
	teams := []models.Team{
		{Name: "Pat", Players: sixOf("A", "B", "C")},
	}

	results, allScores, err := ScoreTeams(teams, records)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Adjusted scores: A=0, B=-3, C=5 (cut, substituted with worst=5),
	// repeated once each. Best five of [0 -3 5 0 -3 5] drops one 5.
	assert.Equal(t, 0-3+5+0-3, results[0].Total)

	require.Len(t, results[0].Players, models.TeamSize)
	assert.Len(t, allScores, models.TeamSize)
	for _, p := range results[0].Players {
		if p.Name == "C" {
			assert.True(t, p.Penalized)
			assert.Equal(t, 5, p.AdjustedScore)
		}
	}
}

func TestScoreTeams_AllSixCut(t *testing.T) {
	records := []models.PlayerRecord{
		{Name: "Leader", ToPar: "-4"},
		{Name: "Straggler", ToPar: "7"},
		{Name: "Gone", ToPar: "2", Status: "C"},
	}
	teams := []models.Team{
		{Name: "Unlucky", Players: sixOf("Gone")},
	}

	results, _, err := ScoreTeams(teams, records)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 5*7, results[0].Total)
}

func TestScoreTeams_MissingPlayersGetWorstScore(t *testing.T) {
	records := []models.PlayerRecord{
		{Name: "Only Player", ToPar: "3"},
	}
	teams := []models.Team{
		{Name: "Ghosts", Players: sixOf("Nobody", "Also Nobody")},
	}

	results, _, err := ScoreTeams(teams, records)
	require.NoError(t, err)
	for _, p := range results[0].Players {
		assert.True(t, p.Penalized)
		assert.Equal(t, 3, p.AdjustedScore)
	}
	assert.Equal(t, 5*3, results[0].Total)
}

func TestScoreTeams_LeaderboardSortedAscending(t *testing.T) {
	records := []models.PlayerRecord{
		{Name: "Low", ToPar: "-6"},
		{Name: "Mid", ToPar: "1"},
		{Name: "High", ToPar: "9"},
	}
	teams := []models.Team{
		{Name: "Back of pack", Players: sixOf("High")},
		{Name: "Front runner", Players: sixOf("Low")},
		{Name: "Middle", Players: sixOf("Mid")},
	}

	results, _, err := ScoreTeams(teams, records)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "Front runner", results[0].Team.Name)
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].Total, results[i].Total)
	}
}

func TestScoreTeams_TiesKeepRosterOrder(t *testing.T) {
	records := []models.PlayerRecord{
		{Name: "Par Machine", ToPar: "E"},
	}
	teams := []models.Team{
		{Name: "First Listed", Players: sixOf("Par Machine")},
		{Name: "Second Listed", Players: sixOf("Par Machine")},
	}

	results, _, err := ScoreTeams(teams, records)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "First Listed", results[0].Team.Name)
	assert.Equal(t, "Second Listed", results[1].Team.Name)
}

func TestScoreTeams_FailsWithoutResolvableScores(t *testing.T) {
	teams := []models.Team{
		{Name: "Pat", Players: sixOf("Anyone")},
	}

	_, _, err := ScoreTeams(teams, nil)
	assert.ErrorIs(t, err, models.ErrNoResolvableScores)

	_, _, err = ScoreTeams(teams, []models.PlayerRecord{{Name: "A", ToPar: "n/a"}})
	assert.ErrorIs(t, err, models.ErrNoResolvableScores)
}

func TestScoreTeams_Idempotent(t *testing.T) {
	records := []models.PlayerRecord{
		{Name: "A", ToPar: "-2"},
		{Name: "B", ToPar: "4"},
		{Name: "C", ToPar: "E", Status: "C"},
	}
	teams := []models.Team{
		{Name: "One", Players: sixOf("A", "B")},
		{Name: "Two", Players: sixOf("B", "C")},
	}

	first, firstScores, err := ScoreTeams(teams, records)
	require.NoError(t, err)
	second, secondScores, err := ScoreTeams(teams, records)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstScores, secondScores)
}
