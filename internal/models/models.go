package models

import "time"

// TeamSize is the number of roster slots per team, one per tier 1-6.
const TeamSize = 6

// PlayerRecord is a single entry from the live scores feed. It is a
// read-only snapshot for one refresh cycle; the feed owns the data.
type PlayerRecord struct {
	Name   string `json:"full_name"`
	ToPar  string `json:"topar"`
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
}

// ResolvedPlayer is a roster slot after lookup against the feed.
// AdjustedScore carries the penalty substitution when Penalized is set.
type ResolvedPlayer struct {
	Name          string `json:"name"`
	AdjustedScore int    `json:"adjusted_score"`
	Penalized     bool   `json:"penalized"`
	Status        string `json:"status"`
	ID            string `json:"id,omitempty"`
}

// Team is one pool entry: a person and their six picks, ordered by tier.
type Team struct {
	Name    string   `json:"name" yaml:"name"`
	Players []string `json:"players" yaml:"tiers"`
}

// TeamResult is a scored team for one refresh cycle.
type TeamResult struct {
	Team    Team             `json:"team"`
	Players []ResolvedPlayer `json:"players"`
	Total   int              `json:"total"`
}

// PlayerScore pairs a player name with the adjusted score used for them.
type PlayerScore struct {
	Name          string `json:"name"`
	AdjustedScore int    `json:"adjusted_score"`
}

// PickCount is how many teams picked a player within one tier.
type PickCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TierPicks lists pick frequencies for one tier, most-picked first.
type TierPicks struct {
	Tier  int         `json:"tier"`
	Picks []PickCount `json:"picks"`
}

// Summary holds the sidebar facts derived from a scored leaderboard.
type Summary struct {
	Leader     string      `json:"leader"`
	BestPlayer PlayerScore `json:"best_player"`
	TierPicks  []TierPicks `json:"tier_picks"`
}

// Snapshot is the complete output of one refresh cycle. Cycles are
// all-or-nothing; a Snapshot never mixes data from two fetches.
type Snapshot struct {
	CycleID     string       `json:"cycle_id"`
	FetchedAt   time.Time    `json:"fetched_at"`
	WorstScore  int          `json:"worst_score"`
	Leaderboard []TeamResult `json:"leaderboard"`
	Summary     Summary      `json:"summary"`
}
