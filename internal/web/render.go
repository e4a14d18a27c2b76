package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/fairwaylabs/golf-pool/internal/models"
)

//go:embed templates/dashboard.html.tmpl
var templateFS embed.FS

// PlayerCell is one roster slot as rendered in the leaderboard table.
type PlayerCell struct {
	Name     string
	Score    string
	Cut      bool
	ImageURL string
}

// TeamRow is one rendered leaderboard row.
type TeamRow struct {
	Rank    int
	Name    string
	Players []PlayerCell
	Total   int
}

// DashboardView is everything the dashboard template needs. When Error
// is non-empty the template renders the error panel instead of the
// leaderboard, so a failed cycle never shows stale data.
type DashboardView struct {
	GeneratedAt string
	Fresh       bool
	Error       string
	Leaderboard []TeamRow
	Summary     models.Summary
}

// Renderer renders the structured leaderboard and summary into the
// dashboard page. Markup lives entirely here; the scoring engine knows
// nothing about presentation.
type Renderer struct {
	tmpl        *template.Template
	headshotURL string
}

// NewRenderer parses the embedded dashboard template. headshotURL is a
// fmt template with one %s verb for the player id; empty disables
// headshots.
func NewRenderer(headshotURL string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/dashboard.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}
	return &Renderer{
		tmpl:        tmpl,
		headshotURL: headshotURL,
	}, nil
}

// Dashboard writes the full dashboard page for a snapshot. A nil
// snapshot renders the error panel with the cycle's failure reason.
func (r *Renderer) Dashboard(w io.Writer, snapshot *models.Snapshot, fresh bool, cycleErr error) error {
	view := DashboardView{
		GeneratedAt: time.Now().Format("Jan 2 15:04:05 MST"),
		Fresh:       fresh,
	}

	if snapshot == nil {
		view.Error = "Could not fetch live tournament data."
		if cycleErr != nil {
			view.Error = fmt.Sprintf("Could not fetch live tournament data: %s.", cycleErr)
		}
		return r.tmpl.Execute(w, view)
	}

	view.Summary = snapshot.Summary
	view.Leaderboard = make([]TeamRow, 0, len(snapshot.Leaderboard))
	for i, result := range snapshot.Leaderboard {
		row := TeamRow{
			Rank:    i + 1,
			Name:    result.Team.Name,
			Players: make([]PlayerCell, 0, len(result.Players)),
			Total:   result.Total,
		}
		for _, player := range result.Players {
			cell := PlayerCell{
				Name:  player.Name,
				Score: formatToPar(player.AdjustedScore),
				Cut:   player.Penalized,
			}
			if player.ID != "" && r.headshotURL != "" {
				cell.ImageURL = fmt.Sprintf(r.headshotURL, player.ID)
			}
			row.Players = append(row.Players, cell)
		}
		view.Leaderboard = append(view.Leaderboard, row)
	}

	return r.tmpl.Execute(w, view)
}

// formatToPar renders an adjusted score the way golf leaderboards do:
// "E" for even, explicit sign otherwise.
func formatToPar(score int) string {
	switch {
	case score == 0:
		return "E"
	case score > 0:
		return "+" + strconv.Itoa(score)
	default:
		return strconv.Itoa(score)
	}
}
