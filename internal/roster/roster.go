package roster

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fairwaylabs/golf-pool/internal/models"
)

type rosterFile struct {
	Teams []models.Team `yaml:"teams"`
}

// Load reads the static team roster from a YAML file and validates it.
// The roster is loaded once at startup and is immutable afterwards;
// every team must name exactly six players, one per tier.
func Load(path string) ([]models.Team, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	if err := validate(file.Teams); err != nil {
		return nil, err
	}

	return file.Teams, nil
}

func validate(teams []models.Team) error {
	if len(teams) == 0 {
		return fmt.Errorf("roster contains no teams")
	}

	names := make(map[string]bool, len(teams))
	for i, team := range teams {
		name := strings.TrimSpace(team.Name)
		if name == "" {
			return fmt.Errorf("roster team %d has no name", i+1)
		}
		if names[name] {
			return fmt.Errorf("duplicate team name %q in roster", name)
		}
		names[name] = true

		if len(team.Players) != models.TeamSize {
			return fmt.Errorf("team %q has %d tier picks, want exactly %d", name, len(team.Players), models.TeamSize)
		}
		for tier, player := range team.Players {
			if strings.TrimSpace(player) == "" {
				return fmt.Errorf("team %q has an empty pick for tier %d", name, tier+1)
			}
		}
	}

	return nil
}
