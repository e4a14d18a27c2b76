package providers

import (
	"encoding/json"

	"github.com/fairwaylabs/golf-pool/internal/models"
)

// flexString decodes a JSON field that the feed serves as either a
// string or a bare number, depending on the season's envelope.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type feedPlayer struct {
	FullName string     `json:"full_name"`
	ToPar    flexString `json:"topar"`
	Status   string     `json:"status"`
	ID       flexString `json:"id"`
}

// scoresEnvelope covers the two known feed shapes: player records nested
// under "data", or at the top level. Anything else decodes to an empty
// envelope and is treated as no data.
type scoresEnvelope struct {
	Data *struct {
		Player []feedPlayer `json:"player"`
	} `json:"data"`
	Player []feedPlayer `json:"player"`
}

// records flattens whichever envelope shape was present into the
// domain's PlayerRecord slice.
func (e *scoresEnvelope) records() []models.PlayerRecord {
	players := e.Player
	if e.Data != nil && len(e.Data.Player) > 0 {
		players = e.Data.Player
	}

	records := make([]models.PlayerRecord, 0, len(players))
	for _, p := range players {
		records = append(records, models.PlayerRecord{
			Name:   p.FullName,
			ToPar:  string(p.ToPar),
			Status: p.Status,
			ID:     string(p.ID),
		})
	}
	return records
}
