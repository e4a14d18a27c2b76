package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToPar(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		score int
		ok    bool
	}{
		{"even par", "E", 0, true},
		{"under par", "-3", -3, true},
		{"over par", "5", 5, true},
		{"explicit plus sign", "+2", 2, true},
		{"zero", "0", 0, true},
		{"large score", "36", 36, true},
		{"empty token", "", 0, false},
		{"dashes", "--", 0, false},
		{"withdrawn marker", "WD", 0, false},
		{"lowercase e is not even", "e", 0, false},
		{"decimal", "1.5", 0, false},
		{"embedded whitespace", " 3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := NormalizeToPar(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.score, score)
		})
	}
}
