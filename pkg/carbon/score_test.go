package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSustainabilityScore(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  int
	}{
		{"no emissions", 0, 100},
		{"baseline", 25, 0},
		{"double baseline clamps at zero", 50, 0},
		{"half baseline", 12.5, 50},
		{"end to end scenario", 12.57, 50},
		{"quarter kilo", 0.25, 99},
		{"just below baseline", 24.9, 0},
		{"small footprint", 1, 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SustainabilityScore(tt.total))
		})
	}
}

func TestSustainabilityScoreIsMonotonic(t *testing.T) {
	prev := SustainabilityScore(0)
	for kg := 0.0; kg <= 40; kg += 0.37 {
		score := SustainabilityScore(kg)
		assert.LessOrEqual(t, score, prev, "score increased at %.2f kg", kg)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
		prev = score
	}
}
