package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyGravity(t *testing.T) {
	assert.InDelta(t, 1.5, ApplyGravity(1, 0.5, 4), 1e-9)
	assert.Equal(t, 4.0, ApplyGravity(3.9, 0.5, 4))
	assert.InDelta(t, 10.5, ApplyGravity(10, 0.5, 0), 1e-9, "no cap without a max fall speed")
}

func TestApproach(t *testing.T) {
	assert.Equal(t, 5.0, Approach(0, 10, 0.5))
	assert.Equal(t, 10.0, Approach(10, 10, 0.3))
	assert.Equal(t, 0.0, Approach(0, 10, 0))
}

func TestClampToSpan(t *testing.T) {
	tests := []struct {
		name               string
		target, view, span float64
		want               float64
	}{
		{"inside", 500, 200, 1000, 500},
		{"left edge", 20, 200, 1000, 100},
		{"right edge", 990, 200, 1000, 900},
		{"span smaller than view", 50, 200, 120, 60},
		{"unknown span", 42, 200, 0, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampToSpan(tt.target, tt.view, tt.span))
		})
	}
}
