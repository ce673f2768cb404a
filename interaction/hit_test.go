package interaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pointfield/core"
	"github.com/katalvlaran/pointfield/interaction"
)

func TestHitTest(t *testing.T) {
	points := map[string]core.Point{
		"1":  {X: 0, Y: 0},
		"2":  {X: 10, Y: 0},
		"10": {X: 20, Y: 0},
		"3":  {X: 20, Y: 0}, // same spot as "10"
	}

	tests := []struct {
		name   string
		x, y   float64
		radius float64
		want   string
		hit    bool
	}{
		{"exact", 0, 0, 8, "1", true},
		{"inside radius", 3, 4, 8, "1", true},
		{"on the rim", -6, 8, 10, "1", true},
		{"outside radius", 0, 9, 8, "", false},
		{"nearest wins", 6, 0, 8, "2", true},
		{"equidistant uses natural order", 5, 0, 8, "1", true},
		{"stacked points", 20, 0, 8, "3", true},
		{"empty space", 100, 100, 8, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := interaction.HitTest(points, tc.x, tc.y, tc.radius)
			assert.Equal(t, tc.hit, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	_, ok := interaction.HitTest(nil, 0, 0, 8)
	assert.False(t, ok)
}

func TestParseMode(t *testing.T) {
	for _, m := range []interaction.Mode{
		interaction.ModeIdle, interaction.ModeAdd, interaction.ModeEdit,
		interaction.ModeDelete, interaction.ModeLink,
	} {
		got, err := interaction.ParseMode(m.String())
		assert.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := interaction.ParseMode("draw")
	assert.ErrorIs(t, err, interaction.ErrUnknownMode)
	assert.Equal(t, "Mode(42)", interaction.Mode(42).String())
}
