package dactyl

import (
	"testing"

	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasKey(t *testing.T) {
	p := DefaultParams()
	assert.True(t, p.hasKey(0, 0))
	assert.True(t, p.hasKey(0, 2))
	assert.False(t, p.hasKey(0, 3), "inner column stops above the corner row")
	assert.True(t, p.hasKey(1, 3))
	assert.False(t, p.hasKey(1, 4), "bottom row empty without the extra row toggle")
	assert.False(t, p.hasKey(-1, 0))
	assert.False(t, p.hasKey(7, 0))
	assert.False(t, p.hasKey(3, 5))

	p.ExtraRow = true
	assert.True(t, p.hasKey(1, 4))
	assert.False(t, p.hasKey(0, 4), "extra row never reaches the inner column")

	p.InnerColumn = false
	assert.False(t, p.hasKey(0, 0))
}

func TestBottomRow(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 2, p.bottomRow(0))
	assert.Equal(t, 3, p.bottomRow(1))
	assert.Equal(t, 3, p.bottomRow(6))
	p.ExtraRow = true
	assert.Equal(t, 2, p.bottomRow(0))
	assert.Equal(t, 4, p.bottomRow(6))
	p.InnerColumn = false
	assert.Equal(t, -1, p.bottomRow(0))
}

// countKeyMounts walks the placed-mount union and returns the number of
// top-level placements.
func countKeyMounts(t *testing.T, s scadbuild.Shape3D) int {
	n := 0
	err := s.ForEachChild(nil, func(any, *scadbuild.Shape3D) error {
		n++
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestKeyHoleCounts(t *testing.T) {
	cases := []struct {
		name   string
		adjust func(*Params)
		want   int
	}{
		{"defaults", func(*Params) {}, 27},
		{"extra row", func(p *Params) { p.ExtraRow = true }, 33},
		{"no inner column", func(p *Params) { p.InnerColumn = false }, 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.adjust(&p)
			g := newGenerator(p)
			got := countKeyMounts(t, g.keyHoles())
			assert.Equal(t, tc.want, got)
			require.NoError(t, g.bld.Err())
		})
	}
}

func TestWideKey(t *testing.T) {
	p := DefaultParams()
	assert.True(t, p.wideKey(6, 0))
	assert.True(t, p.wideKey(6, 3))
	assert.False(t, p.wideKey(6, 4), "unpopulated rows are never wide")
	assert.False(t, p.wideKey(5, 0), "only the last column widens")
	p.PinkyWide = false
	assert.False(t, p.wideKey(6, 0))
}
