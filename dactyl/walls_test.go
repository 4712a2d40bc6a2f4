package dactyl

import (
	"sort"
	"testing"

	"github.com/soypat/geometry/ms3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerimeterFormsClosedLoop(t *testing.T) {
	for _, style := range []ColumnStyle{ColumnStandard, ColumnOrthographic, ColumnFixed} {
		t.Run(style.String(), func(t *testing.T) {
			p := DefaultParams()
			p.ColumnStyle = style
			g := newGenerator(p)
			segs, err := g.perimeter()
			require.NoError(t, err)
			require.NotEmpty(t, segs)
			// Consecutive anchors, wraparound included, must stay within a key
			// pitch of each other or the wall would tear.
			const maxGap = 30.0
			for i := range segs {
				a := g.segmentPosition(segs[i])
				b := g.segmentPosition(segs[(i+1)%len(segs)])
				gap := ms3.Norm(ms3.Sub(a, b))
				assert.LessOrEqualf(t, gap, float32(maxGap),
					"gap of %.1fmm between segments %d and %d", gap, i, (i+1)%len(segs))
			}
		})
	}
}

func TestPerimeterStartsAtBackLeft(t *testing.T) {
	p := DefaultParams()
	g := newGenerator(p)
	segs, err := g.perimeter()
	require.NoError(t, err)
	assert.Equal(t, wallSegment{col: 0, row: 0, c: cornerTL, dy: 1}, segs[0])
}

func TestPerimeterTracksExtraRow(t *testing.T) {
	p := DefaultParams()
	p.ExtraRow = true
	g := newGenerator(p)
	segs, err := g.perimeter()
	require.NoError(t, err)
	for _, s := range segs {
		if s.dy == -1 && s.col > 0 {
			assert.Equal(t, p.lastRow(), s.row,
				"front wall must follow the extra row on column %d", s.col)
		}
	}
}

func TestPerimeterLeftWallStopsAtShortColumn(t *testing.T) {
	p := DefaultParams()
	g := newGenerator(p)
	segs, err := g.perimeter()
	require.NoError(t, err)
	n := 0
	for _, s := range segs {
		if s.dx == -1 {
			n++
			assert.Equal(t, 0, s.col)
			assert.LessOrEqual(t, s.row, p.cornerRow()-1,
				"left wall cannot anchor on unpopulated inner-column rows")
		}
	}
	assert.Equal(t, 6, n, "two segments per populated inner-column row")
}

func TestPerimeterWideAnchorsOnPinkyColumn(t *testing.T) {
	p := DefaultParams()
	g := newGenerator(p)
	segs, err := g.perimeter()
	require.NoError(t, err)
	for _, s := range segs {
		if s.dx == 1 {
			assert.Equal(t, p.lastCol(), s.col)
			assert.True(t, s.wide, "right wall rides the 1.5u posts by default")
		}
		if s.wide {
			assert.Equal(t, p.lastCol(), s.col, "wide anchors only exist on the pinky column")
		}
	}
}

func TestBraceStructure(t *testing.T) {
	p := DefaultParams()
	g := newGenerator(p)
	a := wallSegment{col: 1, row: 0, c: cornerTL, dy: 1}
	b := wallSegment{col: 1, row: 0, c: cornerTR, dy: 1}
	arities := hullArities(t, g.brace(a, b))
	sort.Ints(arities)
	// One sloped panel over all eight posts, one floor skirt over the four
	// outer lips plus their bed projection.
	assert.Equal(t, []int{5, 8}, arities)
	require.NoError(t, g.bld.Err())
}
