package dactyl

import (
	"fmt"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The pipeline's central invariant: posing a solid and posing a bare point
// through the same key address must land at the same coordinates.
func TestPoseConsistencyShapeVsPoint(t *testing.T) {
	for _, style := range []ColumnStyle{ColumnStandard, ColumnOrthographic, ColumnFixed} {
		t.Run(style.String(), func(t *testing.T) {
			p := DefaultParams()
			p.ColumnStyle = style
			g := newGenerator(p)
			const eps = 0.002
			const tol = 1e-2
			for col := p.firstCol(); col <= p.lastCol(); col++ {
				for row := 0; row <= p.lastRow(); row++ {
					if !p.hasKey(col, row) {
						continue
					}
					for _, c := range []corner{cornerTR, cornerTL, cornerBL, cornerBR} {
						off := cornerOffset(c, p.wideKey(col, row))
						marker := g.bld.TranslateVec(g.bld.NewCube(eps, eps, eps), off)
						got := g.keyPlace(col, row, marker).Bounds().Center()
						want := g.keyPosition(col, row, off)
						msg := fmt.Sprintf("key (%d,%d) corner %d", col, row, c)
						require.InDelta(t, want.X, got.X, tol, msg)
						require.InDelta(t, want.Y, got.Y, tol, msg)
						require.InDelta(t, want.Z, got.Z, tol, msg)
					}
				}
			}
			require.NoError(t, g.bld.Err())
		})
	}
}

func TestPoseDeterminism(t *testing.T) {
	p := DefaultParams()
	g := newGenerator(p)
	for col := p.firstCol(); col <= p.lastCol(); col++ {
		for row := 0; row <= p.lastRow(); row++ {
			a := g.keyPosition(col, row, ms3.Vec{X: 1, Y: 2, Z: 3})
			b := g.keyPosition(col, row, ms3.Vec{X: 1, Y: 2, Z: 3})
			require.Equal(t, a, b, "pose of (%d,%d) must be bit-identical", col, row)
		}
	}
}

// At the center key both arcs contribute zero curvature, so the standard and
// orthographic styles must agree there.
func TestCenterKeyStandardOrthoAgree(t *testing.T) {
	std := DefaultParams()
	std.ColumnStyle = ColumnStandard
	ortho := DefaultParams()
	ortho.ColumnStyle = ColumnOrthographic

	gStd := newGenerator(std)
	gOrtho := newGenerator(ortho)
	col, row := std.CenterCol, std.centerRow()
	a := gStd.keyPosition(col, row, ms3.Vec{})
	b := gOrtho.keyPosition(col, row, ms3.Vec{})
	assert.InDelta(t, a.X, b.X, 1e-3)
	assert.InDelta(t, a.Y, b.Y, 1e-3)
	assert.InDelta(t, a.Z, b.Z, 1e-3)
}

// The fixed style applies its per-column tables verbatim: at the center row
// the pose reduces to the table entries plus tenting, and the column arc
// angle beta must not enter at all.
func TestFixedStyleAppliesTables(t *testing.T) {
	p := DefaultParams()
	p.ColumnStyle = ColumnFixed
	g := newGenerator(p)
	s, c := math32.Sincos(p.TentingAngle)
	for col := p.firstCol(); col <= p.lastCol(); col++ {
		fx, fz := fixedX[col], fixedZ[col]
		want := ms3.Vec{
			X: fx*c + fz*s,
			Y: p.columnOffset(col).Y,
			Z: -fx*s + fz*c + p.KeyboardZOffset,
		}
		got := g.keyPosition(col, p.centerRow(), ms3.Vec{})
		assert.InDelta(t, want.X, got.X, 1e-3, "column %d", col)
		assert.InDelta(t, want.Y, got.Y, 1e-3, "column %d", col)
		assert.InDelta(t, want.Z, got.Z, 1e-3, "column %d", col)
	}
}

func TestFixedStyleIgnoresBeta(t *testing.T) {
	a := DefaultParams()
	a.ColumnStyle = ColumnFixed
	b := a
	b.Beta = math32.Pi / 20
	ga := newGenerator(a)
	gb := newGenerator(b)
	for col := a.firstCol(); col <= a.lastCol(); col++ {
		for row := 0; row <= a.lastRow(); row++ {
			require.Equal(t,
				ga.keyPosition(col, row, ms3.Vec{}),
				gb.keyPosition(col, row, ms3.Vec{}),
				"fixed pose of (%d,%d) must not depend on beta", col, row)
		}
	}
}
