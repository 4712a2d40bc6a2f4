package dactyl

import (
	"testing"

	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/soypat/geometry/ms3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrewInsertsStandOnBed(t *testing.T) {
	p := DefaultParams()
	g := newGenerator(p)
	sites := g.screwInsertPositions()
	require.Len(t, sites, 5)
	for _, s := range sites {
		assert.True(t, p.hasKey(s.col, s.row), "boss site (%d,%d) must reference a populated key", s.col, s.row)
	}
	bb := g.screwInsertOuters().Bounds()
	assert.InDelta(t, 0, bb.Min.Z, 1e-3, "bosses grow up from the print bed")
	require.NoError(t, g.bld.Err())
}

func TestScrewInsertHolesFitInsideOuters(t *testing.T) {
	g := newGenerator(DefaultParams())
	outer := g.screwInsertOuters().Bounds()
	hole := g.screwInsertHoles().Bounds()
	assert.LessOrEqual(t, outer.Min.X, hole.Min.X)
	assert.GreaterOrEqual(t, outer.Max.X, hole.Max.X)
	assert.LessOrEqual(t, outer.Min.Y, hole.Min.Y)
	assert.GreaterOrEqual(t, outer.Max.Y, hole.Max.Y)
}

func TestThumbStabilizerCutouts(t *testing.T) {
	g := newGenerator(DefaultParams())
	n := 0
	err := g.thumbStabilizerCutouts().ForEachChild(nil, func(any, *scadbuild.Shape3D) error {
		n++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, n, "two slots per 2u thumb mount")
	require.NoError(t, g.bld.Err())
}

func TestPalmRestStandsOnBed(t *testing.T) {
	p := DefaultParams()
	p.PalmRest = true
	g := newGenerator(p)
	bb := g.palmRest().Bounds()
	assert.InDelta(t, 0, bb.Min.Z, 1e-3)
	origin := g.thumbOrigin()
	assert.Less(t, bb.Max.Y, origin.Y, "rest sits in front of the cluster")

	out, err := Generate(p)
	require.NoError(t, err)
	require.NotNil(t, out.RightCase)
}

func TestUSBHolderSitsBehindInnerColumn(t *testing.T) {
	g := newGenerator(DefaultParams())
	pos := g.usbHolderPosition()
	key := g.keyPosition(g.p.firstCol(), 0, ms3.Vec{})
	assert.Less(t, pos.X, key.X, "holder sits left of the first column")
	bb := g.usbHolder().Bounds()
	assert.InDelta(t, 0, bb.Min.Z, 1e-3)
	require.NoError(t, g.bld.Err())
}
