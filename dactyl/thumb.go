package dactyl

import (
	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/soypat/geometry/ms3"
)

// thumbOrigin anchors the thumb cluster: the bottom-right corner of the
// second column's corner-row key, displaced by the configured thumb offsets.
// Computed through the point path of the placement pipeline.
func (g *Generator) thumbOrigin() ms3.Vec {
	v := g.keyPosition(1, g.p.cornerRow(), ms3.Vec{X: mountWidth / 2, Y: -mountHeight / 2})
	return ms3.Add(v, g.p.ThumbOffsets)
}

// thumbKey is one hand-tuned rigid transform of the cluster: rotations about
// X, Y then Z, followed by a translation from the thumb origin. The cluster
// never participates in column-style switching.
type thumbKey struct {
	rot  ms3.Vec
	off  ms3.Vec
	wide bool
}

// Cluster layout, upper pair first. The two upper keys host 2u mounts
// rotated a quarter turn.
var thumbKeys = [4]thumbKey{
	{rot: ms3.Vec{X: 10 * deg2rad, Y: -23 * deg2rad, Z: 10 * deg2rad}, off: ms3.Vec{X: -12, Y: -16, Z: 3}, wide: true},
	{rot: ms3.Vec{X: 10 * deg2rad, Y: -23 * deg2rad, Z: 10 * deg2rad}, off: ms3.Vec{X: -32, Y: -15, Z: -2}, wide: true},
	{rot: ms3.Vec{X: -6 * deg2rad, Y: -34 * deg2rad, Z: 48 * deg2rad}, off: ms3.Vec{X: -29, Y: -40, Z: -13}},
	{rot: ms3.Vec{X: 6 * deg2rad, Y: -34 * deg2rad, Z: 40 * deg2rad}, off: ms3.Vec{X: -51, Y: -25, Z: -12}},
}

const (
	thumbTR = iota
	thumbTL
	thumbMR
	thumbML
)

func (g *Generator) thumbPlace(k thumbKey, s scadbuild.Shape3D) scadbuild.Shape3D {
	bld := g.bld
	s = bld.RotateX(s, k.rot.X)
	s = bld.RotateY(s, k.rot.Y)
	s = bld.RotateZ(s, k.rot.Z)
	return bld.TranslateVec(s, ms3.Add(g.thumbOrigin(), k.off))
}

// thumbCornerOffset is the local post position of a thumb mount corner. Wide
// mounts span the 2u keycap length along their rotated long axis.
func thumbCornerOffset(c corner, wide bool) ms3.Vec {
	if !wide {
		return cornerOffset(c, false)
	}
	x := float32(saDoubleLength/2 - postAdj)
	y := float32(mountWidth/2 - postAdj)
	switch c {
	case cornerTR:
		return ms3.Vec{X: x, Y: y}
	case cornerTL:
		return ms3.Vec{X: -x, Y: y}
	case cornerBL:
		return ms3.Vec{X: -x, Y: -y}
	case cornerBR:
		return ms3.Vec{X: x, Y: -y}
	}
	panic("invalid corner")
}

// thumbPost is a placed corner post of one thumb key.
func (g *Generator) thumbPost(i int, c corner) scadbuild.Shape3D {
	k := thumbKeys[i]
	return g.thumbPlace(k, g.bld.TranslateVec(g.webPost(), thumbCornerOffset(c, k.wide)))
}

// thumbCluster places the four thumb mounts.
func (g *Generator) thumbCluster() scadbuild.Shape3D {
	var shapes []scadbuild.Shape3D
	for _, k := range thumbKeys {
		plate := g.singlePlate()
		if k.wide {
			plate = g.plate2u()
		}
		shapes = append(shapes, g.thumbPlace(k, plate))
	}
	return g.unionAll(shapes)
}

// thumbConnectors webs the cluster together and ties its upper edge into the
// main matrix next to the thumb origin.
func (g *Generator) thumbConnectors() scadbuild.Shape3D {
	p := &g.p
	cRow := p.cornerRow()
	var shapes []scadbuild.Shape3D
	add := func(posts ...scadbuild.Shape3D) {
		shapes = append(shapes, g.web(posts...))
	}
	// Within the cluster.
	add(
		g.thumbPost(thumbTL, cornerTR), g.thumbPost(thumbTL, cornerBR),
		g.thumbPost(thumbTR, cornerTL), g.thumbPost(thumbTR, cornerBL),
	)
	add(
		g.thumbPost(thumbML, cornerTR), g.thumbPost(thumbML, cornerBR),
		g.thumbPost(thumbTL, cornerTL), g.thumbPost(thumbTL, cornerBL),
	)
	add(
		g.thumbPost(thumbMR, cornerTL), g.thumbPost(thumbMR, cornerTR),
		g.thumbPost(thumbTL, cornerBL), g.thumbPost(thumbTL, cornerBR),
	)
	add(
		g.thumbPost(thumbML, cornerBR), g.thumbPost(thumbML, cornerTR),
		g.thumbPost(thumbMR, cornerTL), g.thumbPost(thumbMR, cornerBL),
	)
	add(
		g.thumbPost(thumbMR, cornerTR), g.thumbPost(thumbTR, cornerBL),
		g.thumbPost(thumbTR, cornerBR),
	)
	// Ties to the matrix above the cluster.
	add(
		g.thumbPost(thumbTR, cornerTL), g.thumbPost(thumbTR, cornerTR),
		g.keyPost(1, cRow, cornerBL, false), g.keyPost(1, cRow, cornerBR, false),
	)
	add(
		g.thumbPost(thumbTR, cornerTR),
		g.keyPost(1, cRow, cornerBR, false),
		g.keyPost(2, p.bottomRow(2), cornerBL, false),
	)
	add(
		g.thumbPost(thumbTL, cornerTL), g.thumbPost(thumbTL, cornerTR),
		g.keyPost(p.firstCol(), p.bottomRow(p.firstCol()), cornerBL, false),
		g.keyPost(1, cRow, cornerBL, false),
	)
	return g.unionAll(shapes)
}
