package dactyl

import (
	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/soypat/geometry/ms3"
)

// corner identifies one of the four reference posts of a mount's footprint.
type corner int

const (
	cornerTR corner = iota
	cornerTL
	cornerBL
	cornerBR
)

// cornerOffset is the post center in the key's local frame. Wide offsets
// belong to the 1.5u footprint of the pinky column.
func cornerOffset(c corner, wide bool) ms3.Vec {
	x := float32(mountWidth/2 - postAdj)
	if wide {
		x = mountWidth/1.2 - postAdj
	}
	y := float32(mountHeight/2 - postAdj)
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

// webPost is the thin reference post hulled into connectors and walls. It is
// flush with the top of the plate.
func (g *Generator) webPost() scadbuild.Shape3D {
	return g.bld.Translate(
		g.bld.NewCube(postSize, postSize, webThickness),
		0, 0, plateThickness-webThickness/2,
	)
}

// post is webPost moved to a corner of the mount footprint.
func (g *Generator) post(c corner, wide bool) scadbuild.Shape3D {
	return g.bld.TranslateVec(g.webPost(), cornerOffset(c, wide))
}

// keyPost is a placed corner post of a matrix key.
func (g *Generator) keyPost(col, row int, c corner, wide bool) scadbuild.Shape3D {
	return g.keyPlace(col, row, g.post(c, wide))
}

// web hulls already-placed corner posts into one connector panel. Callers
// only invoke it on posts that are geometric neighbors; no adjacency
// detection happens here.
func (g *Generator) web(posts ...scadbuild.Shape3D) scadbuild.Shape3D {
	return g.bld.Hull(posts...)
}

// connectors stitches every pair of adjacent mounts together with convex-hull
// webbing: one panel per horizontal pair, one per vertical pair and one per
// 2x2 block's inner diagonal. The hasKey predicate drives all three
// enumerations, so the inner column's short run and the optional extra row
// need no separate passes.
func (g *Generator) connectors() scadbuild.Shape3D {
	p := &g.p
	var shapes []scadbuild.Shape3D
	for col := p.firstCol(); col < p.lastCol(); col++ {
		for row := 0; row <= p.lastRow(); row++ {
			if p.hasKey(col, row) && p.hasKey(col+1, row) {
				shapes = append(shapes, g.web(
					g.keyPost(col+1, row, cornerTL, false),
					g.keyPost(col, row, cornerTR, false),
					g.keyPost(col+1, row, cornerBL, false),
					g.keyPost(col, row, cornerBR, false),
				))
			}
		}
	}
	for col := p.firstCol(); col <= p.lastCol(); col++ {
		for row := 0; row < p.lastRow(); row++ {
			if p.hasKey(col, row) && p.hasKey(col, row+1) {
				shapes = append(shapes, g.web(
					g.keyPost(col, row, cornerBL, false),
					g.keyPost(col, row, cornerBR, false),
					g.keyPost(col, row+1, cornerTL, false),
					g.keyPost(col, row+1, cornerTR, false),
				))
			}
		}
	}
	for col := p.firstCol(); col < p.lastCol(); col++ {
		for row := 0; row < p.lastRow(); row++ {
			if p.hasKey(col, row) && p.hasKey(col, row+1) &&
				p.hasKey(col+1, row) && p.hasKey(col+1, row+1) {
				shapes = append(shapes, g.web(
					g.keyPost(col, row, cornerBR, false),
					g.keyPost(col, row+1, cornerTR, false),
					g.keyPost(col+1, row, cornerBL, false),
					g.keyPost(col+1, row+1, cornerTL, false),
				))
			}
		}
	}
	return g.unionAll(shapes)
}

// wide15uRows returns the clamped, populated 1.5u row range of the pinky
// column. ok is false when the toggle is off or the range is empty, in which
// case the widening contributes no geometry.
func (p *Params) wide15uRows() (first, last int, ok bool) {
	if !p.PinkyWide {
		return 0, 0, false
	}
	first = p.First15uRow
	if first < 0 {
		first = 0
	}
	last = p.Last15uRow
	if bottom := p.bottomRow(p.lastCol()); last > bottom {
		last = bottom
	}
	return first, last, first <= last
}

// pinkyConnectors bridges the pinky column's standard posts to its 1.5u wide
// posts so the widened footprint meets the right wall without a gap. Both
// post variants of the same corner are hulled together along the range, plus
// blend panels where a wide row meets a narrow neighbor above or below.
func (g *Generator) pinkyConnectors() scadbuild.Shape3D {
	p := &g.p
	first, last, ok := p.wide15uRows()
	if !ok {
		return nil
	}
	col := p.lastCol()
	var shapes []scadbuild.Shape3D
	for row := first; row <= last; row++ {
		if !p.hasKey(col, row) {
			continue
		}
		shapes = append(shapes, g.web(
			g.keyPost(col, row, cornerTR, false),
			g.keyPost(col, row, cornerTR, true),
			g.keyPost(col, row, cornerBR, false),
			g.keyPost(col, row, cornerBR, true),
		))
	}
	for row := first; row < last; row++ {
		if !p.hasKey(col, row) || !p.hasKey(col, row+1) {
			continue
		}
		shapes = append(shapes, g.web(
			g.keyPost(col, row, cornerBR, false),
			g.keyPost(col, row, cornerBR, true),
			g.keyPost(col, row+1, cornerTR, false),
			g.keyPost(col, row+1, cornerTR, true),
		))
	}
	if first > 0 && p.hasKey(col, first-1) {
		shapes = append(shapes, g.web(
			g.keyPost(col, first-1, cornerBR, false),
			g.keyPost(col, first, cornerTR, false),
			g.keyPost(col, first, cornerTR, true),
		))
	}
	if bottom := p.bottomRow(col); last < bottom && p.hasKey(col, last+1) {
		shapes = append(shapes, g.web(
			g.keyPost(col, last, cornerBR, false),
			g.keyPost(col, last, cornerBR, true),
			g.keyPost(col, last+1, cornerTR, false),
		))
	}
	return g.unionAll(shapes)
}
