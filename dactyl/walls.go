package dactyl

import (
	"fmt"

	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/soypat/geometry/ms3"
)

// wallSegment is one perimeter anchor: a key corner post plus the outward
// direction the wall leaves it in. The whole shell perimeter is an ordered
// loop of these; braces span consecutive pairs, corners included, so loop
// closure is a property of the list rather than of call order.
type wallSegment struct {
	col, row int
	c        corner
	wide     bool
	dx, dy   float32
}

// The three progressive wall offsets: a small inward lip under the plate, a
// tapered outward-and-down lip and the same lip pushed out by the wall
// thickness.
func (p *Params) wallLocate1(dx, dy float32) ms3.Vec {
	return ms3.Vec{X: dx * p.WallThickness, Y: dy * p.WallThickness, Z: -1}
}

func (p *Params) wallLocate2(dx, dy float32) ms3.Vec {
	return ms3.Vec{X: dx * p.WallXYOffset, Y: dy * p.WallXYOffset, Z: p.WallZOffset}
}

func (p *Params) wallLocate3(dx, dy float32) ms3.Vec {
	off := p.WallXYOffset + p.WallThickness
	return ms3.Vec{X: dx * off, Y: dy * off, Z: p.WallZOffset}
}

// bracePosts places the four post copies of one brace side: the bare corner
// post and its three wall-offset copies.
func (g *Generator) bracePosts(s wallSegment) (post, lip1, lip2, lip3 scadbuild.Shape3D) {
	p := &g.p
	base := g.post(s.c, s.wide)
	post = g.keyPlace(s.col, s.row, base)
	lip1 = g.keyPlace(s.col, s.row, g.bld.TranslateVec(base, p.wallLocate1(s.dx, s.dy)))
	lip2 = g.keyPlace(s.col, s.row, g.bld.TranslateVec(base, p.wallLocate2(s.dx, s.dy)))
	lip3 = g.keyPlace(s.col, s.row, g.bld.TranslateVec(base, p.wallLocate3(s.dx, s.dy)))
	return post, lip1, lip2, lip3
}

// bottomHull hulls the argument shapes together with their projection onto
// the print bed, closing the wall panel down to z=0.
func (g *Generator) bottomHull(shapes ...scadbuild.Shape3D) scadbuild.Shape3D {
	const h = 0.001
	floor := g.bld.Translate(
		g.bld.Extrude(g.bld.Project(g.bld.Union(shapes...)), h),
		0, 0, h/2-10,
	)
	return g.bld.Hull(append(shapes, floor)...)
}

// brace synthesizes one wall panel between two perimeter anchors: the sloped
// panel hulling all eight offset posts, plus the floor-projected skirt of the
// four outer lips.
func (g *Generator) brace(a, b wallSegment) scadbuild.Shape3D {
	pa0, pa1, pa2, pa3 := g.bracePosts(a)
	pb0, pb1, pb2, pb3 := g.bracePosts(b)
	panel := g.bld.Hull(pa0, pa1, pa2, pa3, pb0, pb1, pb2, pb3)
	skirt := g.bottomHull(pa2, pa3, pb2, pb3)
	return g.bld.Union(panel, skirt)
}

// perimeter enumerates the ordered wall-segment loop: back wall left to
// right, right wall top to bottom, front wall right to left, left wall
// bottom to top. Consecutive segments across side boundaries are the corner
// pieces. Toggle-driven differences (1.5u pinky rows, extra row, short inner
// column) enter only through the hasKey/wideKey/bottomRow predicates.
func (g *Generator) perimeter() ([]wallSegment, error) {
	p := &g.p
	var segs []wallSegment
	sides := [4]string{"back", "right", "front", "left"}
	counts := [4]int{}

	for col := p.firstCol(); col <= p.lastCol(); col++ {
		if !p.hasKey(col, 0) {
			continue
		}
		wideR := col == p.lastCol() && p.wideKey(col, 0)
		segs = append(segs,
			wallSegment{col: col, row: 0, c: cornerTL, dy: 1},
			wallSegment{col: col, row: 0, c: cornerTR, wide: wideR, dy: 1},
		)
	}
	counts[0] = len(segs)

	rightCol := p.lastCol()
	for row := 0; row <= p.lastRow(); row++ {
		if !p.hasKey(rightCol, row) {
			continue
		}
		wide := p.wideKey(rightCol, row)
		segs = append(segs,
			wallSegment{col: rightCol, row: row, c: cornerTR, wide: wide, dx: 1},
			wallSegment{col: rightCol, row: row, c: cornerBR, wide: wide, dx: 1},
		)
	}
	counts[1] = len(segs) - counts[0]

	for col := p.lastCol(); col >= p.firstCol(); col-- {
		row := p.bottomRow(col)
		if row < 0 {
			continue
		}
		wideR := col == p.lastCol() && p.wideKey(col, row)
		segs = append(segs,
			wallSegment{col: col, row: row, c: cornerBR, wide: wideR, dy: -1},
			wallSegment{col: col, row: row, c: cornerBL, dy: -1},
		)
	}
	counts[2] = len(segs) - counts[0] - counts[1]

	leftCol := p.firstCol()
	for row := p.bottomRow(leftCol); row >= 0; row-- {
		if !p.hasKey(leftCol, row) {
			continue
		}
		segs = append(segs,
			wallSegment{col: leftCol, row: row, c: cornerBL, dx: -1},
			wallSegment{col: leftCol, row: row, c: cornerTL, dx: -1},
		)
	}
	counts[3] = len(segs) - counts[0] - counts[1] - counts[2]

	for i, n := range counts {
		if n == 0 {
			return nil, fmt.Errorf("wall tracer: empty perimeter range between sides %s and %s",
				sides[(i+3)%4], sides[(i+1)%4])
		}
	}
	return segs, nil
}

// caseWalls chains braces over the perimeter loop, wrapping the final
// segment back to the first.
func (g *Generator) caseWalls(segs []wallSegment) scadbuild.Shape3D {
	shapes := make([]scadbuild.Shape3D, 0, len(segs))
	for i := range segs {
		shapes = append(shapes, g.brace(segs[i], segs[(i+1)%len(segs)]))
	}
	return g.unionAll(shapes)
}

// segmentPosition is the placed corner-post coordinate of a segment, via the
// point path. Used to check the perimeter forms a contiguous loop.
func (g *Generator) segmentPosition(s wallSegment) ms3.Vec {
	return g.keyPosition(s.col, s.row, cornerOffset(s.c, s.wide))
}
