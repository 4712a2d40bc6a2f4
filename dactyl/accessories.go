package dactyl

import (
	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/soypat/geometry/ms3"
)

// Heat-set insert dimensions for M3 screws.
const (
	screwInsertBottomR = 5.31 / 2
	screwInsertTopR    = 5.1 / 2
	screwInsertHeight  = 3.8
)

// screwInsertShape is a tapered insert boss: a frustum with a spherical cap.
func (g *Generator) screwInsertShape(bottomR, topR, height float32) scadbuild.Shape3D {
	bld := g.bld
	return bld.Union(
		bld.NewFrustum(bottomR, topR, height),
		bld.Translate(bld.NewSphere(topR), 0, 0, height/2),
	)
}

// screwInsertAt stands an insert on the print bed near the wall of the given
// key address. off displaces it from the key's center in bed coordinates.
func (g *Generator) screwInsertAt(col, row int, bottomR, topR, height float32, off ms3.Vec) scadbuild.Shape3D {
	pos := g.keyPosition(col, row, ms3.Vec{})
	return g.bld.Translate(
		g.screwInsertShape(bottomR, topR, height),
		pos.X+off.X, pos.Y+off.Y, height/2,
	)
}

// screwInsertPositions are the five hand-tuned boss sites hugging the inside
// of the perimeter wall.
func (g *Generator) screwInsertPositions() []struct {
	col, row int
	off      ms3.Vec
} {
	p := &g.p
	return []struct {
		col, row int
		off      ms3.Vec
	}{
		{p.firstCol(), 0, ms3.Vec{X: -mountWidth/2 - 2, Y: mountHeight/2 + 4}},
		{p.lastCol(), 0, ms3.Vec{X: mountWidth/2 + 4, Y: mountHeight/2 + 4}},
		{p.lastCol(), p.bottomRow(p.lastCol()), ms3.Vec{X: mountWidth/2 + 4, Y: -mountHeight/2 - 4}},
		{p.firstCol(), p.bottomRow(p.firstCol()), ms3.Vec{X: -mountWidth/2 - 2, Y: -mountHeight/2 - 4}},
		{2, p.bottomRow(2), ms3.Vec{Y: -mountHeight/2 - 5}},
	}
}

func (g *Generator) screwInsertAll(bottomR, topR, height float32) scadbuild.Shape3D {
	var shapes []scadbuild.Shape3D
	for _, pos := range g.screwInsertPositions() {
		shapes = append(shapes, g.screwInsertAt(pos.col, pos.row, bottomR, topR, height, pos.off))
	}
	return g.unionAll(shapes)
}

// screwInsertOuters are the solid bosses unioned into the case.
func (g *Generator) screwInsertOuters() scadbuild.Shape3D {
	return g.screwInsertAll(screwInsertBottomR+1.65, screwInsertTopR+1.65, screwInsertHeight+1.5)
}

// screwInsertHoles are the cavities subtracted for the inserts themselves.
func (g *Generator) screwInsertHoles() scadbuild.Shape3D {
	return g.screwInsertAll(screwInsertBottomR, screwInsertTopR, screwInsertHeight+0.02)
}

// usbHolderPosition anchors the controller holder two mount widths left of
// the first main-matrix key's pose, at the back wall.
func (g *Generator) usbHolderPosition() ms3.Vec {
	return g.keyPosition(g.p.firstCol(), 0, ms3.Vec{X: -2 * mountWidth, Y: mountHeight / 2})
}

// usbHolder is the controller mount body, standing on the bed.
func (g *Generator) usbHolder() scadbuild.Shape3D {
	pos := g.usbHolderPosition()
	return g.bld.Translate(g.bld.NewCube(16, 12, 8), pos.X, pos.Y, 4)
}

// thumbStabilizerCutouts carves the stabilizer stem slots out of the 2u thumb
// mounts, flanking the switch hole along the rotated long axis.
func (g *Generator) thumbStabilizerCutouts() scadbuild.Shape3D {
	bld := g.bld
	var shapes []scadbuild.Shape3D
	for _, k := range thumbKeys {
		if !k.wide {
			continue
		}
		for _, dx := range [2]float32{-11.9, 11.9} {
			slot := bld.Translate(bld.NewCube(6.65, 12.3, plateThickness+1), dx, 0, plateThickness/2)
			shapes = append(shapes, g.thumbPlace(k, slot))
		}
	}
	return g.unionAll(shapes)
}

// palmRest is a rounded rest in front of the thumb cluster, standing on the
// bed and anchored off the thumb origin.
func (g *Generator) palmRest() scadbuild.Shape3D {
	bld := g.bld
	o := g.thumbOrigin()
	const (
		padR = 9
		padH = 14
	)
	pad := func(dx, dy float32) scadbuild.Shape3D {
		return bld.Translate(bld.NewCylinder(padR, padH), o.X+dx, o.Y+dy, padH/2)
	}
	return bld.Hull(
		pad(10, -55), pad(-40, -55),
		pad(10, -90), pad(-40, -90),
	)
}

// usbHolderHole carves the controller pocket and the port channel out of the
// holder body and the back wall behind it.
func (g *Generator) usbHolderHole() scadbuild.Shape3D {
	bld := g.bld
	pos := g.usbHolderPosition()
	pocket := bld.Translate(bld.NewCube(12, 10, 5), pos.X, pos.Y, 5.5)
	port := bld.Translate(bld.NewCube(9, 2*g.p.WallXYOffset+2*g.p.WallThickness, 4), pos.X, pos.Y+6, 6)
	return bld.Union(pocket, port)
}
