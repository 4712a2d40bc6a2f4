package dactyl

import (
	"github.com/chewxy/math32"
	"github.com/openkbd/dactylforge/scadbuild"
)

// singlePlate is one key mount: a rectangular plate with a switch cutout,
// built from a top wall, a left wall and a retention side nub, mirrored
// across both axes to complete the frame.
func (g *Generator) singlePlate() scadbuild.Shape3D {
	bld := g.bld
	topWall := bld.Translate(
		bld.NewCube(keyswitchWidth+3, 1.5, plateThickness),
		0, (1.5+keyswitchHeight)/2, plateThickness/2,
	)
	leftWall := bld.Translate(
		bld.NewCube(1.5, keyswitchHeight+3, plateThickness),
		(1.5+keyswitchWidth)/2, 0, plateThickness/2,
	)
	sideNub := bld.Hull(
		bld.Translate(
			bld.RotateX(bld.NewCylinder(1, 2.75), math32.Pi/2),
			keyswitchWidth/2, 0, 1,
		),
		bld.Translate(
			bld.NewCube(1.5, 2.75, plateThickness),
			(1.5+keyswitchWidth)/2, 0, plateThickness/2,
		),
	)
	half := bld.Union(topWall, leftWall, sideNub)
	mirrored := bld.Mirror(bld.Mirror(half, axisX), axisY)
	return bld.Union(half, mirrored)
}

// plate2u is a 2-unit mount rotated a quarter turn, used by the outer thumb
// keys. Filler strips extend the rotated 1u plate to the 2u keycap length.
func (g *Generator) plate2u() scadbuild.Shape3D {
	bld := g.bld
	plate := bld.RotateZ(g.singlePlate(), math32.Pi/2)
	stripLen := float32(saDoubleLength-mountHeight) / 2
	strip := bld.NewCube(stripLen, mountWidth, webThickness)
	stripZ := float32(plateThickness - webThickness/2)
	return bld.Union(
		plate,
		bld.Translate(strip, (mountHeight+stripLen)/2, 0, stripZ),
		bld.Translate(strip, -(mountHeight+stripLen)/2, 0, stripZ),
	)
}

// keyHoles places one mount at every populated matrix address.
func (g *Generator) keyHoles() scadbuild.Shape3D {
	p := &g.p
	var shapes []scadbuild.Shape3D
	for col := p.firstCol(); col <= p.lastCol(); col++ {
		for row := 0; row <= p.lastRow(); row++ {
			if !p.hasKey(col, row) {
				continue
			}
			shapes = append(shapes, g.keyPlace(col, row, g.singlePlate()))
		}
	}
	return g.unionAll(shapes)
}
