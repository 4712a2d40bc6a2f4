// Package dactyl generates the solid model of an ergonomic split keyboard
// case: key mounts posed on a curved virtual surface, convex-hull webbing
// merging adjacent mounts, a thumb cluster placed as a rigid sub-assembly and
// a tapered perimeter wall closing the shell down to the print bed.
//
// Generation is a pure function of an immutable [Params] record. The same
// parameters always produce the identical shape tree.
package dactyl

import (
	"fmt"

	"github.com/openkbd/dactylforge/scad"
	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/soypat/geometry/ms3"
)

var (
	axisX = ms3.Vec{X: 1}
	axisY = ms3.Vec{Y: 1}
)

// Generator holds the parameter record and shape builder of one generation
// pass. All methods are pure shape constructors; no state is mutated besides
// the builder's accumulated error list.
type Generator struct {
	p   Params
	bld *scad.Builder
}

func newGenerator(p Params) *Generator {
	return &Generator{p: p, bld: &scad.Builder{NoDimensionPanic: true}}
}

func (g *Generator) unionAll(shapes []scadbuild.Shape3D) scadbuild.Shape3D {
	switch len(shapes) {
	case 0:
		return nil
	case 1:
		return shapes[0]
	}
	return g.bld.Union(shapes...)
}

// Output is the complete result of one generation pass.
type Output struct {
	// RightCase is the full right-hand case shell.
	RightCase scadbuild.Shape3D
	// LeftCase is the right case mirrored across the YZ plane.
	LeftCase scadbuild.Shape3D
	// BottomPlate is a thin plate re-extruded from the shell footprint.
	BottomPlate scadbuild.Shape3D
}

// Generate builds the keyboard case from p. It either returns a complete,
// internally consistent model or an error naming the offending component;
// there is no partial success.
func Generate(p Params) (Output, error) {
	if err := p.validate(); err != nil {
		return Output{}, fmt.Errorf("dactyl: %w", err)
	}
	g := newGenerator(p)
	segs, err := g.perimeter()
	if err != nil {
		return Output{}, fmt.Errorf("dactyl: %w", err)
	}
	bld := g.bld
	walls := g.caseWalls(segs)

	parts := []scadbuild.Shape3D{
		g.keyHoles(),
		g.connectors(),
		g.thumbCluster(),
		g.thumbConnectors(),
		walls,
		g.screwInsertOuters(),
		g.usbHolder(),
	}
	if pinky := g.pinkyConnectors(); pinky != nil {
		parts = append(parts, pinky)
	}
	if p.PalmRest {
		parts = append(parts, g.palmRest())
	}
	model := bld.Union(parts...)
	model = bld.Difference(model, g.usbHolderHole())
	model = bld.Difference(model, g.screwInsertHoles())
	model = bld.Difference(model, g.thumbStabilizerCutouts())

	// Trim everything below the print bed.
	slab := bld.Translate(bld.NewCube(350, 350, 40), 0, 0, -20)
	right := bld.Difference(model, slab)
	left := bld.Mirror(right, axisX)

	const plateThick = 2.6
	footprint := bld.Project(bld.Union(walls, g.screwInsertOuters()))
	plate := bld.Translate(bld.Extrude(footprint, plateThick), 0, 0, plateThick/2)

	if err := bld.Err(); err != nil {
		return Output{}, fmt.Errorf("dactyl: shape construction: %w", err)
	}
	return Output{RightCase: right, LeftCase: left, BottomPlate: plate}, nil
}
