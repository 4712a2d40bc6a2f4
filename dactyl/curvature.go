package dactyl

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

const deg2rad = math32.Pi / 180

// rowRadius is the radius of the cylinder rows are wrapped onto. Derived so
// mount edges stay tangent to the arc at the configured row tilt.
func (p *Params) rowRadius() float32 {
	return (mountHeight+p.ExtraHeight)/2/math32.Sin(p.Alpha/2) + capTopHeight
}

// columnRadius is the radius of the cylinder columns are wrapped onto.
func (p *Params) columnRadius() float32 {
	return (mountWidth+p.ExtraWidth)/2/math32.Sin(p.Beta/2) + capTopHeight
}

// columnOffset is the hand-tuned static displacement of a column after its
// arc rotations. The middle-finger column sits higher and closer, the two
// outer columns lower and further away.
func (p *Params) columnOffset(col int) ms3.Vec {
	if p.ColumnOffsets != nil {
		return p.ColumnOffsets[col]
	}
	switch {
	case col == 2:
		return ms3.Vec{Y: 2.82, Z: -4.5}
	case col >= 4:
		return ms3.Vec{Y: -12, Z: 5.64}
	default:
		return ms3.Vec{}
	}
}

// Per-column lookup tables for the fixed column style: an explicit tilt
// angle, x offset and z offset per column plus one shared tenting angle.
// The profile these were tuned against is known not to be reproduced exactly;
// the tables are kept verbatim rather than corrected, and the fixed-style
// tests assert the literal table application.
var (
	fixedAngles = [...]float32{10 * deg2rad, 10 * deg2rad, 0, 0, 0, -15 * deg2rad, -15 * deg2rad}
	fixedX      = [...]float32{-41.5, -22.5, 0, 20.3, 41.4, 65.5, 89.6}
	fixedZ      = [...]float32{12.1, 8.3, 0, 5, 10.7, 14.5, 17.5}
)

const fixedTenting = 0 * deg2rad
