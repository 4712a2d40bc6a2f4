package dactyl

import (
	"github.com/chewxy/math32"
	"github.com/openkbd/dactylforge/scad"
	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/soypat/geometry/ms3"
)

// Transformer is the capability a value needs to be posed on the curved key
// surface. It is implemented once for solids and once for bare points so both
// travel through the exact same placement arithmetic; agreement between the
// two paths is by construction, not convention.
type Transformer[T any] interface {
	Translate(v ms3.Vec) T
	RotateX(radians float32) T
	RotateY(radians float32) T
}

// applyKeyGeometry poses t at the (col,row) key address per the configured
// column style, then applies the global tenting rotation and z lift. Style
// selection is a pure switch over immutable Params.
func applyKeyGeometry[T Transformer[T]](p *Params, col, row int, t T) T {
	columnAngle := p.Beta * float32(p.CenterCol-col)
	rowAngle := p.Alpha * float32(p.centerRow()-row)
	rowR := p.rowRadius()
	colR := p.columnRadius()
	switch p.ColumnStyle {
	case ColumnOrthographic:
		columnZDelta := colR * (1 - math32.Cos(columnAngle))
		columnXDelta := -1 - colR*math32.Sin(p.Beta)
		t = t.Translate(ms3.Vec{Z: -rowR}).
			RotateX(rowAngle).
			Translate(ms3.Vec{Z: rowR}).
			RotateY(columnAngle).
			Translate(ms3.Vec{X: -float32(col-p.CenterCol) * columnXDelta, Z: columnZDelta}).
			Translate(p.columnOffset(col))
	case ColumnFixed:
		fz := fixedZ[col]
		t = t.RotateY(fixedAngles[col]).
			Translate(ms3.Vec{X: fixedX[col], Z: fz}).
			Translate(ms3.Vec{Z: -(rowR + fz)}).
			RotateX(rowAngle).
			Translate(ms3.Vec{Z: rowR + fz}).
			RotateY(fixedTenting).
			Translate(ms3.Vec{Y: p.columnOffset(col).Y})
	default:
		t = t.Translate(ms3.Vec{Z: -rowR}).
			RotateX(rowAngle).
			Translate(ms3.Vec{Z: rowR}).
			Translate(ms3.Vec{Z: -colR}).
			RotateY(columnAngle).
			Translate(ms3.Vec{Z: colR}).
			Translate(p.columnOffset(col))
	}
	return t.RotateY(p.TentingAngle).Translate(ms3.Vec{Z: p.KeyboardZOffset})
}

// solidPose adapts a SCAD solid to the Transformer capability. Each call
// wraps the solid in the corresponding tree node, so the transform sequence
// reads bottom-up in the emitted program.
type solidPose struct {
	bld *scad.Builder
	s   scadbuild.Shape3D
}

func (sp solidPose) Translate(v ms3.Vec) solidPose {
	sp.s = sp.bld.TranslateVec(sp.s, v)
	return sp
}

func (sp solidPose) RotateX(radians float32) solidPose {
	sp.s = sp.bld.RotateX(sp.s, radians)
	return sp
}

func (sp solidPose) RotateY(radians float32) solidPose {
	sp.s = sp.bld.RotateY(sp.s, radians)
	return sp
}

// pointPose adapts a bare coordinate to the Transformer capability.
type pointPose struct {
	v ms3.Vec
}

func (pp pointPose) Translate(v ms3.Vec) pointPose {
	pp.v = ms3.Add(pp.v, v)
	return pp
}

func (pp pointPose) RotateX(radians float32) pointPose {
	s, c := math32.Sincos(radians)
	y, z := pp.v.Y, pp.v.Z
	pp.v.Y = y*c - z*s
	pp.v.Z = y*s + z*c
	return pp
}

func (pp pointPose) RotateY(radians float32) pointPose {
	s, c := math32.Sincos(radians)
	x, z := pp.v.X, pp.v.Z
	pp.v.X = x*c + z*s
	pp.v.Z = -x*s + z*c
	return pp
}

// keyPlace poses a solid at a key address.
func (g *Generator) keyPlace(col, row int, s scadbuild.Shape3D) scadbuild.Shape3D {
	return applyKeyGeometry(&g.p, col, row, solidPose{bld: g.bld, s: s}).s
}

// keyPosition poses a bare coordinate at a key address. offset is the point
// in the key's local frame.
func (g *Generator) keyPosition(col, row int, offset ms3.Vec) ms3.Vec {
	return applyKeyGeometry(&g.p, col, row, pointPose{v: offset}).v
}
