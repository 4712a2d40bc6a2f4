package scad

import (
	"fmt"

	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/soypat/geometry/ms3"
)

// OpUnion is the result of the [Builder.Union] operation. Union aggregates
// nested unions into a single flat node so emitted programs stay shallow.
type OpUnion struct {
	// joined contains 2 or more solids.
	joined []scadbuild.Shape3D
}

// Union joins several solids into one.
func (bld *Builder) Union(shapes ...scadbuild.Shape3D) scadbuild.Shape3D {
	if len(shapes) < 2 {
		panic("need at least 2 arguments to Union")
	}
	var U OpUnion
	for i, s := range shapes {
		if s == nil {
			bld.nilshape(fmt.Sprintf("nil arg[%d] to Union", i))
		}
		if subU, ok := s.(*OpUnion); ok {
			// Flatten nested unions into this node's elements.
			U.joined = append(U.joined, subU.joined...)
		} else {
			U.joined = append(U.joined, s)
		}
	}
	return &U
}

func (u *OpUnion) Bounds() ms3.Box {
	bb := u.joined[0].Bounds()
	for _, s := range u.joined[1:] {
		bb = bb.Union(s.Bounds())
	}
	return bb
}

func (u *OpUnion) ForEachChild(userData any, fn func(userData any, s *scadbuild.Shape3D) error) error {
	for i := range u.joined {
		err := fn(userData, &u.joined[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func (u *OpUnion) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendOpen(b, depth, "union()")
	for _, s := range u.joined {
		b = s.AppendSCAD(b, depth+1)
	}
	b = scadbuild.AppendClose(b, depth)
	return b
}

// Difference subtracts b from a.
func (bld *Builder) Difference(a, b scadbuild.Shape3D) scadbuild.Shape3D {
	if a == nil || b == nil {
		bld.nilshape("Difference")
	}
	return &diff{s1: a, s2: b}
}

type diff struct {
	s1, s2 scadbuild.Shape3D // Performs s1-s2.
}

func (s *diff) Bounds() ms3.Box {
	return s.s1.Bounds()
}

func (s *diff) ForEachChild(userData any, fn func(userData any, sh *scadbuild.Shape3D) error) error {
	err := fn(userData, &s.s1)
	if err != nil {
		return err
	}
	return fn(userData, &s.s2)
}

func (s *diff) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendOpen(b, depth, "difference()")
	b = s.s1.AppendSCAD(b, depth+1)
	b = s.s2.AppendSCAD(b, depth+1)
	b = scadbuild.AppendClose(b, depth)
	return b
}

// Intersection keeps the volume common to a and b.
func (bld *Builder) Intersection(a, b scadbuild.Shape3D) scadbuild.Shape3D {
	if a == nil || b == nil {
		bld.nilshape("Intersection")
	}
	return &intersect{s1: a, s2: b}
}

type intersect struct {
	s1, s2 scadbuild.Shape3D
}

func (s *intersect) Bounds() ms3.Box {
	return s.s1.Bounds().Intersect(s.s2.Bounds())
}

func (s *intersect) ForEachChild(userData any, fn func(userData any, sh *scadbuild.Shape3D) error) error {
	err := fn(userData, &s.s1)
	if err != nil {
		return err
	}
	return fn(userData, &s.s2)
}

func (s *intersect) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendOpen(b, depth, "intersection()")
	b = s.s1.AppendSCAD(b, depth+1)
	b = s.s2.AppendSCAD(b, depth+1)
	b = scadbuild.AppendClose(b, depth)
	return b
}

// OpHull is the result of the [Builder.Hull] operation: the convex hull of
// its elements. Exported so tree traversals can recognize hull nodes and
// inspect their arity.
type OpHull struct {
	joined []scadbuild.Shape3D
}

// Hull returns the convex hull enclosing all argument solids.
func (bld *Builder) Hull(shapes ...scadbuild.Shape3D) scadbuild.Shape3D {
	if len(shapes) < 2 {
		panic("need at least 2 arguments to Hull")
	}
	var H OpHull
	for i, s := range shapes {
		if s == nil {
			bld.nilshape(fmt.Sprintf("nil arg[%d] to Hull", i))
		}
		H.joined = append(H.joined, s)
	}
	return &H
}

// Arity returns the number of hulled solids.
func (h *OpHull) Arity() int { return len(h.joined) }

func (h *OpHull) Bounds() ms3.Box {
	bb := h.joined[0].Bounds()
	for _, s := range h.joined[1:] {
		bb = bb.Union(s.Bounds())
	}
	return bb
}

func (h *OpHull) ForEachChild(userData any, fn func(userData any, s *scadbuild.Shape3D) error) error {
	for i := range h.joined {
		err := fn(userData, &h.joined[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func (h *OpHull) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendOpen(b, depth, "hull()")
	for _, s := range h.joined {
		b = s.AppendSCAD(b, depth+1)
	}
	b = scadbuild.AppendClose(b, depth)
	return b
}

// Translate moves the solid s in the given direction (dirX, dirY, dirZ) and
// returns the result.
func (bld *Builder) Translate(s scadbuild.Shape3D, dirX, dirY, dirZ float32) scadbuild.Shape3D {
	return bld.TranslateVec(s, ms3.Vec{X: dirX, Y: dirY, Z: dirZ})
}

// TranslateVec moves the solid s by vector v and returns the result.
func (bld *Builder) TranslateVec(s scadbuild.Shape3D, v ms3.Vec) scadbuild.Shape3D {
	if s == nil {
		bld.nilshape("Translate")
	}
	return &translate{s: s, p: v}
}

type translate struct {
	s scadbuild.Shape3D
	p ms3.Vec
}

func (s *translate) Bounds() ms3.Box {
	return s.s.Bounds().Add(s.p)
}

func (s *translate) ForEachChild(userData any, fn func(userData any, sh *scadbuild.Shape3D) error) error {
	return fn(userData, &s.s)
}

func (s *translate) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendIndent(b, depth)
	b = append(b, "translate("...)
	b = scadbuild.AppendVec3(b, s.p)
	b = append(b, ") {\n"...)
	b = s.s.AppendSCAD(b, depth+1)
	b = scadbuild.AppendClose(b, depth)
	return b
}

// Axis selects one of the three cartesian axes for rotations.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) vec() ms3.Vec {
	switch a {
	case AxisX:
		return ms3.Vec{X: 1}
	case AxisY:
		return ms3.Vec{Y: 1}
	case AxisZ:
		return ms3.Vec{Z: 1}
	}
	panic("invalid Axis")
}

// RotateX rotates s by radians angle about the X axis.
func (bld *Builder) RotateX(s scadbuild.Shape3D, radians float32) scadbuild.Shape3D {
	return bld.rotate(s, radians, AxisX)
}

// RotateY rotates s by radians angle about the Y axis.
func (bld *Builder) RotateY(s scadbuild.Shape3D, radians float32) scadbuild.Shape3D {
	return bld.rotate(s, radians, AxisY)
}

// RotateZ rotates s by radians angle about the Z axis.
func (bld *Builder) RotateZ(s scadbuild.Shape3D, radians float32) scadbuild.Shape3D {
	return bld.rotate(s, radians, AxisZ)
}

func (bld *Builder) rotate(s scadbuild.Shape3D, radians float32, axis Axis) scadbuild.Shape3D {
	if s == nil {
		bld.nilshape("Rotate")
	}
	return &rotate{s: s, radians: radians, axis: axis}
}

type rotate struct {
	s       scadbuild.Shape3D
	radians float32
	axis    Axis
}

func (s *rotate) Bounds() ms3.Box {
	T := ms3.RotationMat4(s.radians, s.axis.vec())
	return T.MulBox(s.s.Bounds())
}

func (s *rotate) ForEachChild(userData any, fn func(userData any, sh *scadbuild.Shape3D) error) error {
	return fn(userData, &s.s)
}

func (s *rotate) AppendSCAD(b []byte, depth int) []byte {
	var angles ms3.Vec
	deg := degrees(s.radians)
	switch s.axis {
	case AxisX:
		angles.X = deg
	case AxisY:
		angles.Y = deg
	case AxisZ:
		angles.Z = deg
	}
	b = scadbuild.AppendIndent(b, depth)
	b = append(b, "rotate("...)
	b = scadbuild.AppendVec3(b, angles)
	b = append(b, ") {\n"...)
	b = s.s.AppendSCAD(b, depth+1)
	b = scadbuild.AppendClose(b, depth)
	return b
}

// Mirror reflects s across the plane through the origin whose normal is n.
func (bld *Builder) Mirror(s scadbuild.Shape3D, n ms3.Vec) scadbuild.Shape3D {
	if s == nil {
		bld.nilshape("Mirror")
	}
	if n == (ms3.Vec{}) {
		bld.shapeErrorf("null mirror normal")
	}
	return &mirror{s: s, n: ms3.Unit(n)}
}

type mirror struct {
	s scadbuild.Shape3D
	n ms3.Vec
}

func (s *mirror) Bounds() ms3.Box {
	bb := s.s.Bounds()
	// Reflect all corners of the box and rebound.
	reflect := func(v ms3.Vec) ms3.Vec {
		return ms3.Sub(v, ms3.Scale(2*ms3.Dot(v, s.n), s.n))
	}
	out := ms3.Box{Min: reflect(bb.Min), Max: reflect(bb.Min)}
	for i := 0; i < 8; i++ {
		c := bb.Min
		if i&1 != 0 {
			c.X = bb.Max.X
		}
		if i&2 != 0 {
			c.Y = bb.Max.Y
		}
		if i&4 != 0 {
			c.Z = bb.Max.Z
		}
		r := reflect(c)
		out.Min = ms3.MinElem(out.Min, r)
		out.Max = ms3.MaxElem(out.Max, r)
	}
	return out
}

func (s *mirror) ForEachChild(userData any, fn func(userData any, sh *scadbuild.Shape3D) error) error {
	return fn(userData, &s.s)
}

func (s *mirror) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendIndent(b, depth)
	b = append(b, "mirror("...)
	b = scadbuild.AppendVec3(b, s.n)
	b = append(b, ") {\n"...)
	b = s.s.AppendSCAD(b, depth+1)
	b = scadbuild.AppendClose(b, depth)
	return b
}
