package scad

import (
	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/soypat/geometry/ms3"
)

// NewCube creates a box of the given side lengths centered at the origin.
func (bld *Builder) NewCube(x, y, z float32) scadbuild.Shape3D {
	if x <= 0 || y <= 0 || z <= 0 {
		bld.shapeErrorf("zero or negative cube dimension")
	}
	return &cube{dims: ms3.Vec{X: x, Y: y, Z: z}}
}

type cube struct {
	dims ms3.Vec
}

func (s *cube) ForEachChild(userData any, fn func(userData any, s *scadbuild.Shape3D) error) error {
	return nil
}

func (s *cube) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendIndent(b, depth)
	b = append(b, "cube("...)
	b = scadbuild.AppendVec3(b, s.dims)
	b = append(b, ",center=true);\n"...)
	return b
}

func (s *cube) Bounds() ms3.Box {
	return ms3.NewCenteredBox(ms3.Vec{}, s.dims)
}

// NewCylinder creates a cylinder centered at the origin with given radius and
// height. The cylinder's axis points in z direction.
func (bld *Builder) NewCylinder(r, h float32) scadbuild.Shape3D {
	if r <= 0 || h <= 0 {
		bld.shapeErrorf("zero or negative cylinder dimension")
	}
	return &cylinder{r1: r, r2: r, h: h}
}

// NewFrustum creates a truncated cone centered at the origin spanning from
// bottom radius r1 at -h/2 to top radius r2 at h/2.
func (bld *Builder) NewFrustum(r1, r2, h float32) scadbuild.Shape3D {
	if r1 <= 0 || r2 <= 0 || h <= 0 {
		bld.shapeErrorf("zero or negative frustum dimension")
	}
	return &cylinder{r1: r1, r2: r2, h: h}
}

type cylinder struct {
	r1, r2, h float32
}

func (s *cylinder) ForEachChild(userData any, fn func(userData any, s *scadbuild.Shape3D) error) error {
	return nil
}

func (s *cylinder) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendIndent(b, depth)
	b = append(b, "cylinder(h="...)
	b = scadbuild.AppendFloat(b, s.h)
	if s.r1 == s.r2 {
		b = append(b, ",r="...)
		b = scadbuild.AppendFloat(b, s.r1)
	} else {
		b = append(b, ",r1="...)
		b = scadbuild.AppendFloat(b, s.r1)
		b = append(b, ",r2="...)
		b = scadbuild.AppendFloat(b, s.r2)
	}
	b = append(b, ",center=true);\n"...)
	return b
}

func (s *cylinder) Bounds() ms3.Box {
	r := maxf(s.r1, s.r2)
	return ms3.NewCenteredBox(ms3.Vec{}, ms3.Vec{X: 2 * r, Y: 2 * r, Z: s.h})
}

// NewSphere creates a sphere centered at the origin.
func (bld *Builder) NewSphere(r float32) scadbuild.Shape3D {
	if r <= 0 {
		bld.shapeErrorf("zero or negative sphere radius")
	}
	return &sphere{r: r}
}

type sphere struct {
	r float32
}

func (s *sphere) ForEachChild(userData any, fn func(userData any, s *scadbuild.Shape3D) error) error {
	return nil
}

func (s *sphere) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendIndent(b, depth)
	b = append(b, "sphere(r="...)
	b = scadbuild.AppendFloat(b, s.r)
	b = append(b, ");\n"...)
	return b
}

func (s *sphere) Bounds() ms3.Box {
	d := 2 * s.r
	return ms3.NewCenteredBox(ms3.Vec{}, ms3.Vec{X: d, Y: d, Z: d})
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
