package scad

import (
	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// Extrude converts a 2D profile into a 3D solid of the given height, centered
// about the XY plane so the solid spans [-height/2, height/2] in z.
func (bld *Builder) Extrude(profile scadbuild.Shape2D, height float32) scadbuild.Shape3D {
	if profile == nil {
		bld.nilshape("Extrude")
	}
	if height <= 0 {
		bld.shapeErrorf("zero or negative extrude height")
	}
	return &extrude{profile: profile, h: height}
}

type extrude struct {
	profile scadbuild.Shape2D
	h       float32
}

func (s *extrude) Bounds() ms3.Box {
	bb := s.profile.Bounds()
	return ms3.Box{
		Min: ms3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: -s.h / 2},
		Max: ms3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: s.h / 2},
	}
}

func (s *extrude) ForEachChild(userData any, fn func(userData any, sh *scadbuild.Shape3D) error) error {
	return nil
}

// ForEach2DChild iterates over the extrusion's profile.
func (s *extrude) ForEach2DChild(userData any, fn func(userData any, sh *scadbuild.Shape2D) error) error {
	return fn(userData, &s.profile)
}

func (s *extrude) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendIndent(b, depth)
	b = append(b, "linear_extrude(height="...)
	b = scadbuild.AppendFloat(b, s.h)
	b = append(b, ",center=true) {\n"...)
	b = s.profile.AppendSCAD(b, depth+1)
	b = scadbuild.AppendClose(b, depth)
	return b
}

// Project flattens a solid onto the XY plane, producing its 2D footprint.
func (bld *Builder) Project(s scadbuild.Shape3D) scadbuild.Shape2D {
	if s == nil {
		bld.nilshape("Project")
	}
	return &project{s: s}
}

type project struct {
	s scadbuild.Shape3D
}

func (s *project) Bounds() ms2.Box {
	bb := s.s.Bounds()
	return ms2.Box{
		Min: ms2.Vec{X: bb.Min.X, Y: bb.Min.Y},
		Max: ms2.Vec{X: bb.Max.X, Y: bb.Max.Y},
	}
}

// ForEach2DChild implements [scadbuild.Shape2D]. Projections have no 2D
// children; the projected solid is reachable through [project.Solid].
func (s *project) ForEach2DChild(userData any, fn func(userData any, sh *scadbuild.Shape2D) error) error {
	return nil
}

// Solid returns the projected 3D solid.
func (s *project) Solid() scadbuild.Shape3D { return s.s }

func (s *project) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendOpen(b, depth, "projection()")
	b = s.s.AppendSCAD(b, depth+1)
	b = scadbuild.AppendClose(b, depth)
	return b
}
