package scad

import (
	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/soypat/geometry/ms2"
)

// NewSquare creates a rectangle of the given side lengths centered at the
// origin on the XY plane.
func (bld *Builder) NewSquare(x, y float32) scadbuild.Shape2D {
	if x <= 0 || y <= 0 {
		bld.shapeErrorf("zero or negative square dimension")
	}
	return &square{dims: ms2.Vec{X: x, Y: y}}
}

type square struct {
	dims ms2.Vec
}

func (s *square) ForEach2DChild(userData any, fn func(userData any, s *scadbuild.Shape2D) error) error {
	return nil
}

func (s *square) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendIndent(b, depth)
	b = append(b, "square("...)
	b = scadbuild.AppendVec2(b, s.dims)
	b = append(b, ",center=true);\n"...)
	return b
}

func (s *square) Bounds() ms2.Box {
	return ms2.Box{Min: ms2.Scale(-0.5, s.dims), Max: ms2.Scale(0.5, s.dims)}
}

// NewCircle creates a circle centered at the origin on the XY plane.
func (bld *Builder) NewCircle(r float32) scadbuild.Shape2D {
	if r <= 0 {
		bld.shapeErrorf("zero or negative circle radius")
	}
	return &circle{r: r}
}

type circle struct {
	r float32
}

func (s *circle) ForEach2DChild(userData any, fn func(userData any, s *scadbuild.Shape2D) error) error {
	return nil
}

func (s *circle) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendIndent(b, depth)
	b = append(b, "circle(r="...)
	b = scadbuild.AppendFloat(b, s.r)
	b = append(b, ");\n"...)
	return b
}

func (s *circle) Bounds() ms2.Box {
	return ms2.Box{Min: ms2.Vec{X: -s.r, Y: -s.r}, Max: ms2.Vec{X: s.r, Y: s.r}}
}

// NewPolygon creates a polygon from a slice of ordered vertices. The last
// vertex is joined to the first.
func (bld *Builder) NewPolygon(vertices []ms2.Vec) scadbuild.Shape2D {
	if len(vertices) < 3 {
		bld.shapeErrorf("polygon needs at least 3 vertices, got %d", len(vertices))
	}
	return &polygon{verts: vertices}
}

type polygon struct {
	verts []ms2.Vec
}

func (s *polygon) ForEach2DChild(userData any, fn func(userData any, s *scadbuild.Shape2D) error) error {
	return nil
}

func (s *polygon) AppendSCAD(b []byte, depth int) []byte {
	b = scadbuild.AppendIndent(b, depth)
	b = append(b, "polygon(points=["...)
	for i, v := range s.verts {
		if i > 0 {
			b = append(b, ',')
		}
		b = scadbuild.AppendVec2(b, v)
	}
	b = append(b, "]);\n"...)
	return b
}

func (s *polygon) Bounds() ms2.Box {
	bb := ms2.Box{Min: s.verts[0], Max: s.verts[0]}
	for _, v := range s.verts[1:] {
		bb.Min = ms2.MinElem(bb.Min, v)
		bb.Max = ms2.MaxElem(bb.Max, v)
	}
	return bb
}
