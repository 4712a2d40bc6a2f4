// Package scadbuild defines the solid-geometry expression tree consumed by the
// generator and writes it out as an OpenSCAD program.
//
// Shapes are immutable tree nodes. Each node knows how to append its own SCAD
// source and how to iterate its direct children, which is enough for the
// Programmer to emit a whole program and for callers to traverse or rewrite
// trees without knowing concrete node types.
package scadbuild

import (
	"io"
	"strconv"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// Shape is implemented by all SCAD tree nodes, 2D and 3D alike.
type Shape interface {
	// AppendSCAD appends the node's OpenSCAD source to b at the given
	// indentation depth and returns the result. Emitted source always ends
	// in a newline.
	AppendSCAD(b []byte, depth int) []byte
}

// Shape3D is a solid. Boolean operations, hulls and extrusion results
// implement it.
type Shape3D interface {
	Shape
	// ForEachChild iterates over the node's direct Shape3D children.
	// Unary operations have one child i.e: Translate, Rotate, Mirror.
	// N-ary operations have several i.e: Union, Difference, Hull.
	ForEachChild(userData any, fn func(userData any, s *Shape3D) error) error
	// Bounds returns the solid's axis-aligned bounding box. Bounds of
	// subtractive results are conservative (the minuend's box).
	Bounds() ms3.Box
}

// Shape2D is a planar profile, used as extrusion input and produced by
// projecting solids onto the XY plane.
type Shape2D interface {
	Shape
	// ForEach2DChild iterates over the node's direct Shape2D children.
	ForEach2DChild(userData any, fn func(userData any, s *Shape2D) error) error
	// Bounds returns the profile's bounding box on the XY plane.
	Bounds() ms2.Box
}

// ForEachNode3D visits root and every Shape3D reachable from it in depth-first
// order. Traversal stops at the first error returned by fn, which is then
// returned to the caller.
func ForEachNode3D(root Shape3D, userData any, fn func(userData any, s *Shape3D) error) error {
	err := fn(userData, &root)
	if err != nil {
		return err
	}
	return root.ForEachChild(userData, func(userData any, s *Shape3D) error {
		return ForEachNode3D(*s, userData, fn)
	})
}

// Programmer writes Shape trees out as complete OpenSCAD programs.
type Programmer struct {
	scratch []byte
	// facets is the $fn facet count emitted in the program header.
	facets int
}

// NewDefaultProgrammer returns a Programmer with a facet resolution suitable
// for printable output.
func NewDefaultProgrammer() *Programmer {
	return &Programmer{
		scratch: make([]byte, 0, 64*1024),
		facets:  30,
	}
}

// SetFacets sets the $fn circle facet count written in the program header.
func (p *Programmer) SetFacets(n int) {
	if n < 3 {
		panic("facet count under 3")
	}
	p.facets = n
}

// WriteProgram writes a complete OpenSCAD program evaluating to s.
func (p *Programmer) WriteProgram(w io.Writer, s Shape3D) (int, error) {
	if s == nil {
		panic("nil Shape3D argument to WriteProgram")
	}
	b := p.scratch[:0]
	b = append(b, "$fn = "...)
	b = strconv.AppendInt(b, int64(p.facets), 10)
	b = append(b, ";\n"...)
	b = s.AppendSCAD(b, 0)
	p.scratch = b
	return w.Write(b)
}

// Source returns the OpenSCAD source of a single shape, without program
// header. Intended for tests and debugging.
func Source(s Shape) string {
	return string(s.AppendSCAD(nil, 0))
}

const indentUnit = "  "

// AppendIndent appends depth levels of indentation.
func AppendIndent(b []byte, depth int) []byte {
	for i := 0; i < depth; i++ {
		b = append(b, indentUnit...)
	}
	return b
}

// AppendFloat appends v in plain decimal notation, with enough digits to
// round-trip exactly through float32.
func AppendFloat(b []byte, v float32) []byte {
	return strconv.AppendFloat(b, float64(v), 'f', -1, 32)
}

// AppendVec3 appends v as a SCAD vector literal [x,y,z].
func AppendVec3(b []byte, v ms3.Vec) []byte {
	b = append(b, '[')
	b = AppendFloat(b, v.X)
	b = append(b, ',')
	b = AppendFloat(b, v.Y)
	b = append(b, ',')
	b = AppendFloat(b, v.Z)
	b = append(b, ']')
	return b
}

// AppendVec2 appends v as a SCAD vector literal [x,y].
func AppendVec2(b []byte, v ms2.Vec) []byte {
	b = append(b, '[')
	b = AppendFloat(b, v.X)
	b = append(b, ',')
	b = AppendFloat(b, v.Y)
	b = append(b, ']')
	return b
}

// AppendOpen appends an indented block head of the form "head {\n".
// Matching AppendClose ends the block.
func AppendOpen(b []byte, depth int, head string) []byte {
	b = AppendIndent(b, depth)
	b = append(b, head...)
	b = append(b, " {\n"...)
	return b
}

// AppendClose closes a block opened with AppendOpen.
func AppendClose(b []byte, depth int) []byte {
	b = AppendIndent(b, depth)
	b = append(b, "}\n"...)
	return b
}
