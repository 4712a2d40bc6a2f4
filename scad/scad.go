// Package scad constructs constructive-solid-geometry expression trees that
// serialize to OpenSCAD via package scadbuild.
package scad

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Builder wraps all primitive and operation construction logic.
// Provides error handling strategies with panics or error accumulation during
// shape generation.
type Builder struct {
	// NoDimensionPanic controls whether bad shape dimensions accumulate as
	// errors retrievable with Err instead of panicking at the call site.
	NoDimensionPanic bool
	accumErrs        []error
}

// Err returns all errors accumulated during shape construction and leaves the
// builder's error state untouched.
func (bld *Builder) Err() error {
	if len(bld.accumErrs) == 0 {
		return nil
	}
	return errors.Join(bld.accumErrs...)
}

// ClearErrors discards accumulated construction errors.
func (bld *Builder) ClearErrors() {
	bld.accumErrs = nil
}

func (bld *Builder) shapeErrorf(msg string, args ...any) {
	if !bld.NoDimensionPanic {
		panic(fmt.Sprintf(msg, args...))
	}
	bld.accumErrs = append(bld.accumErrs, fmt.Errorf(msg, args...))
}

func (*Builder) nilshape(msg string) {
	panic("nil shape argument: " + msg)
}

func degrees(radians float32) float32 {
	deg := radians * (180 / math32.Pi)
	// Snap near-integer angles so radian round-trips emit "90" and not
	// "90.00001".
	if r := math32.Round(deg); math32.Abs(deg-r) < 1e-4 {
		return r
	}
	return deg
}
