package dactyl

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// Key mount dimensions shared by every column style. Millimeters.
const (
	keyswitchWidth  = 14.4
	keyswitchHeight = 14.4
	plateThickness  = 4.0
	mountWidth      = keyswitchWidth + 3
	mountHeight     = keyswitchHeight + 3
	// Height of an SA profile keycap above the plate. Enters the arc radii
	// so mount edges stay tangent to the curvature cylinders.
	saProfileKeyHeight = 12.7
	capTopHeight       = plateThickness + saProfileKeyHeight
	webThickness       = 3.5
	postSize           = 0.1
	postAdj            = postSize / 2
	// Long dimension of a 2-unit keycap, used by the thumb cluster's wide mounts.
	saDoubleLength = 37.5
)

// ColumnStyle selects the curvature model used to pose keys.
type ColumnStyle int

const (
	// ColumnStandard wraps columns onto the two intersecting curvature cylinders.
	ColumnStandard ColumnStyle = iota
	// ColumnOrthographic keeps columns flat and parallel, compensating the
	// column arc with per-column x and z shifts.
	ColumnOrthographic
	// ColumnFixed poses each column from hand-enumerated angle/x/z tables.
	ColumnFixed
)

func (c ColumnStyle) String() string {
	switch c {
	case ColumnStandard:
		return "standard"
	case ColumnOrthographic:
		return "orthographic"
	case ColumnFixed:
		return "fixed"
	}
	return "unknown"
}

// UnmarshalJSON accepts the style's string name, so parameter files can say
// "orthographic" instead of a bare integer.
func (c *ColumnStyle) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"standard"`:
		*c = ColumnStandard
	case `"orthographic"`:
		*c = ColumnOrthographic
	case `"fixed"`:
		*c = ColumnFixed
	default:
		return fmt.Errorf("unknown column style %s", data)
	}
	return nil
}

// Params is the immutable shape configuration of one generation pass. All
// downstream geometry is a pure function of this record; construct it once
// with [DefaultParams], adjust, and pass by value. Angles are radians.
type Params struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`

	// Alpha is the row curvature step: each row away from the center row
	// tilts by Alpha around the row-radius arc.
	Alpha float32 `json:"alpha"`
	// Beta is the column curvature step around the column-radius arc.
	Beta float32 `json:"beta"`
	// TentingAngle rotates the whole matrix about the front-back axis.
	TentingAngle float32 `json:"tentingAngle"`

	CenterCol int `json:"centerCol"`

	ColumnStyle ColumnStyle `json:"columnStyle"`

	// ColumnOffsets optionally overrides the per-column static offset table.
	// When nil the built-in hand-tuned offsets apply. When set it must cover
	// every column.
	ColumnOffsets []ms3.Vec `json:"columnOffsets"`

	// InnerColumn populates column 0, a shortened extra column on the inner
	// edge of the matrix.
	InnerColumn bool `json:"innerColumn"`
	// ExtraRow populates the bottom row for the non-inner columns.
	ExtraRow bool `json:"extraRow"`

	// PinkyWide gives the last column 1.5u-wide mounts over the row range
	// [First15uRow, Last15uRow]. An empty range disables the widening.
	PinkyWide   bool `json:"pinkyWide"`
	First15uRow int  `json:"first15uRow"`
	Last15uRow  int  `json:"last15uRow"`

	// ThumbOffsets displaces the thumb cluster anchor from its matrix-derived
	// origin.
	ThumbOffsets ms3.Vec `json:"thumbOffsets"`

	// PalmRest adds a rounded palm rest in front of the thumb cluster.
	PalmRest bool `json:"palmRest"`

	// KeyboardZOffset lifts the whole matrix off the print bed after tenting.
	KeyboardZOffset float32 `json:"keyboardZOffset"`

	// ExtraWidth and ExtraHeight pad the key pitch used to derive the
	// curvature radii.
	ExtraWidth  float32 `json:"extraWidth"`
	ExtraHeight float32 `json:"extraHeight"`

	WallThickness float32 `json:"wallThickness"`
	WallXYOffset  float32 `json:"wallXYOffset"`
	WallZOffset   float32 `json:"wallZOffset"`
}

// DefaultParams returns the hand-tuned default configuration: a 7-column,
// 5-row right-hand matrix with inner column and 1.5u pinky column.
func DefaultParams() Params {
	return Params{
		Rows:            5,
		Cols:            7,
		Alpha:           math32.Pi / 12,
		Beta:            math32.Pi / 36,
		TentingAngle:    math32.Pi / 12,
		CenterCol:       3,
		ColumnStyle:     ColumnStandard,
		InnerColumn:     true,
		ExtraRow:        false,
		PinkyWide:       true,
		First15uRow:     0,
		Last15uRow:      3,
		ThumbOffsets:    ms3.Vec{X: 6, Y: -3, Z: 7},
		KeyboardZOffset: 9,
		ExtraWidth:      2.5,
		ExtraHeight:     1.0,
		WallThickness:   3,
		WallXYOffset:    5,
		WallZOffset:     -15,
	}
}

func (p *Params) validate() error {
	var err error
	switch {
	case p.Rows < 4 || p.Rows > 6:
		err = fmt.Errorf("row count %d outside supported range [4,6]", p.Rows)
	case p.Cols < 3:
		err = fmt.Errorf("column count %d under minimum 3", p.Cols)
	case p.Alpha <= 0 || p.Alpha >= math32.Pi:
		err = errors.New("alpha outside (0,pi)")
	case p.Beta <= 0 || p.Beta >= math32.Pi:
		err = errors.New("beta outside (0,pi)")
	case p.CenterCol < 0 || p.CenterCol >= p.Cols:
		err = fmt.Errorf("center column %d outside [0,%d)", p.CenterCol, p.Cols)
	case p.ColumnStyle != ColumnStandard && p.ColumnStyle != ColumnOrthographic && p.ColumnStyle != ColumnFixed:
		err = fmt.Errorf("unknown column style %d", p.ColumnStyle)
	case p.ColumnOffsets != nil && len(p.ColumnOffsets) < p.Cols:
		err = fmt.Errorf("column offset table covers %d of %d columns", len(p.ColumnOffsets), p.Cols)
	case p.WallThickness <= 0:
		err = errors.New("wall thickness <= 0")
	case p.WallXYOffset <= 0:
		err = errors.New("wall xy offset <= 0")
	}
	if err != nil {
		return err
	}
	if p.ColumnStyle == ColumnFixed && p.Cols > len(fixedAngles) {
		// Out-of-range table lookup is a configuration error, not a clamp.
		return fmt.Errorf("fixed column style: column %d beyond fixed table length %d", p.Cols-1, len(fixedAngles))
	}
	return nil
}

func (p *Params) lastRow() int   { return p.Rows - 1 }
func (p *Params) cornerRow() int { return p.Rows - 2 }
func (p *Params) centerRow() int { return p.Rows - 3 }
func (p *Params) lastCol() int   { return p.Cols - 1 }

// firstCol is the leftmost populated column: 0 when the inner column toggle
// is set, 1 otherwise.
func (p *Params) firstCol() int {
	if p.InnerColumn {
		return 0
	}
	return 1
}

// hasKey reports whether the (col,row) address is populated under the current
// toggles. The matrix is logically the set of addresses satisfying this
// predicate; no grid is stored.
func (p *Params) hasKey(col, row int) bool {
	if col < p.firstCol() || col > p.lastCol() || row < 0 || row > p.lastRow() {
		return false
	}
	if col == 0 {
		// Inner column is one row shorter than its neighbors.
		return row < p.cornerRow()
	}
	if row == p.lastRow() {
		return p.ExtraRow
	}
	return true
}

// bottomRow returns the lowest populated row of col, or -1 when the column is
// empty.
func (p *Params) bottomRow(col int) int {
	for row := p.lastRow(); row >= 0; row-- {
		if p.hasKey(col, row) {
			return row
		}
	}
	return -1
}

// wideKey reports whether the mount at (col,row) uses the 1.5u footprint.
// An inverted 1.5u row range enumerates no rows and disables widening.
func (p *Params) wideKey(col, row int) bool {
	return p.PinkyWide && col == p.lastCol() &&
		row >= p.First15uRow && row <= p.Last15uRow && p.hasKey(col, row)
}
