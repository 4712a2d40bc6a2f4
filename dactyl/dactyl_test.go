package dactyl

import (
	"strings"
	"testing"

	"github.com/openkbd/dactylforge/scadbuild"
	"github.com/soypat/geometry/ms3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/titanous/json5"
)

func TestGenerateDefaults(t *testing.T) {
	out, err := Generate(DefaultParams())
	require.NoError(t, err)
	require.NotNil(t, out.RightCase)
	require.NotNil(t, out.LeftCase)
	require.NotNil(t, out.BottomPlate)

	sz := out.RightCase.Bounds().Size()
	assert.Greater(t, sz.X, float32(100), "case narrower than a hand")
	assert.Greater(t, sz.Y, float32(100))
	assert.Greater(t, sz.Z, float32(20))
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate(DefaultParams())
	require.NoError(t, err)
	b, err := Generate(DefaultParams())
	require.NoError(t, err)
	assert.Equal(t,
		scadbuild.Source(a.RightCase),
		scadbuild.Source(b.RightCase),
		"same parameters must emit the identical program")
}

func TestLeftCaseIsMirrored(t *testing.T) {
	out, err := Generate(DefaultParams())
	require.NoError(t, err)
	src := scadbuild.Source(out.LeftCase)
	assert.True(t, strings.HasPrefix(src, "mirror([1,0,0])"),
		"left case source starts %q", src[:min(len(src), 40)])
}

func TestBottomPlateSitsOnBed(t *testing.T) {
	out, err := Generate(DefaultParams())
	require.NoError(t, err)
	bb := out.BottomPlate.Bounds()
	assert.InDelta(t, 0, bb.Min.Z, 1e-3)
	assert.InDelta(t, 2.6, bb.Max.Z, 1e-3)
}

func TestGenerateRejectsBadParams(t *testing.T) {
	cases := []struct {
		name    string
		adjust  func(*Params)
		wantMsg string
	}{
		{"too few rows", func(p *Params) { p.Rows = 3 }, "outside supported range"},
		{"fixed tables too short", func(p *Params) {
			p.ColumnStyle = ColumnFixed
			p.Cols = 8
		}, "beyond fixed table length"},
		{"short offset table", func(p *Params) {
			p.ColumnOffsets = []ms3.Vec{{}, {}}
		}, "column offset table covers 2 of 7"},
		{"bad wall thickness", func(p *Params) { p.WallThickness = 0 }, "wall thickness"},
		{"center column out of range", func(p *Params) { p.CenterCol = 7 }, "center column"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.adjust(&p)
			_, err := Generate(p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestParamsJSON5Overlay(t *testing.T) {
	p := DefaultParams()
	src := `{
		// comments and trailing commas are fine in parameter files
		rows: 4,
		columnStyle: "orthographic",
		pinkyWide: false,
	}`
	require.NoError(t, json5.Unmarshal([]byte(src), &p))
	assert.Equal(t, 4, p.Rows)
	assert.Equal(t, ColumnOrthographic, p.ColumnStyle)
	assert.False(t, p.PinkyWide)
	// Untouched fields keep their defaults.
	assert.Equal(t, 7, p.Cols)
	assert.Equal(t, DefaultParams().ThumbOffsets, p.ThumbOffsets)

	out, err := Generate(p)
	require.NoError(t, err)
	require.NotNil(t, out.RightCase)
}

func TestColumnStyleUnmarshal(t *testing.T) {
	var c ColumnStyle
	require.NoError(t, c.UnmarshalJSON([]byte(`"fixed"`)))
	assert.Equal(t, ColumnFixed, c)
	require.NoError(t, c.UnmarshalJSON([]byte(`"standard"`)))
	assert.Equal(t, ColumnStandard, c)
	assert.Error(t, c.UnmarshalJSON([]byte(`"diagonal"`)))
}
