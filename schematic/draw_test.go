package schematic_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rlcnet/network"
	"github.com/katalvlaran/rlcnet/schematic"
)

func r(id string) *network.Network { return network.NewResistor(id, 1) }

func TestDraw_Component(t *testing.T) {
	t.Parallel()

	rec := &schematic.Recorder{}
	ext := schematic.Draw(rec, r("R0"), schematic.DefaultLayout(), 100, 50)

	assert.Equal(t, schematic.Extent{MaxX: 125, MaxY: 115, BottomX: 112}, ext)
	var got []string
	for _, op := range rec.Ops {
		got = append(got, op.String())
	}
	assert.Equal(t, []string{
		"Line(112,50,112,65)",
		"Rect(100,65,25,50)",
		"Text(106,90,R0)",
	}, got)
}

func TestDraw_Series(t *testing.T) {
	t.Parallel()

	rec := &schematic.Recorder{}
	ext := schematic.Draw(rec, network.NewSeries(r("R0"), r("R1")), schematic.DefaultLayout(), 100, 50)

	assert.Equal(t, schematic.Extent{MaxX: 125, MaxY: 180, BottomX: 112}, ext)
	assert.Equal(t, 2, rec.Count("Rect"))
	assert.Equal(t, []int{100, 130, 25, 50}, rec.Ops[4].Args, "second box stacked below the first")
}

func TestDraw_Parallel(t *testing.T) {
	t.Parallel()

	rec := &schematic.Recorder{}
	ext := schematic.Draw(rec, network.NewParallel(r("R0"), r("R1")), schematic.DefaultLayout(), 100, 50)

	assert.Equal(t, schematic.Extent{MaxX: 180, MaxY: 145, BottomX: 124}, ext)

	var lines []string
	for _, op := range rec.Ops {
		if op.Name == "Line" {
			lines = append(lines, op.String())
		}
	}
	assert.Equal(t, []string{
		"Line(112,50,112,65)",   // stub
		"Line(112,65,112,80)",   // R0 stub
		"Line(167,65,167,80)",   // R1 stub
		"Line(112,65,167,65)",   // top rail
		"Line(112,130,112,145)", // R0 leg
		"Line(167,130,167,145)", // R1 leg
		"Line(112,145,167,145)", // bottom rail
	}, lines)
}

func TestDraw_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		schematic.Draw(&schematic.Recorder{}, network.NewParallel(), schematic.DefaultLayout(), 0, 0)
	})
	assert.Panics(t, func() {
		schematic.Draw(&schematic.Recorder{}, &network.Network{}, schematic.DefaultLayout(), 0, 0)
	})
}

func TestDrawFrame(t *testing.T) {
	t.Parallel()

	rec := &schematic.Recorder{}
	w, h := schematic.DrawFrame(rec, network.NewParallel(r("R0"), r("R1")), schematic.DefaultLayout())
	assert.Equal(t, 200, w)
	assert.Equal(t, 180, h)
	assert.Equal(t, 1, rec.Count("Circle"))
	assert.Equal(t, 2, rec.Count("Text"))

	mw, mh := schematic.Measure(network.NewParallel(r("R0"), r("R1")), schematic.DefaultLayout())
	assert.Equal(t, w, mw)
	assert.Equal(t, h, mh)
}

func TestLayout_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, schematic.DefaultLayout().Validate())
	l := schematic.DefaultLayout()
	l.Gap = 0
	assert.ErrorIs(t, l.Validate(), schematic.ErrInvalidLayout)
}

func TestRenderPNG(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, schematic.RenderPNG(&buf, r("R0"), schematic.DefaultLayout()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 145, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	white := color.RGBAModel.Convert(color.White)
	assert.Equal(t, white, color.RGBAModel.Convert(img.At(0, 0)), "background")

	inked := false
	for y := 0; y < img.Bounds().Dy() && !inked; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if color.RGBAModel.Convert(img.At(x, y)) != white {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "something was drawn")

	assert.Error(t, schematic.RenderPNG(&buf, nil, schematic.DefaultLayout()))
	assert.ErrorIs(t, schematic.RenderPNG(&buf, r("R0"), schematic.Layout{}), schematic.ErrInvalidLayout)
}
