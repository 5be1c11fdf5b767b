package schematic

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/rlcnet/network"
)

// pixelDPI makes one vg point one pixel.
const pixelDPI = 72

// labelSize is the font size of component labels.
const labelSize = 10

// canvasPainter paints on a vg.Canvas, flipping y so the origin is top left.
type canvasPainter struct {
	c      vg.Canvas
	height vg.Length
	face   font.Face
}

func newCanvasPainter(c vg.Canvas, height int) *canvasPainter {
	c.SetColor(color.Black)
	c.SetLineWidth(vg.Points(1))

	return &canvasPainter{
		c:      c,
		height: vg.Length(height),
		face:   font.DefaultCache.Lookup(plot.DefaultFont, vg.Points(labelSize)),
	}
}

func (p *canvasPainter) pt(x, y int) vg.Point {
	return vg.Point{X: vg.Length(x), Y: p.height - vg.Length(y)}
}

func (p *canvasPainter) Line(x1, y1, x2, y2 int) {
	var path vg.Path
	path.Move(p.pt(x1, y1))
	path.Line(p.pt(x2, y2))
	p.c.Stroke(path)
}

func (p *canvasPainter) Rect(x, y, w, h int) {
	var path vg.Path
	path.Move(p.pt(x, y))
	path.Line(p.pt(x+w, y))
	path.Line(p.pt(x+w, y+h))
	path.Line(p.pt(x, y+h))
	path.Close()
	p.c.Stroke(path)
}

func (p *canvasPainter) Circle(cx, cy, r int) {
	var path vg.Path
	path.Move(p.pt(cx+r, cy))
	path.Arc(p.pt(cx, cy), vg.Length(r), 0, 2*math.Pi)
	path.Close()
	p.c.Stroke(path)
}

func (p *canvasPainter) Text(x, y int, s string) {
	p.c.FillString(p.face, p.pt(x, y), s)
}

// RenderPNG measures n, then paints it with its source on a white canvas of
// the measured size and encodes it as PNG to w.
func RenderPNG(w io.Writer, n *network.Network, l Layout) error {
	if n == nil {
		return fmt.Errorf("RenderPNG: %w", network.ErrNilNetwork)
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("RenderPNG: %w", err)
	}

	width, height := Measure(n, l)
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width), vg.Length(height)),
		vgimg.UseDPI(pixelDPI),
		vgimg.UseBackgroundColor(color.White),
	)
	DrawFrame(newCanvasPainter(c, height), n, l)

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("RenderPNG: encode: %w", err)
	}

	return nil
}
