// SPDX-License-Identifier: MIT
// Package: rlcnet/schematic
//
// draw.go - recursive layout of a topology onto a Painter.

package schematic

import (
	"github.com/katalvlaran/rlcnet/network"
)

// Frame origin of the root network and of the voltage source.
const (
	rootX   = 100
	rootY   = 50
	wireX   = 50
	sourceX = 25
	sourceY = 100
	sourceR = 25
	arrowX  = 15
	margin  = 20
)

// Draw paints n with its top connection at (x, y) and returns its extent.
// Panics on an empty composition or an invalid kind.
// Complexity: O(N).
func Draw(p Painter, n *network.Network, l Layout, x, y int) Extent {
	switch {
	case n.IsComponent():
		return drawComponent(p, n, l, x, y)
	case n.Kind() == network.Series:
		return drawSeries(p, n, l, x, y)
	case n.Kind() == network.Parallel:
		return drawParallel(p, n, l, x, y)
	default:
		panic("schematic: invalid kind " + n.Kind().String())
	}
}

func drawComponent(p Painter, n *network.Network, l Layout, x, y int) Extent {
	w, h, s := l.ComponentWidth, l.ComponentHeight, l.LineLength
	p.Line(x+w/2, y, x+w/2, y+s)
	p.Rect(x, y+s, w, h)
	p.Text(x+w/4, y+s+h/2, n.ID())

	return Extent{MaxX: x + w, MaxY: y + s + h, BottomX: x + w/2}
}

func drawSeries(p Painter, n *network.Network, l Layout, x, y int) Extent {
	ext := Extent{MaxX: x, MaxY: y, BottomX: x + l.ComponentWidth/2}
	for _, c := range n.Children() {
		e := Draw(p, c, l, x, y)
		y = e.MaxY
		ext.MaxX = max(ext.MaxX, e.MaxX)
		ext.MaxY = max(ext.MaxY, e.MaxY)
	}

	return ext
}

func drawParallel(p Painter, n *network.Network, l Layout, x, y int) Extent {
	if n.Len() == 0 {
		panic("schematic: empty parallel composition")
	}
	startX := x + l.ComponentWidth/2
	ext := Extent{MaxX: x, MaxY: y, BottomX: startX + l.ComponentWidth/2}

	p.Line(startX, y, startX, y+l.LineLength)
	y += l.LineLength

	bottoms := make([]Extent, 0, n.Len())
	for _, c := range n.Children() {
		e := Draw(p, c, l, x, y)
		bottoms = append(bottoms, e)
		x = e.MaxX + l.Gap
		ext.MaxX = max(ext.MaxX, e.MaxX)
		ext.MaxY = max(ext.MaxY, e.MaxY)
	}
	last := bottoms[len(bottoms)-1].BottomX
	p.Line(startX, y, last, y)

	ext.MaxY += l.LineLength
	for _, e := range bottoms {
		p.Line(e.BottomX, e.MaxY, e.BottomX, ext.MaxY)
	}
	p.Line(startX, ext.MaxY, last, ext.MaxY)

	return ext
}

// DrawFrame draws n at the frame origin together with the voltage source and
// the closing wires. It returns the image size needed to hold the drawing.
func DrawFrame(p Painter, n *network.Network, l Layout) (width, height int) {
	ext := Draw(p, n, l, rootX, rootY)

	top := rootX + l.ComponentWidth/2
	bottom := ext.MaxY + l.LineLength
	p.Line(wireX, rootY, wireX, sourceY)
	p.Line(wireX, rootY, top, rootY)
	p.Line(wireX, sourceY+2*sourceR, wireX, bottom)
	p.Line(wireX, bottom, top, bottom)
	p.Line(top, ext.MaxY, top, bottom)

	// source and polarity arrow
	p.Circle(sourceX+sourceR, sourceY+sourceR, sourceR)
	p.Line(arrowX, sourceY, arrowX, sourceY+2*sourceR)
	p.Line(arrowX-5, sourceY+2*sourceR-10, arrowX, sourceY+2*sourceR)
	p.Line(arrowX+5, sourceY+2*sourceR-10, arrowX, sourceY+2*sourceR)

	return ext.MaxX + margin, bottom + margin
}

// Measure returns the image size of n without painting anything.
func Measure(n *network.Network, l Layout) (width, height int) {
	return DrawFrame(nopPainter{}, n, l)
}
