package schematic

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout reports a non-positive layout dimension.
var ErrInvalidLayout = errors.New("schematic: invalid layout")

// Layout holds the drawing dimensions in pixels.
type Layout struct {
	ComponentWidth  int `yaml:"componentWidth"`
	ComponentHeight int `yaml:"componentHeight"`
	LineLength      int `yaml:"lineLength"`
	Gap             int `yaml:"gap"`
}

// DefaultLayout returns 25×50 boxes, 15 px stubs and a 30 px gap.
func DefaultLayout() Layout {
	return Layout{
		ComponentWidth:  25,
		ComponentHeight: 50,
		LineLength:      15,
		Gap:             30,
	}
}

// Validate checks that every dimension is positive.
func (l Layout) Validate() error {
	if l.ComponentWidth <= 0 || l.ComponentHeight <= 0 || l.LineLength <= 0 || l.Gap <= 0 {
		return fmt.Errorf("Validate: %+v: %w", l, ErrInvalidLayout)
	}
	return nil
}

// Extent is the area occupied by a drawn subtree.
type Extent struct {
	MaxX, MaxY int
	// BottomX is the x coordinate of the bottom connection point.
	BottomX int
}
