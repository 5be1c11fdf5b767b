package schematic

import "fmt"

// Painter receives drawing primitives in pixel coordinates, origin top left.
type Painter interface {
	Line(x1, y1, x2, y2 int)
	Rect(x, y, w, h int)
	Circle(cx, cy, r int)
	// Text draws s with its baseline starting at (x, y).
	Text(x, y int, s string)
}

// nopPainter discards everything; it is used to measure a drawing.
type nopPainter struct{}

func (nopPainter) Line(_, _, _, _ int) {}
func (nopPainter) Rect(_, _, _, _ int) {}
func (nopPainter) Circle(_, _, _ int) {}
func (nopPainter) Text(_, _ int, _ string) {}

// Op is one recorded primitive.
type Op struct {
	Name string
	Args []int
	Text string
}

// String renders the op as "Line(1,2,3,4)" or "Text(1,2,R0)".
func (o Op) String() string {
	s := o.Name + "("
	for i, a := range o.Args {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprint(a)
	}
	if o.Name == "Text" {
		s += "," + o.Text
	}
	return s + ")"
}

// Recorder keeps every primitive in call order.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Line(x1, y1, x2, y2 int) {
	r.Ops = append(r.Ops, Op{Name: "Line", Args: []int{x1, y1, x2, y2}})
}

func (r *Recorder) Rect(x, y, w, h int) {
	r.Ops = append(r.Ops, Op{Name: "Rect", Args: []int{x, y, w, h}})
}

func (r *Recorder) Circle(cx, cy, rad int) {
	r.Ops = append(r.Ops, Op{Name: "Circle", Args: []int{cx, cy, rad}})
}

func (r *Recorder) Text(x, y int, s string) {
	r.Ops = append(r.Ops, Op{Name: "Text", Args: []int{x, y}, Text: s})
}

// Count returns how many ops have the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, o := range r.Ops {
		if o.Name == name {
			n++
		}
	}
	return n
}
