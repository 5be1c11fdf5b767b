package network

import (
	"sort"
	"strconv"
	"strings"
)

// Reading is the evaluated state of a single component.
type Reading struct {
	// ID is the component identifier (e.g. "R3").
	ID string
	// Kind is the component kind.
	Kind Kind
	// Impedance is the component impedance at the evaluated regime.
	Impedance float64
	// Voltage is the potential difference across the component.
	Voltage float64
	// Current is the current flowing through the component.
	Current float64
}

// Table maps component IDs to readings while remembering insertion order.
type Table struct {
	readings []Reading
	index    map[string]int
}

func newTable() *Table {
	return &Table{index: make(map[string]int)}
}

// add appends a reading; a repeated ID means the uniqueness invariant is broken.
func (t *Table) add(r Reading) {
	if _, dup := t.index[r.ID]; dup {
		invariant("duplicate component id %q", r.ID)
	}
	t.index[r.ID] = len(t.readings)
	t.readings = append(t.readings, r)
}

// Len returns the number of readings.
func (t *Table) Len() int { return len(t.readings) }

// Get returns the reading for id.
func (t *Table) Get(id string) (Reading, bool) {
	i, ok := t.index[id]
	if !ok {
		return Reading{}, false
	}

	return t.readings[i], true
}

// Readings returns a copy of the readings in tree order.
func (t *Table) Readings() []Reading {
	out := make([]Reading, len(t.readings))
	copy(out, t.readings)

	return out
}

// IDs returns the component IDs in tree order.
func (t *Table) IDs() []string {
	ids := make([]string, len(t.readings))
	for i, r := range t.readings {
		ids[i] = r.ID
	}

	return ids
}

// Sorted returns the readings ordered by kind (R, C, L) and then by ID in
// natural order, so "R2" precedes "R10".
func (t *Table) Sorted() []Reading {
	out := t.Readings()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return LessID(out[i].ID, out[j].ID)
	})

	return out
}

// LessID compares two identifiers of the form <prefix><number>: prefixes
// lexicographically, then numeric suffixes by value. IDs without a numeric
// suffix fall back to plain string order.
func LessID(a, b string) bool {
	pa, na, okA := splitID(a)
	pb, nb, okB := splitID(b)
	if pa != pb {
		return pa < pb
	}
	if okA && okB && na != nb {
		return na < nb
	}

	return a < b
}

// splitID separates the trailing decimal digits of id.
func splitID(id string) (prefix string, num int, ok bool) {
	cut := strings.LastIndexFunc(id, func(r rune) bool { return r < '0' || r > '9' }) + 1
	if cut == len(id) {
		return id, 0, false
	}
	n, err := strconv.Atoi(id[cut:])
	if err != nil {
		return id, 0, false
	}

	return id[:cut], n, true
}
