package network

import (
	"fmt"
	"io"
	"strings"
)

// String renders the topology with one-letter component symbols, the form
// printed at the top of every exercise file:
//
//	Series(R,Parallel(C,L),R)
func (n *Network) String() string {
	var b strings.Builder
	n.write(&b, false)

	return b.String()
}

// Format implements fmt.Formatter. %s and %v print String; %+v prints the
// component IDs instead of the bare symbols:
//
//	Series(R0,Parallel(C0,L0),R1)
func (n *Network) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			var b strings.Builder
			n.write(&b, true)
			_, _ = io.WriteString(f, b.String())
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(f, n.String())
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(network.Network=%s)", verb, n.String())
	}
}

func (n *Network) write(b *strings.Builder, withIDs bool) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	if n.kind.IsComponent() {
		if withIDs {
			b.WriteString(n.id)
		} else {
			b.WriteString(n.kind.Symbol())
		}
		return
	}

	b.WriteString(n.kind.String())
	b.WriteByte('(')
	for i, c := range n.children {
		if i > 0 {
			b.WriteByte(',')
		}
		c.write(b, withIDs)
	}
	b.WriteByte(')')
}
