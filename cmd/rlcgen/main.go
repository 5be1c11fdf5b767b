// rlcgen generates RLC circuit exercises: a random network that passes the
// quality limits, a task sheet, solution sheets and a schematic image.
//
// Usage:
//
//	rlcgen [--res 7 --cap 1 --ind 1 ...] [--out dir]
//	rlcgen show [--markdown]
//	rlcgen history [--limit 20]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
