// bicover searches small team covers over bipartite employee graphs.
//
// Usage:
//
//	bicover solve [--input=<instance.yaml>] [--team-count=N] [--side=N] [--seed=N]
//	bicover generate -o <instance.yaml> [--team-count=N] [--side=N] [--seed=N]
//	bicover version
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
