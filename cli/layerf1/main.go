package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	layerf1cmder "github.com/anupam312nwd/matrix-manifolds/cmd/layerf1"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := layerf1cmder.NewLayerF1Cmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "layerf1:", err)
		os.Exit(1)
	}
}
