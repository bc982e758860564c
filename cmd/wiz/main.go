package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/infrastructure/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	opts := cli.Options{Verbose: isVerbose()}

	root := cli.NewRootCmd(ctx, opts)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		var subErr *domain.SubprocessError
		if errors.As(err, &subErr) {
			// The llm tool already formats its own errors.
			fmt.Fprintln(os.Stderr, subErr.Stderr)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("WIZ_DEBUG"), "1") || strings.EqualFold(os.Getenv("WIZ_DEBUG"), "true")
}
