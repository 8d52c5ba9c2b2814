package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/godilite/mbti-server/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", cli.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}
