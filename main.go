package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rook-computer/appicon/internal/app"
)

func main() {
	a := app.New(".", os.Stdout)
	// Failures are logged to stderr with their component; stdout only
	// carries the confirmation line.
	a.Logger = app.ErrorsOnly{Logger: app.NewFileLogger(os.Stderr)}

	if err := a.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "appicon:", err)
		os.Exit(1)
	}
}
