// Command server runs the landing builder HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; a local .env file is loaded first when present.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/landing-builder-backend/internal/app"
	"github.com/heartmarshall/landing-builder-backend/internal/config"
)

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s\n\nAll settings come from the YAML file and the environment:\n\n", os.Args[0])
		fmt.Fprintln(out, config.Usage())
	}
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}
