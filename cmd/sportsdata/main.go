package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/sportsdata-go/external/sportsdata"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

const (
	exitOK       = 0
	exitFailure  = 1
	exitRejected = 2
)

func main() {
	// A missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	state := &cliState{stdout: stdout, stderr: stderr}
	defer state.close()

	root := newRootCmd(state)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var apiErr *sportsdata.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintln(stderr, apiErr.Dump())
		return exitRejected
	}
	fmt.Fprintln(stderr, "error:", err)
	return exitFailure
}
