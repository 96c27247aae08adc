// Petvet Assist triages free-text pet symptom descriptions into an urgency
// level and canned, non-diagnostic guidance.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/linnemanlabs/go-core/cfg"
	"github.com/linnemanlabs/go-core/log"
	v "github.com/linnemanlabs/go-core/version"
)

const appName = "petvet"
const component = "cli"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env is optional, for local development only
	_ = godotenv.Load()

	v.AppName = appName
	v.Component = component

	// The cobra tree owns the command-line surface, so log settings come
	// from PETVET_* environment variables on a private FlagSet parsed with
	// defaults only.
	var logCfg log.Config
	logFS := flag.NewFlagSet("log", flag.ContinueOnError)
	logCfg.RegisterFlags(logFS)
	if err := logFS.Parse(nil); err != nil {
		return fmt.Errorf("log flag defaults: %w", err)
	}
	cfg.FillFromEnv(logFS, "PETVET_", func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	})
	if err := logCfg.Validate(); err != nil {
		return fmt.Errorf("log configuration: %w", err)
	}

	lg, err := log.New(logCfg.ToOptions(v.AppName))
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	L := lg.With("component", v.Component)
	ctx = log.WithContext(ctx, L)

	root := newRootCmd(L)
	return root.ExecuteContext(ctx)
}
