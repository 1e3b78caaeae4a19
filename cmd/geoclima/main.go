package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"geoclima.app/internal/adapters/infrastructure"
	"geoclima.app/internal/app"
	"geoclima.app/internal/config"
	"geoclima.app/internal/core/analysis"
	"geoclima.app/internal/core/pipeline"
	"geoclima.app/pkg/errors"
)

var version = "dev"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found or error loading it")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return exitUsage
	}

	switch args[0] {
	case "analyze":
		return runAnalyze(ctx, args[1:], stdout, stderr)
	case "config":
		return runConfig(args[1:], stdout, stderr)
	case "health":
		return runHealth(ctx, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "geoclima %s\n", version)
		return exitOK
	case "help", "-h", "--help":
		printUsage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		printUsage(stderr)
		return exitUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "GeoClima weather and activity analysis")
	fmt.Fprintln(w, "Usage: geoclima <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  analyze  - Analyze a place, date range and plans")
	fmt.Fprintln(w, "             -place P -date D -plans T [-format markdown|json|yaml] [-timeout 60s]")
	fmt.Fprintln(w, "  config   - Show the loaded configuration with secrets masked")
	fmt.Fprintln(w, "             [-env] print the environment variables instead")
	fmt.Fprintln(w, "  health   - Check cache connectivity and upstream wiring")
	fmt.Fprintln(w, "  version  - Print the version")
}

func runAnalyze(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	place := fs.String("place", "", "place name or \"lat, lon\"")
	date := fs.String("date", "", "date range, e.g. \"July 15-20\"")
	plans := fs.String("plans", "", "planned activities")
	format := fs.String("format", formatMarkdown, "output format: markdown, json or yaml")
	timeout := fs.Duration("timeout", 60*time.Second, "overall deadline for the analysis")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if !validFormat(*format) {
		fmt.Fprintf(stderr, "unsupported format %q\n", *format)
		return exitUsage
	}

	req := pipeline.Request{Place: *place, Date: *date, Plans: *plans}
	if err := req.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid request: %v\n", err)
		return exitUsage
	}

	application, err := app.NewApplication(ctx)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return exitFailure
	}
	defer func() {
		if err := application.Shutdown(context.Background()); err != nil {
			slog.Warn("Error during shutdown", "error", err)
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	result, err := application.Analyze(runCtx, req)
	if err != nil {
		fmt.Fprintf(stderr, "invalid request: %v\n", err)
		if errors.IsValidationError(err) {
			return exitUsage
		}
		return exitFailure
	}

	if err := writeResult(stdout, result, *format); err != nil {
		slog.Error("Failed to write result", "error", err)
		return exitFailure
	}

	if result.State == analysis.StateNotFound {
		slog.Info("Location not found, showing fallback", "place", req.Place)
	}
	return exitOK
}

func runConfig(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(stderr)
	env := fs.Bool("env", false, "print the process environment instead, secrets masked")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	displayer := app.NewConfigDisplayer(stdout)
	if *env {
		displayer.PrintAllEnvVars()
		return exitOK
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return exitFailure
	}

	displayer.PrintConfig(cfg)
	return exitOK
}

func runHealth(ctx context.Context, stdout, stderr io.Writer) int {
	application, err := app.NewApplication(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize application: %v\n", err)
		return exitFailure
	}
	defer func() {
		_ = application.Shutdown(context.Background())
	}()

	results := application.Health(ctx)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		fmt.Fprintf(stderr, "failed to encode health report: %v\n", err)
		return exitFailure
	}

	if !infrastructure.Healthy(results) {
		return exitFailure
	}
	return exitOK
}
