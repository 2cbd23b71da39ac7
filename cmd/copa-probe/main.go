package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/copa/internal/probe"
)

// Default configuration constants.
const (
	defaultTimeout = 10 * time.Second
	defaultRunFor  = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8090", "Base URL of the service")
		workers = flag.Int("workers", runtime.NumCPU(), "Number of concurrent workers")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile = flag.String("log", "", "Log file for probe output (default: probe_log_TIMESTAMP.log)")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp()
		return
	}

	if err := probe.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("failed to set up logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunFor)
	defer cancel()

	cfg := &probe.Config{
		BaseURL: *baseURL,
		Workers: *workers,
		Timeout: *timeout,
		Verbose: *verbose,
	}

	if err := probe.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
