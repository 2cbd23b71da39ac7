package probe

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/copa/pkg/logger"
)

// Percentage conversion constant.
const percentageMultiplier = 100.0

// Run executes a complete verification sweep against the server.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting copa dashboard probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Bool("verbose", config.Verbose))

	client := newClient(config.BaseURL, config.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fetch the dropdown options; they drive the sweep
	var opts Options
	if err := client.GetJSON(ctx, "/options", &opts); err != nil {
		return fmt.Errorf("options retrieval failed: %w", err)
	}
	if len(opts.Years) == 0 || len(opts.Countries) == 0 {
		return fmt.Errorf("empty option lists: %d countries, %d years", len(opts.Countries), len(opts.Years))
	}

	// Step 3: Build and run all checks concurrently
	checks := buildChecks(ctx, client, opts)
	stats.ChecksBuilt = len(checks)
	failures := runChecks(ctx, config, checks, stats)

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	if len(failures) > 0 {
		for _, f := range failures {
			logger.Get().Error(ctx, "check failed", logger.String("check", f.Name), logger.Error(f.Err))
		}
		return fmt.Errorf("%d of %d checks failed", len(failures), stats.ChecksBuilt)
	}

	logger.Get().Info(ctx, "probe completed successfully")
	return nil
}

// failure pairs a check name with its error for the final report.
type failure struct {
	Name string
	Err  error
}

// runChecks fans the checks out over the configured worker count.
func runChecks(ctx context.Context, config *Config, checks []Check, stats *Stats) []failure {
	checkChan := make(chan Check, config.Workers*2)
	failChan := make(chan failure, len(checks))
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for check := range checkChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddInt64(&stats.ChecksRun, 1)
				if err := check.Do(); err != nil {
					atomic.AddInt64(&stats.ChecksFailed, 1)
					failChan <- failure{Name: check.Name, Err: err}
					continue
				}
				atomic.AddInt64(&stats.ChecksPassed, 1)
				if config.Verbose {
					logger.Get().Debug(ctx, "check passed", logger.String("check", check.Name))
				}
			}
		}()
	}

	for _, check := range checks {
		checkChan <- check
	}
	close(checkChan)
	wg.Wait()
	close(failChan)

	var failures []failure
	for f := range failChan {
		failures = append(failures, f)
	}
	return failures
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *Client) error {
	logger.Get().Info(ctx, "checking service health")

	// Any 200 counts as healthy; the body is Prometheus text.
	status, err := client.Head(ctx, "/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if status != 200 {
		return fmt.Errorf("service health check failed with status: %d", status)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// displayFinalStats prints the final probe statistics.
func displayFinalStats(stats *Stats) {
	var successRate, checksPerSecond float64

	if stats.ChecksRun > 0 {
		successRate = float64(stats.ChecksPassed) / float64(stats.ChecksRun) * percentageMultiplier
	}
	if stats.Duration > 0 {
		checksPerSecond = float64(stats.ChecksRun) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("checksBuilt", stats.ChecksBuilt),
		logger.Int("checksRun", int(stats.ChecksRun)),
		logger.Int("checksPassed", int(stats.ChecksPassed)),
		logger.Int("checksFailed", int(stats.ChecksFailed)),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("checksPerSecond", checksPerSecond))
}
