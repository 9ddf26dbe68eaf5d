package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/cwbudde/wavtrim"
	"github.com/cwbudde/wavtrim/internal/config"
	"github.com/cwbudde/wavtrim/internal/logging"
)

// Status is the outcome of one file.
type Status string

const (
	StatusSaved   Status = "saved"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
	// StatusPending marks files never started because the run was cancelled.
	StatusPending Status = "pending"
)

// FileResult records what happened to one job.
type FileResult struct {
	Job           Job
	Status        Status
	AverageVolume float32
	Frames        int
	Bytes         int64
	Err           error
}

// Summary lists per-file results in job order.
type Summary struct {
	Files   []FileResult
	Saved   int
	Skipped int
	Failed  int
}

// Runner trims a list of files with a bounded number of workers.
type Runner struct {
	Options wavtrim.Options
	// Format is config.FormatWAV (default) or config.FormatAIFF.
	Format  string
	Workers int
	Logger  *slog.Logger
}

// Run processes jobs and returns the collected results. Per-file failures
// are recorded, never returned. Once ctx is done no new file is started;
// files already in flight finish.
func (r *Runner) Run(ctx context.Context, jobs []Job) Summary {
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]FileResult, len(jobs))
	for i, job := range jobs {
		results[i] = FileResult{Job: job, Status: StatusPending}
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := range jobs {
		if ctx.Err() != nil {
			break
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = r.processFile(jobs[i], logger)
		}(i)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		logger.Warn("batch interrupted", "error", err)
	}

	summary := Summary{Files: results}
	for _, res := range results {
		switch res.Status {
		case StatusSaved:
			summary.Saved++
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
		}
	}

	return summary
}

func (r *Runner) processFile(job Job, logger *slog.Logger) FileResult {
	res := FileResult{Job: job}
	log := logger.With("input", job.Input)

	data, err := os.ReadFile(job.Input)
	if err != nil {
		return r.fail(res, log, fmt.Errorf("read %s: %w", job.Input, err))
	}

	trimmed, err := wavtrim.Trim(data, r.Options)
	if err != nil {
		return r.fail(res, log, err)
	}

	res.AverageVolume = trimmed.AverageVolume
	res.Frames = int(trimmed.Window.NumFrames)

	if trimmed.Skipped {
		res.Status = StatusSkipped
		log.Info("skipped",
			"avg_volume", trimmed.AverageVolume,
			"min_volume", r.Options.MinVolume,
		)
		return res
	}

	n, err := r.write(job.Output, trimmed)
	if err != nil {
		return r.fail(res, log, err)
	}

	res.Status = StatusSaved
	res.Bytes = n
	log.Info("saved",
		"output", job.Output,
		"avg_volume", trimmed.AverageVolume,
		"frames", res.Frames,
		"bytes", n,
	)

	return res
}

func (r *Runner) fail(res FileResult, log *slog.Logger, err error) FileResult {
	res.Status = StatusFailed
	res.Err = err

	if errors.Is(err, wavtrim.ErrInvalidArgument) {
		log.Warn("failed", "error", err)
	} else {
		log.Error("failed", "error", err)
	}

	return res
}

func (r *Runner) write(path string, trimmed *wavtrim.Result) (int64, error) {
	if r.Format != config.FormatAIFF {
		if err := os.WriteFile(path, trimmed.Output, 0o644); err != nil {
			return 0, fmt.Errorf("write %s: %w", path, err)
		}
		return int64(len(trimmed.Output)), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	if err := wavtrim.EncodeAIFF(f, trimmed.Window); err != nil {
		f.Close()
		os.Remove(path)
		return 0, fmt.Errorf("encode %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", path, err)
	}

	return info.Size(), nil
}
