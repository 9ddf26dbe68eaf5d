package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/wavtrim/internal/batch"
	"github.com/cwbudde/wavtrim/internal/config"
	"github.com/cwbudde/wavtrim/internal/logging"
)

type rootFlags struct {
	config    string
	lengthMS  int64
	minVolume float64
	format    string
	workers   int
	logLevel  string
	logFormat string
	summary   bool
}

func newRootCommand(logOut io.Writer) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "wavtrim [flags] <input-glob> <output-dir>",
		Short: "Cut the loudest window out of WAV files",
		Long: "wavtrim decodes every 16-bit PCM WAV matching <input-glob>, mixes it down to mono,\n" +
			"selects the loudest window of --length-ms and writes it to <output-dir> under the\n" +
			"same name. Windows quieter than --min-volume are skipped.",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &flags)
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Writer: logOut,
			})
			if err != nil {
				return err
			}

			jobs, err := batch.Plan(args[0], args[1], cfg.OutputExt())
			if errors.Is(err, filepath.ErrBadPattern) {
				logger.Warn("no input files matched", "pattern", args[0], "error", err)
				return nil
			}
			if err != nil {
				return err
			}

			if len(jobs) == 0 {
				logger.Warn("no input files matched", "pattern", args[0])
				return nil
			}

			// files whose directory is missing fail one by one in the runner
			if err := batch.EnsureDirs(jobs); err != nil {
				logger.Warn("output directory", "error", err)
			}

			logger.Debug("starting batch",
				"files", len(jobs),
				"length_ms", cfg.Trim.LengthMS,
				"min_volume", cfg.Trim.MinVolume,
				"format", cfg.Output.Format,
				"workers", cfg.Output.Workers,
			)

			runner := batch.Runner{
				Options: cfg.TrimOptions(),
				Format:  cfg.Output.Format,
				Workers: cfg.Output.Workers,
				Logger:  logger,
			}

			summary := runner.Run(cmd.Context(), jobs)

			logger.Info("batch finished",
				"saved", summary.Saved,
				"skipped", summary.Skipped,
				"failed", summary.Failed,
			)

			if flags.summary {
				fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summary))
			}

			return cmd.Context().Err()
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	f.Int64Var(&flags.lengthMS, "length-ms", 0, "Window length in milliseconds (default 1000)")
	f.Float64Var(&flags.minVolume, "min-volume", 0, "Skip windows whose mean absolute amplitude is below this (default 0.004)")
	f.StringVar(&flags.format, "format", "", "Output format: wav or aiff")
	f.IntVar(&flags.workers, "workers", 0, "Number of files processed concurrently")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	f.StringVar(&flags.logFormat, "log-format", "", "Log format: auto, console or json")
	f.BoolVar(&flags.summary, "summary", false, "Print a table of per-file results")

	return cmd
}

// loadConfig layers explicitly set flags over the file and environment.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, _, _, err := config.Load(cmd.Context(), flags.config)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("length-ms") {
		cfg.Trim.LengthMS = flags.lengthMS
	}
	if f.Changed("min-volume") {
		cfg.Trim.MinVolume = flags.minVolume
	}
	if f.Changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(flags.format))
	}
	if f.Changed("workers") {
		cfg.Output.Workers = flags.workers
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(flags.logLevel))
	}
	if f.Changed("log-format") {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(flags.logFormat))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
