// This tool writes a 16-bit WAV made of silence with a single sine burst,
// handy for checking where the trimmer cuts.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/wavtrim"
	"github.com/cwbudde/wavtrim/internal/logging"
)

type toneFlags struct {
	output    string
	rate      uint32
	length    time.Duration
	offset    time.Duration
	burst     time.Duration
	frequency float64
	amplitude float64
	channels  uint16
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, logOut io.Writer) error {
	cmd := newRootCommand(logOut)
	cmd.SetArgs(args)
	cmd.SetOut(logOut)
	cmd.SetErr(logOut)

	return cmd.Execute()
}

func newRootCommand(logOut io.Writer) *cobra.Command {
	var flags toneFlags

	cmd := &cobra.Command{
		Use:           "gen-tone",
		Short:         "Generate silence with a sine burst as a 16-bit WAV",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(logging.Options{Level: "info", Format: "auto", Writer: logOut})
			if err != nil {
				return err
			}

			return generate(flags, logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.output, "output", "output.wav", "filename to write to")
	f.Uint32Var(&flags.rate, "rate", 16000, "sample rate in hertz")
	f.DurationVar(&flags.length, "length", 2*time.Second, "total length of the file")
	f.DurationVar(&flags.offset, "offset", 500*time.Millisecond, "start of the burst")
	f.DurationVar(&flags.burst, "burst", 250*time.Millisecond, "length of the burst")
	f.Float64Var(&flags.frequency, "frequency", 440, "frequency of the burst in hertz")
	f.Float64Var(&flags.amplitude, "amplitude", 0.5, "peak amplitude of the burst, 0 to 1")
	f.Uint16Var(&flags.channels, "channels", 1, "number of identical channels")

	return cmd
}

func generate(flags toneFlags, logger *slog.Logger) error {
	if flags.amplitude < 0 || flags.amplitude > 1 {
		return fmt.Errorf("amplitude must be within [0, 1], got %v", flags.amplitude)
	}

	if flags.length <= 0 || flags.offset < 0 || flags.burst < 0 {
		return fmt.Errorf("length must be positive and offset/burst non-negative")
	}

	frames := wavtrim.FramesForMillis(flags.length.Milliseconds(), flags.rate)
	first := wavtrim.FramesForMillis(flags.offset.Milliseconds(), flags.rate)
	last := first + wavtrim.FramesForMillis(flags.burst.Milliseconds(), flags.rate)

	if frames <= 0 {
		return fmt.Errorf("%s at %d Hz is shorter than one sample", flags.length, flags.rate)
	}

	chans := int64(flags.channels)
	samples := make([]float32, frames*chans)

	for i := first; i < last && i < frames; i++ {
		v := float32(flags.amplitude * math.Sin(2*math.Pi*flags.frequency*float64(i-first)/float64(flags.rate)))
		for ch := range chans {
			samples[i*chans+ch] = v
		}
	}

	data, err := wavtrim.Encode(samples, uint64(flags.rate), uint64(flags.channels), uint64(frames))
	if err != nil {
		return err
	}

	if err := os.WriteFile(flags.output, data, 0o644); err != nil {
		return fmt.Errorf("error creating %s: %w", flags.output, err)
	}

	logger.Info("generated tone",
		"output", flags.output,
		"frames", frames,
		"burst_start", first,
		"burst_frames", min(last, frames)-min(first, frames),
	)

	return nil
}
