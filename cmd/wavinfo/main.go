// This tool prints the stream descriptor of WAV files along with the
// chunks the decoder skipped and where the loudest window would be cut.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cwbudde/wavtrim"
)

var errDecodeFailed = errors.New("one or more files could not be read")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out, errOut io.Writer) error {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd.Execute()
}

func newRootCommand() *cobra.Command {
	var lengthMS int64

	cmd := &cobra.Command{
		Use:           "wavinfo [--length-ms N] <file>...",
		Short:         "Describe 16-bit PCM WAV files",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lengthMS <= 0 {
				return fmt.Errorf("--length-ms must be positive, got %d", lengthMS)
			}

			failed := false
			for _, path := range args {
				if err := describeFile(cmd.OutOrStdout(), path, lengthMS); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed = true
				}
			}

			if failed {
				return errDecodeFailed
			}

			return nil
		},
	}

	cmd.Flags().Int64Var(&lengthMS, "length-ms", 1000, "Window length in milliseconds used for the loudest-window report")

	return cmd
}

func describeFile(out io.Writer, path string, lengthMS int64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	clip, err := wavtrim.Decode(data)
	if err != nil {
		return err
	}

	fc := clip.FormatChunk()

	fmt.Fprintln(out, path)
	fmt.Fprintf(out, "  Size: %s\n", humanize.Bytes(uint64(len(data))))
	fmt.Fprintf(out, "  Format: %d Hz, %d ch, %d-bit PCM (fmt chunk %d bytes)\n",
		clip.SampleRate, clip.NumChans, fc.BitsPerSample, fc.Size)
	fmt.Fprintf(out, "  Frames: %d (%s)\n", clip.NumFrames, clip.Duration())

	ids := make([]string, 0, len(clip.Skipped))
	for _, chunk := range clip.RawChunks() {
		ids = append(ids, fmt.Sprintf("%q", chunk.IDString()))
	}
	if len(ids) == 0 {
		fmt.Fprintln(out, "  Skipped chunks: none")
	} else {
		fmt.Fprintf(out, "  Skipped chunks: %s\n", strings.Join(ids, ", "))
	}

	tags, err := wavtrim.ReadInfo(data, clip.RawChunks())
	if err != nil {
		return err
	}
	for _, tag := range tags {
		fmt.Fprintf(out, "  Info %s: %s\n", tag.Label, tag.Value)
	}

	desired := int(wavtrim.FramesForMillis(lengthMS, clip.SampleRate))
	if desired <= 0 {
		fmt.Fprintf(out, "  Loudest window: %d ms is shorter than one sample\n", lengthMS)
		return nil
	}

	mono := wavtrim.Downmix(clip)
	start := wavtrim.LoudestWindowStart(mono.Data, desired)
	window := wavtrim.LoudestWindow(mono.Data, desired)

	fmt.Fprintf(out, "  Loudest window: start %d, %d frames, avg volume %.4f\n",
		start, len(window), wavtrim.AverageVolume(window, desired))

	return nil
}
