package wavtrim

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
)

// EncodeAIFF writes c as a 16-bit AIFF file.
func EncodeAIFF(w io.WriteSeeker, c *Clip) error {
	if c == nil || len(c.Data) == 0 {
		return invalidArgument("audio is empty")
	}

	if c.NumChans == 0 || c.SampleRate == 0 {
		return invalidArgument("clip has no format (channels=%d, sample_rate=%d)", c.NumChans, c.SampleRate)
	}

	enc := aiff.NewEncoder(w, int(c.SampleRate), pcmBitsPerSample, int(c.NumChans))

	if err := enc.Write(c.IntBuffer()); err != nil {
		return fmt.Errorf("failed to write aiff samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize aiff: %w", err)
	}

	return nil
}
