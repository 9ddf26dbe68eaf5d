package wavtrim

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidArgument is wrapped by every error the codec and the trim
// pipeline return: malformed headers, truncated input, missing or duplicate
// data chunks and arguments the encoder cannot represent.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func tagString(id [4]byte) string {
	return string(id[:])
}

// FramesForMillis returns how many frames fit in ms milliseconds at the
// given sample rate, truncating towards zero.
func FramesForMillis(ms int64, sampleRate uint32) int64 {
	return ms * int64(sampleRate) / 1000
}

func framesDuration(frames int, sampleRate uint32) time.Duration {
	if sampleRate == 0 {
		return 0
	}

	secs := float64(frames) / float64(sampleRate)

	return time.Duration(math.Round(secs * float64(time.Second)))
}
