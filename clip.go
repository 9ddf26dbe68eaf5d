package wavtrim

import "time"

// Clip is decoded audio: the stream descriptor plus channel-interleaved
// samples in [-1, 1]. Decode produces all fields together or none.
type Clip struct {
	SampleRate uint32
	NumChans   uint16
	// NumFrames is the number of samples per channel.
	NumFrames uint32
	Data      []float32

	// FmtChunk is the parsed fmt chunk of a decoded file, nil for clips
	// built in memory.
	FmtChunk *FmtChunk
	// Skipped lists the chunks Decode stepped over, in file order.
	Skipped []RawChunk
}

// NewClip wraps interleaved samples into a Clip. The frame count is derived
// from len(data) / numChans.
func NewClip(data []float32, sampleRate uint32, numChans uint16) *Clip {
	c := &Clip{
		SampleRate: sampleRate,
		NumChans:   numChans,
		Data:       data,
	}

	if numChans > 0 {
		c.NumFrames = uint32(len(data) / int(numChans))
	}

	return c
}

// Duration returns the playing time of the clip.
func (c *Clip) Duration() time.Duration {
	if c == nil {
		return 0
	}

	return framesDuration(int(c.NumFrames), c.SampleRate)
}
