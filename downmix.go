package wavtrim

// Downmix averages each frame of a multi-channel clip into one mono sample.
// A mono clip is returned as is; otherwise the result is a new clip and c is
// left untouched.
func Downmix(c *Clip) *Clip {
	if c == nil || c.NumChans <= 1 {
		return c
	}

	channels := int(c.NumChans)
	frames := len(c.Data) / channels
	mono := make([]float32, frames)

	for f := range frames {
		var sum float32

		base := f * channels
		for ch := range channels {
			sum += c.Data[base+ch]
		}

		mono[f] = sum / float32(channels)
	}

	return &Clip{
		SampleRate: c.SampleRate,
		NumChans:   1,
		NumFrames:  uint32(frames),
		Data:       mono,
		FmtChunk:   c.FmtChunk.Clone(),
		Skipped:    cloneRawChunks(c.Skipped),
	}
}
