package wavtrim

import "github.com/go-audio/audio"

// FormatChunk returns a copy of the parsed fmt chunk, if available.
func (c *Clip) FormatChunk() *FmtChunk {
	if c == nil || c.FmtChunk == nil {
		return nil
	}

	return c.FmtChunk.Clone()
}

// RawChunks returns a copy of the chunks skipped during decode.
func (c *Clip) RawChunks() []RawChunk {
	if c == nil {
		return nil
	}

	return cloneRawChunks(c.Skipped)
}

// Format returns the go-audio format of the clip.
func (c *Clip) Format() *audio.Format {
	if c == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(c.NumChans),
		SampleRate:  int(c.SampleRate),
	}
}

// Float32Buffer exposes the samples as a go-audio buffer. The data slice is
// shared with the clip.
func (c *Clip) Float32Buffer() *audio.Float32Buffer {
	if c == nil {
		return nil
	}

	return &audio.Float32Buffer{
		Format:         c.Format(),
		Data:           c.Data,
		SourceBitDepth: pcmBitsPerSample,
	}
}

// IntBuffer converts the samples to 16-bit integers with the same rounding
// and clamping Encode uses.
func (c *Clip) IntBuffer() *audio.IntBuffer {
	if c == nil {
		return nil
	}

	out := &audio.IntBuffer{
		Format:         c.Format(),
		Data:           make([]int, len(c.Data)),
		SourceBitDepth: pcmBitsPerSample,
	}

	for i, v := range c.Data {
		out.Data[i] = int(float32ToPCMInt16(v))
	}

	return out
}
