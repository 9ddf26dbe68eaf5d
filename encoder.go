package wavtrim

import (
	"encoding/binary"
	"math"
)

// Encode serializes interleaved samples as a canonical 16-bit PCM WAV image:
// a 44-byte header followed by the sample data, nothing else.
//
// Samples are scaled by 2^15, rounded half away from zero and clamped to the
// int16 range. Only the first numFrames*numChans samples are written.
func Encode(samples []float32, sampleRate, numChans, numFrames uint64) ([]byte, error) {
	if len(samples) == 0 {
		return nil, invalidArgument("audio is empty")
	}

	if sampleRate == 0 || sampleRate > math.MaxUint32 {
		return nil, invalidArgument("sample_rate must be in (0, 2^32), got: %d", sampleRate)
	}

	if numChans == 0 || numChans > math.MaxUint16 {
		return nil, invalidArgument("num_channels must be in (0, 2^16), got: %d", numChans)
	}

	// block align and bytes/sec are 16 and 32 bit header fields
	if numChans*pcmBytesPerSample > math.MaxUint16 {
		return nil, invalidArgument("num_channels too large for a 16-bit block align, got: %d", numChans)
	}

	if sampleRate*numChans*pcmBytesPerSample > math.MaxUint32 {
		return nil, invalidArgument("sample_rate %d with %d channels overflows the bytes per second field", sampleRate, numChans)
	}

	if numFrames == 0 {
		return nil, invalidArgument("num_frames must be positive")
	}

	// bounded by MaxUint32 * MaxUint16 before the frame count is applied
	if numFrames > math.MaxUint32 {
		return nil, invalidArgument("provided channels and frames cannot be encoded as a WAV")
	}

	numSamples := numFrames * numChans
	dataSize := numSamples * pcmBytesPerSample

	// WAV stores the file length as a uint32.
	fileSize := wavHeaderSize + dataSize
	if fileSize > math.MaxUint32 {
		return nil, invalidArgument("provided channels and frames cannot be encoded as a WAV")
	}

	if uint64(len(samples)) < numSamples {
		return nil, invalidArgument("expected %d samples for %d frames of %d channels, got %d",
			numSamples, numFrames, numChans, len(samples))
	}

	out := make([]byte, fileSize)

	copy(out[0:4], riffID[:])
	binary.LittleEndian.PutUint32(out[4:8], uint32(fileSize-8))
	copy(out[8:12], waveID[:])

	putFmtChunk(out[riffHeaderSize:], uint16(numChans), uint32(sampleRate))

	dataHdr := out[riffHeaderSize+chunkHeaderSize+fmtChunkSize:]
	copy(dataHdr[0:4], dataID[:])
	binary.LittleEndian.PutUint32(dataHdr[4:8], uint32(dataSize))

	pcm := out[wavHeaderSize:]
	for i := range numSamples {
		binary.LittleEndian.PutUint16(pcm[i*pcmBytesPerSample:], uint16(float32ToPCMInt16(samples[i])))
	}

	return out, nil
}

// EncodeClip encodes all frames of c.
func EncodeClip(c *Clip) ([]byte, error) {
	if c == nil {
		return nil, invalidArgument("clip is nil")
	}

	return Encode(c.Data, uint64(c.SampleRate), uint64(c.NumChans), uint64(c.NumFrames))
}
