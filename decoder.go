package wavtrim

import "encoding/binary"

// Decode parses a complete 16-bit PCM WAV image.
//
// The RIFF header must be followed directly by a 16 or 18 byte fmt chunk.
// After it any chunks may appear; exactly one of them must be "data", the
// others are skipped by their declared size and listed in Clip.Skipped.
// data is only read during the call and is not retained.
//
// Every failure wraps ErrInvalidArgument and no Clip is returned.
func Decode(data []byte) (*Clip, error) {
	r := newByteReader(data)

	if err := r.expectTag(riffID); err != nil {
		return nil, err
	}

	// total file size, not trusted
	if _, err := r.uint32("RIFF size"); err != nil {
		return nil, err
	}

	if err := r.expectTag(waveID); err != nil {
		return nil, err
	}

	fc, err := readFmtChunk(r)
	if err != nil {
		return nil, err
	}

	clip := &Clip{
		SampleRate: fc.SampleRate,
		NumChans:   fc.NumChannels,
		FmtChunk:   fc,
	}

	var dataFound bool

	for r.remaining() > 0 {
		id, err := r.readTag()
		if err != nil {
			return nil, err
		}

		size, err := r.uint32("chunk size")
		if err != nil {
			return nil, err
		}

		if id != dataID {
			clip.Skipped = append(clip.Skipped, RawChunk{ID: id, Size: size, Offset: r.offset})

			// A skip past the end finishes the scan.
			if uint64(size) >= uint64(r.remaining()) {
				r.offset = len(r.data)
			} else {
				r.offset += int(size)
			}

			continue
		}

		if dataFound {
			return nil, invalidArgument("more than one data chunk found in WAV")
		}

		dataFound = true

		if err := decodeDataChunk(r, size, fc, clip); err != nil {
			return nil, err
		}
	}

	if !dataFound {
		return nil, invalidArgument("no data chunk found in WAV")
	}

	return clip, nil
}

// decodeDataChunk reads the whole frames of a data chunk of the given size.
// A trailing partial frame is stepped over so that scanning resumes at the
// chunk end given by size.
func decodeDataChunk(r *byteReader, size uint32, fc *FmtChunk, clip *Clip) error {
	frames := size / uint32(fc.BlockAlign)
	count := int(frames) * int(fc.NumChannels)

	raw, err := r.next(count*pcmBytesPerSample, "sample data")
	if err != nil {
		return err
	}

	samples := make([]float32, count)
	for i := range samples {
		samples[i] = normalizePCMInt16(int16(binary.LittleEndian.Uint16(raw[i*pcmBytesPerSample:])))
	}

	if tail := int(size % uint32(fc.BlockAlign)); tail > 0 {
		if tail > r.remaining() {
			tail = r.remaining()
		}

		r.offset += tail
	}

	clip.NumFrames = frames
	clip.Data = samples

	return nil
}
