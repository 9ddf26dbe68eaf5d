package wavtrim

import "encoding/binary"

const (
	wavFormatPCM      = 1
	pcmBitsPerSample  = 16
	pcmBytesPerSample = pcmBitsPerSample / 8
	fmtChunkSize      = 16
	fmtChunkSizeExt   = 18
	riffHeaderSize    = 12
	chunkHeaderSize   = 8
	// canonical RIFF header + fmt chunk + data chunk header
	wavHeaderSize = riffHeaderSize + chunkHeaderSize + fmtChunkSize + chunkHeaderSize
)

// FmtChunk stores the fields of a WAV fmt chunk.
type FmtChunk struct {
	// Size is the declared chunk size, 16 or 18.
	Size           uint32
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	// BlockAlign is the number of bytes per frame across all channels.
	BlockAlign    uint16
	BitsPerSample uint16
}

func (f *FmtChunk) Clone() *FmtChunk {
	if f == nil {
		return nil
	}

	out := *f

	return &out
}

// readFmtChunk parses the "fmt " chunk including its header, validating it
// step by step. The optional 2-byte extension size of an 18-byte chunk is
// consumed and ignored.
func readFmtChunk(r *byteReader) (*FmtChunk, error) {
	fc := &FmtChunk{}

	var err error

	if err = r.expectTag(fmtID); err != nil {
		return nil, err
	}

	if fc.Size, err = r.uint32("fmt chunk size"); err != nil {
		return nil, err
	}

	if fc.Size != fmtChunkSize && fc.Size != fmtChunkSizeExt {
		return nil, invalidArgument("bad fmt chunk size for WAV: expected 16 or 18, but got %d", fc.Size)
	}

	if fc.FormatTag, err = r.uint16("audio format"); err != nil {
		return nil, err
	}

	if fc.FormatTag != wavFormatPCM {
		return nil, invalidArgument("bad audio format for WAV: expected 1 (PCM), but got %d", fc.FormatTag)
	}

	if fc.NumChannels, err = r.uint16("channel count"); err != nil {
		return nil, err
	}

	if fc.SampleRate, err = r.uint32("sample rate"); err != nil {
		return nil, err
	}

	if fc.AvgBytesPerSec, err = r.uint32("bytes per second"); err != nil {
		return nil, err
	}

	if fc.BlockAlign, err = r.uint16("bytes per sample"); err != nil {
		return nil, err
	}

	// bits per sample counts one channel, while block align covers a whole
	// frame.
	if fc.BitsPerSample, err = r.uint16("bits per sample"); err != nil {
		return nil, err
	}

	if err = fc.validate(); err != nil {
		return nil, err
	}

	if fc.Size == fmtChunkSizeExt {
		if err = r.skip(2, "fmt extension size"); err != nil {
			return nil, err
		}
	}

	return fc, nil
}

func (f *FmtChunk) validate() error {
	if f.BitsPerSample != pcmBitsPerSample {
		return invalidArgument("can only read 16-bit WAV files, but received %d", f.BitsPerSample)
	}

	if f.NumChannels == 0 {
		return invalidArgument("channel count must be positive")
	}

	if f.SampleRate == 0 {
		return invalidArgument("sample rate must be positive")
	}

	expectedBlockAlign := (uint32(f.BitsPerSample)*uint32(f.NumChannels) + 7) / 8
	if uint32(f.BlockAlign) != expectedBlockAlign {
		return invalidArgument("bad bytes per sample in WAV header: expected %d but got %d",
			expectedBlockAlign, f.BlockAlign)
	}

	expectedBytesPerSec := uint64(f.BlockAlign) * uint64(f.SampleRate)
	if uint64(f.AvgBytesPerSec) != expectedBytesPerSec {
		return invalidArgument("bad bytes per second in WAV header: expected %d but got %d (sample_rate=%d, bytes_per_sample=%d)",
			expectedBytesPerSec, f.AvgBytesPerSec, f.SampleRate, f.BlockAlign)
	}

	return nil
}

// putFmtChunk writes a 16-byte PCM fmt chunk with its header into b, which
// must hold at least 24 bytes.
func putFmtChunk(b []byte, numChans uint16, sampleRate uint32) {
	copy(b[0:4], fmtID[:])
	binary.LittleEndian.PutUint32(b[4:8], fmtChunkSize)
	binary.LittleEndian.PutUint16(b[8:10], wavFormatPCM)
	binary.LittleEndian.PutUint16(b[10:12], numChans)
	binary.LittleEndian.PutUint32(b[12:16], sampleRate*uint32(numChans)*pcmBytesPerSample)
	binary.LittleEndian.PutUint16(b[16:18], numChans*pcmBytesPerSample)
	binary.LittleEndian.PutUint16(b[18:20], pcmBitsPerSample)
}
