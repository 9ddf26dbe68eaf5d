package wavtrim

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"testing"
)

type fmtFields struct {
	size       uint32
	format     uint16
	channels   uint16
	sampleRate uint32
	byteRate   uint32
	blockAlign uint16
	bits       uint16
}

func pcmFmt(channels uint16, sampleRate uint32) fmtFields {
	return fmtFields{
		size:       16,
		format:     1,
		channels:   channels,
		sampleRate: sampleRate,
		byteRate:   sampleRate * uint32(channels) * 2,
		blockAlign: channels * 2,
		bits:       16,
	}
}

type testChunk struct {
	id   string
	size uint32
	data []byte
	// rawSize keeps size even when it disagrees with len(data)
	rawSize bool
}

func chunk(id string, data []byte) testChunk {
	return testChunk{id: id, size: uint32(len(data)), data: data}
}

func pcmBytes(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return out
}

// buildWav assembles a WAV image from a fmt description and trailing chunks.
func buildWav(f fmtFields, chunks ...testChunk) []byte {
	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, 0)
	out = append(out, "WAVE"...)
	out = append(out, "fmt "...)
	out = binary.LittleEndian.AppendUint32(out, f.size)
	out = binary.LittleEndian.AppendUint16(out, f.format)
	out = binary.LittleEndian.AppendUint16(out, f.channels)
	out = binary.LittleEndian.AppendUint32(out, f.sampleRate)
	out = binary.LittleEndian.AppendUint32(out, f.byteRate)
	out = binary.LittleEndian.AppendUint16(out, f.blockAlign)
	out = binary.LittleEndian.AppendUint16(out, f.bits)

	if f.size == 18 {
		out = binary.LittleEndian.AppendUint16(out, 0)
	}

	for _, c := range chunks {
		size := c.size
		if !c.rawSize {
			size = uint32(len(c.data))
		}

		out = append(out, c.id...)
		out = binary.LittleEndian.AppendUint32(out, size)
		out = append(out, c.data...)
	}

	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))

	return out
}

type parsedChunk struct {
	id   string
	size uint32
	data []byte
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

// parseWavChunks is an independent chunk walker used to inspect encoder
// output.
func parseWavChunks(data []byte) ([]parsedChunk, error) {
	if len(data) < 12 {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	chunks := make([]parsedChunk, 0)

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		chunks = append(chunks, parsedChunk{id: id, size: size, data: append([]byte(nil), data[offset:end]...)})
		offset = end
	}

	return chunks, nil
}

func assertFloat32SlicesClose(t *testing.T, got, want []float32, tolerance float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > tolerance {
			t.Fatalf("sample %d mismatch: got %f, want %f", i, got[i], want[i])
		}
	}
}

func assertInvalidArgument(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
