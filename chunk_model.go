package wavtrim

import "github.com/go-audio/riff"

var (
	riffID = riff.RiffID
	waveID = riff.WavFormatID
	fmtID  = riff.FmtID
	dataID = riff.DataFormatID
)

// RawChunk records a chunk that Decode stepped over without interpreting
// it, such as LIST or fact.
type RawChunk struct {
	ID [4]byte
	// Size is the declared chunk size; the bytes may extend past the end of
	// a truncated file.
	Size uint32
	// Offset is the position of the chunk payload in the decoded buffer.
	Offset int
}

// IDString returns the chunk id as text.
func (c RawChunk) IDString() string {
	return tagString(c.ID)
}

func cloneRawChunks(chunks []RawChunk) []RawChunk {
	if len(chunks) == 0 {
		return nil
	}

	return append([]RawChunk(nil), chunks...)
}
