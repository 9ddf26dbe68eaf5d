package wavtrim

import "encoding/binary"

// byteReader is a bounds-checked little-endian cursor over an in-memory
// WAV image. Every read either consumes the requested bytes or fails with
// ErrInvalidArgument and leaves the offset untouched.
type byteReader struct {
	data   []byte
	offset int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

func (r *byteReader) remaining() int {
	return len(r.data) - r.offset
}

func (r *byteReader) next(n int, what string) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, invalidArgument("data too short when trying to read %s", what)
	}

	b := r.data[r.offset : r.offset+n]
	r.offset += n

	return b, nil
}

// expectTag reads four bytes and checks them against id.
func (r *byteReader) expectTag(id [4]byte) error {
	b, err := r.next(4, tagString(id))
	if err != nil {
		return err
	}

	if string(b) != tagString(id) {
		return invalidArgument("header mismatch: expected %q but found %q", tagString(id), string(b))
	}

	return nil
}

func (r *byteReader) readTag() ([4]byte, error) {
	var id [4]byte

	b, err := r.next(4, "chunk id")
	if err != nil {
		return id, err
	}

	copy(id[:], b)

	return id, nil
}

func (r *byteReader) uint16(what string) (uint16, error) {
	b, err := r.next(2, what)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

func (r *byteReader) uint32(what string) (uint32, error) {
	b, err := r.next(4, what)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

func (r *byteReader) skip(n int, what string) error {
	_, err := r.next(n, what)
	return err
}
