package wavtrim

import "bytes"

var (
	listID = [4]byte{'L', 'I', 'S', 'T'}
	infoID = [4]byte{'I', 'N', 'F', 'O'}

	// See http://bwfmetaedit.sourceforge.net/listinfo.html
	infoLabels = map[[4]byte]string{
		{'I', 'A', 'R', 'T'}: "artist",
		{'I', 'S', 'F', 'T'}: "software",
		{'I', 'C', 'R', 'D'}: "creation_date",
		{'I', 'C', 'O', 'P'}: "copyright",
		{'I', 'A', 'R', 'L'}: "location",
		{'I', 'N', 'A', 'M'}: "title",
		{'I', 'E', 'N', 'G'}: "engineer",
		{'I', 'G', 'N', 'R'}: "genre",
		{'I', 'P', 'R', 'D'}: "product",
		{'I', 'S', 'R', 'C'}: "source",
		{'I', 'S', 'B', 'J'}: "subject",
		{'I', 'C', 'M', 'T'}: "comments",
		{'I', 'T', 'R', 'K'}: "track",
		{'i', 't', 'r', 'k'}: "track",
		{'I', 'T', 'C', 'H'}: "technician",
		{'I', 'K', 'E', 'Y'}: "keywords",
		{'I', 'M', 'E', 'D'}: "medium",
	}
)

// InfoTag is one text entry of a LIST/INFO chunk.
type InfoTag struct {
	ID [4]byte
	// Label is a readable name for well-known ids, otherwise the id itself.
	Label string
	Value string
}

// ReadInfo extracts the LIST/INFO entries among chunks that Decode skipped
// in data. Other list types are ignored. Entries cut off by the end of the
// chunk or file are dropped.
func ReadInfo(data []byte, chunks []RawChunk) ([]InfoTag, error) {
	var tags []InfoTag

	for _, chunk := range chunks {
		if chunk.ID != listID {
			continue
		}

		if chunk.Offset < 0 || chunk.Offset > len(data) {
			return nil, invalidArgument("LIST chunk offset %d outside of %d bytes", chunk.Offset, len(data))
		}

		end := len(data)
		if uint64(chunk.Offset)+uint64(chunk.Size) < uint64(end) {
			end = chunk.Offset + int(chunk.Size)
		}

		tags = append(tags, readInfoList(data[chunk.Offset:end])...)
	}

	return tags, nil
}

func readInfoList(payload []byte) []InfoTag {
	r := newByteReader(payload)

	listType, err := r.readTag()
	if err != nil || listType != infoID {
		return nil
	}

	var tags []InfoTag

	for r.remaining() >= chunkHeaderSize {
		id, _ := r.readTag()
		size, _ := r.uint32("INFO entry size")

		if uint64(size) > uint64(r.remaining()) {
			break
		}

		value, _ := r.next(int(size), tagString(id))

		// entries are word aligned
		if size%2 == 1 && r.remaining() > 0 {
			r.offset++
		}

		label, ok := infoLabels[id]
		if !ok {
			label = tagString(id)
		}

		tags = append(tags, InfoTag{ID: id, Label: label, Value: nullTermStr(value)})
	}

	return tags
}

func nullTermStr(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}

	return string(b)
}
