package blobstore

import (
	"encoding/binary"
	"fmt"

	"github.com/rowdymehul/mononoke/delta"
)

// EncodeDelta serializes a delta.Delta into a length-prefixed wire format for
// storage as a blob: a fragment count, then for each fragment its Start, End,
// and content length (all uint64, little-endian), followed by the content
// bytes themselves.
func EncodeDelta(d delta.Delta) []byte {
	frags := d.Fragments()

	size := 8
	for _, f := range frags {
		size += 8 + 8 + 8 + len(f.Content)
	}

	buf := make([]byte, size)
	off := 0
	binary.LittleEndian.PutUint64(buf[off:], uint64(len(frags)))
	off += 8

	for _, f := range frags {
		binary.LittleEndian.PutUint64(buf[off:], uint64(f.Start))
		off += 8
		binary.LittleEndian.PutUint64(buf[off:], uint64(f.End))
		off += 8
		binary.LittleEndian.PutUint64(buf[off:], uint64(len(f.Content)))
		off += 8
		off += copy(buf[off:], f.Content)
	}

	return buf
}

// DecodeDelta parses the wire format produced by EncodeDelta back into a
// delta.Delta, validating fragment bounds through delta.NewDelta.
func DecodeDelta(blob []byte) (delta.Delta, error) {
	if len(blob) < 8 {
		return delta.Delta{}, fmt.Errorf("blobstore: truncated delta blob: %d bytes", len(blob))
	}
	n := binary.LittleEndian.Uint64(blob)
	off := 8

	frags := make([]delta.Fragment, 0, n)
	for i := uint64(0); i < n; i++ {
		if off+24 > len(blob) {
			return delta.Delta{}, fmt.Errorf("blobstore: truncated delta blob: fragment %d header", i)
		}
		start := binary.LittleEndian.Uint64(blob[off:])
		end := binary.LittleEndian.Uint64(blob[off+8:])
		contentLen := binary.LittleEndian.Uint64(blob[off+16:])
		off += 24

		if off+int(contentLen) > len(blob) {
			return delta.Delta{}, fmt.Errorf("blobstore: truncated delta blob: fragment %d content", i)
		}
		// Empty content decodes as nil, the same as a fragment built with
		// no Content.
		var content []byte
		if contentLen > 0 {
			content = make([]byte, contentLen)
			copy(content, blob[off:off+int(contentLen)])
		}
		off += int(contentLen)

		frags = append(frags, delta.Fragment{Start: int(start), End: int(end), Content: content})
	}

	return delta.NewDelta(frags)
}
