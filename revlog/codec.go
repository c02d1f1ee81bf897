package revlog

import (
	"encoding/binary"
	"fmt"

	"github.com/rowdymehul/mononoke/blobstore"
)

// EncodeEntry serializes an Entry to the same length-prefixed binary shape
// blobstore.EncodeDelta uses for fragments, so entries can be stored and
// fetched as ordinary blobs, addressed by content hash.
func EncodeEntry(e Entry) []byte {
	buf := make([]byte, 0, blobstore.HashSize+8+len(e.Deltas)*blobstore.HashSize)
	buf = append(buf, e.Base[:]...)

	var countBuf [8]byte
	binary.LittleEndian.PutUint64(countBuf[:], uint64(len(e.Deltas)))
	buf = append(buf, countBuf[:]...)

	for _, h := range e.Deltas {
		buf = append(buf, h[:]...)
	}
	return buf
}

// DecodeEntry is the inverse of EncodeEntry.
func DecodeEntry(blob []byte) (Entry, error) {
	if len(blob) < blobstore.HashSize+8 {
		return Entry{}, fmt.Errorf("revlog: entry blob too short: %d bytes", len(blob))
	}

	var base blobstore.Hash
	copy(base[:], blob[:blobstore.HashSize])
	rest := blob[blobstore.HashSize:]

	count := binary.LittleEndian.Uint64(rest[:8])
	rest = rest[8:]

	if uint64(len(rest)) != count*uint64(blobstore.HashSize) {
		return Entry{}, fmt.Errorf("revlog: entry blob has %d trailing bytes, want %d", len(rest), count*uint64(blobstore.HashSize))
	}

	deltas := make([]blobstore.Hash, count)
	for i := range deltas {
		copy(deltas[i][:], rest[:blobstore.HashSize])
		rest = rest[blobstore.HashSize:]
	}

	return Entry{Base: base, Deltas: deltas}, nil
}
