package legacy

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// recordHeaderSize is the size, in bytes, of a single bdiff record header:
// three big-endian uint32 fields (start offset, end offset, content length),
// the same layout the old bdiff format used on the wire.
const recordHeaderSize = 12

// Parse reads a sequence of bdiff records from r until EOF, returning them in
// the order they appear. Parse returns an error if the input ends in the
// middle of a header or a content block; a fully-consumed reader that ends
// exactly on a record boundary is not an error.
//
// Parse does not validate that the returned Deltas are sorted or
// non-overlapping — that check happens in ConvertChain, when the records are
// promoted to a delta.Delta.
func Parse(r io.Reader) ([]Delta, error) {
	br := bufio.NewReader(r)

	var deltas []Delta
	var header [recordHeaderSize]byte

	for {
		if _, err := io.ReadFull(br, header[:]); err != nil {
			if err == io.EOF {
				return deltas, nil
			}
			return nil, fmt.Errorf("legacy: reading record %d header: %w", len(deltas), err)
		}

		start := binary.BigEndian.Uint32(header[0:4])
		end := binary.BigEndian.Uint32(header[4:8])
		length := binary.BigEndian.Uint32(header[8:12])

		content := make([]byte, length)
		if _, err := io.ReadFull(br, content); err != nil {
			return nil, fmt.Errorf("legacy: reading record %d content (%d bytes): %w", len(deltas), length, err)
		}

		deltas = append(deltas, Delta{
			Start:   int(start),
			End:     int(end),
			Content: content,
		})
	}
}

// ParseArmored reads bdiff records whose content blocks were text-armored
// with the base85 alphabet in armorAlphabet, for transport over channels
// that could not carry raw binary safely. The header layout is identical to
// Parse's; only the content block differs, with its on-the-wire length
// (before decoding) in place of the raw byte count.
func ParseArmored(r io.Reader) ([]Delta, error) {
	br := bufio.NewReader(r)

	var deltas []Delta
	var header [recordHeaderSize]byte

	for {
		if _, err := io.ReadFull(br, header[:]); err != nil {
			if err == io.EOF {
				return deltas, nil
			}
			return nil, fmt.Errorf("legacy: reading armored record %d header: %w", len(deltas), err)
		}

		start := binary.BigEndian.Uint32(header[0:4])
		end := binary.BigEndian.Uint32(header[4:8])
		decodedLen := binary.BigEndian.Uint32(header[8:12])

		// Each group of 4 decoded bytes is encoded as 5 armor characters;
		// the final partial group still consumes a full 5-character slot.
		armoredLen := ((decodedLen + 3) / 4) * 5
		armored := make([]byte, armoredLen)
		if _, err := io.ReadFull(br, armored); err != nil {
			return nil, fmt.Errorf("legacy: reading armored record %d content: %w", len(deltas), err)
		}

		content, err := decodeArmored(armored, int(decodedLen))
		if err != nil {
			return nil, fmt.Errorf("legacy: record %d: %w", len(deltas), err)
		}

		deltas = append(deltas, Delta{
			Start:   int(start),
			End:     int(end),
			Content: content,
		})
	}
}
