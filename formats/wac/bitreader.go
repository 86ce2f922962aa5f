// SPDX-License-Identifier: EPL-2.0

package wac

import (
	"bufio"
	"fmt"
	"io"
)

// bitReader is a single-pass cursor over a byte stream that extracts
// arbitrary-width bit fields without byte alignment. Bits are consumed
// most-significant-bit first within each byte. The cursor never looks
// ahead past the current field and never backtracks.
type bitReader struct {
	r        *bufio.Reader
	cur      byte   // byte currently being consumed
	rem      uint8  // unread bits left in cur (0-8)
	consumed uint64 // total bits consumed, for 16-bit word alignment
}

func newBitReader(r io.Reader) *bitReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &bitReader{r: br}
	}

	return &bitReader{r: bufio.NewReader(r)}
}

// ReadBits returns the next n bits (1 <= n <= 32) right-aligned in a uint32.
func (b *bitReader) ReadBits(n uint32) (uint32, error) {
	var v uint32

	for n > 0 {
		if b.rem == 0 {
			c, err := b.r.ReadByte()
			if err != nil {
				if err == io.EOF {
					return 0, ErrTruncatedStream
				}
				return 0, fmt.Errorf("reading WAC stream: %w", err)
			}
			b.cur = c
			b.rem = 8
		}

		take := uint32(b.rem)
		if take > n {
			take = n
		}

		shift := uint32(b.rem) - take
		v = v<<take | (uint32(b.cur)>>shift)&(1<<take-1)

		b.rem -= uint8(take)
		b.consumed += uint64(take)
		n -= take
	}

	return v, nil
}

// ReadUnary counts consecutive 1 bits up to and including the terminating
// 0 bit, returning the count of 1s. A lone 0 bit decodes as zero.
func (b *bitReader) ReadUnary() (uint32, error) {
	var q uint32

	for {
		bit, err := b.ReadBits(1)
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			return q, nil
		}
		q++
	}
}

// ReadUint32LE reads four octets and assembles them little-endian.
// Used for the block sync pattern and block index, which follow the
// header's multi-byte field convention.
func (b *bitReader) ReadUint32LE() (uint32, error) {
	var v uint32

	for i := uint32(0); i < 4; i++ {
		o, err := b.ReadBits(8)
		if err != nil {
			return 0, err
		}
		v |= o << (8 * i)
	}

	return v, nil
}

// Align16 advances the cursor to the next 16-bit word boundary.
// Blocks are required to start aligned; the fixed header and seek table
// are whole 16-bit words, so word alignment is tracked from the first block.
func (b *bitReader) Align16() error {
	pad := uint32(b.consumed % 16)
	if pad == 0 {
		return nil
	}

	_, err := b.ReadBits(16 - pad)
	return err
}

// atEOF reports whether the underlying stream is exhausted with no
// partially consumed byte. Used to tell a cleanly ended stream apart
// from one that was cut mid-field.
func (b *bitReader) atEOF() bool {
	if b.rem != 0 {
		return false
	}

	_, err := b.r.Peek(1)
	return err == io.EOF
}
