// SPDX-License-Identifier: EPL-2.0

// Package wactest builds synthetic WAC byte streams for tests. It is the
// decoder-side inverse of the documented encoding: tests construct known
// bit patterns with it and assert the decoder recovers the original
// values exactly.
package wactest

import "encoding/binary"

// BitWriter accumulates a bit stream most-significant-bit first,
// mirroring the decoder's read order.
type BitWriter struct {
	buf  []byte
	cur  byte
	ncur uint8 // bits pending in cur
	bits int   // total bits written, for 16-bit alignment
}

// WriteBits appends the low n bits of v, most significant first.
func (w *BitWriter) WriteBits(v, n uint32) {
	for n > 0 {
		n--
		bit := byte(v>>n) & 1
		w.cur = w.cur<<1 | bit
		w.ncur++
		w.bits++
		if w.ncur == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur, w.ncur = 0, 0
		}
	}
}

// WriteUnary appends q one bits followed by the terminating zero bit.
func (w *BitWriter) WriteUnary(q uint32) {
	for i := uint32(0); i < q; i++ {
		w.WriteBits(1, 1)
	}
	w.WriteBits(0, 1)
}

// WriteUint32LE appends four octets in little-endian order.
func (w *BitWriter) WriteUint32LE(v uint32) {
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], v)
	for _, b := range raw {
		w.WriteBits(uint32(b), 8)
	}
}

// Align16 zero-pads to the next 16-bit boundary.
func (w *BitWriter) Align16() {
	for w.bits%16 != 0 {
		w.WriteBits(0, 1)
	}
}

// WriteGolomb appends one Golomb-Rice coded delta at remainder width k
// (k must be 1-15).
func (w *BitWriter) WriteGolomb(delta int32, k uint32) {
	v := MapDelta(delta)
	w.WriteUnary(v >> k)
	w.WriteBits(v&(1<<k-1), k)
}

// Bytes returns the accumulated stream zero-padded out to a 16-bit
// word, which is how recorders terminate a file.
func (w *BitWriter) Bytes() []byte {
	out := append([]byte(nil), w.buf...)
	if w.ncur > 0 {
		out = append(out, w.cur<<(8-w.ncur))
	}
	if len(out)%2 != 0 {
		out = append(out, 0)
	}
	return out
}

// MapDelta is the encode-side sign mapping: positive deltas become odd
// composite values (2d-1), non-positive ones become even (-2d).
func MapDelta(d int32) uint32 {
	if d > 0 {
		return uint32(2*d - 1)
	}
	return uint32(-2 * d)
}

// Stream describes the header of a synthetic WAC stream.
type Stream struct {
	Version     uint8
	Channels    int
	FrameSize   int
	BlockSize   int
	Flags       uint16
	SampleRate  int
	SampleCount uint32
	SeekSize    int
	SeekEntries int
}

// Header serializes the 24-byte WAC header.
func (s Stream) Header() []byte {
	raw := make([]byte, 24)
	copy(raw[0:4], "WAac")
	raw[4] = s.Version
	raw[5] = byte(s.Channels)
	binary.LittleEndian.PutUint16(raw[6:8], uint16(s.FrameSize))
	binary.LittleEndian.PutUint16(raw[8:10], uint16(s.BlockSize))
	binary.LittleEndian.PutUint16(raw[10:12], s.Flags)
	binary.LittleEndian.PutUint32(raw[12:16], uint32(s.SampleRate))
	binary.LittleEndian.PutUint32(raw[16:20], s.SampleCount)
	binary.LittleEndian.PutUint16(raw[20:22], uint16(s.SeekSize))
	binary.LittleEndian.PutUint16(raw[22:24], uint16(s.SeekEntries))
	return raw
}

// Builder assembles a complete stream: header, seek table, blocks.
type Builder struct {
	BitWriter
	stream Stream
}

const blockSyncPattern = 0x00018000

// NewBuilder writes the header and an all-zero seek table and is then
// ready for BeginBlock calls.
func NewBuilder(s Stream) *Builder {
	b := &Builder{stream: s}
	for _, raw := range s.Header() {
		b.WriteBits(uint32(raw), 8)
	}
	for i := 0; i < s.SeekEntries; i++ {
		b.WriteUint32LE(0)
	}
	return b
}

// BeginBlock aligns to a 16-bit boundary and writes the sync pattern and
// block index. Callers append metadata and frames afterwards.
func (b *Builder) BeginBlock(index uint32) {
	b.Align16()
	b.WriteUint32LE(blockSyncPattern)
	b.WriteUint32LE(index)
}

// WriteFrame writes one frame: a remainder width per channel followed by
// the channel-interleaved deltas. deltas[c] must hold FrameSize values
// for every channel whose width is nonzero; zero-width channels carry no
// data bits.
func (b *Builder) WriteFrame(widths []uint32, deltas [][]int32) {
	for _, k := range widths {
		b.WriteBits(k, 4)
	}
	for i := 0; i < b.stream.FrameSize; i++ {
		for c, k := range widths {
			if k != 0 {
				b.WriteGolomb(deltas[c][i], k)
			}
		}
	}
}

// Encode builds a full WAC stream carrying the given per-channel
// absolute sample values, Golomb-coded at a fixed remainder width.
// len(samples) must match s.Channels and every channel must hold
// s.SampleCount values.
func Encode(s Stream, samples [][]int16, k uint32) []byte {
	b := NewBuilder(s)

	widths := make([]uint32, s.Channels)
	deltas := make([][]int32, s.Channels)
	for c := range widths {
		widths[c] = k
		deltas[c] = make([]int32, s.FrameSize)
	}

	prev := make([]int32, s.Channels)
	pos := 0
	block := uint32(0)

	for pos < int(s.SampleCount) {
		b.BeginBlock(block)
		block++

		for f := 0; f < s.BlockSize && pos < int(s.SampleCount); f++ {
			for i := 0; i < s.FrameSize; i++ {
				for c := 0; c < s.Channels; c++ {
					var d int32
					if pos+i < int(s.SampleCount) {
						d = int32(samples[c][pos+i]) - prev[c]
						prev[c] += d
					}
					deltas[c][i] = d
				}
			}
			b.WriteFrame(widths, deltas)
			pos += s.FrameSize
		}
	}

	return b.Bytes()
}
