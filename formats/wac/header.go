// SPDX-License-Identifier: EPL-2.0

package wac

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	headerSize = 24
	maxVersion = 4

	// Flags field layout.
	flagLossyMask = 0x000f
	flagTriggered = 0x0010
	flagGPS       = 0x0020
	flagTag       = 0x0040
)

var headerMagic = []byte("WAac")

// Header is the fixed 24-byte description at the start of every WAC
// stream. All multi-byte fields are little-endian. It is parsed once
// and read-only thereafter.
type Header struct {
	Version     uint8
	Channels    int
	FrameSize   int // samples per channel per frame
	BlockSize   int // frames per block
	Flags       uint16
	SampleRate  int    // Hz
	SampleCount uint32 // total samples per channel
	SeekSize    int    // blocks per seek table entry
	SeekEntries int    // seek table size in 32-bit words
}

// LossyBits is the count of low-order bits the encoder discarded.
// Zero means lossless. Decoding reproduces the stream content as-is;
// discarded bits are never restored.
func (h Header) LossyBits() int { return int(h.Flags & flagLossyMask) }

// Triggered reports whether the file was recorded in triggered mode,
// where zero-width frames stand in for untriggered time.
func (h Header) Triggered() bool { return h.Flags&flagTriggered != 0 }

// HasGPS reports whether GPS coordinates are interleaved in block headers.
func (h Header) HasGPS() bool { return h.Flags&flagGPS != 0 }

// HasTags reports whether a 4-bit tag is present on every block.
func (h Header) HasTags() bool { return h.Flags&flagTag != 0 }

// parseHeader reads and validates the fixed header from r.
func parseHeader(r io.Reader) (Header, error) {
	raw := make([]byte, headerSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, ErrTruncatedStream
		}
		return Header{}, fmt.Errorf("reading WAC header: %w", err)
	}

	if !bytes.Equal(raw[0:4], headerMagic) {
		return Header{}, ErrInvalidMagic
	}

	h := Header{
		Version:     raw[4],
		Channels:    int(raw[5]),
		FrameSize:   int(binary.LittleEndian.Uint16(raw[6:8])),
		BlockSize:   int(binary.LittleEndian.Uint16(raw[8:10])),
		Flags:       binary.LittleEndian.Uint16(raw[10:12]),
		SampleRate:  int(binary.LittleEndian.Uint32(raw[12:16])),
		SampleCount: binary.LittleEndian.Uint32(raw[16:20]),
		SeekSize:    int(binary.LittleEndian.Uint16(raw[20:22])),
		SeekEntries: int(binary.LittleEndian.Uint16(raw[22:24])),
	}

	if h.Version > maxVersion {
		return Header{}, ErrUnsupportedVersion
	}

	if h.Channels != 1 && h.Channels != 2 {
		return Header{}, ErrInvalidField
	}

	if h.FrameSize == 0 || h.BlockSize == 0 || h.SampleRate == 0 {
		return Header{}, ErrInvalidField
	}

	// GPS placement is defined per SeekSize blocks, so GPS files need a
	// nonzero seek size.
	if h.HasGPS() && h.SeekSize == 0 {
		return Header{}, ErrInvalidField
	}

	return h, nil
}
