// SPDX-License-Identifier: EPL-2.0

package wac

import "io"

// blockSyncPattern marks the start of every block. The pattern cannot
// occur in the compressed data stream, which is what makes corruption
// detectable at block granularity.
const blockSyncPattern = 0x00018000

// decodeState is the mutable state of one file's decode: the bit cursor,
// the expected next block index, and the per-channel running sample
// accumulators. One instance per input stream, discarded when the decode
// completes or fails.
type decodeState struct {
	br        *bitReader
	hdr       Header
	nextIndex uint32
	prev      [2]int32 // running absolute sample per channel
	emitted   uint32   // samples emitted so far, per channel
	markers   []Marker
}

func newDecodeState(r io.Reader) (*decodeState, error) {
	br := newBitReader(r)

	hdr, err := parseHeader(br.r)
	if err != nil {
		return nil, err
	}

	// Skip the seek table without interpreting it; random access is not
	// needed for a sequential decode.
	skip := int64(hdr.SeekEntries) * 4
	if _, err := io.CopyN(io.Discard, br.r, skip); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncatedStream
		}
		return nil, err
	}

	return &decodeState{br: br, hdr: hdr}, nil
}

// done reports whether every declared sample has been emitted.
func (s *decodeState) done() bool {
	return s.emitted >= s.hdr.SampleCount
}

// nextBlock decodes one block, appending its interleaved samples to dst.
// It returns io.EOF once the declared sample count has been reached.
// A stream that ends cleanly while samples are still owed yields
// ErrSampleCountMismatch; one cut mid-field yields ErrTruncatedStream.
func (s *decodeState) nextBlock(dst []int16) ([]int16, error) {
	if s.done() {
		return dst, io.EOF
	}

	// Align before probing for end of stream: the bits padding the
	// previous block out to a word boundary are not content.
	if err := s.br.Align16(); err != nil {
		return dst, err
	}

	if s.br.atEOF() {
		return dst, ErrSampleCountMismatch
	}

	sync, err := s.br.ReadUint32LE()
	if err != nil {
		return dst, err
	}
	if sync != blockSyncPattern {
		return dst, ErrBlockSync
	}

	index, err := s.br.ReadUint32LE()
	if err != nil {
		return dst, err
	}
	if index != s.nextIndex {
		return dst, ErrBlockSequence
	}
	s.nextIndex++

	if err := s.readBlockMetadata(index); err != nil {
		return dst, err
	}

	for i := 0; i < s.hdr.BlockSize; i++ {
		if s.done() {
			break
		}

		dst, err = s.decodeFrame(dst)
		if err != nil {
			return dst, err
		}
	}

	return dst, nil
}

// readBlockMetadata consumes the conditional GPS and tag fields of a
// block header. The fields must be read whenever their flags are set,
// even if nobody wants the values, or the bit cursor drifts.
func (s *decodeState) readBlockMetadata(index uint32) error {
	var m Marker
	present := false

	if s.hdr.HasGPS() && index%uint32(s.hdr.SeekSize) == 0 {
		lat, err := s.br.ReadBits(25)
		if err != nil {
			return err
		}
		lon, err := s.br.ReadBits(26)
		if err != nil {
			return err
		}

		m.GPS = &Coordinate{
			Latitude:  float64(signExtend(lat, 25)) / 100000,
			Longitude: float64(signExtend(lon, 26)) / 100000,
		}
		present = true
	}

	if s.hdr.HasTags() {
		tag, err := s.br.ReadBits(4)
		if err != nil {
			return err
		}
		if Tag(tag) != TagNone {
			m.Tag = Tag(tag)
			present = true
		}
	}

	if present {
		m.Sample = s.emitted
		s.markers = append(s.markers, m)
	}

	return nil
}

// decodeFrame decodes one frame of Golomb-Rice coded deltas, appending
// up to FrameSize samples per channel to dst, channels interleaved.
// Each channel's 4-bit remainder width is read once, up front; a width
// of zero means the channel carries no bits this frame and every delta
// is zero.
func (s *decodeState) decodeFrame(dst []int16) ([]int16, error) {
	var width [2]uint32

	for c := 0; c < s.hdr.Channels; c++ {
		k, err := s.br.ReadBits(4)
		if err != nil {
			return dst, err
		}
		width[c] = k
	}

	for i := 0; i < s.hdr.FrameSize; i++ {
		if s.done() {
			// The final block may pad past the declared sample count;
			// nothing past it is emitted or read.
			break
		}

		for c := 0; c < s.hdr.Channels; c++ {
			var delta int32

			if k := width[c]; k != 0 {
				q, err := s.br.ReadUnary()
				if err != nil {
					return dst, err
				}
				r, err := s.br.ReadBits(k)
				if err != nil {
					return dst, err
				}
				delta = unmapDelta(q<<k | r)
			}

			s.prev[c] += delta
			dst = append(dst, int16(s.prev[c]))
		}
		s.emitted++
	}

	return dst, nil
}

// unmapDelta recovers a signed delta from the composite Golomb value.
// The encoder maps +d to 2d-1 and -d (and zero) to 2d, so odd values are
// positive and even values are negative or zero.
func unmapDelta(v uint32) int32 {
	if v&1 == 1 {
		return int32(v+1) >> 1
	}
	return -int32(v >> 1)
}

// signExtend interprets the low bits of v as a two's-complement value of
// the given width.
func signExtend(v uint32, width uint) int32 {
	shift := 32 - width
	return int32(v<<shift) >> shift
}
