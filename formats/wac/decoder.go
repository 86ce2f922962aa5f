package wac

import (
	"io"

	"github.com/ik5/wacdec/audio"
	"github.com/ik5/wacdec/utils"
)

// source decodes blocks lazily as samples are requested. Decoding is
// strictly sequential: the bit cursor and the per-channel accumulators
// depend on everything decoded before them, so there is exactly one
// source per stream and it is never shared.
type source struct {
	st      *decodeState
	pending []int16 // decoded samples not yet handed out
	off     int
	err     error // sticky decode failure
}

func (s *source) SampleRate() int { return s.st.hdr.SampleRate }
func (s *source) Channels() int   { return s.st.hdr.Channels }
func (s *source) Close() error    { return nil }

// Header returns the parsed stream header.
func (s *source) Header() Header { return s.st.hdr }

// Markers returns the GPS and tag markers seen so far. The slice grows
// as blocks are decoded; after the stream is drained it is complete.
func (s *source) Markers() []Marker { return s.st.markers }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.err != nil {
		return 0, s.err
	}

	filled := 0
	for filled < len(dst) {
		if s.off == len(s.pending) {
			pending, err := s.st.nextBlock(s.pending[:0])
			if err != nil {
				if err == io.EOF {
					if filled > 0 {
						return filled, nil
					}
					return 0, io.EOF
				}
				s.err = err
				return filled, err
			}
			s.pending = pending
			s.off = 0
		}

		for filled < len(dst) && s.off < len(s.pending) {
			dst[filled] = utils.Int16ToFloat32(s.pending[s.off])
			filled++
			s.off++
		}
	}

	return filled, nil
}

// Decoder decodes WAC streams into an audio.Source. The header is parsed
// eagerly, so header errors surface from Decode; block decoding happens
// as samples are read.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	st, err := newDecodeState(r)
	if err != nil {
		return nil, err
	}

	return &source{st: st}, nil
}

// Audio is a fully decoded WAC stream: interleaved 16-bit samples plus
// the header and any metadata markers found in block headers.
type Audio struct {
	Header  Header
	Samples []int16 // interleaved by channel
	Markers []Marker
}

// DecodeAll decodes an entire WAC stream in one pass. Unlike the
// float32 Source path this keeps samples as int16 end to end, so a
// losslessly compressed file round-trips bit-exact.
func DecodeAll(r io.Reader) (*Audio, error) {
	st, err := newDecodeState(r)
	if err != nil {
		return nil, err
	}

	samples := make([]int16, 0, int(st.hdr.SampleCount)*st.hdr.Channels)
	for {
		samples, err = st.nextBlock(samples)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return &Audio{
		Header:  st.hdr,
		Samples: samples,
		Markers: st.markers,
	}, nil
}
