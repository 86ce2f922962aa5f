// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/wacdec/utils"
)

// Resampler converts a source to a different sample rate using cubic
// interpolation over a four-frame window. Channel count is preserved.
// When downsampling, a one-pole low-pass filter tames aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// Interpolation window: window[1] and window[2] bracket the output
	// position, window[0] and window[3] supply the cubic tangents.
	window [4][]float32
	valid  [4]bool
	primed bool

	// frac is the position between window[1] and window[2], in [0, 1)
	// once normalized.
	frac float64

	frameBuf []float32
	eof      bool

	// One-pole low-pass state, used only when downsampling.
	filter      []float32
	useFilter   bool
	filterAlpha float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frameBuf: make([]float32, channels),
		filter:   make([]float32, channels),
	}

	// Anti-aliasing only matters when the output rate is lower.
	if step > 1 {
		r.useFilter = true
		r.filterAlpha = 0.5
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// prime fills the window with the first four source frames. Shorter
// sources duplicate their last frame into the remaining slots.
func (r *Resampler) prime() error {
	for i := range r.window {
		n, err := r.src.ReadSamples(r.frameBuf)
		if n > 0 {
			copy(r.window[i], r.frameBuf[:n])
			r.valid[i] = true

			// Seed the filter so the first frames are not dragged
			// toward zero.
			if i == 0 && r.useFilter {
				copy(r.filter, r.frameBuf[:n])
			}
		}

		if err == io.EOF {
			r.eof = true
			if !r.valid[0] {
				return io.EOF
			}
			last := i
			if n == 0 {
				last = i - 1
			}
			for j := last + 1; j < len(r.window); j++ {
				copy(r.window[j], r.window[last])
				r.valid[j] = true
			}
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	r.primed = true
	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]

	n, err := r.src.ReadSamples(r.frameBuf)
	if n > 0 {
		copy(r.window[3], r.frameBuf[:n])
		r.valid[3] = true

		if r.useFilter {
			for c := 0; c < r.channels; c++ {
				r.window[3][c] = r.filterAlpha*r.window[3][c] + (1-r.filterAlpha)*r.filter[c]
				r.filter[c] = r.window[3][c]
			}
		}
	} else {
		r.valid[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.valid[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces interleaved samples at the target rate. len(dst)
// must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, err
		}
	}

	written := 0
	wanted := len(dst) / r.channels

	for written < wanted {
		for r.frac >= 1 {
			r.frac--
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.valid[1] || !r.valid[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.frac)
		for c := 0; c < r.channels; c++ {
			y1 := r.window[1][c]
			y2 := r.window[2][c]

			// Edge frames fall back to their neighbors.
			y0 := y1
			if r.valid[0] {
				y0 = r.window[0][c]
			}
			y3 := y2
			if r.valid[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}
