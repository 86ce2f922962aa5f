// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic sources and buffers for tests.
// It deliberately does not import the audio package, so packages under
// test can use it without a cycle.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates interleaved float32 frames from a waveform
// function. It satisfies the audio.Source interface.
type MockSource struct {
	rate     int
	channels int
	frames   int // frames remaining
	pos      int // absolute frame index
	waveform func(frame, channel int) float32
}

// NewMockSource returns a source producing frames per-channel frames,
// drawing each value from waveform(frameIndex, channel).
func NewMockSource(rate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		rate:     rate,
		channels: channels,
		frames:   frames,
		waveform: waveform,
	}
}

// NewSilentSource returns a source of all-zero frames.
func NewSilentSource(rate, channels, frames int) *MockSource {
	return NewMockSource(rate, channels, frames, func(int, int) float32 { return 0 })
}

// NewSineSource returns a source playing a sine tone at freq Hz, the
// same phase on every channel.
func NewSineSource(rate, channels, frames int, freq float64) *MockSource {
	return NewMockSource(rate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(rate)))
	})
}

// NewConstantSource returns a source holding every sample at value.
func NewConstantSource(rate, channels, frames int, value float32) *MockSource {
	return NewMockSource(rate, channels, frames, func(int, int) float32 { return value })
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// ReadSamples writes whole frames into dst. io.EOF accompanies the
// final batch of samples, matching how real decoders behave.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.frames == 0 {
		return 0, io.EOF
	}

	want := min(len(dst)/m.channels, m.frames)
	for f := 0; f < want; f++ {
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.waveform(m.pos+f, c)
		}
	}

	m.pos += want
	m.frames -= want

	n := want * m.channels
	if m.frames == 0 {
		return n, io.EOF
	}
	return n, nil
}
