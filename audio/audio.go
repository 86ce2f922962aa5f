// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Source is a stream of interleaved float32 samples in [-1, 1].
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels in the stream (1 = mono, 2 = stereo).
	Channels() int
	// ReadSamples fills dst and returns the number of float32 values
	// written, not frames. n == 0 with io.EOF means the stream ended.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources held by the source.
	Close() error
}

// Decoder turns an encoded input into a Source.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys (e.g. "wac", "wav") to decoders. Safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register adds or replaces the decoder for a format key.
func (r *Registry) Register(format string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[format] = d
}

// Get returns the decoder registered for a format key.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.codecs[format]
	return d, ok
}
