// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"io"

	"github.com/ik5/wacdec/formats/wav"
	"github.com/ik5/wacdec/internal/audiotest"
)

// Example_encoding writes interleaved 16-bit PCM as a WAV file. In real
// code the destination would be an os.File.
func Example_encoding() {
	samples := []int16{100, 200, 300, 400, 500}

	out := new(audiotest.SeekBuffer)
	if err := wav.WriteWAV16(out, 16000, 1, samples); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", out.Len())
	// Output: Wrote 54 bytes
}

// Example_roundTrip encodes samples and decodes them back unchanged.
func Example_roundTrip() {
	original := []int16{-1000, -500, 0, 500, 1000}

	out := new(audiotest.SeekBuffer)
	if err := wav.WriteWAV16(out, 8000, 1, original); err != nil {
		fmt.Printf("encode error: %v\n", err)
		return
	}

	source, err := wav.Decoder{}.Decode(out.Reader())
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	buf := make([]float32, len(original))
	n, err := source.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("read error: %v\n", err)
		return
	}

	recovered := make([]int16, n)
	for i := 0; i < n; i++ {
		recovered[i] = int16(buf[i] * 32768)
	}

	fmt.Printf("Original:  %v\n", original)
	fmt.Printf("Recovered: %v\n", recovered)
	// Output:
	// Original:  [-1000 -500 0 500 1000]
	// Recovered: [-1000 -500 0 500 1000]
}
