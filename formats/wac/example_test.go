// SPDX-License-Identifier: EPL-2.0

package wac_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wacdec/formats/wac"
	"github.com/ik5/wacdec/internal/wactest"
)

// Example_decodeAll decodes a complete WAC stream in one call.
func Example_decodeAll() {
	// Build a small mono recording. Real code would open a .wac file
	// recorded by a Song Meter or EM3 unit instead.
	samples := []int16{100, 150, 125, 200, 175, 225}
	stream := wactest.Stream{
		Version:     4,
		Channels:    1,
		FrameSize:   3,
		BlockSize:   2,
		SampleRate:  16000,
		SampleCount: uint32(len(samples)),
	}
	raw := wactest.Encode(stream, [][]int16{samples}, 4)

	audio, err := wac.DecodeAll(bytes.NewReader(raw))
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", audio.Header.SampleRate)
	fmt.Printf("Channels: %d\n", audio.Header.Channels)
	fmt.Printf("Samples: %v\n", audio.Samples)
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Samples: [100 150 125 200 175 225]
}

// Example_streaming reads samples incrementally through the audio.Source
// interface.
func Example_streaming() {
	samples := make([]int16, 50)
	for i := range samples {
		samples[i] = int16(i * 10)
	}
	stream := wactest.Stream{
		Version:     4,
		Channels:    1,
		FrameSize:   5,
		BlockSize:   2,
		SampleRate:  8000,
		SampleCount: uint32(len(samples)),
	}
	raw := wactest.Encode(stream, [][]int16{samples}, 4)

	source, err := wac.Decoder{}.Decode(bytes.NewReader(raw))
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}
	defer source.Close()

	buf := make([]float32, 16)
	total := 0
	for {
		n, err := source.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("read error: %v\n", err)
			return
		}
	}

	fmt.Printf("Read %d samples at %d Hz\n", total, source.SampleRate())
	// Output: Read 50 samples at 8000 Hz
}

// Example_markers extracts the tag markers embedded in block headers.
func Example_markers() {
	stream := wactest.Stream{
		Version:     4,
		Channels:    1,
		FrameSize:   2,
		BlockSize:   1,
		Flags:       0x0040, // tagged recording
		SampleRate:  8000,
		SampleCount: 6,
	}

	b := wactest.NewBuilder(stream)
	for index, tag := range []uint32{1, 0, 3} {
		b.BeginBlock(uint32(index))
		b.WriteBits(tag, 4)
		b.WriteFrame([]uint32{1}, [][]int32{{1, 1}})
	}

	audio, err := wac.DecodeAll(bytes.NewReader(b.Bytes()))
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	for _, m := range audio.Markers {
		fmt.Printf("sample %d: button %s\n", m.Sample, m.Tag)
	}
	// Output:
	// sample 0: button A
	// sample 4: button C
}

// Example_errorHandling shows detecting a file that is not WAC.
func Example_errorHandling() {
	_, err := wac.DecodeAll(bytes.NewReader([]byte("RIFF....WAVEfmt ........data....")))
	if errors.Is(err, wac.ErrInvalidMagic) {
		fmt.Println("not a WAC file")
	}
	// Output: not a WAC file
}
