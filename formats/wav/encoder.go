// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WriteWAV16 writes interleaved 16-bit PCM samples as a standard WAV
// file. channels must be at least 1 and len(samples) a multiple of it.
// The writer must be seekable because the RIFF chunk sizes are patched
// once the data length is known (os.File qualifies).
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels < 1 {
		return ErrInvalidChannelCount
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, channels, 1)

	// Write in chunks to keep the conversion buffer small for large files.
	const chunkFrames = 4096
	chunk := chunkFrames * channels

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, 0, min(len(samples), chunk)),
	}

	// go-audio only lays down the RIFF header on the first Write, so an
	// empty stream still needs one empty write to produce a valid
	// header-only file.
	if len(samples) == 0 {
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing WAV data: %w", err)
		}
	}

	for i := 0; i < len(samples); i += chunk {
		end := min(i+chunk, len(samples))

		buf.Data = buf.Data[:end-i]
		for j, s := range samples[i:end] {
			buf.Data[j] = int(s)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing WAV data: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV file: %w", err)
	}

	return nil
}
