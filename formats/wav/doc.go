// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file encoding and decoding.
//
// This package reads and writes WAV files in PCM 16-bit format, mono or
// multi-channel, at any sample rate. It uses the github.com/go-audio
// libraries for the RIFF chunk handling.
//
// # Writing WAV Files
//
// WriteWAV16 writes interleaved 16-bit PCM:
//
//	samples := []int16{100, -100, 200, -200}
//	f, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(f, 8000, 1, samples)
//
// The writer must implement io.WriteSeeker because the RIFF chunk sizes
// are patched after the data is written; an *os.File works.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	f, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(f)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0]. Inputs that do not implement
// io.ReadSeeker are buffered in memory first.
//
// # Error Handling
//
// The package defines these error values:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrInvalidChannelCount: WriteWAV16 was given fewer than 1 channel
package wav
