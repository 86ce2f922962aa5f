// SPDX-License-Identifier: EPL-2.0

// Package wacdec converts Wildlife Acoustics "WAC" compressed audio
// recordings to standard WAV files.
//
// WAC is a proprietary lossless/near-lossless format built on
// Golomb-Rice coding of sample deltas. The decoder lives in
// formats/wac; this package adds the file-to-file plumbing: single
// conversions, batch conversion with a bounded worker pool, and
// optional resampling and mono downmixing.
//
// # Quick Start
//
// Convert one file, losslessly, at the native sample rate:
//
//	err := wacdec.Convert("in.wac", "out.wav", wacdec.Options{})
//
// Convert while resampling to 8kHz mono:
//
//	err := wacdec.Convert("in.wac", "out.wav", wacdec.Options{Rate: 8000, Mono: true})
//
// Convert a batch, four files at a time, without stopping on errors:
//
//	results := wacdec.ConvertBatch(ctx, pairs, 4, wacdec.Options{})
//	for _, r := range results {
//	    if r.Err != nil {
//	        log.Printf("%s: %v", r.Src, r.Err)
//	    }
//	}
//
// # Decoding Without Writing
//
// To inspect a file rather than convert it:
//
//	audio, err := wacdec.DecodeFile("in.wac")
//	// audio.Header, audio.Samples (interleaved int16), audio.Markers
//
// Markers carry GPS coordinates and recording tags found in block
// headers, pinned to sample offsets.
//
// # Pipeline Use
//
// The WAC decoder implements the audio.Decoder interface and can be
// combined with the audio subpackage's Resampler and MonoMixer:
//
//	src, _ := wac.Decoder{}.Decode(f)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//
// # Concurrency
//
// Decoding a single file is inherently sequential: every sample depends
// on the bit position and accumulator state left by the one before it.
// Across files there is no shared state, which is what ConvertBatch
// exploits.
package wacdec
