// SPDX-License-Identifier: EPL-2.0

// Package audio holds the processing primitives shared by the format
// decoders and the converter.
//
// Everything revolves around Source: a stream of interleaved float32
// samples in [-1, 1] that reports its rate and channel count. Decoders
// produce Sources; Resampler and MonoMixer wrap one Source and present
// another, so stages compose into a pipeline:
//
//	src, err := dec.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	out := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//
// Resampler converts sample rates with cubic interpolation, applying a
// simple low-pass when downsampling. MonoMixer averages the channels of
// a multi-channel stream into one.
//
// Registry maps format keys ("wac", "wav") to Decoder implementations
// so callers can pick a decoder by file extension without depending on
// every format package.
//
// Sources signal end of stream with io.EOF from ReadSamples; a short
// read is not an error. Any other error is terminal for the stream.
package audio
