// SPDX-License-Identifier: EPL-2.0

// Package wac decodes the Wildlife Acoustics "WAC" compressed audio
// format into linear PCM.
//
// WAC is a lossless (or, at higher compression levels, near-lossless)
// format built on Golomb-Rice coding of the deltas between successive
// samples. This package implements a one-shot sequential decode of a
// whole stream; encoding, seeking via the seek table, and streaming
// playback are out of scope.
//
// # Stream Layout
//
// A WAC stream starts with a fixed 24-byte little-endian header:
//
//	0x00-0x03  "WAac" magic
//	0x04       version (<= 4)
//	0x05       channel count (1 or 2)
//	0x06-0x07  frame size (samples per channel per frame)
//	0x08-0x09  block size (frames per block)
//	0x0a-0x0b  flags: bits 0-3 lossy level, bit 4 triggered,
//	           bit 5 GPS present, bit 6 tag present
//	0x0c-0x0f  sample rate in Hz
//	0x10-0x13  sample count per channel
//	0x14-0x15  seek size (blocks per seek table entry)
//	0x16-0x17  seek entry count
//
// The header is followed by a seek table of 4-byte word offsets, which
// this decoder skips, and then by blocks of frames. Every block starts
// on a 16-bit boundary with the sync pattern 0x00018000 and a block
// index that increments from zero; a mismatch of either is treated as
// stream corruption and aborts the decode. The format offers no way to
// resynchronize after corruption.
//
// Block headers may carry GPS coordinates (every seek-size blocks) and
// recording tags (every block), depending on the flags. These are
// surfaced as Markers but never influence the samples.
//
// Frames hold Golomb-Rice coded sample deltas, channels interleaved. A
// 4-bit remainder width per channel opens the frame; a width of zero
// means the whole frame is zero deltas, which is how triggered files
// represent untriggered time.
//
// # Decoding
//
// For pipeline use, Decoder implements audio.Decoder:
//
//	f, _ := os.Open("recording.wac")
//	src, err := wac.Decoder{}.Decode(f)
//	if err != nil {
//	    // header was invalid
//	}
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// For a lossless whole-file decode keeping int16 samples, use DecodeAll:
//
//	audio, err := wac.DecodeAll(f)
//	// audio.Samples is interleaved 16-bit PCM
//
// # Error Handling
//
// Every decode failure maps to one of the package's sentinel errors
// (ErrInvalidMagic, ErrUnsupportedVersion, ErrInvalidField,
// ErrTruncatedStream, ErrBlockSync, ErrBlockSequence,
// ErrSampleCountMismatch). All of them are fatal for the stream being
// decoded; there is no partial output.
package wac
