// SPDX-License-Identifier: EPL-2.0

package wacdec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/wacdec/audio"
	"github.com/ik5/wacdec/formats/wac"
	"github.com/ik5/wacdec/formats/wav"
	"github.com/ik5/wacdec/utils"
)

// Options controls optional post-processing of the decoded audio.
// The zero value converts losslessly at the native rate and channel
// layout, keeping samples as int16 end to end.
type Options struct {
	// Rate resamples the output to the given sample rate in Hz.
	// Zero keeps the native rate.
	Rate int
	// Mono downmixes multi-channel audio by averaging channels.
	Mono bool
}

func (o Options) passthrough() bool { return o.Rate == 0 && !o.Mono }

// DecodeFile decodes a whole WAC file into memory.
func DecodeFile(path string) (*wac.Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return wac.DecodeAll(f)
}

// Convert decodes the WAC file at srcPath and writes it as a WAV file at
// dstPath. The input is fully decoded before the output file is created,
// so a decode failure never leaves a partial or truncated WAV behind.
func Convert(srcPath, dstPath string, opts Options) error {
	sampleRate, channels, samples, err := decodeForOutput(srcPath, opts)
	if err != nil {
		return err
	}

	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dstPath, err)
	}

	if err := wav.WriteWAV16(out, sampleRate, channels, samples); err != nil {
		out.Close()
		os.Remove(dstPath)
		return err
	}

	if err := out.Close(); err != nil {
		os.Remove(dstPath)
		return fmt.Errorf("closing %s: %w", dstPath, err)
	}

	return nil
}

// decodeForOutput produces the final sample stream for one source file.
// Without options this is the lossless int16 path; with options the
// samples go through the float32 resample/downmix pipeline.
func decodeForOutput(srcPath string, opts Options) (sampleRate, channels int, samples []int16, err error) {
	if opts.passthrough() {
		audioData, err := DecodeFile(srcPath)
		if err != nil {
			return 0, 0, nil, err
		}
		return audioData.Header.SampleRate, audioData.Header.Channels, audioData.Samples, nil
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("opening %s: %w", srcPath, err)
	}
	defer f.Close()

	src, err := wac.Decoder{}.Decode(f)
	if err != nil {
		return 0, 0, nil, err
	}
	defer src.Close()

	var s audio.Source = src
	if opts.Rate > 0 && opts.Rate != s.SampleRate() {
		s = audio.NewResampler(s, opts.Rate)
	}
	if opts.Mono && s.Channels() > 1 {
		s = audio.NewMonoMixer(s)
	}

	samples, err = collectPCM16(s)
	if err != nil {
		return 0, 0, nil, err
	}

	return s.SampleRate(), s.Channels(), samples, nil
}

// collectPCM16 drains a source into 16-bit PCM.
func collectPCM16(src audio.Source) ([]int16, error) {
	var pcm16 []int16
	buf := make([]float32, 4096)

	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			return pcm16, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// DefaultRegistry holds the decoders this module ships: "wac" and "wav".
var DefaultRegistry = func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wac", wac.Decoder{})
	r.Register("wav", wav.Decoder{})
	return r
}()

// DecoderFor looks up a decoder in DefaultRegistry by a path's file
// extension.
func DecoderFor(path string) (audio.Decoder, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return DefaultRegistry.Get(ext)
}
