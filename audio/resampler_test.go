package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/wacdec/internal/audiotest"
)

func TestResampler_Properties(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		srcRate  int
		dstRate  int
		channels int
		frames   int
		minOut   int // output frames
		maxOut   int
	}{
		{"same rate", 8000, 8000, 1, 100, 90, 101},
		{"downsample half", 16000, 8000, 1, 200, 90, 105},
		{"downsample 44k to 8k", 44100, 8000, 1, 441, 70, 85},
		{"upsample double", 8000, 16000, 1, 100, 180, 205},
		{"stereo downsample", 16000, 8000, 2, 200, 90, 105},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tc.srcRate, tc.channels, tc.frames, 200)
			res := NewResampler(src, tc.dstRate)

			if res.SampleRate() != tc.dstRate {
				t.Errorf("SampleRate() = %d, want %d", res.SampleRate(), tc.dstRate)
			}
			if res.Channels() != tc.channels {
				t.Errorf("Channels() = %d, want %d", res.Channels(), tc.channels)
			}

			out := drain(t, res, 256*tc.channels)
			if len(out)%tc.channels != 0 {
				t.Fatalf("output length %d is not frame-aligned", len(out))
			}

			frames := len(out) / tc.channels
			if frames < tc.minOut || frames > tc.maxOut {
				t.Errorf("produced %d frames, want %d-%d", frames, tc.minOut, tc.maxOut)
			}
		})
	}
}

func TestResampler_OutputBounded(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 1, 4410, 440)
	res := NewResampler(src, 8000)

	for _, v := range drain(t, res, 512) {
		// Cubic interpolation of a smooth signal stays near its range;
		// anything far outside [-1, 1] is a wiring bug.
		if math.IsNaN(float64(v)) || v > 1.1 || v < -1.1 {
			t.Fatalf("output sample %v out of range", v)
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(16000, 2, 100)
	res := NewResampler(src, 8000)

	if _, err := res.ReadSamples(make([]float32, 3)); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples with odd dst = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 0)
	res := NewResampler(src, 16000)

	n, err := res.ReadSamples(make([]float32, 16))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples = %d, %v; want 0, EOF", n, err)
	}
}

func TestResampler_ConstantSignal(t *testing.T) {
	t.Parallel()

	// A constant input must resample to the same constant: cubic
	// interpolation between equal points is exact, and upsampling needs
	// no filter.
	src := audiotest.NewConstantSource(8000, 1, 100, 0.5)
	res := NewResampler(src, 16000)

	out := drain(t, res, 64)
	if len(out) == 0 {
		t.Fatal("no output produced")
	}
	for i, v := range out {
		if v != 0.5 {
			t.Fatalf("sample %d = %v, want 0.5", i, v)
		}
	}
}

func TestResampler_StereoFramesStayPaired(t *testing.T) {
	t.Parallel()

	// Distinct per-channel constants must never bleed into each other.
	src := audiotest.NewMockSource(16000, 2, 200, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.25
		}
		return -0.25
	})
	res := NewResampler(src, 8000)

	out := drain(t, res, 128)
	for i := 0; i+1 < len(out); i += 2 {
		if out[i] <= 0 || out[i+1] >= 0 {
			t.Fatalf("frame %d = (%v, %v); channels crossed", i/2, out[i], out[i+1])
		}
	}
}
