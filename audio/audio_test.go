package audio

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/ik5/wacdec/internal/audiotest"
)

type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(8000, 1, 100), nil
}

type failingDecoder struct{}

func (failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	wacDec := &stubDecoder{name: "wac"}
	wavDec := &stubDecoder{name: "wav"}

	reg.Register("wac", wacDec)
	reg.Register("wav", wavDec)

	cases := []struct {
		format string
		want   Decoder
		ok     bool
	}{
		{"wac", wacDec, true},
		{"wav", wavDec, true},
		{"flac", nil, false},
		{"", nil, false},
	}

	for _, tc := range cases {
		got, ok := reg.Get(tc.format)
		if ok != tc.ok {
			t.Errorf("Get(%q) ok = %v, want %v", tc.format, ok, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Errorf("Get(%q) returned the wrong decoder", tc.format)
		}
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	first := &stubDecoder{name: "first"}
	second := &stubDecoder{name: "second"}

	reg.Register("wac", first)
	reg.Register("wac", second)

	got, ok := reg.Get("wac")
	if !ok || got != second {
		t.Error("re-registering a format must replace the decoder")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wac", &stubDecoder{name: "wac"})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				reg.Register("wav", &stubDecoder{name: "wav"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := reg.Get("wac"); !ok {
					t.Error("registered decoder disappeared")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestRegistry_FailingDecoder(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("bad", failingDecoder{})

	dec, ok := reg.Get("bad")
	if !ok {
		t.Fatal("failing decoder not found")
	}

	if _, err := dec.Decode(nil); err == nil {
		t.Error("Decode() did not propagate the decoder's error")
	}
}
