// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"fmt"
	"io"
)

// SeekBuffer is an in-memory io.WriteSeeker for tests that encode WAV
// files without touching the filesystem. The RIFF encoder seeks back to
// patch chunk sizes, which bytes.Buffer cannot support.
type SeekBuffer struct {
	data []byte
	pos  int64
}

func (b *SeekBuffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:end], p)
	b.pos = end
	return len(p), nil
}

func (b *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.pos + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative position: %d", pos)
	}
	b.pos = pos
	return pos, nil
}

// Bytes returns everything written so far.
func (b *SeekBuffer) Bytes() []byte { return b.data }

// Len returns the number of bytes written.
func (b *SeekBuffer) Len() int { return len(b.data) }

// Reader returns a reader over the written bytes.
func (b *SeekBuffer) Reader() *bytes.Reader { return bytes.NewReader(b.data) }
