package bodystream

import (
	"fmt"
	"io"
)

// BufferStream is a read only, seekable stream over content that is fully
// buffered in memory. The content never changes after construction; only the
// cursor moves, and it always stays within [0, Size()].
//
// Seek enforces a stricter bound than io.Seeker: the target position must be
// strictly less than Size(), so the only way to park the cursor at the very
// end is to read past the last byte. Rewind never fails and is the safe way
// back to the start, empty content included.
type BufferStream struct {
	content []byte
	cursor  int64
	source  Source
}

var _ io.ReadSeekCloser = (*BufferStream)(nil)
var _ io.WriterTo = (*BufferStream)(nil)
var _ fmt.Stringer = (*BufferStream)(nil)

// NewBufferStream pulls the content out of src and wraps it. src may be nil,
// which yields an empty stream.
func NewBufferStream(src Source) *BufferStream {
	var content []byte
	if src != nil {
		if data, ok := src.RawContent(); ok {
			content = data
		}
	}

	return &BufferStream{content: content, source: src}
}

// Read copies bytes from the cursor onwards and advances the cursor. At the
// end of the content it returns io.EOF.
func (s *BufferStream) Read(p []byte) (int, error) {
	if s.cursor >= s.Size() {
		return 0, io.EOF
	}

	n := copy(p, s.content[s.cursor:])
	s.cursor += int64(n)
	return n, nil
}

// Seek moves the cursor and returns the new position. The resulting position
// must lie in [0, Size()); an offset that lands outside of that is rejected
// with an error wrapping ErrSeekOutOfRange and the cursor stays put. With
// io.SeekEnd only negative offsets are accepted.
func (s *BufferStream) Seek(offset int64, whence int) (int64, error) {
	var next int64

	switch whence {
	case io.SeekStart:
		if offset >= s.Size() {
			return 0, errSeekStartBound
		}
		next = offset
	case io.SeekCurrent:
		if s.cursor+offset >= s.Size() {
			return 0, errSeekCurrentBound
		}
		next = s.cursor + offset
	case io.SeekEnd:
		if offset >= 0 {
			return 0, errSeekEndBound
		}
		next = s.Size() + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if next < 0 {
		return 0, errSeekNegative
	}

	s.cursor = next
	return next, nil
}

// Rewind puts the cursor back to the start. Unlike Seek(0, io.SeekStart) it
// cannot fail, not even on empty content.
func (s *BufferStream) Rewind() {
	s.cursor = 0
}

// Tell returns the current cursor position.
func (s *BufferStream) Tell() int64 {
	return s.cursor
}

// Size returns the total content length in bytes.
func (s *BufferStream) Size() int64 {
	return int64(len(s.content))
}

// EOF reports whether the cursor sits at the end of the content.
func (s *BufferStream) EOF() bool {
	return s.cursor >= s.Size()
}

// Contents returns everything from the cursor to the end and leaves the
// cursor at the end. The returned slice shares the underlying buffer.
func (s *BufferStream) Contents() []byte {
	rest := s.content[s.cursor:]
	s.cursor = s.Size()
	return rest
}

// String returns the full content regardless of the cursor position and does
// not move the cursor.
func (s *BufferStream) String() string {
	return string(s.content)
}

func (s *BufferStream) Seekable() bool {
	return true
}

func (s *BufferStream) Readable() bool {
	return true
}

func (s *BufferStream) Writable() bool {
	return false
}

// Write always fails with ErrNotWritable.
func (s *BufferStream) Write([]byte) (int, error) {
	return 0, ErrNotWritable
}

// Metadata returns an empty map. Buffered content has no file backing it, so
// there is nothing to report.
func (s *BufferStream) Metadata() map[string]any {
	return map[string]any{}
}

// MetadataValue returns nil for every key.
func (s *BufferStream) MetadataValue(string) any {
	return nil
}

// Detach hands back the Source the stream was built from, or nil. The stream
// itself keeps working. Calling it again returns the same value.
func (s *BufferStream) Detach() Source {
	return s.source
}

// Close is a no-op so that a BufferStream can stand in for any io.ReadCloser.
// The stream stays usable afterwards.
func (s *BufferStream) Close() error {
	return nil
}

// Clone returns a new stream over the same content and source with its own
// cursor parked at the start.
func (s *BufferStream) Clone() *BufferStream {
	return &BufferStream{content: s.content, source: s.source}
}

// WriteTo writes everything from the cursor to the end into w and advances
// the cursor by the number of bytes written.
func (s *BufferStream) WriteTo(w io.Writer) (int64, error) {
	rest := s.content[s.cursor:]
	if len(rest) == 0 {
		return 0, nil
	}

	n, err := w.Write(rest)
	if n > len(rest) {
		panic("bodystream: invalid Write count")
	}
	s.cursor += int64(n)
	if err != nil {
		return int64(n), err
	}
	if n != len(rest) {
		return int64(n), io.ErrShortWrite
	}

	return int64(n), nil
}
