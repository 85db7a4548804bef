package bodystream

// Source supplies the content a BufferStream is built from. RawContent is
// called exactly once, by NewBufferStream. The second return value reports
// whether any content was available; when it is false the stream starts out
// empty no matter what the first return value holds.
type Source interface {
	RawContent() ([]byte, bool)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() ([]byte, bool)

func (f SourceFunc) RawContent() ([]byte, bool) {
	return f()
}

// BytesSource serves a byte slice that is already in memory. The slice is
// not copied, so it must not be modified after the stream is built.
type BytesSource []byte

func (b BytesSource) RawContent() ([]byte, bool) {
	return b, true
}

// StringSource serves the bytes of a string.
type StringSource string

func (s StringSource) RawContent() ([]byte, bool) {
	return []byte(s), true
}
