package bodystream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesSource(t *testing.T) {
	data := []byte("payload")
	stream := NewBufferStream(BytesSource(data))

	assert.Equal(t, int64(7), stream.Size())
	assert.Equal(t, "payload", stream.String())
}

func TestBytesSourceEmpty(t *testing.T) {
	stream := NewBufferStream(BytesSource(nil))

	assert.Equal(t, int64(0), stream.Size())
	assert.True(t, stream.EOF())
}

func TestBytesSourceAliasesSlice(t *testing.T) {
	data := []byte("abc")
	content, ok := BytesSource(data).RawContent()

	assert.True(t, ok)
	assert.Same(t, &data[0], &content[0])
}

func TestStringSource(t *testing.T) {
	content, ok := StringSource("abc").RawContent()

	assert.True(t, ok)
	assert.Equal(t, []byte("abc"), content)
}

func TestSourceFunc(t *testing.T) {
	calls := 0
	src := SourceFunc(func() ([]byte, bool) {
		calls++
		return []byte("generated"), true
	})

	stream := NewBufferStream(src)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "generated", stream.String())
}

func TestSourceFuncNoContent(t *testing.T) {
	src := SourceFunc(func() ([]byte, bool) {
		return nil, false
	})

	stream := NewBufferStream(src)
	assert.Equal(t, int64(0), stream.Size())
	assert.True(t, stream.EOF())
}
