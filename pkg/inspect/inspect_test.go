package inspect

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/babarinde/mezzio-swoole/pkg/bodystream"
)

func TestDescribe(t *testing.T) {
	stream := bodystream.NewBufferStream(bodystream.StringSource("hello dump"))
	sum := sha256.Sum256([]byte("hello dump"))

	info := Describe("dump-1-0", stream, 5)
	assert.Equal(t, "dump-1-0", info.Name)
	assert.Equal(t, int64(10), info.SizeBytes)
	assert.Equal(t, "10 B", info.SizeBytesHuman)
	assert.Equal(t, hex.EncodeToString(sum[:]), info.Sha256)
	assert.Contains(t, info.MimeType, "text/plain")
	assert.Equal(t, "hello", info.Preview)
}

func TestDescribeDetectsBinary(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	stream := bodystream.NewBufferStream(bodystream.BytesSource(pngHeader))

	info := Describe("image", stream, 16)
	assert.Equal(t, "image/png", info.MimeType)
	assert.Equal(t, int64(8), info.SizeBytes)
}

func TestDescribeKeepsCursor(t *testing.T) {
	stream := bodystream.NewBufferStream(bodystream.StringSource("This is a test!"))
	_, err := stream.Seek(7, io.SeekStart)
	assert.NoError(t, err)

	info := Describe("dump", stream, 64)
	assert.Equal(t, int64(15), info.SizeBytes)
	assert.Equal(t, "This is a test!", info.Preview)
	assert.Equal(t, int64(7), stream.Tell())
}

func TestDescribeEmpty(t *testing.T) {
	stream := bodystream.NewBufferStream(bodystream.StringSource(""))

	info := Describe("empty", stream, 64)
	assert.Equal(t, int64(0), info.SizeBytes)
	assert.Equal(t, "0 B", info.SizeBytesHuman)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", info.Sha256)
	assert.Equal(t, "", info.Preview)
}

func TestDescribePreviewMasksControlBytes(t *testing.T) {
	stream := bodystream.NewBufferStream(bodystream.BytesSource([]byte{0x00, 'a', '\n', 0x07, 'b'}))

	info := Describe("dump", stream, 5)
	assert.Equal(t, ".a\n.b", info.Preview)
}

func TestDescribePreviewMasksInvalidBytes(t *testing.T) {
	stream := bodystream.NewBufferStream(bodystream.BytesSource([]byte{0x89, 'P', 'N', 'G'}))

	info := Describe("image", stream, 4)
	assert.Equal(t, ".PNG", info.Preview)
}

func TestDescribePreviewKeepsMultibyteRunes(t *testing.T) {
	stream := bodystream.NewBufferStream(bodystream.StringSource("héllo"))

	info := Describe("text", stream, 6)
	assert.Equal(t, "héllo", info.Preview)
}

func TestDescribeZeroPreview(t *testing.T) {
	stream := bodystream.NewBufferStream(bodystream.StringSource("abc"))

	info := Describe("dump", stream, 0)
	assert.Equal(t, "", info.Preview)

	info = Describe("dump", stream, -1)
	assert.Equal(t, "", info.Preview)
}
