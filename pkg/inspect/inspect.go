package inspect

import (
	"crypto/sha256"
	"encoding/hex"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"

	"github.com/babarinde/mezzio-swoole/pkg/bodystream"
)

// Info is a summary of one buffered body, ready to be encoded as JSON or
// YAML.
type Info struct {
	Name           string `json:"name" yaml:"name"`
	SizeBytes      int64  `json:"sizebytes" yaml:"sizebytes"`
	SizeBytesHuman string `json:"sizebyteshuman" yaml:"sizebyteshuman"`
	Sha256         string `json:"sha256" yaml:"sha256"`
	MimeType       string `json:"mimetype" yaml:"mimetype"`
	Preview        string `json:"preview" yaml:"preview"`
}

// Describe summarizes the full content of the stream without moving its
// cursor. previewBytes caps how much content ends up in the preview; non
// printable bytes are replaced with dots.
func Describe(name string, stream *bodystream.BufferStream, previewBytes int) Info {
	content := []byte(stream.String())
	sum := sha256.Sum256(content)

	if previewBytes < 0 {
		previewBytes = 0
	}
	preview := content
	if len(preview) > previewBytes {
		preview = preview[:previewBytes]
	}

	return Info{
		Name:           name,
		SizeBytes:      stream.Size(),
		SizeBytesHuman: humanize.Bytes(uint64(stream.Size())),
		Sha256:         hex.EncodeToString(sum[:]),
		MimeType:       mimetype.Detect(content).String(),
		Preview:        printable(preview),
	}
}

func printable(data []byte) string {
	out := make([]rune, 0, len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			out = append(out, '.')
		} else if r == '\n' || r == '\t' || unicode.IsPrint(r) {
			out = append(out, r)
		} else {
			out = append(out, '.')
		}
		data = data[size:]
	}

	return string(out)
}
