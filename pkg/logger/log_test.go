package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type widget struct{}

func TestNamedCachesPerName(t *testing.T) {
	assert.Same(t, Named("alpha"), Named("alpha"))
	assert.NotSame(t, Named("alpha"), Named("beta"))
}

func TestForUsesTypeName(t *testing.T) {
	assert.Same(t, Named("widget"), For(&widget{}))
	assert.Same(t, Named("widget"), For(widget{}))
	assert.Same(t, Named("unknown"), For(nil))
}

func TestNamedTagsEntries(t *testing.T) {
	logger := Named("tagger")

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.Info("hello")

	assert.Contains(t, buf.String(), "name=tagger")
	assert.Contains(t, buf.String(), "hello")
}
