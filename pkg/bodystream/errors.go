package bodystream

import (
	"errors"
	"fmt"
)

var (
	// ErrSeekOutOfRange is wrapped by every error returned from Seek when the
	// target position is rejected.
	ErrSeekOutOfRange = errors.New("seek out of range")

	// ErrNotWritable is returned from Write. A BufferStream never accepts writes.
	ErrNotWritable = errors.New("stream is not writable")
)

var (
	errSeekStartBound   = fmt.Errorf("%w: offset must be less than content length", ErrSeekOutOfRange)
	errSeekCurrentBound = fmt.Errorf("%w: offset plus current position must be less than content length", ErrSeekOutOfRange)
	errSeekEndBound     = fmt.Errorf("%w: offset must be negative", ErrSeekOutOfRange)
	errSeekNegative     = fmt.Errorf("%w: resulting position cannot be negative", ErrSeekOutOfRange)
)
