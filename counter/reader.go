package counter

import (
	"io"

	"github.com/pkg/errors"
)

// ErrLimitExceeded is returned by a limited Reader once more than
// its limit has been read from upstream.
var ErrLimitExceeded = errors.New("read limit exceeded")

type CountCallback func(count int64)

// Reader counts bytes read from an upstream reader, optionally
// calling back after every read and refusing to go past a limit.
type Reader struct {
	count  int64
	limit  int64
	reader io.Reader

	onRead CountCallback
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{reader: reader}
}

func NewReaderCallback(onRead CountCallback, reader io.Reader) *Reader {
	return &Reader{
		reader: reader,
		onRead: onRead,
	}
}

// WithLimit makes r fail with ErrLimitExceeded as soon as more than
// limit bytes are read. A limit of 0 or less means no limit.
func (r *Reader) WithLimit(limit int64) *Reader {
	r.limit = limit
	return r
}

func (r *Reader) Count() int64 {
	return r.count
}

func (r *Reader) Read(buffer []byte) (n int, err error) {
	if r.limit > 0 {
		if r.count > r.limit {
			return 0, ErrLimitExceeded
		}
		// one byte past the limit is enough to know it was exceeded
		remaining := r.limit - r.count + 1
		if int64(len(buffer)) > remaining {
			buffer = buffer[:remaining]
		}
	}

	n, err = r.reader.Read(buffer)

	r.count += int64(n)
	if r.onRead != nil && n > 0 {
		r.onRead(r.count)
	}
	if r.limit > 0 && r.count > r.limit {
		err = ErrLimitExceeded
	}
	return
}
