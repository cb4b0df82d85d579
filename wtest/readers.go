package wtest

import (
	"bytes"
	"io"
)

type errorReader struct {
	err error
}

var _ io.Reader = (*errorReader)(nil)

func (er *errorReader) Read(p []byte) (int, error) {
	return 0, er.err
}

// FailAfter returns a reader that yields data, then fails with err
// instead of reaching io.EOF.
func FailAfter(data []byte, err error) io.Reader {
	return io.MultiReader(bytes.NewReader(data), &errorReader{err})
}

// Trickle returns a reader that yields data at most n bytes per Read
func Trickle(data []byte, n int) io.Reader {
	return &trickleReader{data: data, n: n}
}

type trickleReader struct {
	data []byte
	n    int
}

var _ io.Reader = (*trickleReader)(nil)

func (tr *trickleReader) Read(p []byte) (int, error) {
	if len(tr.data) == 0 {
		return 0, io.EOF
	}
	if len(p) > tr.n {
		p = p[:tr.n]
	}
	n := copy(p, tr.data)
	tr.data = tr.data[n:]
	return n, nil
}
