package simpleio

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidUTF8 matches any *DecodeError through errors.Is
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
	ErrTooLarge    = errors.New("source too large")
	ErrNilSource   = errors.New("nil source")
)

// A DecodeError is returned when bytes read as text are not valid UTF-8.
type DecodeError struct {
	// Offset of the first byte that does not start a valid encoding
	Offset int
}

func (de *DecodeError) Error() string {
	return fmt.Sprintf("%s at byte offset %d", ErrInvalidUTF8, de.Offset)
}

func (de *DecodeError) Is(target error) bool {
	return target == ErrInvalidUTF8
}

// IsDecodeError returns true if err is, or wraps, a *DecodeError
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

func decode(buf []byte) (string, error) {
	if utf8.Valid(buf) {
		return string(buf), nil
	}
	return "", errors.WithStack(&DecodeError{Offset: invalidOffset(buf)})
}

func invalidOffset(buf []byte) int {
	offset := 0
	for offset < len(buf) {
		r, size := utf8.DecodeRune(buf[offset:])
		if r == utf8.RuneError && size == 1 {
			return offset
		}
		offset += size
	}
	return offset
}
