// simpleio adds whole-source read helpers to any io.Reader: read
// everything as a string, as runes, as lines, or as raw bytes.
package simpleio

import (
	"bytes"
	"io"

	"github.com/itchio/headway/united"
	"github.com/itchio/simpleio/counter"
	"github.com/itchio/simpleio/option"
	"github.com/itchio/simpleio/seq"
	"github.com/pkg/errors"
)

// Reader is an io.Reader extended with whole-source reads.
// Each of them consumes the source until io.EOF.
type Reader struct {
	io.Reader

	settings *option.Settings
}

// Extend wraps source so it gains ReadString, ReadChars, ReadLines
// and ReadVec.
func Extend(source io.Reader, opts ...option.Option) (*Reader, error) {
	if source == nil {
		return nil, errors.WithStack(ErrNilSource)
	}

	settings := option.DefaultSettings()
	for _, opt := range opts {
		opt.Apply(settings)
	}

	err := settings.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "invalid simpleio settings")
	}

	return &Reader{
		Reader:   source,
		settings: settings,
	}, nil
}

// ReadString reads everything from source and decodes it as UTF-8.
func ReadString(source io.Reader) (string, error) {
	r, err := Extend(source)
	if err != nil {
		return "", err
	}
	return r.ReadString()
}

// ReadChars reads everything from source and returns its Unicode
// scalar values in order.
func ReadChars(source io.Reader) ([]rune, error) {
	r, err := Extend(source)
	if err != nil {
		return nil, err
	}
	return r.ReadChars()
}

// ReadLines reads everything from source and splits it into lines.
// Both "\n" and "\r\n" end a line, and are not part of it.
func ReadLines(source io.Reader) ([]string, error) {
	r, err := Extend(source)
	if err != nil {
		return nil, err
	}
	return r.ReadLines()
}

// ReadVec reads everything from source without decoding it.
func ReadVec(source io.Reader) ([]byte, error) {
	r, err := Extend(source)
	if err != nil {
		return nil, err
	}
	return r.ReadVec()
}

func (r *Reader) ReadString() (string, error) {
	buf, err := r.readAll()
	if err != nil {
		return "", err
	}

	s, err := decode(buf)
	if err != nil {
		r.settings.Consumer.Debugf("could not decode source: %v", err)
		return "", err
	}
	return s, nil
}

func (r *Reader) ReadChars() ([]rune, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return []rune(s), nil
}

func (r *Reader) ReadLines() ([]string, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return splitLines(s), nil
}

func (r *Reader) ReadVec() ([]byte, error) {
	return r.readAll()
}

// CharSeq is ReadChars, wrapped in a seq.Chars
func (r *Reader) CharSeq() (*seq.Chars, error) {
	chars, err := r.ReadChars()
	if err != nil {
		return nil, err
	}
	return seq.From(chars), nil
}

// LineSeq is ReadLines, wrapped in a seq.Lines
func (r *Reader) LineSeq() (*seq.Lines, error) {
	lines, err := r.ReadLines()
	if err != nil {
		return nil, err
	}
	return seq.From(lines), nil
}

// readAll returns errors from the source as-is, so callers can
// compare them against what the source returned.
func (r *Reader) readAll() ([]byte, error) {
	s := r.settings
	consumer := s.Consumer

	cr := counter.NewReaderCallback(s.OnRead, r.Reader).WithLimit(s.SizeLimit)
	buf := bytes.NewBuffer(make([]byte, 0, s.InitialBufferSize))

	_, err := buf.ReadFrom(cr)
	if err != nil {
		if errors.Is(err, counter.ErrLimitExceeded) {
			consumer.Debugf("source exceeds %s limit", united.FormatBytes(s.SizeLimit))
			return nil, errors.Wrapf(ErrTooLarge, "more than %s", united.FormatBytes(s.SizeLimit))
		}
		consumer.Debugf("read failed after %s: %v", united.FormatBytes(cr.Count()), err)
		return nil, err
	}

	consumer.Debugf("read %s from source", united.FormatBytes(cr.Count()))
	return buf.Bytes(), nil
}
