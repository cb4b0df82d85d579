package option

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/itchio/headway/state"
	"github.com/itchio/simpleio/counter"
)

// Settings controls how an extended reader consumes its source.
type Settings struct {
	Consumer *state.Consumer

	// SizeLimit caps how many bytes may be read from the source, 0 means no limit
	SizeLimit int64

	// InitialBufferSize preallocates the read buffer
	InitialBufferSize int

	OnRead counter.CountCallback
}

func DefaultSettings() *Settings {
	return &Settings{
		Consumer: &state.Consumer{},
	}
}

func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Consumer, validation.Required),
		validation.Field(&s.SizeLimit, validation.Min(0)),
		validation.Field(&s.InitialBufferSize, validation.Min(0)),
	)
}

//////////////////////////////////////

type Option interface {
	Apply(*Settings)
}

//////////////////////////////////////

type consumerOption struct {
	consumer *state.Consumer
}

var _ Option = (*consumerOption)(nil)

func (co *consumerOption) Apply(s *Settings) {
	s.Consumer = co.consumer
}

func WithConsumer(consumer *state.Consumer) Option {
	return &consumerOption{consumer}
}

//////////////////////////////////////

type sizeLimitOption struct {
	sizeLimit int64
}

var _ Option = (*sizeLimitOption)(nil)

func (slo *sizeLimitOption) Apply(s *Settings) {
	s.SizeLimit = slo.sizeLimit
}

func WithSizeLimit(sizeLimit int64) Option {
	return &sizeLimitOption{sizeLimit}
}

//////////////////////////////////////

type initialBufferSizeOption struct {
	size int
}

var _ Option = (*initialBufferSizeOption)(nil)

func (ibso *initialBufferSizeOption) Apply(s *Settings) {
	s.InitialBufferSize = ibso.size
}

func WithInitialBufferSize(size int) Option {
	return &initialBufferSizeOption{size}
}

//////////////////////////////////////

type onReadOption struct {
	onRead counter.CountCallback
}

var _ Option = (*onReadOption)(nil)

func (oro *onReadOption) Apply(s *Settings) {
	s.OnRead = oro.onRead
}

// WithOnRead registers a callback receiving the running count of bytes
// read from the source.
func WithOnRead(onRead counter.CountCallback) Option {
	return &onReadOption{onRead}
}
