package webp

import (
	"github.com/getlantern/errors"
)

var (
	ErrInvalidHeader     = errors.New("webp: invalid header")
	ErrInvalidData       = errors.New("webp: invalid payload data")
	ErrBufferSize        = errors.New("webp: buffer length does not match dimensions")
	ErrInvalidDimensions = errors.New("webp: image dimensions must be positive")
	ErrEncoderUsed       = errors.New("webp: encoder already used")
	ErrUnsupported       = errors.New("webp: unsupported color type")
)

// Kind classifies an Error the way the image library reports codec failures.
type Kind int

const (
	KindDecoding Kind = iota
	KindEncoding
	KindUnsupported
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindDecoding:
		return "decoding"
	case KindEncoding:
		return "encoding"
	case KindUnsupported:
		return "unsupported"
	case KindIO:
		return "io"
	}
	return "unknown"
}

// Error is returned by every fallible operation of this package.
// Err is one of the sentinels above, an error from the native codec,
// or the untouched error of the underlying reader or writer (KindIO).
type Error struct {
	Kind      Kind
	Op        string
	ColorType ColorType // set for KindUnsupported
	Err       error
}

func (e *Error) Error() string {
	s := "webp " + e.Op + ": " + e.Kind.String()
	if e.Kind == KindUnsupported {
		s += " (" + e.ColorType.String() + ")"
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

func decodingError(op string, err error) error {
	return &Error{Kind: KindDecoding, Op: op, Err: err}
}

func encodingError(op string, err error) error {
	return &Error{Kind: KindEncoding, Op: op, Err: err}
}

func ioError(op string, err error) error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}

func unsupportedError(op string, ct ColorType) error {
	return &Error{Kind: KindUnsupported, Op: op, ColorType: ct, Err: ErrUnsupported}
}
