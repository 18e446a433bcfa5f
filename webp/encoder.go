package webp

import (
	"image"
	"io"

	"github.com/ezdiy/image-webp/util"
	"github.com/sirupsen/logrus"
)

// Encoder writes a single WebP image to w. It cannot be reused: once one of
// the Encode or Write methods has run, further calls fail with ErrEncoderUsed.
type Encoder struct {
	w     io.Writer
	opt   Options
	codec codec
	used  bool
}

// NewEncoder returns an encoder writing to w. nil options mean DefaultOptions,
// lossy at quality 0.75.
func NewEncoder(w io.Writer, opt *Options) *Encoder {
	if opt == nil {
		opt = &DefaultOptions
	}
	return &Encoder{w: w, opt: *opt, codec: native}
}

// NewEncoderWithQuality is NewEncoder with lossy compression at quality q.
func NewEncoderWithQuality(w io.Writer, q float32) *Encoder {
	return NewEncoder(w, Lossy(q))
}

// Encode writes m to w in WebP format.
func Encode(w io.Writer, m image.Image, opt *Options) error {
	return NewEncoder(w, opt).Encode(m)
}

// Encode picks the native layout matching the concrete type of m.
// Other image types are converted to RGBA if their color model has an
// alpha channel, to RGB if not.
func (e *Encoder) Encode(m image.Image) error {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	var l Layout
	switch m.(type) {
	case *image.NRGBA:
		l = RGBA
	case *util.RGB:
		l = RGB
	case *util.BGR:
		l = BGR
	case *util.BGRA:
		l = BGRA
	default:
		if util.HasAlpha(m) {
			return e.EncodeRGBA(util.ToNRGBA(m).Pix, w, h)
		}
		return e.EncodeRGB(util.ToRGB(m).Pix, w, h)
	}

	if w <= 0 || h <= 0 {
		return e.reject(ErrInvalidDimensions)
	}
	pix, stride := util.GetPixStride(m)
	rowLen := w * l.Channels()
	if stride < rowLen || len(pix) < (h-1)*stride+rowLen {
		return e.reject(ErrBufferSize)
	}
	return e.encode(util.Pack(pix, stride, rowLen, h), w, h, l)
}

// reject fails an encode before it reaches the codec. The encoder is used up
// all the same.
func (e *Encoder) reject(err error) error {
	if e.used {
		err = ErrEncoderUsed
	}
	e.used = true
	return encodingError("encode", err)
}

func (e *Encoder) EncodeRGB(pix []byte, width, height int) error {
	return e.encode(pix, width, height, RGB)
}

func (e *Encoder) EncodeRGBA(pix []byte, width, height int) error {
	return e.encode(pix, width, height, RGBA)
}

// EncodeBGR encodes through the RGB path on a red/blue swapped copy of pix.
func (e *Encoder) EncodeBGR(pix []byte, width, height int) error {
	return e.encode(pix, width, height, BGR)
}

func (e *Encoder) EncodeBGRA(pix []byte, width, height int) error {
	return e.encode(pix, width, height, BGRA)
}

// WriteImage encodes a raw buffer of the given color type. Only RGB8, RGBA8,
// BGR8 and BGRA8 are accepted; nothing is converted here, use Encode for that.
func (e *Encoder) WriteImage(buf []byte, width, height int, ct ColorType) error {
	l, ok := ct.layout()
	if !ok {
		return unsupportedError("write image", ct)
	}
	return e.encode(buf, width, height, l)
}

func (e *Encoder) encode(pix []byte, width, height int, l Layout) error {
	if e.used {
		return e.reject(ErrEncoderUsed)
	}
	if width <= 0 || height <= 0 {
		return e.reject(ErrInvalidDimensions)
	}
	stride := width * l.Channels()
	if len(pix) != stride*height {
		return e.reject(ErrBufferSize)
	}
	e.used = true
	if l.swapped() {
		sw := make([]byte, len(pix))
		copy(sw, pix)
		util.SwapRB(sw, l.Channels())
		pix = sw
	}

	out, err := e.codec.encode(pix, width, height, stride, l.native(), e.opt)
	if err != nil {
		return encodingError("encode", err)
	}
	log.WithFields(logrus.Fields{
		"width":    width,
		"height":   height,
		"layout":   l,
		"lossless": e.opt.Lossless,
		"size":     len(out),
	}).Debug("webp: encoded")

	if _, err := e.w.Write(out); err != nil {
		return ioError("write", err)
	}
	return nil
}
