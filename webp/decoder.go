package webp

import (
	"image"
	"io"

	"github.com/ezdiy/image-webp/util"
)

// Decoder reads one WebP image from a stream.
// The header is read when the decoder is created; pixels are decoded
// on the first call to Reader or Image and kept afterwards.
type Decoder struct {
	r *reader
}

// NewDecoder reads the header from r and fails if it is not a WebP header.
// The decoder produces pixels in layout l.
func NewDecoder(r io.Reader, l Layout) (*Decoder, error) {
	if l < RGB || l > BGRA {
		return nil, unsupportedError("new decoder", l.ColorType())
	}
	return newDecoder(newReader(r, l))
}

func newDecoder(rd *reader) (*Decoder, error) {
	if err := rd.readInfo(); err != nil {
		return nil, err
	}
	return &Decoder{r: rd}, nil
}

// Dimensions as found in the header.
func (d *Decoder) Dimensions() (width, height int) {
	return d.r.width, d.r.height
}

func (d *Decoder) Layout() Layout {
	return d.r.layout
}

func (d *Decoder) ColorType() ColorType {
	return d.r.layout.ColorType()
}

func (d *Decoder) Config() image.Config {
	return image.Config{
		ColorModel: d.r.layout.ColorModel(),
		Width:      d.r.width,
		Height:     d.r.height,
	}
}

// Reader decodes the image and returns a reader over its packed pixels,
// Width*Channels bytes per row.
func (d *Decoder) Reader() (io.Reader, error) {
	if err := d.r.readData(); err != nil {
		return nil, err
	}
	return newPixelReader(d.r.data), nil
}

// Image decodes and returns a copy of the pixels as an image.Image:
// *image.NRGBA for RGBA, *util.RGB, *util.BGR or *util.BGRA otherwise.
func (d *Decoder) Image() (image.Image, error) {
	if err := d.r.readData(); err != nil {
		return nil, err
	}
	data := d.r.data
	pix := make([]byte, len(data.pix))
	copy(pix, data.pix)
	rect := image.Rect(0, 0, data.width, data.height)

	switch d.r.layout {
	case RGB:
		return &util.RGB{Pix: pix, Stride: data.stride, Rect: rect}, nil
	case BGR:
		return &util.BGR{Pix: pix, Stride: data.stride, Rect: rect}, nil
	case BGRA:
		return &util.BGRA{Pix: pix, Stride: data.stride, Rect: rect}, nil
	default:
		return &image.NRGBA{Pix: pix, Stride: data.stride, Rect: rect}, nil
	}
}
