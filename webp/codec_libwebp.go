//go:build cgo

package webp

import (
	"image"

	cwebp "github.com/chai2010/webp"
	"github.com/ezdiy/image-webp/util"
)

// libwebp binds the C library through chai2010/webp.
type libwebp struct{}

var native codec = libwebp{}

func (libwebp) probe(data []byte) (int, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrInvalidHeader
	}
	w, h, _, err := cwebp.GetInfo(data)
	return w, h, err
}

func (libwebp) decode(data []byte, l Layout) (int, int, []byte, error) {
	if len(data) == 0 {
		return 0, 0, nil, ErrInvalidData
	}
	m, err := cwebp.DecodeRGBA(data)
	if err != nil {
		return 0, 0, nil, err
	}
	w, h := m.Rect.Dx(), m.Rect.Dy()
	pix := util.Pack(m.Pix, m.Stride, 4*w, h)
	if l == RGB {
		// Same as libwebp's own RGB output mode: alpha is dropped, not blended.
		pix = util.StripAlpha(pix)
	}
	return w, h, pix, nil
}

func (libwebp) encode(pix []byte, width, height, stride int, l Layout, o Options) ([]byte, error) {
	rect := image.Rect(0, 0, width, height)
	var m image.Image
	if l == RGBA {
		m = &image.RGBA{Pix: pix, Stride: stride, Rect: rect}
	} else {
		m = &cwebp.RGBImage{XPix: pix, XStride: stride, XRect: rect}
	}
	// libwebp takes quality on a 0-100 scale.
	q := o.Quality * 100
	switch {
	case l == RGBA && o.Lossless:
		return cwebp.EncodeLosslessRGBA(m)
	case l == RGBA:
		return cwebp.EncodeRGBA(m, q)
	case o.Lossless:
		return cwebp.EncodeLosslessRGB(m)
	default:
		return cwebp.EncodeRGB(m, q)
	}
}
