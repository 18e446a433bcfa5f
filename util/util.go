package util

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Get the pixel slice and row stride of images with a single interleaved plane.
// Returns nil for planar or unknown images.
func GetPixStride(img image.Image) (pix []byte, stride int) {
	switch m := img.(type) {
	case *image.NRGBA:
		return m.Pix, m.Stride
	case *image.RGBA:
		return m.Pix, m.Stride
	case *image.Gray:
		return m.Pix, m.Stride
	case *RGB:
		return m.Pix, m.Stride
	case *BGR:
		return m.Pix, m.Stride
	case *BGRA:
		return m.Pix, m.Stride
	}
	return nil, 0
}

// Pack returns the h rows of rowLen bytes found every stride bytes in pix as
// one contiguous slice. pix is returned as-is when it is already packed.
func Pack(pix []byte, stride, rowLen, h int) []byte {
	if stride == rowLen && len(pix) == rowLen*h {
		return pix
	}
	out := make([]byte, rowLen*h)
	for y := 0; y < h; y++ {
		copy(out[y*rowLen:][:rowLen], pix[y*stride:])
	}
	return out
}

// SwapRB exchanges the first and third sample of every pixel in place.
func SwapRB(pix []byte, channels int) {
	for i := 0; i+2 < len(pix); i += channels {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}

// StripAlpha drops every fourth byte of packed 4-channel pixels.
func StripAlpha(pix []byte) []byte {
	out := make([]byte, len(pix)/4*3)
	for i, j := 0, 0; i+3 < len(pix); i, j = i+4, j+3 {
		out[j], out[j+1], out[j+2] = pix[i], pix[i+1], pix[i+2]
	}
	return out
}

// HasAlpha reports whether the color model of img carries an alpha channel.
// This is a property of the layout, not of the pixel values.
func HasAlpha(img image.Image) bool {
	switch cm := img.ColorModel(); cm {
	case color.GrayModel, color.Gray16Model, color.YCbCrModel, color.CMYKModel:
		return false
	case color.RGBAModel, color.RGBA64Model:
		// Our own packed RGB containers report RGBAModel but have no alpha plane.
		switch img.(type) {
		case *RGB, *BGR:
			return false
		}
		return true
	case color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model, color.NYCbCrAModel:
		return true
	default:
		if p, ok := cm.(color.Palette); ok {
			for _, c := range p {
				if _, _, _, a := c.RGBA(); a != 0xffff {
					return true
				}
			}
			return false
		}
		return true
	}
}

// ToNRGBA converts img into a zero-origin non-premultiplied RGBA image.
func ToNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst
}

// ToRGB converts img into a zero-origin packed RGB image, dropping alpha.
func ToRGB(img image.Image) *RGB {
	if m, ok := img.(*RGB); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	b := img.Bounds()
	dst := NewRGB(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		dst.Pix = StripAlpha(Pack(src.Pix, src.Stride, 4*b.Dx(), b.Dy()))
		return dst
	}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst
}
