package util

import (
	"image"
	"image/color"
)

// RGB is a packed 8-bit image, 3 bytes per pixel in R, G, B order.
// Go's image package has no alpha-less RGB container, which libwebp
// decodes to and encodes from natively.
type RGB struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// BGR is RGB with the red and blue samples swapped.
type BGR struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// BGRA is a packed non-premultiplied 8-bit image in B, G, R, A order.
type BGRA struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func NewRGB(r image.Rectangle) *RGB {
	w, h := r.Dx(), r.Dy()
	return &RGB{Pix: make([]uint8, 3*w*h), Stride: 3 * w, Rect: r}
}

func NewBGR(r image.Rectangle) *BGR {
	w, h := r.Dx(), r.Dy()
	return &BGR{Pix: make([]uint8, 3*w*h), Stride: 3 * w, Rect: r}
}

func NewBGRA(r image.Rectangle) *BGRA {
	w, h := r.Dx(), r.Dy()
	return &BGRA{Pix: make([]uint8, 4*w*h), Stride: 4 * w, Rect: r}
}

func (p *RGB) ColorModel() color.Model { return color.RGBAModel }
func (p *RGB) Bounds() image.Rectangle { return p.Rect }
func (p *RGB) Opaque() bool            { return true }

func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *RGB) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

func (p *RGB) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return color.RGBA{s[0], s[1], s[2], 0xff}
}

func (p *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	c1 := color.RGBAModel.Convert(c).(color.RGBA)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c1.R, c1.G, c1.B
}

func (p *BGR) ColorModel() color.Model { return color.RGBAModel }
func (p *BGR) Bounds() image.Rectangle { return p.Rect }
func (p *BGR) Opaque() bool            { return true }

func (p *BGR) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *BGR) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return color.RGBA{s[2], s[1], s[0], 0xff}
}

func (p *BGR) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	c1 := color.RGBAModel.Convert(c).(color.RGBA)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c1.B, c1.G, c1.R
}

func (p *BGRA) ColorModel() color.Model { return color.NRGBAModel }
func (p *BGRA) Bounds() image.Rectangle { return p.Rect }

func (p *BGRA) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *BGRA) At(x, y int) color.Color {
	return p.NRGBAAt(x, y)
}

func (p *BGRA) NRGBAAt(x, y int) color.NRGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.NRGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+4 : i+4]
	return color.NRGBA{s[2], s[1], s[0], s[3]}
}

func (p *BGRA) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	c1 := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := p.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = c1.B, c1.G, c1.R, c1.A
}

// Opaque scans the alpha samples.
func (p *BGRA) Opaque() bool {
	w, h := p.Rect.Dx(), p.Rect.Dy()
	for y := 0; y < h; y++ {
		row := p.Pix[y*p.Stride:][:4*w]
		for i := 3; i < len(row); i += 4 {
			if row[i] != 0xff {
				return false
			}
		}
	}
	return true
}
