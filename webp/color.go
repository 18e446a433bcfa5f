package webp

import (
	"image/color"
)

// Layout is the byte order and channel count of decoded or encoded pixels.
type Layout int

const (
	RGB Layout = iota
	RGBA
	BGR
	BGRA
)

func (l Layout) String() string {
	switch l {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case BGR:
		return "BGR"
	case BGRA:
		return "BGRA"
	}
	return "Unknown"
}

// Channels is the number of bytes per pixel.
func (l Layout) Channels() int {
	if l == RGBA || l == BGRA {
		return 4
	}
	return 3
}

func (l Layout) ColorType() ColorType {
	switch l {
	case RGB:
		return RGB8
	case RGBA:
		return RGBA8
	case BGR:
		return BGR8
	case BGRA:
		return BGRA8
	}
	return Unknown
}

// ColorModel of the image produced by Decoder.Image for this layout.
func (l Layout) ColorModel() color.Model {
	if l.Channels() == 4 {
		return color.NRGBAModel
	}
	return color.RGBAModel
}

// native is the layout handed to the codec: red/blue swapped layouts
// are decoded and encoded through their RGB counterpart.
func (l Layout) native() Layout {
	switch l {
	case BGR:
		return RGB
	case BGRA:
		return RGBA
	}
	return l
}

func (l Layout) swapped() bool { return l == BGR || l == BGRA }

// ColorType tags a raw pixel buffer passed to Encoder.WriteImage.
type ColorType int

const (
	Unknown ColorType = iota
	L8
	LA8
	RGB8
	RGBA8
	L16
	LA16
	RGB16
	RGBA16
	BGR8
	BGRA8
)

var colorTypeNames = map[ColorType]string{
	L8:     "L8",
	LA8:    "La8",
	RGB8:   "Rgb8",
	RGBA8:  "Rgba8",
	L16:    "L16",
	LA16:   "La16",
	RGB16:  "Rgb16",
	RGBA16: "Rgba16",
	BGR8:   "Bgr8",
	BGRA8:  "Bgra8",
}

func (c ColorType) String() string {
	if s, ok := colorTypeNames[c]; ok {
		return s
	}
	return "Unknown"
}

func (c ColorType) HasAlpha() bool {
	switch c {
	case LA8, RGBA8, LA16, RGBA16, BGRA8:
		return true
	}
	return false
}

// Channels is the number of samples per pixel, 0 for Unknown.
func (c ColorType) Channels() int {
	switch c {
	case L8, L16:
		return 1
	case LA8, LA16:
		return 2
	case RGB8, RGB16, BGR8:
		return 3
	case RGBA8, RGBA16, BGRA8:
		return 4
	}
	return 0
}

// layout maps the four natively encodable color types onto a Layout.
func (c ColorType) layout() (Layout, bool) {
	switch c {
	case RGB8:
		return RGB, true
	case RGBA8:
		return RGBA, true
	case BGR8:
		return BGR, true
	case BGRA8:
		return BGRA, true
	}
	return 0, false
}
