// Package webp adapts libwebp to Go's image package.
//
// Decoding reads the stream only as far as needed to learn the image
// dimensions, then buffers the rest and decodes it in one call to the
// native codec. Encoding accepts any image.Image: RGB, RGBA, BGR and BGRA
// pixels go to libwebp as they are, everything else is converted first.
//
// Without cgo the package decodes with golang.org/x/image/webp and
// cannot encode.
//
// Decode and DecodeConfig are not registered with the image package; the
// codec libraries underneath register "webp" first. Call them directly to
// get an *image.NRGBA.
package webp

import (
	"bytes"
	"image"
	"io"

	"github.com/ezdiy/image-webp/util"
)

// Decode reads a WebP image from r as *image.NRGBA.
func Decode(r io.Reader) (image.Image, error) {
	return Load(r)
}

// DecodeConfig reads only as much of r as needed for the dimensions.
func DecodeConfig(r io.Reader) (image.Config, error) {
	d, err := NewDecoder(r, RGBA)
	if err != nil {
		return image.Config{}, err
	}
	return d.Config(), nil
}

// Load decodes any WebP image; alpha is always kept, so the result is *image.NRGBA.
func Load(r io.Reader) (image.Image, error) {
	return LoadRGBA(r)
}

func LoadRGBA(r io.Reader) (*image.NRGBA, error) {
	m, err := load(r, RGBA)
	if err != nil {
		return nil, err
	}
	return m.(*image.NRGBA), nil
}

// LoadRGB decodes r dropping any alpha channel.
func LoadRGB(r io.Reader) (*util.RGB, error) {
	m, err := load(r, RGB)
	if err != nil {
		return nil, err
	}
	return m.(*util.RGB), nil
}

func LoadFromMemory(buf []byte) (image.Image, error) {
	return Load(bytes.NewReader(buf))
}

func LoadRGBAFromMemory(buf []byte) (*image.NRGBA, error) {
	return LoadRGBA(bytes.NewReader(buf))
}

func LoadRGBFromMemory(buf []byte) (*util.RGB, error) {
	return LoadRGB(bytes.NewReader(buf))
}

func load(r io.Reader, l Layout) (image.Image, error) {
	d, err := NewDecoder(r, l)
	if err != nil {
		return nil, err
	}
	return d.Image()
}
