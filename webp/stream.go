package webp

import (
	"io"
)

// pixelReader reads out the pixels of a decoded image, row after row with no padding.
// It can only be built from a decoded image, so there is nothing to check on Read.
type pixelReader struct {
	pix []byte
	off int
}

func newPixelReader(d *decoded) *pixelReader {
	return &pixelReader{pix: d.pix}
}

func (p *pixelReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	if p.off >= len(p.pix) {
		return 0, io.EOF
	}
	n := copy(b, p.pix[p.off:])
	p.off += n
	return n, nil
}

// Len is the number of bytes not yet read.
func (p *pixelReader) Len() int {
	return len(p.pix) - p.off
}

func (p *pixelReader) WriteTo(w io.Writer) (int64, error) {
	if p.off >= len(p.pix) {
		return 0, nil
	}
	n, err := w.Write(p.pix[p.off:])
	p.off += n
	if err == nil && p.off < len(p.pix) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}
