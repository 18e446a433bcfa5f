package webp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math/rand"
)

// fakeCodec understands a trivial container: "FAKE", width and height as
// little endian uint32, then width*height RGBA pixels.
type fakeCodec struct {
	probes int

	// last encode call
	layout Layout
	opt    Options
	stride int
	pix    []byte
}

var errFakeCodec = errors.New("fake: bad input")

const fakeHeaderSize = 12

func fakeImage(w, h int, rgba []byte) []byte {
	out := make([]byte, fakeHeaderSize, fakeHeaderSize+len(rgba))
	copy(out, "FAKE")
	binary.LittleEndian.PutUint32(out[4:], uint32(w))
	binary.LittleEndian.PutUint32(out[8:], uint32(h))
	return append(out, rgba...)
}

func (f *fakeCodec) probe(data []byte) (int, int, error) {
	f.probes++
	if len(data) < fakeHeaderSize || string(data[:4]) != "FAKE" {
		return 0, 0, errFakeCodec
	}
	return int(binary.LittleEndian.Uint32(data[4:])), int(binary.LittleEndian.Uint32(data[8:])), nil
}

func (f *fakeCodec) decode(data []byte, l Layout) (int, int, []byte, error) {
	w, h, err := f.probe(data)
	if err != nil {
		return 0, 0, nil, err
	}
	body := data[fakeHeaderSize:]
	if len(body) != 4*w*h {
		return 0, 0, nil, errFakeCodec
	}
	pix := make([]byte, len(body))
	copy(pix, body)
	if l == RGB {
		out := make([]byte, 0, 3*w*h)
		for i := 0; i < len(pix); i += 4 {
			out = append(out, pix[i], pix[i+1], pix[i+2])
		}
		pix = out
	}
	return w, h, pix, nil
}

func (f *fakeCodec) encode(pix []byte, width, height, stride int, l Layout, o Options) ([]byte, error) {
	f.layout, f.opt, f.stride = l, o, stride
	f.pix = append([]byte(nil), pix...)
	if o.Quality < 0 || o.Quality > 1 {
		return nil, errFakeCodec
	}
	rgba := pix
	if l == RGB {
		rgba = make([]byte, 0, 4*width*height)
		for i := 0; i < len(pix); i += 3 {
			rgba = append(rgba, pix[i], pix[i+1], pix[i+2], 0xff)
		}
	}
	return fakeImage(width, height, rgba), nil
}

// chunkReader returns at most n bytes per Read.
type chunkReader struct {
	r io.Reader
	n int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(p) > c.n {
		p = p[:c.n]
	}
	return c.r.Read(p)
}

// randomReader returns a random number of bytes, at least one, per Read.
type randomReader struct {
	r   io.Reader
	rnd *rand.Rand
}

func (r *randomReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return r.r.Read(p[:1+r.rnd.Intn(len(p))])
}

// countingReader counts calls to Read.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

// emptyReader never makes progress.
type emptyReader struct{}

func (emptyReader) Read(p []byte) (int, error) { return 0, nil }

type failWriter struct{ err error }

func (f failWriter) Write(p []byte) (int, error) { return 0, f.err }

func newFakeReader(src []byte, l Layout) (*reader, *fakeCodec) {
	fc := &fakeCodec{}
	return &reader{src: bytes.NewReader(src), layout: l, codec: fc}, fc
}

func gradient(w, h, channels int) []byte {
	pix := make([]byte, w*h*channels)
	for i := range pix {
		pix[i] = byte(i*7 + i/channels)
	}
	return pix
}
