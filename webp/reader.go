package webp

import (
	"io"

	"github.com/ezdiy/image-webp/util"
	"github.com/sirupsen/logrus"
)

// ReadUnit is the number of bytes added to the probe buffer per header attempt.
const ReadUnit = 1024

// Same limit bufio uses before giving up on a reader that returns (0, nil).
const maxConsecutiveEmptyReads = 100

type state int

const (
	stateFresh state = iota
	stateProbing
	stateHeaderKnown
	stateDecoded
)

func (s state) String() string {
	switch s {
	case stateFresh:
		return "fresh"
	case stateProbing:
		return "probing"
	case stateHeaderKnown:
		return "header"
	case stateDecoded:
		return "decoded"
	}
	return "invalid"
}

// decoded holds the pixels of a fully decoded image.
type decoded struct {
	width, height int
	stride        int
	pix           []byte
}

// reader probes the header of a WebP stream incrementally, then buffers
// the rest of it and decodes everything in one go.
//
// The probe buffer doubles as the body buffer: bytes read while probing
// are never read again nor discarded.
type reader struct {
	src    io.Reader
	layout Layout
	codec  codec

	state state
	eof   bool
	buf   []byte

	width, height int
	data          *decoded
}

func newReader(src io.Reader, l Layout) *reader {
	return &reader{src: src, layout: l, codec: native}
}

// readInfo grows the buffer by ReadUnit until the codec recognizes a header.
// It fails with ErrInvalidHeader once the source is exhausted.
func (r *reader) readInfo() error {
	if r.state >= stateHeaderKnown {
		return nil
	}
	r.state = stateProbing
	for {
		n, err := r.fill(ReadUnit)
		if err != nil {
			return ioError("read header", err)
		}
		w, h, perr := r.codec.probe(r.buf)
		ok := perr == nil && w > 0 && h > 0
		log.WithFields(logrus.Fields{
			"read":     n,
			"buffered": len(r.buf),
			"ok":       ok,
		}).Debug("webp: header probe")
		if ok {
			r.width, r.height = w, h
			r.state = stateHeaderKnown
			return nil
		}
		if n == 0 && r.eof {
			return decodingError("read header", ErrInvalidHeader)
		}
	}
}

// readData buffers the remaining input and decodes it.
func (r *reader) readData() error {
	if err := r.readInfo(); err != nil {
		return err
	}
	if r.state == stateDecoded {
		return nil
	}
	if err := r.drain(); err != nil {
		return ioError("read data", err)
	}
	w, h, pix, err := r.codec.decode(r.buf, r.layout.native())
	if err != nil {
		log.WithError(err).Debug("webp: decode failed")
		return decodingError("read data", ErrInvalidData)
	}
	stride := w * r.layout.Channels()
	if w <= 0 || h <= 0 || len(pix) != stride*h {
		return decodingError("read data", ErrInvalidData)
	}
	if r.layout.swapped() {
		util.SwapRB(pix, r.layout.Channels())
	}
	r.data = &decoded{width: w, height: h, stride: stride, pix: pix}
	r.state = stateDecoded
	log.WithFields(logrus.Fields{
		"width":  w,
		"height": h,
		"layout": r.layout,
		"input":  len(r.buf),
	}).Debug("webp: decoded")
	return nil
}

// fill appends at most by bytes from the source to buf, reporting how many
// arrived. Reaching the end of the source is not an error, it sets eof.
func (r *reader) fill(by int) (int, error) {
	if r.eof {
		return 0, nil
	}
	old := len(r.buf)
	if cap(r.buf)-old < by {
		grow := by
		if old > grow {
			grow = old
		}
		nb := make([]byte, old, old+grow)
		copy(nb, r.buf)
		r.buf = nb
	}
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := r.src.Read(r.buf[old : old+by])
		r.buf = r.buf[:old+n]
		if err == io.EOF {
			r.eof = true
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if n > 0 {
			return n, nil
		}
	}
	return 0, io.ErrNoProgress
}

// drain reads the source to its end into buf.
func (r *reader) drain() error {
	for !r.eof {
		by := cap(r.buf) - len(r.buf)
		if by < ReadUnit {
			by = len(r.buf) + ReadUnit
		}
		if _, err := r.fill(by); err != nil {
			return err
		}
	}
	return nil
}
