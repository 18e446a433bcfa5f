//go:build !cgo

package webp

import (
	"bytes"

	"github.com/ezdiy/image-webp/util"
	"github.com/getlantern/errors"
	xwebp "golang.org/x/image/webp"
)

// generic decodes with the pure Go decoder from x/image. It cannot encode.
type generic struct{}

var native codec = generic{}

func (generic) probe(data []byte) (int, int, error) {
	cfg, err := xwebp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

func (generic) decode(data []byte, l Layout) (int, int, []byte, error) {
	m, err := xwebp.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, nil, err
	}
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	n := util.ToNRGBA(m)
	pix := util.Pack(n.Pix, n.Stride, 4*w, h)
	if l == RGB {
		pix = util.StripAlpha(pix)
	}
	return w, h, pix, nil
}

func (generic) encode(pix []byte, width, height, stride int, l Layout, o Options) ([]byte, error) {
	return nil, errNoEncoder
}

var errNoEncoder = errors.New("webp: encoding needs libwebp, build with cgo enabled")
