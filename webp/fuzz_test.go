package webp

import (
	"bytes"
	"testing"
)

func FuzzDecode(f *testing.F) {
	f.Add([]byte("RIFF\x1a\x00\x00\x00WEBPVP8L\x0d\x00\x00\x00\x2f\x00\x00\x00\x10\x07\x10\x11\x11\x88\x88\xfe\x07\x00"))
	f.Add([]byte("RIFF\x00\x00\x00\x00WEBP"))
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, data []byte) {
		d, err := NewDecoder(bytes.NewReader(data), RGBA)
		if err != nil {
			return
		}
		w, h := d.Dimensions()
		if w <= 0 || h <= 0 {
			t.Fatalf("header accepted with %dx%d", w, h)
		}
		if w*h > 1<<22 {
			return
		}
		m, err := d.Image()
		if err != nil {
			return
		}
		if b := m.Bounds(); b.Dx() != w || b.Dy() != h {
			t.Fatalf("image is %v, header said %dx%d", b, w, h)
		}
	})
}

func FuzzDecodeConfig(f *testing.F) {
	f.Add([]byte("RIFF\x1a\x00\x00\x00WEBPVP8L\x0d\x00\x00\x00\x2f\x00\x00\x00\x10\x07\x10\x11\x11\x88\x88\xfe\x07\x00"))
	f.Fuzz(func(t *testing.T, data []byte) {
		cfg, err := DecodeConfig(bytes.NewReader(data))
		if err == nil && (cfg.Width <= 0 || cfg.Height <= 0) {
			t.Fatalf("config %+v", cfg)
		}
	})
}
