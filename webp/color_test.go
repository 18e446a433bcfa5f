package webp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		l        Layout
		channels int
		ct       ColorType
		native   Layout
	}{
		{RGB, 3, RGB8, RGB},
		{RGBA, 4, RGBA8, RGBA},
		{BGR, 3, BGR8, RGB},
		{BGRA, 4, BGRA8, RGBA},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.channels, tt.l.Channels(), tt.l.String())
		assert.Equal(t, tt.ct, tt.l.ColorType(), tt.l.String())
		assert.Equal(t, tt.native, tt.l.native(), tt.l.String())
		assert.Equal(t, tt.ct.HasAlpha(), tt.channels == 4)

		l, ok := tt.ct.layout()
		assert.True(t, ok)
		assert.Equal(t, tt.l, l)
	}
	assert.Equal(t, Unknown, Layout(9).ColorType())
	assert.Equal(t, "Unknown", Layout(9).String())
}

func TestColorType(t *testing.T) {
	assert.Equal(t, "Rgb8", RGB8.String())
	assert.Equal(t, "Bgra8", BGRA8.String())
	assert.Equal(t, "La16", LA16.String())
	assert.Equal(t, "Unknown", ColorType(99).String())

	assert.True(t, LA8.HasAlpha())
	assert.False(t, L16.HasAlpha())
	assert.Equal(t, 2, LA16.Channels())
	assert.Equal(t, 0, Unknown.Channels())

	for _, ct := range []ColorType{Unknown, L8, LA8, L16, LA16, RGB16, RGBA16} {
		_, ok := ct.layout()
		assert.False(t, ok, ct.String())
	}
}

func TestErrorMessage(t *testing.T) {
	err := unsupportedError("write image", L16)
	assert.Contains(t, err.Error(), "webp write image: unsupported (L16)")

	err = ioError("read header", nil)
	assert.Equal(t, "webp read header: io", err.Error())
	assert.Equal(t, "encoding", KindEncoding.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
