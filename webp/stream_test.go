package webp

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelReader(t *testing.T) {
	pix := gradient(13, 7, 4)
	require.NoError(t, iotest.TestReader(newPixelReader(&decoded{pix: pix}), pix))
}

func TestPixelReaderSmallReads(t *testing.T) {
	pix := gradient(5, 3, 3)
	pr := newPixelReader(&decoded{width: 5, height: 3, stride: 15, pix: pix})

	var got []byte
	buf := make([]byte, 4)
	for {
		n, err := pr.Read(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			assert.Zero(t, n)
			break
		}
		require.NoError(t, err)
		require.LessOrEqual(t, n, len(buf))
	}
	assert.Equal(t, pix, got)
	assert.Zero(t, pr.Len())

	n, err := pr.Read(buf)
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)

	n, err = pr.Read(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestPixelReaderWriteTo(t *testing.T) {
	pix := gradient(3, 3, 4)
	pr := newPixelReader(&decoded{pix: pix})

	head := make([]byte, 5)
	_, err := io.ReadFull(pr, head)
	require.NoError(t, err)
	assert.Equal(t, len(pix)-5, pr.Len())

	var out bytes.Buffer
	n, err := pr.WriteTo(&out)
	require.NoError(t, err)
	assert.EqualValues(t, len(pix)-5, n)
	assert.Equal(t, pix, append(head, out.Bytes()...))
}
