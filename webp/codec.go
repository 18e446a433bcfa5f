package webp

// codec is the native WebP implementation the adapter drives.
// Layouts passed in are always RGB or RGBA; red/blue swapping happens above.
type codec interface {
	// probe parses just enough of data to report the image dimensions.
	// It fails on truncated input as well as on garbage.
	probe(data []byte) (width, height int, err error)

	// decode the whole payload into tightly packed pixels owned by the caller.
	decode(data []byte, l Layout) (width, height int, pix []byte, err error)

	// encode tightly packed pixels, lossless or lossy as o says.
	encode(pix []byte, width, height, stride int, l Layout, o Options) ([]byte, error)
}
