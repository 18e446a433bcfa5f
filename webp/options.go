package webp

// DefaultQuality is the lossy quality factor used when no options are given.
const DefaultQuality = 0.75

type Options struct {
	Lossless bool    // Encode losslessly, Quality is ignored.
	Quality  float32 // Lossy quality factor, 0.0 - 1.0. Not validated here, libwebp decides.
}

var DefaultOptions = Options{
	Quality: DefaultQuality,
}

// Lossy returns options for lossy encoding at quality q.
func Lossy(q float32) *Options {
	return &Options{Quality: q}
}

// Lossless returns options for lossless encoding.
func Lossless() *Options {
	return &Options{Lossless: true}
}
