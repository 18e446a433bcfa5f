package main

import (
	"flag"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezdiy/image-webp/webp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type encFun func(w io.Writer, i image.Image) error

const fmts = "[jpg|png|webp|tiff|bmp|gif]"

var (
	quality  = flag.Float64("q", webp.DefaultQuality, "webp quality factor, 0.0 - 1.0")
	lossless = flag.Bool("lossless", false, "encode webp losslessly")
	verbose  = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: imgconv [flags] input.%s output.%s\n", fmts, fmts)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	opt := webp.Lossy(float32(*quality))
	if *lossless {
		opt = webp.Lossless()
	}
	encTab := map[string]encFun{
		".png":  png.Encode,
		".bmp":  bmp.Encode,
		".gif":  func(w io.Writer, i image.Image) error { return gif.Encode(w, i, nil) },
		".jpg":  func(w io.Writer, i image.Image) error { return jpeg.Encode(w, i, nil) },
		".jpeg": func(w io.Writer, i image.Image) error { return jpeg.Encode(w, i, nil) },
		".tiff": func(w io.Writer, i image.Image) error { return tiff.Encode(w, i, nil) },
		".webp": func(w io.Writer, i image.Image) error { return webp.Encode(w, i, opt) },
	}

	inName, outName := flag.Arg(0), flag.Arg(1)
	ofmt := strings.ToLower(filepath.Ext(outName))
	enc, ok := encTab[ofmt]
	if !ok {
		log.Fatalf("Unknown output format %s", ofmt)
	}

	img, inFmt, err := decodeFile(inName)
	if err != nil {
		log.WithError(err).Fatalf("Decoding %s", inName)
	}
	log.WithFields(log.Fields{
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
		"format": inFmt,
	}).Infof("Decoded %s", inName)

	out, err := os.Create(outName)
	if err != nil {
		log.WithError(err).Fatal("Creating output")
	}
	log.Infof("Encoding into %s", outName)
	if err := enc(out, img); err != nil {
		_ = out.Close()
		log.WithError(err).Fatalf("Encoding %s", outName)
	}
	if err := out.Close(); err != nil {
		log.WithError(err).Fatal("Closing output")
	}
	log.Info("Done")
}

// decodeFile sends .webp inputs through the webp adapter and everything
// else through the formats registered with the image package.
func decodeFile(name string) (image.Image, string, error) {
	in, err := os.Open(name)
	if err != nil {
		return nil, "", err
	}
	defer in.Close()
	if strings.EqualFold(filepath.Ext(name), ".webp") {
		img, err := webp.Decode(in)
		return img, "webp", err
	}
	return image.Decode(in)
}
