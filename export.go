package backdrop

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
)

// MaxEncodedBytes is the default byte budget for bounded JPEG export.
const MaxEncodedBytes = 1000 * 1024

// jpeg quality back-off bounds for EncodeJPEGBounded.
const (
	jpegMaxQuality  = 100
	jpegMinQuality  = 10
	jpegQualityStep = 10
)

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// EncodeJPEGBounded writes img to w as JPEG, backing the quality off
// from 100 in steps of 10 until the encoded size fits maxBytes or the
// quality floor of 10 is reached. The floor result is written even if
// it still exceeds the budget. maxBytes <= 0 uses MaxEncodedBytes.
//
// Returns the quality actually used.
func EncodeJPEGBounded(w io.Writer, img image.Image, maxBytes int) (int, error) {
	if maxBytes <= 0 {
		maxBytes = MaxEncodedBytes
	}

	var buf bytes.Buffer
	quality := jpegMaxQuality
	for {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return 0, err
		}
		if buf.Len() <= maxBytes || quality <= jpegMinQuality {
			break
		}
		quality -= jpegQualityStep
	}

	if buf.Len() > maxBytes {
		Logger().Warn("bounded JPEG export exceeds budget at quality floor",
			"bytes", buf.Len(), "budget", maxBytes, "quality", quality)
	}

	_, err := w.Write(buf.Bytes())
	return quality, err
}
