package llm

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"log"
	"os"

	"golang.org/x/image/draw"
)

const (
	// DefaultMaxImageSize is the longest side an encoded image may have.
	DefaultMaxImageSize = 256

	jpegQuality = 60
)

// EncodeImage reads an image file and returns it as a base64 JPEG,
// downscaled so its longest side is at most maxSize. If the file cannot be
// decoded as an image, the raw bytes are encoded as-is and the provider is
// left to reject them.
func EncodeImage(path string, maxSize int) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image file: %w", err)
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxImageSize
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Printf("[Image] Decode failed (%v), encoding raw bytes", err)
		return base64.StdEncoding.EncodeToString(raw), nil
	}

	img = scaleDown(img, maxSize)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func scaleDown(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxSize {
		return img
	}

	scale := float64(maxSize) / float64(longest)
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
