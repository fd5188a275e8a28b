package llm

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func writeTestJPEG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	path := filepath.Join(t.TempDir(), "test.jpg")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}
	return path
}

func decodeB64JPEG(t *testing.T, b64 string) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("result is not a JPEG: %v", err)
	}
	return img
}

func TestEncodeImageDownscalesLargeImages(t *testing.T) {
	path := writeTestJPEG(t, 1024, 512)

	b64, err := EncodeImage(path, 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img := decodeB64JPEG(t, b64)
	b := img.Bounds()
	if b.Dx() > 256 || b.Dy() > 256 {
		t.Fatalf("expected longest side <= 256, got %dx%d", b.Dx(), b.Dy())
	}
	if b.Dx() != 256 || b.Dy() != 128 {
		t.Fatalf("expected aspect-preserving 256x128, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestEncodeImageKeepsSmallImages(t *testing.T) {
	path := writeTestJPEG(t, 100, 80)

	b64, err := EncodeImage(path, 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img := decodeB64JPEG(t, b64)
	b := img.Bounds()
	if b.Dx() != 100 || b.Dy() != 80 {
		t.Fatalf("expected unchanged 100x80, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestEncodeImageFallsBackToRawBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.bin")
	if err := os.WriteFile(path, []byte("definitely not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	b64, err := EncodeImage(path, 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	if string(raw) != "definitely not an image" {
		t.Fatal("expected raw bytes passthrough for undecodable file")
	}
}

func TestEncodeImageMissingFile(t *testing.T) {
	if _, err := EncodeImage(filepath.Join(t.TempDir(), "missing.jpg"), 256); err == nil {
		t.Fatal("expected error for missing file")
	}
}
