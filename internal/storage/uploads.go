package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxUploadBytes caps uploaded files at 25MB.
const MaxUploadBytes = 25 * 1024 * 1024

// UploadKind distinguishes audio recordings from medical images.
type UploadKind string

const (
	UploadAudio UploadKind = "audio"
	UploadImage UploadKind = "image"
)

// iPhone records M4A by default; the rest cover common recorders and
// third-party apps.
var allowedExts = map[UploadKind][]string{
	UploadAudio: {".m4a", ".mp3", ".wav", ".aac", ".ogg"},
	UploadImage: {".jpg", ".jpeg", ".png"},
}

// SaveUpload validates and persists an uploaded file under dir, returning
// the stored path.
func SaveUpload(file *multipart.FileHeader, kind UploadKind, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extAllowed(kind, ext) {
		return "", fmt.Errorf("unsupported %s format %q. Supported: %s",
			kind, ext, strings.Join(allowedExts[kind], ", "))
	}
	if file.Size > MaxUploadBytes {
		return "", fmt.Errorf("file size exceeds 25MB limit")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	dst := filepath.Join(dir, fmt.Sprintf("%s_%d%s", kind, time.Now().UnixNano(), ext))

	if err := saveMultipartFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return dst, nil
}

func extAllowed(kind UploadKind, ext string) bool {
	for _, allowed := range allowedExts[kind] {
		if ext == allowed {
			return true
		}
	}
	return false
}

func saveMultipartFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.ReadFrom(src)
	return err
}
