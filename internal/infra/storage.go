package infra

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore saves uploaded images to local disk and produces the public URL
// under which the router serves them (/uploads/...).
type ImageStore struct {
	baseDir   string
	publicURL string
}

func NewImageStore(storagePath, publicBaseURL string) *ImageStore {
	return &ImageStore{
		baseDir:   filepath.Join(storagePath, "uploads"),
		publicURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Dir returns the directory served as /uploads by the router.
func (s *ImageStore) Dir() string {
	return s.baseDir
}

var extensionesPermitidas = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Guardar writes one multipart file under a random name and returns its
// public URL. Rejects anything that is not an image by extension.
func (s *ImageStore) Guardar(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !extensionesPermitidas[ext] {
		return "", fmt.Errorf("storage: extensión no permitida: %s", ext)
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("storage: open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dstPath := filepath.Join(s.baseDir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("storage: write file: %w", err)
	}

	return s.publicURL + "/uploads/" + name, nil
}
