package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage writes uploads under <baseDir>/<folder> and returns the
// relative URL path the static file server exposes them on.
type localStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) ImageStorage {
	return &localStorage{baseDir: baseDir}
}

func (s *localStorage) SaveImage(file *multipart.FileHeader, folder string) (string, error) {
	if err := checkUpload(file, AllowImage...); err != nil {
		return "", err
	}

	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/" + folder + "/" + fileName, nil
}

func (s *localStorage) DeleteImage(ref string) error {
	ref = strings.TrimPrefix(ref, "/")
	if ref == "" {
		return nil
	}
	return os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(ref)))
}
