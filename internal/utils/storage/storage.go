package storage

import (
	"errors"
	"mime/multipart"
)

// AllowImage is the accepted upload mime whitelist.
var AllowImage = []string{"image/jpeg", "image/png", "image/gif"}

var (
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrFileTooLarge       = errors.New("file size exceeds the limit")
)

const MaxImageSize = 20 * 1024 * 1024

// ImageStorage persists an uploaded image and hands back the reference that
// goes into recipe payloads: a static-served relative path for the local
// backend, a public object link for S3.
type ImageStorage interface {
	SaveImage(file *multipart.FileHeader, folder string) (string, error)
	DeleteImage(ref string) error
}

func checkUpload(file *multipart.FileHeader, allowed ...string) error {
	if file.Size > MaxImageSize {
		return ErrFileTooLarge
	}
	contentType := file.Header.Get("Content-Type")
	for _, allow := range allowed {
		if contentType == allow {
			return nil
		}
	}
	return ErrFileTypeNotAllowed
}
