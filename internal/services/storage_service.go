package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/worknest/staff/internal/constants"
)

var (
	ErrInvalidPhotoType = errors.New("invalid file type, allowed: jpg, jpeg, png, gif, webp")
	ErrPhotoTooLarge    = errors.New("file too large, maximum size is 5MB")
)

// AllowedImageExtensions lists valid image extensions
var AllowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// StorageService keeps uploaded media on the local filesystem under mediaRoot.
type StorageService struct {
	mediaRoot string
}

func NewStorageService(mediaRoot string) (*StorageService, error) {
	if err := os.MkdirAll(filepath.Join(mediaRoot, constants.EmployeePhotoDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &StorageService{mediaRoot: mediaRoot}, nil
}

// MediaRoot is the directory served under /media/.
func (s *StorageService) MediaRoot() string {
	return s.mediaRoot
}

// SaveEmployeePhoto stores an uploaded photo and returns its path relative to the media root.
func (s *StorageService) SaveEmployeePhoto(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageExtensions[ext] {
		return "", ErrInvalidPhotoType
	}
	if file.Size > constants.MaxPhotoSize {
		return "", ErrPhotoTooLarge
	}

	relativePath := filepath.ToSlash(filepath.Join(constants.EmployeePhotoDir, uuid.New().String()+ext))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.mediaRoot, filepath.FromSlash(relativePath)))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return relativePath, nil
}

// Remove deletes a previously stored file. The shared placeholder is never removed.
func (s *StorageService) Remove(relativePath string) error {
	if relativePath == "" || relativePath == constants.DefaultEmployeePhoto {
		return nil
	}
	err := os.Remove(filepath.Join(s.mediaRoot, filepath.FromSlash(relativePath)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
