package services

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/worknest/staff/internal/constants"
	"github.com/worknest/staff/internal/models"
	"github.com/worknest/staff/internal/repository"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(int64(constants.MaxPhotoSize)*2))

	return req.MultipartForm.File["photo"][0]
}

func TestStorageService_SaveEmployeePhoto(t *testing.T) {
	root := t.TempDir()
	storage, err := NewStorageService(root)
	require.NoError(t, err)

	path, err := storage.SaveEmployeePhoto(fileHeader(t, "me.PNG", []byte("png-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "employees/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	stored, err := os.ReadFile(filepath.Join(root, path))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))

	require.NoError(t, storage.Remove(path))
	_, err = os.Stat(filepath.Join(root, path))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.NoError(t, storage.Remove(constants.DefaultEmployeePhoto))
}

func TestStorageService_Rejects(t *testing.T) {
	storage, err := NewStorageService(t.TempDir())
	require.NoError(t, err)

	_, err = storage.SaveEmployeePhoto(fileHeader(t, "cv.pdf", []byte("%PDF")))
	assert.True(t, errors.Is(err, ErrInvalidPhotoType))

	big := bytes.Repeat([]byte("a"), constants.MaxPhotoSize+1)
	_, err = storage.SaveEmployeePhoto(fileHeader(t, "big.jpg", big))
	assert.True(t, errors.Is(err, ErrPhotoTooLarge))
}

type EmployeeServiceTestSuite struct {
	ServiceTestSuite
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}

func (s *EmployeeServiceTestSuite) TestUploadPhoto() {
	root := s.T().TempDir()
	storage, err := NewStorageService(root)
	s.Require().NoError(err)
	service := NewEmployeeService(repository.NewGormRepository[models.Employee](s.db, ""), storage)

	employee := s.createEmployee("E1")

	updated, err := service.UploadPhoto(employee.ID, fileHeader(s.T(), "me.jpg", []byte("jpg")))
	s.Require().NoError(err)
	s.NotEqual(constants.DefaultEmployeePhoto, updated.Photo)

	var stored models.Employee
	s.Require().NoError(s.db.First(&stored, employee.ID).Error)
	s.Equal(updated.Photo, stored.Photo)

	replaced, err := service.UploadPhoto(employee.ID, fileHeader(s.T(), "me2.jpg", []byte("jpg2")))
	s.Require().NoError(err)
	_, err = os.Stat(filepath.Join(root, updated.Photo))
	s.True(errors.Is(err, os.ErrNotExist))
	_, err = os.Stat(filepath.Join(root, replaced.Photo))
	s.NoError(err)

	_, err = service.UploadPhoto(999, fileHeader(s.T(), "me.jpg", []byte("jpg")))
	s.True(errors.Is(err, ErrNotFound))
}
