package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"meetapp/internal/helpers"
	"meetapp/internal/models"
)

type FileService struct {
	fileRepo  models.FileRepo
	uploadDir string
	now       func() time.Time
}

func NewFileService(fileRepo models.FileRepo, uploadDir string) *FileService {
	return &FileService{
		fileRepo:  fileRepo,
		uploadDir: uploadDir,
		now:       time.Now,
	}
}

// Store writes the upload to the upload dir under a generated name and
// records it. The file on disk is removed again if the insert fails.
func (fs *FileService) Store(ctx context.Context, header *multipart.FileHeader) (*models.File, error) {
	if err := os.MkdirAll(fs.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload dir: %w", err)
	}

	storedName := helpers.UploadFilename(header.Filename)
	dst := filepath.Join(fs.uploadDir, storedName)

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("failed to write %s: %w", dst, err)
	}

	file := &models.File{
		Name:      header.Filename,
		Path:      storedName,
		CreatedAt: fs.now(),
	}

	created, err := fs.fileRepo.CreateFile(ctx, file)
	if err != nil {
		os.Remove(dst)
		return nil, err
	}

	created.URL = "/files/" + storedName
	return created, nil
}
