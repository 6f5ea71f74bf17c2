package helpers

import (
	"path/filepath"

	"github.com/google/uuid"
)

// UploadFilename builds the stored name for an uploaded file: a fresh
// uuid plus the original extension, so two uploads of the same file
// never collide on disk.
func UploadFilename(original string) string {
	return uuid.New().String() + filepath.Ext(original)
}
