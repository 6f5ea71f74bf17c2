package models

import (
	"time"

	"github.com/uptrace/bun"
)

// File records an uploaded banner image. Name keeps the original
// filename for display, Path is the stored filename on disk.
type File struct {
	bun.BaseModel `bun:"table:files"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Path      string    `bun:"path,notnull,unique" json:"path"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`

	URL string `bun:"-" json:"url,omitempty"`
}
