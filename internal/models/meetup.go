package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Meetup is a scheduled event owned by the user that created it. The
// owner relation is loaded for listings so responses carry the
// organizer's public profile.
type Meetup struct {
	bun.BaseModel `bun:"table:meetups"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Title       string    `bun:"title,notnull" json:"title"`
	Description string    `bun:"description,notnull" json:"description"`
	Location    string    `bun:"location,notnull" json:"location"`
	Date        time.Time `bun:"date,notnull" json:"date"`
	BannerID    int64     `bun:"banner_id,notnull" json:"banner_id"`
	UserID      int64     `bun:"user_id,notnull" json:"user_id"`
	CreatedAt   time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at" json:"updated_at"`

	User   *User `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	Banner *File `bun:"rel:belongs-to,join:banner_id=id" json:"banner,omitempty"`
}
