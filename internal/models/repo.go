package models

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/uptrace/bun"
)

var Validate = validator.New()

// MeetupRepo is the persistence gateway for meetups. FindMeetupAtOrAfter
// returns (nil, nil) when no row matches the id with date >= cutoff, so
// an absent meetup and an already elapsed one surface identically.
type MeetupRepo interface {
	ListMeetups(ctx context.Context, from, to *time.Time, limit, offset int) ([]*Meetup, error)
	FindMeetupAtOrAfter(ctx context.Context, id int64, cutoff time.Time) (*Meetup, error)
	CreateMeetup(ctx context.Context, meetup *Meetup) (*Meetup, error)
	UpdateMeetup(ctx context.Context, meetup *Meetup) (*Meetup, error)
	DeleteMeetup(ctx context.Context, id int64) error
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUserByID(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, user *User) (*User, error)
}

type FileRepo interface {
	CreateFile(ctx context.Context, file *File) (*File, error)
	FindFileByID(ctx context.Context, id int64) (*File, error)
}

type BunRepo struct {
	db bun.IDB
}

func BunNewRepo(db bun.IDB) *BunRepo {
	return &BunRepo{
		db: db,
	}
}
