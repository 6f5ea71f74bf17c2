package models

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetapp/internal/connect"
)

func newTestRepo(t *testing.T) *BunRepo {
	t.Helper()
	db, err := connect.OpenDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { connect.CloseDatabase(db) })
	require.NoError(t, CreateSchema(context.Background(), db))
	return BunNewRepo(db)
}

func seedMeetup(t *testing.T, repo *BunRepo, date time.Time) (*User, *File, *Meetup) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	user, err := repo.CreateUser(ctx, &User{
		Name: "Ada", Email: "ada-" + date.Format("20060102150405.000000000") + "@example.com",
		PasswordHash: "x", CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	banner, err := repo.CreateFile(ctx, &File{
		Name: "banner.png", Path: "stored-" + date.Format("20060102150405.000000000") + ".png", CreatedAt: now,
	})
	require.NoError(t, err)

	meetup, err := repo.CreateMeetup(ctx, &Meetup{
		Title: "Launch", Description: "d", Location: "HQ",
		Date: date, BannerID: banner.ID, UserID: user.ID,
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	require.NotZero(t, meetup.ID)
	return user, banner, meetup
}

func TestListMeetupsJoinsOwnerAndBanner(t *testing.T) {
	repo := newTestRepo(t)
	date := time.Now().UTC().Add(24 * time.Hour)
	user, banner, _ := seedMeetup(t, repo, date)

	listed, err := repo.ListMeetups(context.Background(), nil, nil, 10, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NotNil(t, listed[0].User)
	assert.Equal(t, user.ID, listed[0].User.ID)
	assert.Equal(t, user.Email, listed[0].User.Email)

	require.NotNil(t, listed[0].Banner)
	assert.Equal(t, banner.ID, listed[0].Banner.ID)
	assert.Equal(t, "banner.png", listed[0].Banner.Name)
	assert.Equal(t, banner.Path, listed[0].Banner.Path)
}

func TestListMeetupsDateWindow(t *testing.T) {
	repo := newTestRepo(t)
	base := time.Now().UTC().Add(24 * time.Hour)
	seedMeetup(t, repo, base)
	seedMeetup(t, repo, base.Add(time.Hour))
	seedMeetup(t, repo, base.Add(72*time.Hour))

	from, to := base.Add(-time.Minute), base.Add(2*time.Hour)
	listed, err := repo.ListMeetups(context.Background(), &from, &to, 10, 0)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestFindMeetupAtOrAfter(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC()
	_, _, upcoming := seedMeetup(t, repo, now.Add(24*time.Hour))
	_, _, elapsed := seedMeetup(t, repo, now.Add(-24*time.Hour))

	found, err := repo.FindMeetupAtOrAfter(context.Background(), upcoming.ID, now)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, upcoming.ID, found.ID)

	// elapsed and absent meetups look identical to the caller
	found, err = repo.FindMeetupAtOrAfter(context.Background(), elapsed.ID, now)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = repo.FindMeetupAtOrAfter(context.Background(), 99999, now)
	require.NoError(t, err)
	assert.Nil(t, found)
}
