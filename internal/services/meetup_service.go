package services

import (
	"context"
	"fmt"
	"time"

	"meetapp/internal/dateutil"
	"meetapp/internal/models"
)

// Listings return fixed windows of ten meetups per page.
const MeetupPageSize = 10

// MeetupInput carries the full field set for create and update; both
// operations replace every mutable field.
type MeetupInput struct {
	Title       string    `validate:"required"`
	Description string    `validate:"required"`
	Location    string    `validate:"required"`
	Date        time.Time `validate:"required"`
	BannerID    int64     `validate:"required"`
}

type MeetupService struct {
	meetupRepo models.MeetupRepo
	now        func() time.Time
}

func NewMeetupService(meetupRepo models.MeetupRepo) *MeetupService {
	return &MeetupService{
		meetupRepo: meetupRepo,
		now:        time.Now,
	}
}

// List returns page (1-indexed) of meetups with owners joined. When
// filterDate is set, results are restricted to that calendar day. A
// page past the end of the result set is an empty slice, not an error.
func (ms *MeetupService) List(ctx context.Context, page int, filterDate *time.Time) ([]*models.Meetup, error) {
	if page < 1 {
		page = 1
	}

	var from, to *time.Time
	if filterDate != nil {
		start, end := dateutil.DayBounds(*filterDate)
		from, to = &start, &end
	}

	return ms.meetupRepo.ListMeetups(ctx, from, to, MeetupPageSize, (page-1)*MeetupPageSize)
}

func (ms *MeetupService) Create(ctx context.Context, input *MeetupInput, userID int64) (*models.Meetup, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	if check := dateutil.IsPast(input.Date, ms.now()); check.IsPast {
		return nil, models.ErrPastDate
	}

	now := ms.now()
	meetup := &models.Meetup{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Date:        input.Date,
		BannerID:    input.BannerID,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return ms.meetupRepo.CreateMeetup(ctx, meetup)
}

// Update replaces every mutable field of an existing meetup. The lookup
// requires date >= now, so an elapsed meetup reports not-found just
// like an absent one.
func (ms *MeetupService) Update(ctx context.Context, id int64, input *MeetupInput, userID int64) (*models.Meetup, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	existing, err := ms.meetupRepo.FindMeetupAtOrAfter(ctx, id, ms.now())
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.ErrMeetupNotFound
	}

	if existing.UserID != userID {
		return nil, models.ErrNotOwner
	}

	if check := dateutil.IsPast(input.Date, ms.now()); check.IsPast {
		return nil, models.ErrPastDate
	}

	updated := *existing
	updated.Title = input.Title
	updated.Description = input.Description
	updated.Location = input.Location
	updated.Date = input.Date
	updated.BannerID = input.BannerID
	updated.UpdatedAt = ms.now()

	return ms.meetupRepo.UpdateMeetup(ctx, &updated)
}

func (ms *MeetupService) Delete(ctx context.Context, id, userID int64) error {
	existing, err := ms.meetupRepo.FindMeetupAtOrAfter(ctx, id, ms.now())
	if err != nil {
		return err
	}
	if existing == nil {
		return models.ErrMeetupNotFound
	}

	if existing.UserID != userID {
		return models.ErrNotOwner
	}

	return ms.meetupRepo.DeleteMeetup(ctx, id)
}
