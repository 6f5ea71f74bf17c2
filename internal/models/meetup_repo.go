package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

func (r *BunRepo) ListMeetups(ctx context.Context, from, to *time.Time, limit, offset int) ([]*Meetup, error) {
	meetups := make([]*Meetup, 0)
	query := r.db.NewSelect().
		Model(&meetups).
		Relation("User").
		Relation("Banner").
		Order("meetup.date ASC").
		Limit(limit).
		Offset(offset)
	if from != nil && to != nil {
		query = query.Where("meetup.date BETWEEN ? AND ?", *from, *to)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list meetups: %w", err)
	}
	return meetups, nil
}

func (r *BunRepo) FindMeetupAtOrAfter(ctx context.Context, id int64, cutoff time.Time) (*Meetup, error) {
	meetup := new(Meetup)
	err := r.db.NewSelect().
		Model(meetup).
		Where("meetup.id = ?", id).
		Where("meetup.date >= ?", cutoff).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find meetup %d: %w", id, err)
	}
	return meetup, nil
}

func (r *BunRepo) CreateMeetup(ctx context.Context, meetup *Meetup) (*Meetup, error) {
	if _, err := r.db.NewInsert().Model(meetup).Exec(ctx); err != nil {
		return nil, fmt.Errorf("create meetup: %w", err)
	}
	return meetup, nil
}

func (r *BunRepo) UpdateMeetup(ctx context.Context, meetup *Meetup) (*Meetup, error) {
	if _, err := r.db.NewUpdate().Model(meetup).WherePK().Exec(ctx); err != nil {
		return nil, fmt.Errorf("update meetup %d: %w", meetup.ID, err)
	}
	return meetup, nil
}

func (r *BunRepo) DeleteMeetup(ctx context.Context, id int64) error {
	if _, err := r.db.NewDelete().
		Model((*Meetup)(nil)).
		Where("id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete meetup %d: %w", id, err)
	}
	return nil
}
