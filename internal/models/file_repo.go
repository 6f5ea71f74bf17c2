package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (r *BunRepo) CreateFile(ctx context.Context, file *File) (*File, error) {
	if _, err := r.db.NewInsert().Model(file).Exec(ctx); err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	return file, nil
}

func (r *BunRepo) FindFileByID(ctx context.Context, id int64) (*File, error) {
	file := new(File)
	err := r.db.NewSelect().
		Model(file).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find file %d: %w", id, err)
	}
	return file, nil
}
