package repository

import (
	"context"
	"database/sql"
)

// ImageRepo handles gallery images.
type ImageRepo struct {
	db *sql.DB
}

func NewImageRepo(db *sql.DB) *ImageRepo { return &ImageRepo{db: db} }

func (r *ImageRepo) Insert(ctx context.Context, img Image) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO images(id, title, image_url, sort_order, source_hash, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, img.ID, img.Title, img.ImageURL, img.SortOrder, img.SourceHash)
	return err
}

func (r *ImageRepo) Upsert(ctx context.Context, img Image) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO images(id, title, image_url, sort_order, source_hash, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 image_url=excluded.image_url,
	 sort_order=excluded.sort_order,
	 updated_at=CURRENT_TIMESTAMP;
	`, img.ID, img.Title, img.ImageURL, img.SortOrder, img.SourceHash)
	return err
}

// Delete removes one image and reports whether it existed.
func (r *ImageRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// NextSortOrder returns one past the largest sort order in use.
func (r *ImageRepo) NextSortOrder(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(sort_order), -1) + 1 FROM images`).Scan(&next)
	return next, err
}

func (r *ImageRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM images`).Scan(&n)
	return n, err
}

func (r *ImageRepo) List(ctx context.Context) ([]Image, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, image_url, sort_order, source_hash, created_at, updated_at
	FROM images ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.Title, &img.ImageURL, &img.SortOrder, &img.SourceHash, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}
