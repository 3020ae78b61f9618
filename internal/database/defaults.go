package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/jaskgallery/internal/database/repository"
)

// SeedDefaults adds a few sample images to an empty gallery. Callers run it once,
// right after the schema is first created, so a reset gallery stays empty.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	imgRepo := repository.NewImageRepo(db)
	n, err := imgRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count images: %w", err)
	}
	if n > 0 {
		return nil
	}
	defaults := []struct{ title, url string }{
		{"Go gopher", "https://go.dev/images/gophers/ladder.svg"},
		{"Bubble Tea", "https://stuff.charm.sh/bubbletea/bubbletea-github-header-simple.png"},
		{"Lip Gloss", "https://stuff.charm.sh/lipgloss/lipgloss-header-github.png"},
	}
	for idx, d := range defaults {
		title, url := d.title, d.url
		id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("img:"+url)).String()
		img := repository.Image{ID: id, Title: &title, ImageURL: &url, SortOrder: idx}
		if err := imgRepo.Upsert(ctx, img); err != nil {
			return err
		}
	}
	return nil
}
