package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jask/jaskgallery/internal/database/repository"
	"github.com/jask/jaskgallery/internal/dataview"
)

// ErrUnknownProperty is returned when writing a property no object declares.
var ErrUnknownProperty = errors.New("unknown settings property")

// Store persists settings edits made from the settings UI.
type Store struct {
	Repo *repository.SettingsRepo
}

// Load returns the persisted properties as data-view objects. Values are text.
func (s *Store) Load(ctx context.Context) (dataview.Objects, error) {
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	out := dataview.Objects{}
	for _, r := range rows {
		if out[r.Object] == nil {
			out[r.Object] = map[string]any{}
		}
		out[r.Object][r.Property] = r.Value
	}
	return out, nil
}

// Set persists a single property.
func (s *Store) Set(ctx context.Context, object, property string, value any) error {
	if !Known(object, property) {
		return fmt.Errorf("%s.%s: %w", object, property, ErrUnknownProperty)
	}
	text, _ := dataview.Text(value)
	if err := s.Repo.Put(ctx, repository.Setting{Object: object, Property: property, Value: text}); err != nil {
		return fmt.Errorf("save %s.%s: %w", object, property, err)
	}
	return nil
}

// Save persists every property of snap.
func (s *Store) Save(ctx context.Context, snap Settings) error {
	for _, name := range ObjectNames() {
		for _, inst := range Enumerate(snap, name) {
			for _, p := range inst.Properties {
				if err := s.Set(ctx, inst.ObjectName, p.Name, p.Value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Reset drops every persisted property so the next load falls back to defaults.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.Repo.Clear(ctx); err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}
	return nil
}
