// Package prefs exports and restores the display settings as a TOML file in the
// user config directory, so they survive a fresh database.
package prefs

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jask/jaskgallery/internal/settings"
)

const settingsFile = "settings.toml"

type fileImage struct {
	Fit         string `toml:"fit"`
	ShowCaption bool   `toml:"show_caption"`
}

type fileArrows struct {
	Show  bool   `toml:"show"`
	Color string `toml:"color"`
}

type fileBackground struct {
	Color string `toml:"color"`
}

type fileSettings struct {
	Image      fileImage      `toml:"image"`
	Arrows     fileArrows     `toml:"arrows"`
	Background fileBackground `toml:"background"`
}

func settingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "jaskgallery")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFile), nil
}

func SaveSettings(s settings.Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	fs := fileSettings{
		Image:      fileImage{Fit: string(s.Image.Fit), ShowCaption: s.Image.ShowCaption},
		Arrows:     fileArrows{Show: s.Arrows.Show, Color: s.Arrows.Color},
		Background: fileBackground{Color: s.Background.Color},
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(fs); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadSettings returns the exported settings. ok is false when nothing was exported.
func LoadSettings() (s settings.Settings, ok bool, err error) {
	path, err := settingsPath()
	if err != nil {
		return settings.Settings{}, false, err
	}
	def := settings.Default()
	fs := fileSettings{
		Image:      fileImage{Fit: string(def.Image.Fit), ShowCaption: def.Image.ShowCaption},
		Arrows:     fileArrows{Show: def.Arrows.Show, Color: def.Arrows.Color},
		Background: fileBackground{Color: def.Background.Color},
	}
	if _, err := toml.DecodeFile(path, &fs); err != nil {
		if os.IsNotExist(err) {
			return settings.Settings{}, false, nil
		}
		return settings.Settings{}, false, err
	}
	// run through Parse so unknown fit modes fall back to the default
	return settings.Parse(map[string]map[string]any{
		settings.ObjectImage:      {"fit": fs.Image.Fit, "showCaption": fs.Image.ShowCaption},
		settings.ObjectArrows:     {"show": fs.Arrows.Show, "color": fs.Arrows.Color},
		settings.ObjectBackground: {"color": fs.Background.Color},
	}), true, nil
}
