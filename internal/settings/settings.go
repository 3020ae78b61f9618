// Package settings holds the user-configurable display settings of the gallery.
//
// Settings are carried on the data view as objects (object name -> property -> value)
// and parsed into a typed snapshot once per update. Missing or malformed values fall
// back to defaults.
package settings

import (
	"strconv"
	"strings"

	"github.com/jask/jaskgallery/internal/dataview"
)

// Object names.
const (
	ObjectImage      = "image"
	ObjectArrows     = "arrows"
	ObjectBackground = "background"
)

// Fit controls how the image slot fills the viewport.
type Fit string

const (
	FitContain Fit = "contain"
	FitCover   Fit = "cover"
	FitFill    Fit = "fill"
)

// Fits lists the fit modes in cycle order.
var Fits = []Fit{FitContain, FitCover, FitFill}

func (f Fit) valid() bool {
	for _, v := range Fits {
		if f == v {
			return true
		}
	}
	return false
}

// Next returns the fit mode after f.
func (f Fit) Next() Fit {
	for i, v := range Fits {
		if v == f {
			return Fits[(i+1)%len(Fits)]
		}
	}
	return FitContain
}

type ImageSettings struct {
	Fit         Fit
	ShowCaption bool
}

type ArrowSettings struct {
	Show  bool
	Color string
}

type BackgroundSettings struct {
	Color string
}

// Settings is one parsed snapshot.
type Settings struct {
	Image      ImageSettings
	Arrows     ArrowSettings
	Background BackgroundSettings
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Image:      ImageSettings{Fit: FitContain, ShowCaption: true},
		Arrows:     ArrowSettings{Show: true, Color: "#f5c2e7"},
		Background: BackgroundSettings{Color: ""},
	}
}

// Parse overlays objects on the defaults. It never fails.
func Parse(objects dataview.Objects) Settings {
	s := Default()
	if img, ok := objects[ObjectImage]; ok {
		if f := Fit(strings.ToLower(stringValue(img["fit"], string(s.Image.Fit)))); f.valid() {
			s.Image.Fit = f
		}
		s.Image.ShowCaption = boolValue(img["showCaption"], s.Image.ShowCaption)
	}
	if arr, ok := objects[ObjectArrows]; ok {
		s.Arrows.Show = boolValue(arr["show"], s.Arrows.Show)
		s.Arrows.Color = stringValue(arr["color"], s.Arrows.Color)
	}
	if bg, ok := objects[ObjectBackground]; ok {
		s.Background.Color = stringValue(bg["color"], s.Background.Color)
	}
	return s
}

// Objects renders s back into object form.
func (s Settings) Objects() dataview.Objects {
	out := dataview.Objects{}
	for _, name := range ObjectNames() {
		inst := Enumerate(s, name)[0]
		props := map[string]any{}
		for _, p := range inst.Properties {
			props[p.Name] = p.Value
		}
		out[name] = props
	}
	return out
}

func stringValue(v any, def string) string {
	s, ok := dataview.Text(v)
	if !ok {
		return def
	}
	return strings.TrimSpace(s)
}

func boolValue(v any, def bool) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return def
		}
		return b
	default:
		return def
	}
}
