package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskgallery/internal/prefs"
	"github.com/jask/jaskgallery/internal/settings"
	"github.com/jask/jaskgallery/widgets"
)

// settingRow is one editable property as listed by settings.Enumerate.
type settingRow struct {
	object  string
	display string
	prop    settings.Property
}

type settingsModal struct {
	open   bool
	cursor int
	keys   settingsKeyMap
}

func newSettingsModal() settingsModal {
	return settingsModal{keys: newSettingsKeyMap()}
}

func settingRows(s settings.Settings) []settingRow {
	var rows []settingRow
	for _, name := range settings.ObjectNames() {
		for _, inst := range settings.Enumerate(s, name) {
			for _, p := range inst.Properties {
				rows = append(rows, settingRow{object: inst.ObjectName, display: inst.DisplayName, prop: p})
			}
		}
	}
	return rows
}

// modalWidth fits the widest row: marker, display name, property and a hex color.
const modalWidth = 40

// popup lays the settings list over base, sized to its rows.
func (m settingsModal) popup(base widgets.Widget, s settings.Settings) widgets.Popup {
	list := m.list(s)
	return widgets.Popup{Base: base, Content: list, Width: modalWidth, Height: len(list.Items) + 1}
}

func (m settingsModal) list(s settings.Settings) widgets.List {
	rows := settingRows(s)
	items := make([]string, len(rows))
	for i, r := range rows {
		v := fmt.Sprint(r.prop.Value)
		if v == "" {
			v = "default"
		}
		items[i] = fmt.Sprintf("%-10s %-12s %s", r.display, r.prop.Name, v)
	}
	return widgets.List{Title: focusStyle.Render("Settings"), Items: items, Cursor: m.cursor}
}

// nextValue returns the value a property takes when changed from the modal.
func nextValue(row settingRow) any {
	switch v := row.prop.Value.(type) {
	case bool:
		return !v
	case string:
		if row.object == settings.ObjectImage && row.prop.Name == "fit" {
			return string(settings.Fit(v).Next())
		}
		for i, c := range settingColors {
			if c == v {
				return settingColors[(i+1)%len(settingColors)]
			}
		}
		return settingColors[0]
	}
	return row.prop.Value
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := settingRows(a.snapshot)
	switch {
	case key.Matches(msg, a.modal.keys.Close):
		a.modal.open = false
	case key.Matches(msg, a.modal.keys.Up):
		if a.modal.cursor > 0 {
			a.modal.cursor--
		}
	case key.Matches(msg, a.modal.keys.Down):
		if a.modal.cursor < len(rows)-1 {
			a.modal.cursor++
		}
	case key.Matches(msg, a.modal.keys.Change):
		if a.modal.cursor < 0 || a.modal.cursor >= len(rows) {
			return a, nil
		}
		row := rows[a.modal.cursor]
		return a, a.saveSettingCmd(row.object, row.prop.Name, nextValue(row))
	case key.Matches(msg, a.modal.keys.Export):
		return a, a.exportSettingsCmd()
	case key.Matches(msg, a.modal.keys.Reset):
		return a, a.resetSettingsCmd()
	case msg.String() == "ctrl+c":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) saveSettingCmd(object, property string, value any) tea.Cmd {
	store := a.services.Settings
	return func() tea.Msg {
		if store == nil {
			return errMsg{fmt.Errorf("settings store not configured")}
		}
		if err := store.Set(a.ctx, object, property, value); err != nil {
			return errMsg{err}
		}
		return settingSavedMsg{object: object, property: property}
	}
}

func (a *App) resetSettingsCmd() tea.Cmd {
	store := a.services.Settings
	return func() tea.Msg {
		if store == nil {
			return errMsg{fmt.Errorf("settings store not configured")}
		}
		if err := store.Reset(a.ctx); err != nil {
			return errMsg{err}
		}
		return settingsResetMsg{}
	}
}

func (a *App) exportSettingsCmd() tea.Cmd {
	snap := a.snapshot
	return func() tea.Msg {
		if err := prefs.SaveSettings(snap); err != nil {
			return errMsg{err}
		}
		return statusMsg("settings exported")
	}
}
