package tui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskgallery/internal/dataview"
	"github.com/jask/jaskgallery/internal/gallery"
	"github.com/jask/jaskgallery/internal/selection"
	"github.com/jask/jaskgallery/internal/service"
	"github.com/jask/jaskgallery/internal/settings"
	"github.com/jask/jaskgallery/widgets"
)

// App is the host loop around the gallery. Every host update and every navigation
// key goes through gallery.Dispatch from Update, so the navigator has one writer.
type App struct {
	ctx      context.Context
	services Services
	issuer   gallery.Issuer
	nav      gallery.Navigator
	snapshot settings.Settings
	keys     keyMap
	modal    settingsModal
	width    int
	height   int
	status   string
	warn     bool
	loading  bool
}

type Services struct {
	Query    *service.QueryService
	Settings *settings.Store
}

type dataViewMsg struct {
	view     *dataview.DataView
	warnings []string
}

type loadFailedMsg struct{ err error }

type settingSavedMsg struct {
	object, property string
}

type settingsResetMsg struct{}

type statusMsg string

type errMsg struct{ error }

func New(ctx context.Context, services Services) *App {
	return &App{
		ctx:      ctx,
		services: services,
		issuer:   selection.NewIssuer(),
		nav:      gallery.NewNavigator(),
		snapshot: settings.Default(),
		keys:     newKeyMap(),
		modal:    newSettingsModal(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.load()
}

// load asks the query provider for a fresh data view.
func (a *App) load() tea.Cmd {
	a.loading = true
	return func() tea.Msg {
		if a.services.Query == nil {
			return loadFailedMsg{fmt.Errorf("query service not configured")}
		}
		res, err := a.services.Query.Load(a.ctx)
		if err != nil {
			return loadFailedMsg{err}
		}
		return dataViewMsg{view: res.View, warnings: res.Warnings}
	}
}

// apply runs one host update: read settings, transform, reset the navigator. A
// failed transform still resets the navigator, to the empty state.
func (a *App) apply(dv *dataview.DataView) error {
	a.snapshot = settings.Default()
	if dv != nil && dv.Metadata != nil {
		a.snapshot = settings.Parse(dv.Metadata.Objects)
	}
	state, err := gallery.Build(dv, a.issuer)
	if err != nil {
		log.Printf("gallery update: %v", err)
	}
	a.nav = gallery.Dispatch(a.nav, gallery.Updated{State: state})
	return err
}

func (a *App) setStatus(s string, warn bool) {
	a.status = s
	a.warn = warn
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
	case tea.KeyMsg:
		if a.modal.open {
			return a.handleSettingsKey(m)
		}
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Prev):
			a.nav = gallery.Dispatch(a.nav, gallery.StepBackward{})
		case key.Matches(m, a.keys.Next):
			a.nav = gallery.Dispatch(a.nav, gallery.StepForward{})
		case key.Matches(m, a.keys.Reload):
			a.setStatus("reloading...", false)
			return a, a.load()
		case key.Matches(m, a.keys.Settings):
			a.modal.open = true
			a.modal.cursor = 0
		}
	case dataViewMsg:
		a.loading = false
		var parts []string
		if err := a.apply(m.view); err != nil {
			parts = append(parts, "error: "+err.Error())
		}
		for _, w := range m.warnings {
			log.Printf("warn: %s", w)
			parts = append(parts, w)
		}
		a.setStatus(strings.Join(parts, "; "), len(parts) > 0)
	case loadFailedMsg:
		a.loading = false
		log.Printf("load: %v", m.err)
		_ = a.apply(nil)
		a.setStatus("error: "+m.err.Error(), true)
	case settingSavedMsg:
		a.setStatus(fmt.Sprintf("saved %s.%s", m.object, m.property), false)
		return a, a.load()
	case settingsResetMsg:
		a.setStatus("settings reset to defaults", false)
		return a, a.load()
	case statusMsg:
		a.setStatus(string(m), false)
	case errMsg:
		a.setStatus("error: "+m.Error(), true)
	}
	return a, nil
}

func (a *App) View() string {
	width, height := a.width, a.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 23
	}

	frame := a.nav.Frame(gallery.Viewport{Width: width, Height: max(1, height-3)})
	var body widgets.Widget = widgets.Gallery{Frame: frame, Settings: a.snapshot, Muted: colorMuted}
	if a.modal.open {
		body = a.modal.popup(body, a.snapshot)
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(a.renderHeader(width)),
			body,
			widgets.Text(a.renderStatus(width)),
			widgets.Text(a.renderFooter(width)),
		},
		Fixed: []int{1, 0, 1, 1},
	}.Render(width, height)
}

func (a *App) renderHeader(width int) string {
	title := titleStyle.Render("jaskgallery")
	if a.loading {
		title += " " + lipgloss.NewStyle().Foreground(colorMuted).Render("loading…")
	}
	return padRight(title, width)
}

func (a *App) renderStatus(width int) string {
	text := a.status
	if a.warn && text != "" {
		text = warnStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return statusBarStyle.Render(padRight(flat, max(0, width-4)))
}

func (a *App) renderFooter(width int) string {
	help := renderHelp(a.keys.ShortHelp())
	if a.modal.open {
		help = renderHelp(a.modal.keys.ShortHelp())
	}
	return footerStyle.Render(padRight(help, max(0, width-4)))
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
