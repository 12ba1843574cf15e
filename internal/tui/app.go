package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsforge/internal/headline"
	"github.com/matheuskafuri/newsforge/internal/history"
)

// Generator produces headlines.
type Generator interface {
	Generate(sel headline.Selector) (headline.Headline, error)
}

// History stores the headlines of the session.
type History interface {
	Record(h headline.Headline) (history.Record, error)
	List() ([]history.Record, error)
	ListByCategory(c headline.Category) ([]history.Record, error)
	CountByCategory() (map[headline.Category]int, error)
}

type mode int

const (
	modeHome mode = iota
	modeHistory
)

type App struct {
	gen  Generator
	hist History
	log  *slog.Logger
	keys keyMap
	help help.Model
	mode mode

	width  int
	height int

	last    *history.Record
	counts  map[headline.Category]int
	records []history.Record
	filter  headline.Category // empty shows every category
	scroll  int
	err     error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Generator Generator
	History   History
	Logger    *slog.Logger
}

func NewApp(opts RunOpts) *App {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &App{
		gen:    opts.Generator,
		hist:   opts.History,
		log:    log,
		keys:   newKeyMap(),
		help:   help.New(),
		counts: make(map[headline.Category]int),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// generate creates and records one headline. It runs inside Update: the
// generator is not safe for concurrent use and history order must follow the
// store's insertion order.
func (a *App) generate(sel headline.Selector) tea.Msg {
	h, err := a.gen.Generate(sel)
	if err != nil {
		return errMsg{err: err}
	}
	rec, err := a.hist.Record(h)
	if err != nil {
		return errMsg{err: err}
	}
	counts, err := a.hist.CountByCategory()
	if err != nil {
		return errMsg{err: err}
	}
	return generatedMsg{record: rec, counts: counts}
}

// loadHistoryCmd captures the current filter into the closure.
func (a *App) loadHistoryCmd() tea.Cmd {
	hist := a.hist
	filter := a.filter
	return func() tea.Msg {
		var (
			records []history.Record
			err     error
		)
		if filter == "" {
			records, err = hist.List()
		} else {
			records, err = hist.ListByCategory(filter)
		}
		if err != nil {
			return errMsg{err: err}
		}
		return historyLoadedMsg{filter: filter, records: records}
	}
}

// nextFilter cycles all -> tech -> sports -> funny -> mystery -> all.
func nextFilter(c headline.Category) headline.Category {
	cats := headline.AllCategories()
	if c == "" {
		return cats[0]
	}
	for i, cat := range cats {
		if cat == c && i < len(cats)-1 {
			return cats[i+1]
		}
	}
	return ""
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case generatedMsg:
		rec := msg.record
		a.last = &rec
		a.counts = msg.counts
		if a.filter == "" || a.filter == rec.Category {
			a.records = append(a.records, rec)
		}
		return a, nil

	case historyLoadedMsg:
		if msg.filter != a.filter {
			return a, nil // stale load for a previous filter
		}
		a.records = msg.records
		a.clampScroll()
		return a, nil

	case errMsg:
		a.log.Error("tui action failed", "err", msg.err)
		a.err = msg.err
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case key.Matches(msg, a.keys.Random):
		return a.Update(a.generate(headline.AnyCategory()))
	case key.Matches(msg, a.keys.Tech):
		return a.Update(a.generate(headline.Only(headline.Tech)))
	case key.Matches(msg, a.keys.Sports):
		return a.Update(a.generate(headline.Only(headline.Sports)))
	case key.Matches(msg, a.keys.Funny):
		return a.Update(a.generate(headline.Only(headline.Funny)))
	case key.Matches(msg, a.keys.Mystery):
		return a.Update(a.generate(headline.Only(headline.Mystery)))
	case key.Matches(msg, a.keys.History):
		if a.mode == modeHistory {
			a.mode = modeHome
			return a, nil
		}
		a.mode = modeHistory
		a.scroll = 0
		return a, a.loadHistoryCmd()
	}

	if a.mode == modeHistory {
		switch {
		case key.Matches(msg, a.keys.Down):
			a.scroll++
			a.clampScroll()
		case key.Matches(msg, a.keys.Up):
			if a.scroll > 0 {
				a.scroll--
			}
		case key.Matches(msg, a.keys.Filter):
			a.filter = nextFilter(a.filter)
			a.scroll = 0
			return a, a.loadHistoryCmd()
		}
	}
	return a, nil
}

func (a *App) clampScroll() {
	if a.scroll > len(a.records)-1 {
		a.scroll = max(0, len(a.records)-1)
	}
}

func (a *App) total() int {
	n := 0
	for _, c := range a.counts {
		n += c
	}
	return n
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  newsforge")
	}

	helpView := a.help.View(a.keys)
	bodyHeight := a.height - 2 - lipgloss.Height(helpView)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	switch a.mode {
	case modeHistory:
		inner := renderHistory(a.records, a.scroll, bodyHeight-2, a.width-4)
		body = historyPaneStyle.Width(a.width - 2).Height(bodyHeight - 2).Render(inner)
	default:
		body = renderHomeScreen(a.width, bodyHeight, a.last)
	}

	header := headerStyle.Render("newsforge")
	if a.mode == modeHistory {
		label := "all"
		if a.filter != "" {
			label = string(a.filter)
		}
		header += itemIndexStyle.Render(" · history · " + label)
	}
	status := renderStatusBar(a.total(), a.counts, a.width)
	if a.err != nil {
		status = errorStyle.Render(fmt.Sprintf("error: %v", a.err))
	}

	lines := strings.Split(body, "\n")
	if len(lines) > bodyHeight {
		lines = lines[:bodyHeight]
	}
	body = strings.Join(lines, "\n")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, helpView)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
