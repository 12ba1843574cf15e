package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matheuskafuri/newsforge/internal/headline"
	"github.com/matheuskafuri/newsforge/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *history.Store) {
	t.Helper()
	gen, err := headline.New(headline.WithSeed(3))
	require.NoError(t, err)
	store, err := history.Open()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	app := NewApp(RunOpts{Generator: gen, History: store})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app, store
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and feeds the resulting command's message back in.
func press(t *testing.T, app *App, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := app.Update(msg)
	if cmd == nil {
		return nil
	}
	out := cmd()
	if _, ok := out.(tea.QuitMsg); ok {
		return cmd
	}
	app.Update(out)
	return cmd
}

func TestGenerateKeys(t *testing.T) {
	app, store := newTestApp(t)

	want := map[string]headline.Category{
		"2": headline.Tech,
		"3": headline.Sports,
		"4": headline.Funny,
		"5": headline.Mystery,
	}
	for k, cat := range want {
		press(t, app, runeKey(k))
		require.NotNil(t, app.last)
		assert.Equal(t, cat, app.last.Category, "key %s", k)
	}

	press(t, app, runeKey("1"))
	require.NotNil(t, app.last)
	assert.True(t, app.last.Category.Valid())

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, app.total())
	assert.Len(t, app.records, 5)
}

func TestHistoryToggle(t *testing.T) {
	app, _ := newTestApp(t)

	press(t, app, runeKey("6"))
	assert.Equal(t, modeHistory, app.mode)
	assert.Contains(t, app.View(), "No headlines generated yet!")

	press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, modeHome, app.mode)

	press(t, app, runeKey("2"))
	press(t, app, runeKey("2"))
	press(t, app, runeKey("6"))
	assert.Len(t, app.records, 2)
	assert.Contains(t, app.View(), "[TECH]")
}

func TestHistoryScrollClamped(t *testing.T) {
	app, _ := newTestApp(t)
	press(t, app, runeKey("1"))
	press(t, app, runeKey("1"))
	press(t, app, runeKey("6"))

	for range 5 {
		press(t, app, runeKey("j"))
	}
	assert.Equal(t, 1, app.scroll)

	for range 5 {
		press(t, app, runeKey("k"))
	}
	assert.Equal(t, 0, app.scroll)
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey("7"), runeKey("q"), {Type: tea.KeyCtrlC}} {
		app, _ := newTestApp(t)
		cmd := press(t, app, msg)
		require.NotNil(t, cmd, "key %s", msg.String())
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "key %s should quit", msg.String())
	}
}

func TestHelpToggle(t *testing.T) {
	app, _ := newTestApp(t)
	short := app.View()

	press(t, app, runeKey("?"))
	assert.True(t, app.help.ShowAll)
	assert.NotEqual(t, short, app.View())
}

func TestErrorIsStickyUntilKeypress(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(errMsg{err: errors.New("store unavailable")})
	assert.Contains(t, app.View(), "store unavailable")

	press(t, app, runeKey("j"))
	assert.NotContains(t, app.View(), "store unavailable")
}

func TestViewShowsLatestHeadline(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Contains(t, app.View(), "Press 1-5")

	press(t, app, runeKey("5"))
	view := app.View()
	assert.Contains(t, view, "[MYSTERY]")
	assert.Contains(t, view, "1 headlines")
	assert.True(t, strings.Contains(view, "mystery 1"))
}

func TestViewBeforeResize(t *testing.T) {
	app := NewApp(RunOpts{})
	assert.Contains(t, app.View(), "newsforge")
}

func TestGenerateKeysRecordInStoreOrder(t *testing.T) {
	app, store := newTestApp(t)

	keys := []string{"1", "2", "3", "4", "5", "r"}
	for i := range 24 {
		_, cmd := app.Update(runeKey(keys[i%len(keys)]))
		// Generation finishes inside Update; a returned command would run
		// on another goroutine and share the generator.
		assert.Nil(t, cmd, "key %s", keys[i%len(keys)])
	}

	stored, err := store.List()
	require.NoError(t, err)
	require.Len(t, app.records, len(stored))
	for i := range stored {
		assert.Equal(t, stored[i].Seq, app.records[i].Seq)
		assert.Equal(t, stored[i].ID, app.records[i].ID)
	}
	assert.Equal(t, stored[len(stored)-1].ID, app.last.ID)
	assert.Equal(t, 24, app.total())
}

func TestHistoryFilterCycles(t *testing.T) {
	app, _ := newTestApp(t)
	press(t, app, runeKey("2"))
	press(t, app, runeKey("3"))
	press(t, app, runeKey("2"))
	press(t, app, runeKey("6"))
	require.Len(t, app.records, 3)
	assert.Contains(t, app.View(), "history · all")

	press(t, app, runeKey("f"))
	assert.Equal(t, headline.Tech, app.filter)
	require.Len(t, app.records, 2)
	for _, r := range app.records {
		assert.Equal(t, headline.Tech, r.Category)
	}
	assert.Contains(t, app.View(), "history · tech")

	// New headlines outside the filter stay out of the pane.
	press(t, app, runeKey("4"))
	assert.Len(t, app.records, 2)
	press(t, app, runeKey("2"))
	assert.Len(t, app.records, 3)

	press(t, app, runeKey("f"))
	assert.Equal(t, headline.Sports, app.filter)
	assert.Len(t, app.records, 1)

	press(t, app, runeKey("f"))
	press(t, app, runeKey("f"))
	assert.Equal(t, headline.Mystery, app.filter)
	assert.Empty(t, app.records)
	assert.Contains(t, app.View(), "No headlines generated yet!")

	press(t, app, runeKey("f"))
	assert.Equal(t, headline.Category(""), app.filter)
	assert.Len(t, app.records, 5)
}

func TestStaleHistoryLoadIgnored(t *testing.T) {
	app, _ := newTestApp(t)
	press(t, app, runeKey("2"))
	press(t, app, runeKey("6"))
	press(t, app, runeKey("f"))
	require.Len(t, app.records, 1)

	app.Update(historyLoadedMsg{filter: "", records: nil})
	assert.Len(t, app.records, 1)
}

func TestFilterKeyIgnoredOnHome(t *testing.T) {
	app, _ := newTestApp(t)
	_, cmd := app.Update(runeKey("f"))
	assert.Nil(t, cmd)
	assert.Equal(t, headline.Category(""), app.filter)
}
