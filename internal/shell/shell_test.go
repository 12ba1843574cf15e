package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matheuskafuri/newsforge/internal/headline"
	"github.com/matheuskafuri/newsforge/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type harness struct {
	sh   *Shell
	hist *history.Store
	out  *bytes.Buffer
}

func newHarness(t *testing.T, input io.Reader, opts ...Option) *harness {
	t.Helper()
	gen, err := headline.New(headline.WithSeed(11))
	require.NoError(t, err)
	hist, err := history.Open()
	require.NoError(t, err)
	t.Cleanup(func() { hist.Close() })

	out := &bytes.Buffer{}
	opts = append([]Option{WithNoColor(true)}, opts...)
	sh := New(gen, hist, input, out, opts...)
	t.Cleanup(sh.Close)
	return &harness{sh: sh, hist: hist, out: out}
}

func TestRunGeneratesEachChoice(t *testing.T) {
	h := newHarness(t, strings.NewReader("1\n2\n3\n4\n5\n6\n7\n"))

	require.NoError(t, h.sh.Run(context.Background()))
	out := h.out.String()

	records, err := h.hist.List()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, headline.Tech, records[1].Category)
	assert.Equal(t, headline.Sports, records[2].Category)
	assert.Equal(t, headline.Funny, records[3].Category)
	assert.Equal(t, headline.Mystery, records[4].Category)

	for _, r := range records {
		assert.Contains(t, out, "📰 CATEGORY: "+r.Category.Label()+"\n📝 HEADLINE: "+r.Text)
		assert.Contains(t, out, "   "+r.Text)
	}
	assert.Contains(t, out, "GENERATION HISTORY")
	assert.Contains(t, out, "Total headlines: 5")
	assert.Contains(t, out, "Thank you for using NewsForge!")
	assert.Contains(t, out, "Total headlines created: 5")
	assert.NotContains(t, out, "{subject}")
}

func TestFarewellBreaksDownByCategory(t *testing.T) {
	h := newHarness(t, strings.NewReader("2\n2\n5\n7\n"))

	require.NoError(t, h.sh.Run(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "Total headlines created: 3\n  TECH: 2\n  MYSTERY: 1\nGoodbye! 👋\n")
	assert.NotContains(t, out, "SPORTS: 0")
	assert.NotContains(t, out, "  FUNNY:")
}

func TestRunSurvivesOversizedLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	h := newHarness(t, strings.NewReader(long+"\n2\n7\n"))

	require.NoError(t, h.sh.Run(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "Please enter a number between 1 and 7")
	assert.Contains(t, out, "📰 CATEGORY: TECH")
	assert.Contains(t, out, "Thank you for using NewsForge!")
	assert.NotContains(t, out, "Program stopped")
}

func TestRunAcceptsFinalLineWithoutNewline(t *testing.T) {
	h := newHarness(t, strings.NewReader("3\r\n7"))

	require.NoError(t, h.sh.Run(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "📰 CATEGORY: SPORTS")
	assert.Contains(t, out, "Total headlines created: 1\n  SPORTS: 1\n")
}

func TestRunEmptyHistory(t *testing.T) {
	h := newHarness(t, strings.NewReader("6\n7\n"))

	require.NoError(t, h.sh.Run(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "No headlines generated yet!")
	assert.NotContains(t, out, "GENERATION HISTORY")
	assert.Contains(t, out, "Total headlines created: 0")
}

func TestRunRejectsUnknownChoice(t *testing.T) {
	h := newHarness(t, strings.NewReader("9\nabc\n\n7\n"))

	require.NoError(t, h.sh.Run(context.Background()))
	assert.Equal(t, 3, strings.Count(h.out.String(), "Please enter a number between 1 and 7"))
}

func TestRunTrimsInput(t *testing.T) {
	h := newHarness(t, strings.NewReader("  2  \n7\n"))

	require.NoError(t, h.sh.Run(context.Background()))
	n, err := h.hist.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	h := newHarness(t, strings.NewReader("1\n"))

	require.NoError(t, h.sh.Run(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "Program stopped. Goodbye!")
	assert.NotContains(t, out, "Thank you for using NewsForge!")
}

func TestRunStopsOnInterrupt(t *testing.T) {
	pr, pw := io.Pipe()
	h := newHarness(t, pr)
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, h.sh.Run(ctx))
	assert.Contains(t, h.out.String(), "Program stopped. Goodbye!")
}

type failingHistory struct {
	*history.Store
}

func (f failingHistory) Record(headline.Headline) (history.Record, error) {
	return history.Record{}, errors.New("disk on fire")
}

func TestRunReportsErrorsAndContinues(t *testing.T) {
	gen, err := headline.New(headline.WithSeed(1))
	require.NoError(t, err)
	store, err := history.Open()
	require.NoError(t, err)
	defer store.Close()

	out := &bytes.Buffer{}
	sh := New(gen, failingHistory{store}, strings.NewReader("1\n7\n"), out, WithNoColor(true))
	defer sh.Close()

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "An error occurred: disk on fire")
	assert.Contains(t, out.String(), "Please try again.")
	assert.Contains(t, out.String(), "Goodbye!")
}

type panickingGenerator struct{}

func (panickingGenerator) Generate(headline.Selector) (headline.Headline, error) {
	panic("boom")
}

func TestRunRecoversFromPanic(t *testing.T) {
	store, err := history.Open()
	require.NoError(t, err)
	defer store.Close()

	out := &bytes.Buffer{}
	sh := New(panickingGenerator{}, store, strings.NewReader("3\n7\n"), out, WithNoColor(true))
	defer sh.Close()

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "An error occurred: boom")
	assert.Contains(t, out.String(), "Total headlines created: 0")
}

func TestQuickDemoProducesFiveRecords(t *testing.T) {
	h := newHarness(t, strings.NewReader(""))

	for round := 1; round <= 2; round++ {
		h.out.Reset()
		require.NoError(t, h.sh.QuickDemo())
		out := h.out.String()

		assert.Equal(t, 5, strings.Count(out, ". ["), "round %d", round)
		assert.Contains(t, out, "5. [")
		assert.NotContains(t, out, "6. [")
		assert.Contains(t, out, "Demo completed!")

		n, err := h.hist.Count()
		require.NoError(t, err)
		assert.Equal(t, 5*round, n)
	}

	records, err := h.hist.List()
	require.NoError(t, err)
	for _, r := range records {
		assert.True(t, r.Category.Valid())
		assert.NotContains(t, r.Text, "{")
	}
}

func TestQuickDemoCount(t *testing.T) {
	h := newHarness(t, strings.NewReader(""), WithDemoCount(2))

	require.NoError(t, h.sh.QuickDemo())
	assert.Equal(t, 2, strings.Count(h.out.String(), ". ["))
}

func TestLaunchDemoThenExit(t *testing.T) {
	h := newHarness(t, strings.NewReader("1\n3\n"))

	require.NoError(t, h.sh.Launch(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "Welcome to NewsForge!")
	assert.Contains(t, out, "Demo completed!")
	assert.True(t, strings.HasSuffix(out, "Goodbye! 👋\n"))
	assert.NotContains(t, out, "MAIN MENU")
}

func TestLaunchFullApplication(t *testing.T) {
	h := newHarness(t, strings.NewReader("x\n2\n4\n7\n"))

	require.NoError(t, h.sh.Launch(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "Please choose 1, 2, or 3")
	assert.Contains(t, out, "NEWSFORGE HEADLINE GENERATOR")
	assert.Contains(t, out, "MAIN MENU")
	assert.Contains(t, out, "📰 CATEGORY: FUNNY")
	assert.Contains(t, out, "Total headlines created: 1")
}

func TestLaunchDemoVisibleInHistory(t *testing.T) {
	h := newHarness(t, strings.NewReader("1\n2\n6\n7\n"))

	require.NoError(t, h.sh.Launch(context.Background()))
	assert.Contains(t, h.out.String(), "Total headlines: 5")
}

func TestLaunchStopsAtEndOfInput(t *testing.T) {
	h := newHarness(t, strings.NewReader(""))

	require.NoError(t, h.sh.Launch(context.Background()))
	assert.Contains(t, h.out.String(), "Program stopped. Goodbye!")
}
