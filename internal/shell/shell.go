// Package shell implements the line-oriented console session: the launcher
// prompt, the quick demo and the interactive headline menu.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

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
	Count() (int, error)
	CountByCategory() (map[headline.Category]int, error)
}

// menuSelectors maps the menu choices that generate a headline.
var menuSelectors = map[string]headline.Selector{
	"1": headline.AnyCategory(),
	"2": headline.Only(headline.Tech),
	"3": headline.Only(headline.Sports),
	"4": headline.Only(headline.Funny),
	"5": headline.Only(headline.Mystery),
}

type Shell struct {
	gen       Generator
	hist      History
	out       io.Writer
	lines     *lineReader
	log       *slog.Logger
	demoCount int
	noColor   bool
	st        styles
}

// Option configures a Shell.
type Option func(*Shell)

func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) { s.log = l }
}

// WithDemoCount sets how many headlines the quick demo prints.
func WithDemoCount(n int) Option {
	return func(s *Shell) {
		if n > 0 {
			s.demoCount = n
		}
	}
}

func WithNoColor(noColor bool) Option {
	return func(s *Shell) { s.noColor = noColor }
}

func New(gen Generator, hist History, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		gen:       gen,
		hist:      hist,
		out:       out,
		lines:     newLineReader(in),
		log:       slog.Default(),
		demoCount: 5,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.st = newStyles(out, s.noColor)
	return s
}

// Close stops the input goroutine.
func (s *Shell) Close() {
	s.lines.Close()
}

// Launch runs the top-level prompt: quick demo, full application or exit.
func (s *Shell) Launch(ctx context.Context) error {
	s.println("Welcome to NewsForge!")
	s.println("A simple headline generator")

	for {
		s.println("\nOptions:")
		s.println("1. Run Quick Demo (" + fmt.Sprint(s.demoCount) + " random headlines)")
		s.println("2. Run Full Application")
		s.println("3. Exit")

		option, err := s.prompt(ctx, "\nChoose option (1-3): ")
		if err != nil {
			return s.stopped(err)
		}

		switch option {
		case "1":
			if err := s.QuickDemo(); err != nil {
				s.reportError(err)
			}
		case "2":
			s.println("Starting NewsForge Headline Generator...")
			return s.Run(ctx)
		case "3":
			s.println("Goodbye! 👋")
			return nil
		default:
			s.println("Please choose 1, 2, or 3")
		}
	}
}

// QuickDemo generates and prints the demo batch of random headlines. Each
// one is recorded in the session history.
func (s *Shell) QuickDemo() error {
	s.println("\n" + s.st.rule.Render(strings.Repeat("🚀", 25)))
	s.println(s.st.title.Render(fmt.Sprintf("QUICK DEMO: Generating %d random headlines", s.demoCount)))
	s.println(s.st.rule.Render(strings.Repeat("🚀", 25)))

	for i := 1; i <= s.demoCount; i++ {
		h, err := s.gen.Generate(headline.AnyCategory())
		if err != nil {
			return fmt.Errorf("generating demo headline: %w", err)
		}
		if _, err := s.hist.Record(h); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "\n%d. [%s]\n", i, h.Category.Label())
		fmt.Fprintf(s.out, "   %s\n", h.Text)
	}

	s.println("\n" + strings.Repeat("✅", 25))
	s.println("Demo completed!")
	return nil
}

// Run is the interactive menu loop. It returns nil when the user exits, the
// input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	s.printBanner()

	for {
		s.printMenu()

		choice, err := s.prompt(ctx, "\nEnter your choice (1-7): ")
		if err != nil {
			return s.stopped(err)
		}

		quit, err := s.dispatch(choice)
		if err != nil {
			s.reportError(err)
			continue
		}
		if quit {
			return nil
		}
	}
}

func (s *Shell) dispatch(choice string) (quit bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	if sel, ok := menuSelectors[choice]; ok {
		return false, s.generateAndDisplay(sel)
	}
	switch choice {
	case "6":
		return false, s.showHistory()
	case "7":
		return true, s.farewell()
	default:
		s.println("Please enter a number between 1 and 7")
		return false, nil
	}
}

func (s *Shell) generateAndDisplay(sel headline.Selector) error {
	s.println("\n" + strings.Repeat("✨", 20))
	s.println("CREATING HEADLINE...")

	h, err := s.gen.Generate(sel)
	if err != nil {
		return err
	}
	if _, err := s.hist.Record(h); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\n📰 CATEGORY: %s\n", h.Category.Label())
	fmt.Fprintf(s.out, "📝 HEADLINE: %s\n", h.Text)
	s.println(strings.Repeat("✨", 20))
	return nil
}

func (s *Shell) showHistory() error {
	records, err := s.hist.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		s.println("\nNo headlines generated yet!")
		return nil
	}

	s.println("\n" + strings.Repeat("📜", 15))
	s.println(s.st.title.Render("GENERATION HISTORY"))
	s.println(strings.Repeat("📜", 15))

	for i, r := range records {
		fmt.Fprintf(s.out, "\n%d. [%s]\n", i+1, r.Category.Label())
		fmt.Fprintf(s.out, "   %s\n", r.Text)
	}
	fmt.Fprintf(s.out, "\nTotal headlines: %d\n", len(records))
	return nil
}

func (s *Shell) farewell() error {
	n, err := s.hist.Count()
	if err != nil {
		return err
	}
	counts, err := s.hist.CountByCategory()
	if err != nil {
		return err
	}
	s.println("\nThank you for using NewsForge!")
	fmt.Fprintf(s.out, "Total headlines created: %d\n", n)
	for _, c := range headline.AllCategories() {
		if counts[c] > 0 {
			fmt.Fprintf(s.out, "  %s: %d\n", c.Label(), counts[c])
		}
	}
	s.println("Goodbye! 👋")
	return nil
}

func (s *Shell) printBanner() {
	s.println("\n" + s.st.rule.Render(strings.Repeat("=", 50)))
	s.println(s.st.title.Render("         📰 NEWSFORGE HEADLINE GENERATOR 📰"))
	s.println(s.st.rule.Render(strings.Repeat("=", 50)))
}

func (s *Shell) printMenu() {
	s.println("\n" + s.st.title.Render("📋 MAIN MENU:"))
	s.println("1. 🎲 Generate Random Headline")
	s.println("2. 💻 Generate Tech Headline")
	s.println("3. ⚽ Generate Sports Headline")
	s.println("4. 😂 Generate Funny Headline")
	s.println("5. 🔍 Generate Mystery Headline")
	s.println("6. 📜 Show Generation History")
	s.println("7. 🚪 Exit")
	s.println(s.st.rule.Render(strings.Repeat("-", 30)))
}

func (s *Shell) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(s.out, text)
	line, err := s.lines.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// stopped turns an end-of-session read error into a farewell. Other read
// errors are returned.
func (s *Shell) stopped(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		s.println("\n\nProgram stopped. Goodbye!")
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}

func (s *Shell) reportError(err error) {
	s.log.Error("menu action failed", "err", err)
	fmt.Fprintf(s.out, "\nAn error occurred: %v\n", err)
	s.println("Please try again.")
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

type styles struct {
	title lipgloss.Style
	rule  lipgloss.Style
}

func newStyles(out io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(out)
	if noColor {
		return styles{title: r.NewStyle(), rule: r.NewStyle()}
	}
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}),
		rule:  r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}),
	}
}
