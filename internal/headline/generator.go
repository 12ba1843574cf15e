// Package headline assembles random headlines from per-category word banks
// and sentence templates.
package headline

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// Headline is a generated headline and the category it was built from.
type Headline struct {
	Text     string
	Category Category
}

// Generator picks words and templates from a Registry using an injected
// random source. It is not safe for concurrent use.
type Generator struct {
	registry *Registry
	rnd      *rand.Rand
	log      *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rnd = r }
}

// WithSeed makes generation reproducible: generators built with the same seed
// and registry produce the same sequence.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithRegistry replaces the built-in tables.
func WithRegistry(r *Registry) Option {
	return func(g *Generator) { g.registry = r }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// New builds a Generator. Without options it uses the default registry and a
// randomly seeded source.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.registry == nil {
		g.registry = DefaultRegistry()
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	if err := g.registry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}
	return g, nil
}

// Generate builds one headline for the selector. A random selector resolves
// to one of AllCategories; the returned category is never Random.
func (g *Generator) Generate(sel Selector) (Headline, error) {
	cat := sel.Category()
	if sel.IsRandom() {
		cats := AllCategories()
		cat = cats[g.rnd.IntN(len(cats))]
	}

	bank, ok := g.registry.Bank(cat)
	if !ok || !cat.Valid() {
		return Headline{}, fmt.Errorf("%w %q", ErrInvalidCategory, cat)
	}
	templates := g.registry.Templates(cat)

	subject := g.pick(bank.Subjects)
	action := g.pick(bank.Actions)
	object := g.pick(bank.Objects)
	tmpl := g.pick(templates)

	h := Headline{Text: render(tmpl, subject, action, object), Category: cat}
	g.log.Debug("generated headline", "selector", sel.String(), "category", cat, "text", h.Text)
	return h, nil
}

// GenerateN builds n headlines for the selector; each pick is independent.
func (g *Generator) GenerateN(sel Selector, n int) ([]Headline, error) {
	if n < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", n)
	}
	out := make([]Headline, 0, n)
	for range n {
		h, err := g.Generate(sel)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

// Registry returns the tables the generator draws from.
func (g *Generator) Registry() *Registry {
	return g.registry
}

func (g *Generator) pick(items []string) string {
	return items[g.rnd.IntN(len(items))]
}
