package headline

import (
	"fmt"
	"strings"
)

const (
	phSubject = "{subject}"
	phAction  = "{action}"
	phObject  = "{object}"
)

// WordBank holds the words a category draws from, one list per role.
type WordBank struct {
	Subjects []string
	Actions  []string
	Objects  []string
}

func (w WordBank) clone() WordBank {
	return WordBank{
		Subjects: append([]string(nil), w.Subjects...),
		Actions:  append([]string(nil), w.Actions...),
		Objects:  append([]string(nil), w.Objects...),
	}
}

var defaultBanks = map[Category]WordBank{
	Tech: {
		Subjects: []string{"AI", "Blockchain", "Quantum Computer", "VR Headset", "Smartphone", "Drone"},
		Actions:  []string{"invented", "hacked", "revolutionized", "transformed", "disrupted"},
		Objects:  []string{"the internet", "social media", "cryptocurrency", "your privacy", "smart homes"},
	},
	Sports: {
		Subjects: []string{"Football Team", "Basketball Player", "Tennis Star", "Olympic Athlete", "Coach"},
		Actions:  []string{"won championship", "broke record", "signed contract", "retired from", "joined"},
		Objects:  []string{"the game", "major league", "gold medal", "hall of fame", "rival team"},
	},
	Funny: {
		Subjects: []string{"Cat", "Pizza", "Sleeping Dog", "Coffee", "Monday Morning"},
		Actions:  []string{"declared war on", "invented new dance for", "started podcast about", "became CEO of"},
		Objects:  []string{"homework", "alarm clocks", "vegetables", "traffic", "waking up early"},
	},
	Mystery: {
		Subjects: []string{"Secret Agent", "Ancient Artifact", "Ghost", "Lost City", "UFO"},
		Actions:  []string{"disappeared from", "found clue about", "revealed truth behind", "solved mystery of"},
		Objects:  []string{"hidden treasure", "time travel", "parallel universe", "conspiracy theory"},
	},
}

var defaultTemplates = map[Category][]string{
	Tech: {
		"BREAKING: {subject} {action} {object}!",
		"Tech Update: {subject} just {action} {object}",
		"Future is Here: {subject} {action} {object}",
	},
	Sports: {
		"SPORTS ALERT: {subject} {action} {object}!",
		"Game Changer: {subject} {action} {object}",
		"Exclusive: {subject} {action} {object}",
	},
	Funny: {
		"LOL: {subject} {action} {object}! 😂",
		"You Won't Believe: {subject} {action} {object}",
		"Wait, What? {subject} {action} {object}",
	},
	Mystery: {
		"MYSTERY SOLVED: {subject} {action} {object}!",
		"Breaking News: {subject} {action} {object}",
		"Shocking: {subject} {action} {object}",
	},
}

// Registry is the word bank and template table the generator draws from.
type Registry struct {
	banks     map[Category]WordBank
	templates map[Category][]string
}

// DefaultRegistry returns a fresh copy of the built-in tables. Callers may
// extend the copy without affecting other registries.
func DefaultRegistry() *Registry {
	r := &Registry{
		banks:     make(map[Category]WordBank, len(defaultBanks)),
		templates: make(map[Category][]string, len(defaultTemplates)),
	}
	for c, b := range defaultBanks {
		r.banks[c] = b.clone()
	}
	for c, t := range defaultTemplates {
		r.templates[c] = append([]string(nil), t...)
	}
	return r
}

// Bank returns the word bank for c.
func (r *Registry) Bank(c Category) (WordBank, bool) {
	b, ok := r.banks[c]
	return b, ok
}

// Templates returns the templates for c.
func (r *Registry) Templates(c Category) []string {
	return r.templates[c]
}

// Extend appends extra words and templates to category c. Words already in the
// bank are skipped. Templates are checked with ValidateTemplate.
func (r *Registry) Extend(c Category, words WordBank, templates []string) error {
	if !c.Valid() {
		return fmt.Errorf("%w %q", ErrInvalidCategory, c)
	}
	for _, t := range templates {
		if err := ValidateTemplate(t); err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
	}

	b := r.banks[c]
	b.Subjects = mergeWords(b.Subjects, words.Subjects)
	b.Actions = mergeWords(b.Actions, words.Actions)
	b.Objects = mergeWords(b.Objects, words.Objects)
	r.banks[c] = b
	r.templates[c] = mergeWords(r.templates[c], templates)
	return nil
}

func mergeWords(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, w := range existing {
		seen[w] = true
	}
	for _, w := range extra {
		w = strings.TrimSpace(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		existing = append(existing, w)
	}
	return existing
}

// Validate checks that every category has non-empty word lists and at least
// one well-formed template.
func (r *Registry) Validate() error {
	for _, c := range AllCategories() {
		b, ok := r.banks[c]
		if !ok {
			return fmt.Errorf("%s: missing word bank", c)
		}
		switch {
		case len(b.Subjects) == 0:
			return fmt.Errorf("%s: no subjects", c)
		case len(b.Actions) == 0:
			return fmt.Errorf("%s: no actions", c)
		case len(b.Objects) == 0:
			return fmt.Errorf("%s: no objects", c)
		}
		templates := r.templates[c]
		if len(templates) == 0 {
			return fmt.Errorf("%s: no templates", c)
		}
		for _, t := range templates {
			if err := ValidateTemplate(t); err != nil {
				return fmt.Errorf("%s: %w", c, err)
			}
		}
	}
	return nil
}

// ValidateTemplate requires each placeholder to appear exactly once.
func ValidateTemplate(t string) error {
	for _, ph := range []string{phSubject, phAction, phObject} {
		if n := strings.Count(t, ph); n != 1 {
			return fmt.Errorf("template %q: want exactly one %s, found %d", t, ph, n)
		}
	}
	return nil
}

func render(template, subject, action, object string) string {
	return strings.NewReplacer(
		phSubject, subject,
		phAction, action,
		phObject, object,
	).Replace(template)
}
