package headline

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one of the fixed headline topics.
type Category string

const (
	Tech    Category = "tech"
	Sports  Category = "sports"
	Funny   Category = "funny"
	Mystery Category = "mystery"
)

// Random is the selector keyword for "any category". It never resolves to a
// Category of its own.
const Random = "random"

// ErrInvalidCategory is returned for any selector that names neither a known
// category nor Random.
var ErrInvalidCategory = errors.New("invalid category")

// AllCategories returns all categories in canonical order.
func AllCategories() []Category {
	return []Category{Tech, Sports, Funny, Mystery}
}

// Label is the upper-case form used in console output.
func (c Category) Label() string {
	return strings.ToUpper(string(c))
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, cat := range AllCategories() {
		if c == cat {
			return true
		}
	}
	return false
}

// selectorAliases maps short inputs to category names or Random.
var selectorAliases = map[string]string{
	"t":    string(Tech),
	"s":    string(Sports),
	"f":    string(Funny),
	"m":    string(Mystery),
	"r":    Random,
	"rand": Random,
	"any":  Random,
}

// Selector chooses the category a headline is generated for: either a fixed
// category or a uniform pick among all of them.
type Selector struct {
	cat Category // empty means random
}

// AnyCategory selects uniformly among all categories.
func AnyCategory() Selector { return Selector{} }

// Only selects a single category.
func Only(c Category) Selector { return Selector{cat: c} }

// IsRandom reports whether the selector picks a category at random.
func (s Selector) IsRandom() bool { return s.cat == "" }

// Category returns the fixed category, or "" for a random selector.
func (s Selector) Category() Category { return s.cat }

func (s Selector) String() string {
	if s.IsRandom() {
		return Random
	}
	return string(s.cat)
}

// ParseSelector maps user input (a category name, Random or an alias) to a
// Selector. Matching is case-insensitive.
func ParseSelector(raw string) (Selector, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := selectorAliases[name]; ok {
		name = alias
	}
	if name == Random {
		return AnyCategory(), nil
	}
	if c := Category(name); c.Valid() {
		return Only(c), nil
	}
	return Selector{}, fmt.Errorf("%w %q (valid: %s)", ErrInvalidCategory, raw, validNames(true))
}

// ResolveCategory is ParseSelector restricted to concrete categories.
func ResolveCategory(raw string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := selectorAliases[name]; ok {
		name = alias
	}
	if c := Category(name); c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("%w %q (valid: %s)", ErrInvalidCategory, raw, validNames(false))
}

func validNames(withRandom bool) string {
	var names []string
	if withRandom {
		names = append(names, Random)
	}
	for _, c := range AllCategories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
