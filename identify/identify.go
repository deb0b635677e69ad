// Package identify implements the multi-grammar dispatcher: it tries each
// registered identifier grammar in order against an input string and returns
// the first success, or the most informative failure when every grammar
// rejects the input.
package identify

import (
	"errors"

	"github.com/earthobs/eoid"
	"github.com/earthobs/eoid/mission/landsat"
	"github.com/earthobs/eoid/mission/sentinel2"
	"github.com/earthobs/eoid/mission/sentinel3"
)

// Error codes used by identify:
const (
	// NoMatchError indicates that every registered grammar rejected the
	// input. The error wraps the failure that got furthest into the input.
	NoMatchError = eoid.IdentifyErrors + iota
)

// Grammar is one identifier format. Attempt parses a prefix of s and returns
// the decoded identifier together with the unconsumed suffix (trailing
// content such as file extensions is allowed and left to the caller), or a
// positioned error. Attempt must be a pure function: grammars in a registry
// are used concurrently without locking.
type Grammar struct {
	// Name identifies the grammar, e.g. in registry configuration.
	Name string

	Attempt func(s string) (eoid.Identifier, string, error)
}

// Registry is a fixed ordered list of grammars. Order encodes priority:
// when several grammars could accept an input the earliest one wins, and
// offset ties between failures are broken in favor of the earlier grammar.
// A Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	grammars []Grammar
}

// NewRegistry creates a registry trying the given grammars in the given order.
func NewRegistry(grammars ...Grammar) *Registry {
	gs := make([]Grammar, len(grammars))
	copy(gs, grammars)
	return &Registry{grammars: gs}
}

// Names returns the names of the registered grammars in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.grammars))
	for i, g := range r.grammars {
		names[i] = g.Name
	}
	return names
}

// Resolve dispatches s to the registered grammars and returns the first
// successful parse. When every grammar fails it returns a NoMatchError
// wrapping the failure with the largest offset; ties are broken in favor of
// the grammar registered first.
func (r *Registry) Resolve(s string) (eoid.Identifier, error) {
	ident, _, err := r.ResolveNamed(s)
	return ident, err
}

// ResolveNamed is Resolve, additionally reporting the name of the grammar
// that matched.
func (r *Registry) ResolveNamed(s string) (eoid.Identifier, string, error) {
	var best *eoid.Error
	for _, g := range r.grammars {
		ident, _, err := g.Attempt(s)
		if err == nil {
			return ident, g.Name, nil
		}
		pe := asError(err)
		if best == nil || pe.Offset > best.Offset {
			best = pe
		}
	}
	if best == nil {
		return nil, "", eoid.FormatError(NoMatchError, 0, "no grammars registered")
	}
	return nil, "", &eoid.Error{
		Code:    NoMatchError,
		Message: "no identifier grammar matched: " + best.Message,
		Offset:  best.Offset,
		Needed:  best.Needed,
		Err:     best,
	}
}

// asError normalizes a grammar failure onto the positioned error model.
// Foreign errors (from independently authored grammars) get offset 0.
func asError(err error) *eoid.Error {
	var pe *eoid.Error
	if errors.As(err, &pe) {
		return pe
	}
	return &eoid.Error{Code: NoMatchError, Message: err.Error(), Err: err}
}

func attempt[T eoid.Identifier](p func(string, int) (T, int, error)) func(string) (eoid.Identifier, string, error) {
	return func(s string) (eoid.Identifier, string, error) {
		v, pos, err := p(s, 0)
		if err != nil {
			return nil, s, err
		}
		return v, s[pos:], nil
	}
}

// DefaultGrammars returns the built-in grammars in the fixed default order:
// Sentinel-2 product, Sentinel-3 product, Landsat product, Landsat scene.
// Products come before the bare Landsat scene so that the more specific
// layouts take priority on overlapping prefixes.
func DefaultGrammars() []Grammar {
	return []Grammar{
		{Name: "sentinel2-product", Attempt: attempt(sentinel2.ParseProduct)},
		{Name: "sentinel3-product", Attempt: attempt(sentinel3.ParseProduct)},
		{Name: "landsat-product", Attempt: attempt(landsat.ParseProduct)},
		{Name: "landsat-scene", Attempt: attempt(landsat.ParseSceneID)},
	}
}

var defaultRegistry = NewRegistry(DefaultGrammars()...)

// Resolve dispatches s to the default registry, see Registry.Resolve.
func Resolve(s string) (eoid.Identifier, error) {
	return defaultRegistry.Resolve(s)
}
