package vars

import (
	"regexp"
	"sort"

	"go.uber.org/zap"
)

// Built-in dimension variable names. They are populated first on every sync
// and take precedence over same-named parameters and edge labels.
const (
	DimWidth  = "W"
	DimHeight = "H"
	DimDepth  = "D"
)

// identRE is the identifier shape shared with the expr lexer.
var identRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// IsValidName reports whether name is a storable variable name.
func IsValidName(name string) bool { return identRE.MatchString(name) }

// IsBuiltin reports whether name is one of the built-in dimension variables.
func IsBuiltin(name string) bool {
	return name == DimWidth || name == DimHeight || name == DimDepth
}

// Variable is one name→value binding, as exposed by Snapshot.
type Variable struct {
	Name  string
	Value float64
}

// Store maps variable names to their current numeric values.
// The zero value is not usable; construct with NewStore.
type Store struct {
	values map[string]float64
	log    *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes the store's warnings (invalid names) to log.
// The default is a no-op logger; the store never fails, it only warns.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore creates an empty variable store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		values: make(map[string]float64),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Set stores value under name. A syntactically invalid name is refused with
// a warning and the store is left unchanged; a repeated valid name
// overwrites silently. Complexity: O(1).
func (s *Store) Set(name string, value float64) {
	if !IsValidName(name) {
		s.log.Warn("vars: refusing invalid variable name", zap.String("name", name))
		return
	}
	s.values[name] = value
}

// Get returns the value bound to name and whether it is present.
func (s *Store) Get(name string) (float64, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Clear empties the store. Called at the start of every sync cycle so stale
// names cannot leak forward.
func (s *Store) Clear() {
	s.values = make(map[string]float64)
}

// Len returns the number of stored variables.
func (s *Store) Len() int { return len(s.values) }

// Snapshot returns all bindings ordered by name, for diagnostics and UI
// display. Complexity: O(n log n).
func (s *Store) Snapshot() []Variable {
	out := make([]Variable, 0, len(s.values))
	for name, value := range s.values {
		out = append(out, Variable{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Scope returns a copy of the bindings as the map the expr evaluator
// consumes. The copy keeps evaluation pure: a formula can never write back
// into the store. Complexity: O(n).
func (s *Store) Scope() map[string]float64 {
	scope := make(map[string]float64, len(s.values))
	for name, value := range s.values {
		scope[name] = value
	}

	return scope
}
