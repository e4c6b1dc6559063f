package edges

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/paramesh/mesh"
)

// Registry holds all user-selected edges, keyed by Line.ID.
// Construct with NewRegistry; the zero value is not usable.
type Registry struct {
	lines map[string]Line
	log   *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger routes registry diagnostics (duplicate labels) to log.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry creates an empty edge registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		lines: make(map[string]Line),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Add inserts line. Returns ErrDuplicateID when the identity already exists.
// A label collision is legal (uniqueness is the caller's concern via
// HasLabel) but logged, since two edges bound to one variable is usually an
// oversight.
func (r *Registry) Add(line Line) error {
	if _, exists := r.lines[line.ID]; exists {
		return ErrDuplicateID
	}
	if line.Label != "" && r.HasLabel(line.Label) {
		r.log.Warn("edges: label already in use by another edge",
			zap.String("label", line.Label), zap.String("id", line.ID))
	}
	r.lines[line.ID] = line

	return nil
}

// Remove deletes the edge with the given id.
func (r *Registry) Remove(id string) error {
	if _, exists := r.lines[id]; !exists {
		return ErrLineNotFound
	}
	delete(r.lines, id)

	return nil
}

// Get returns the edge with the given id.
func (r *Registry) Get(id string) (Line, error) {
	line, exists := r.lines[id]
	if !exists {
		return Line{}, ErrLineNotFound
	}

	return line, nil
}

// Len returns the number of registered edges.
func (r *Registry) Len() int { return len(r.lines) }

// Lines returns all edges ordered by ID, so recalculation passes and UI
// listings are deterministic. Complexity: O(n log n).
func (r *Registry) Lines() []Line {
	out := make([]Line, 0, len(r.lines))
	for _, line := range r.lines {
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// HasLabel reports whether any registered edge carries label. The UI layer
// calls this before assigning a label to prevent ambiguous duplicates.
func (r *Registry) HasLabel(label string) bool {
	if label == "" {
		return false
	}
	for _, line := range r.lines {
		if line.Label == label {
			return true
		}
	}

	return false
}

// UpdateValue replaces the edge's displayed value, preserving all other
// fields.
func (r *Registry) UpdateValue(id string, value float64) error {
	return r.update(id, func(l *Line) { l.Value = value })
}

// UpdateFormula replaces the edge's formula, preserving all other fields.
func (r *Registry) UpdateFormula(id, formula string) error {
	return r.update(id, func(l *Line) { l.Formula = formula })
}

// UpdateLabel replaces the edge's label, preserving all other fields.
func (r *Registry) UpdateLabel(id, label string) error {
	return r.update(id, func(l *Line) { l.Label = label })
}

// UpdateVertices replaces both endpoint coordinates, preserving all other
// fields.
func (r *Registry) UpdateVertices(id string, start, end mesh.Vec3) error {
	return r.update(id, func(l *Line) { l.Start, l.End = start, end })
}

// Put replaces the whole record for line.ID; used by the engine to write
// back a converged edge in one step.
func (r *Registry) Put(line Line) error {
	if _, exists := r.lines[line.ID]; !exists {
		return ErrLineNotFound
	}
	r.lines[line.ID] = line

	return nil
}

// update applies fn to a copy of the stored line and writes it back.
func (r *Registry) update(id string, fn func(*Line)) error {
	line, exists := r.lines[id]
	if !exists {
		return ErrLineNotFound
	}
	fn(&line)
	r.lines[id] = line

	return nil
}
