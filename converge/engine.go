package converge

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/paramesh/edges"
	"github.com/katalvlaran/paramesh/expr"
	"github.com/katalvlaran/paramesh/mesh"
	"github.com/katalvlaran/paramesh/units"
	"github.com/katalvlaran/paramesh/vars"
)

// Recalculate — one full convergence pass
//
// Description:
//
//	Re-derives every parameter result, every formula-driven edge value, and
//	the affected mesh vertices from the given input state, iterating until
//	no value moves beyond Tolerance or MaxIterations is reached. The input
//	is never mutated; the Result carries updated copies plus replacement
//	meshes for exactly the shapes whose geometry changed.
//
// See the package documentation for the full algorithm outline.
//
// Errors:
//   - ErrBadOptions — MaxIterations < 1 or Tolerance <= 0.
//
// Every other failure mode is recoverable and surfaces as a Warning; a
// single bad formula never blocks recalculation of everything else.
//
// Complexity per iteration: O(E·F + S·(V + T)) for E edges with formulas of
// length F, over S touched shapes with V vertices and T triangles.
func Recalculate(in Input, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxIterations < 1 {
		return Result{}, fmt.Errorf("%w: MaxIterations must be >= 1", ErrBadOptions)
	}
	if o.Tolerance <= 0 {
		return Result{}, fmt.Errorf("%w: Tolerance must be > 0", ErrBadOptions)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	conv := in.Units
	if conv.ToBase == nil || conv.ToDisplay == nil {
		conv = units.Identity()
	}

	r := &recalc{
		opts:     o,
		conv:     conv,
		log:      o.Logger,
		store:    vars.NewStore(vars.WithLogger(o.Logger)),
		history:  make(map[string][]float64),
		frozen:   make(map[string]struct{}),
		warnedOn: make(map[string]struct{}),
	}

	// Working copies: the caller keeps its input for diffing or undo.
	params := cloneParameters(in.Parameters)
	lines := append([]edges.Line(nil), in.Edges...)
	meshes := make(map[string]*mesh.Mesh, len(in.Meshes))
	for id, m := range in.Meshes {
		meshes[id] = m // shared until a shape is rewritten
	}
	changed := make(map[string]struct{})

	// Steps 1–2: fresh scope, then the parameter pass.
	r.syncVariables(in.Dims, params, lines)
	r.evalParameters(params)

	// Step 3: the fixed-point loop.
	iterations := 0
	settled := false
	for iterations < o.MaxIterations {
		iterations++
		touched := r.formulaPass(lines, meshes, changed)
		measured := r.measurePass(lines, meshes, touched)
		if len(touched) == 0 && !measured {
			settled = true
			break
		}
	}
	if !settled {
		r.warn(Warning{
			Kind:   WarnMaxIterations,
			Detail: fmt.Sprintf("reached maximum iterations (%d) before stabilizing", o.MaxIterations),
		})
	}

	// Hand back replacement meshes only for shapes that actually changed.
	outMeshes := make(map[string]*mesh.Mesh, len(changed))
	for id := range changed {
		outMeshes[id] = meshes[id]
	}

	return Result{
		Parameters: params,
		Edges:      lines,
		Meshes:     outMeshes,
		Warnings:   r.warnings,
		Iterations: iterations,
	}, nil
}

// recalc carries the per-pass state of one Recalculate call.
type recalc struct {
	opts Options
	conv units.Converter
	log  *zap.Logger

	store *vars.Store

	// history holds, per edge, every value proposed earlier in this pass;
	// a re-proposed value (within tolerance) is a circular dependency.
	history map[string][]float64
	// frozen edges take no further formula updates this pass.
	frozen map[string]struct{}
	// warnedOn dedupes repeating per-record warnings across iterations.
	warnedOn map[string]struct{}

	warnings []Warning
}

// warn records w and mirrors it onto the logger.
func (r *recalc) warn(w Warning) {
	r.warnings = append(r.warnings, w)
	r.log.Warn("converge: "+w.Detail,
		zap.Stringer("kind", w.Kind),
		zap.String("edge_id", w.EdgeID),
		zap.String("name", w.Name))
}

// warnOnce records w only the first time key is seen this pass.
func (r *recalc) warnOnce(key string, w Warning) {
	if _, seen := r.warnedOn[key]; seen {
		return
	}
	r.warnedOn[key] = struct{}{}
	r.warn(w)
}

// syncVariables rebuilds the scope from scratch: built-ins first, then
// parameters with a known result, then edge labels. A parameter or label
// colliding with a built-in is skipped — the dimension value always wins —
// and reported, never silently shadowed.
func (r *recalc) syncVariables(dims Dimensions, params []Parameter, lines []edges.Line) {
	r.store.Clear()

	r.store.Set(vars.DimWidth, r.conv.ToDisplay(dims.W))
	r.store.Set(vars.DimHeight, r.conv.ToDisplay(dims.H))
	r.store.Set(vars.DimDepth, r.conv.ToDisplay(dims.D))

	for i := range params {
		p := &params[i]
		if p.Name == "" || strings.TrimSpace(p.Formula) == "" || p.Result == nil {
			continue
		}
		if r.shadowsBuiltin(p.Name, "", "parameter") {
			continue
		}
		r.store.Set(p.Name, *p.Result)
	}

	for i := range lines {
		e := &lines[i]
		if e.Label == "" {
			continue
		}
		if r.shadowsBuiltin(e.Label, e.ID, "edge label") {
			continue
		}
		r.store.Set(e.Label, e.Value)
	}
}

// shadowsBuiltin reports and dedupes a W/H/D collision.
func (r *recalc) shadowsBuiltin(name, edgeID, source string) bool {
	if !vars.IsBuiltin(name) {
		return false
	}
	r.warnOnce("shadow/"+name+"/"+edgeID, Warning{
		Kind:   WarnShadowedBuiltin,
		EdgeID: edgeID,
		Name:   name,
		Detail: fmt.Sprintf("%s %q collides with a built-in dimension; the dimension value wins", source, name),
	})

	return true
}

// evalParameters runs the parameter pass: every formula is evaluated against
// the current scope, the stored result updates on any difference (no
// tolerance — parameters always reflect their latest formula value), and
// the new value feeds back into the scope so parameters can chain within
// one pass. Failures keep the previous result.
func (r *recalc) evalParameters(params []Parameter) {
	for i := range params {
		p := &params[i]
		if strings.TrimSpace(p.Formula) == "" {
			continue
		}
		v, err := expr.Evaluate(p.Formula, r.store.Scope())
		if err != nil {
			r.warnOnce("param/"+p.ID, Warning{
				Kind:   WarnFormula,
				Name:   p.Name,
				Detail: fmt.Sprintf("parameter %q formula %q: %v; keeping previous result", p.Name, p.Formula, err),
			})
			continue
		}
		if p.Result == nil || *p.Result != v {
			result := v
			p.Result = &result
		}
		if p.Name == "" || r.shadowsBuiltin(p.Name, "", "parameter") {
			continue
		}
		r.store.Set(p.Name, v)
	}
}

// edgeUpdate is one pending edge rewrite produced by the formula pass.
type edgeUpdate struct {
	idx       int
	value     float64   // display units
	newPos    mesh.Vec3 // base units
	movingEnd bool
}

// formulaPass is iteration step (a)+(b): evaluate every edge formula,
// detect cycles, collect vertex moves, apply them per shape in one cloned
// mesh, and write values/endpoints back. It returns the set of edge IDs
// updated this iteration.
func (r *recalc) formulaPass(lines []edges.Line, meshes map[string]*mesh.Mesh, changed map[string]struct{}) map[string]struct{} {
	scope := r.store.Scope()
	pending := make(map[string][]mesh.VertexMove)
	var updates []edgeUpdate

	for i := range lines {
		e := &lines[i]
		if strings.TrimSpace(e.Formula) == "" {
			continue
		}
		if _, isFrozen := r.frozen[e.ID]; isFrozen {
			continue
		}

		v, err := expr.Evaluate(e.Formula, scope)
		if err != nil {
			r.warnOnce("edge/"+e.ID, Warning{
				Kind:   WarnFormula,
				EdgeID: e.ID,
				Name:   e.Label,
				Detail: fmt.Sprintf("edge formula %q: %v; keeping previous value", e.Formula, err),
			})
			continue
		}
		if v <= 0 {
			r.warnOnce("edge/"+e.ID, Warning{
				Kind:   WarnFormula,
				EdgeID: e.ID,
				Name:   e.Label,
				Detail: fmt.Sprintf("edge formula %q produced non-positive length %g; keeping previous value", e.Formula, v),
			})
			continue
		}
		if math.Abs(v-e.Value) <= r.opts.Tolerance {
			continue
		}

		// The mesh check runs before cycle detection: a meshless edge never
		// proposes a value, so re-evaluating it on a later iteration cannot
		// masquerade as a circular dependency.
		if meshes[e.ShapeID] == nil {
			r.warnOnce("mesh/"+e.ShapeID, Warning{
				Kind:   WarnMissingMesh,
				EdgeID: e.ID,
				Detail: fmt.Sprintf("shape %q has no mesh; skipping its edges", e.ShapeID),
			})
			continue
		}

		// Cycle detection: a value already proposed for this edge earlier
		// in this pass means the formulas chase each other.
		if r.seenBefore(e.ID, v) {
			r.frozen[e.ID] = struct{}{}
			refs, _ := expr.Vars(e.Formula)
			r.warnOnce("cycle/"+e.ID, Warning{
				Kind:   WarnCycle,
				EdgeID: e.ID,
				Name:   e.Label,
				Detail: fmt.Sprintf("circular dependency on edge formula %q (references %v); freezing at %g", e.Formula, refs, e.Value),
			})
			continue
		}
		r.history[e.ID] = append(r.history[e.ID], v)

		fixed, moving, movingEnd := AnchorVertices(e.Start, e.End)
		dir := moving.Sub(fixed).Normalize()
		if dir == (mesh.Vec3{}) {
			r.warnOnce("edge/"+e.ID, Warning{
				Kind:   WarnFormula,
				EdgeID: e.ID,
				Name:   e.Label,
				Detail: "edge endpoints coincide; cannot derive a direction",
			})
			continue
		}
		newPos := fixed.Add(dir.Scale(r.conv.ToBase(v)))
		pending[e.ShapeID] = append(pending[e.ShapeID], mesh.VertexMove{Old: moving, New: newPos})
		updates = append(updates, edgeUpdate{idx: i, value: v, newPos: newPos, movingEnd: movingEnd})
	}

	// Apply moves grouped per shape: one clone, one batched rewrite.
	for shapeID, moves := range pending {
		meshes[shapeID] = meshes[shapeID].ApplyVertexMoves(moves)
		changed[shapeID] = struct{}{}
	}

	touched := make(map[string]struct{}, len(updates))
	for _, u := range updates {
		e := &lines[u.idx]
		e.Value = u.value
		if u.movingEnd {
			e.End = u.newPos
		} else {
			e.Start = u.newPos
		}
		touched[e.ID] = struct{}{}
		if e.Label != "" && !vars.IsBuiltin(e.Label) {
			r.store.Set(e.Label, u.value)
		}
	}

	return touched
}

// measurePass is iteration step (c): every edge not touched by a formula
// update re-attaches its endpoints to the nearest vertices of its shape's
// current mesh and adopts the recomputed length when it moved beyond
// tolerance. Returns whether anything changed.
func (r *recalc) measurePass(lines []edges.Line, meshes map[string]*mesh.Mesh, touched map[string]struct{}) bool {
	updated := false
	for i := range lines {
		e := &lines[i]
		if _, wasTouched := touched[e.ID]; wasTouched {
			continue
		}
		m := meshes[e.ShapeID]
		if m == nil {
			continue
		}
		_, sv, err := m.ClosestVertex(e.Start)
		if err != nil {
			continue
		}
		_, ev, err := m.ClosestVertex(e.End)
		if err != nil {
			continue
		}
		newVal := r.conv.ToDisplay(sv.Distance(ev))
		if math.Abs(newVal-e.Value) <= r.opts.Tolerance {
			continue
		}
		e.Value = newVal
		e.Start, e.End = sv, ev
		if e.Label != "" && !vars.IsBuiltin(e.Label) {
			r.store.Set(e.Label, newVal)
		}
		updated = true
	}

	return updated
}

// seenBefore reports whether v matches (within tolerance) a value already
// proposed for edge id in this pass.
func (r *recalc) seenBefore(id string, v float64) bool {
	for _, h := range r.history[id] {
		if math.Abs(v-h) <= r.opts.Tolerance {
			return true
		}
	}

	return false
}

// cloneParameters deep-copies the parameter slice, including Result
// pointers, so the caller's records stay untouched.
func cloneParameters(in []Parameter) []Parameter {
	out := append([]Parameter(nil), in...)
	for i := range out {
		if out[i].Result != nil {
			v := *out[i].Result
			out[i].Result = &v
		}
	}

	return out
}
