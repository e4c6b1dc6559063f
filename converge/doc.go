// Package converge implements the recalculation core of the parametric
// engine: one bounded fixed-point iteration that re-derives every custom
// parameter, every formula-driven edge, and the mesh vertices encoding
// them, after any input change.
//
// One call to Recalculate is one convergence pass:
//
//  1. Sync the variable scope from scratch: built-in dimensions (W, H, D),
//     then custom parameters with a last-known result, then edge labels.
//     Built-ins take precedence; a colliding parameter or label is skipped
//     with a WarnShadowedBuiltin warning instead of silently shadowing.
//  2. Evaluate every parameter's formula against the growing scope and feed
//     each result back in, so parameters may depend on each other within
//     the same pass. Parameters update on any difference — no tolerance.
//  3. Iterate, at most MaxIterations times:
//     a. evaluate each edge formula; skip failures, non-positive results,
//     and sub-tolerance changes; freeze an edge whose proposed value
//     matches any value already proposed for it in this pass (a circular
//     dependency); otherwise record a vertex move along the edge's
//     anchor policy (see AnchorVertices);
//     b. apply the pending moves per shape in one cloned mesh, then write
//     the new value and moving endpoint back into the edge;
//     c. re-measure every edge not touched in (a): re-attach its endpoints
//     to the nearest vertices of its (possibly just-rewritten) mesh and
//     adopt the recomputed length when it moved beyond tolerance — this
//     keeps edges whose geometry moved as a side effect consistent
//     without an explicit constraint graph;
//     d. stop when (a) and (c) changed nothing.
//
// Why re-measure: edges are not independent. Moving one edge's endpoint can
// change the measured length of an unrelated edge sharing a vertex;
// re-measuring after every formula pass is what keeps all edges consistent.
//
// Failure policy: there are no fatal conditions. Bad formulas, cycles,
// missing meshes, and cap exhaustion all degrade to "keep the last good
// value", are reported as structured Warnings in the Result, and are logged
// on the injected zap logger. The only error Recalculate returns is
// ErrBadOptions for unusable option values.
//
// Execution model: single-threaded, synchronous, no I/O, no cancellation;
// the iteration cap is the only bound on latency. Callers serialize
// recalculation triggers themselves (debounce or disable controls).
package converge
