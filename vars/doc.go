// Package vars implements the name→value scope the formula evaluator reads
// from: built-in dimension variables (W, H, D), custom parameters, and edge
// labels.
//
// The store is rebuilt from scratch on every sync cycle — clear, then
// built-ins, then parameters, then edge labels — so a name can never leak
// forward from a previous recalculation ("ghost variables"). Incremental
// partial updates are deliberately not offered.
//
// Name policy: identifiers must match ^[A-Za-z][A-Za-z0-9_]*$. An invalid
// name is refused with a warning on the injected logger and is never stored;
// this is a recoverable condition, not an error, because a single bad label
// must not block recalculation of everything else.
//
// The store is single-threaded by design, matching the engine's synchronous
// execution model; callers serialize recalculation triggers themselves.
package vars
