// Package edges maintains the registry of user-selected geometric edges:
// directed pairs of mesh vertices the user has designated as measurable,
// parametrically-controlled dimensions.
//
// Each Line carries a stable identity (minted once, preserved across
// recalculations), the shape and edge index it was picked from, an optional
// user label (which becomes a variable name), an optional formula, the
// displayed length, and the two endpoint coordinates in the shape's local
// space (base units).
//
// The registry does not enforce label uniqueness — the UI layer checks
// HasLabel before assigning, because resolving a collision (rename vs.
// reject) is an interaction decision. Adding a line whose label duplicates
// an existing one is therefore legal and only logged.
//
// Update operations are pure field replacements: each rewrites exactly the
// named field and preserves all others.
package edges
