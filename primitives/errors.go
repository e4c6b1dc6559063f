// SPDX-License-Identifier: MIT
// Package: paramesh/primitives
//
// errors.go — sentinel errors for the primitives package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w wrapping at the API boundary.
//   • Constructors never panic at runtime.

package primitives

import "errors"

// ErrBadDimension indicates a non-positive width, height, depth, or
// thickness passed to a mesh constructor.
// Usage: if errors.Is(err, ErrBadDimension) { /* reject the input field */ }.
var ErrBadDimension = errors.New("primitives: dimension must be positive")

// ErrConstructFailed indicates the orchestrator could not run a constructor
// (nil constructor, or a constructor reported an internal inconsistency).
// Usage: if errors.Is(err, ErrConstructFailed) { /* programmer error */ }.
var ErrConstructFailed = errors.New("primitives: construction failed")
