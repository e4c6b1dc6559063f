// SPDX-License-Identifier: MIT
// Package: paramesh/primitives
//
// options.go — functional options resolved into an immutable config.

package primitives

import "github.com/katalvlaran/paramesh/mesh"

// Option configures mesh construction before any constructor runs.
type Option func(*config)

// config is the resolved, immutable construction configuration.
type config struct {
	origin mesh.Vec3
}

// newConfig resolves opts over the defaults (origin at the local zero).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOrigin places the minimum corner of subsequently built primitives at
// origin instead of the local zero.
func WithOrigin(origin mesh.Vec3) Option {
	return func(c *config) { c.origin = origin }
}
