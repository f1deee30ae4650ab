// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package kv

import "log/slog"

// WithLogger provides the logger that uncoercible values are reported to.
//
// The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures a Context with specific options.
	Option  func(*options)
	options Context
)

func apply(opts []Option) options {
	option := options{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&option)
	}

	return option
}
