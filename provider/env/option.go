// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package env

import (
	"log/slog"
	"os"
)

// WithLookup provides the function used to look environment variables up.
//
// The default is [os.LookupEnv]; tests inject a lookup over a fixed map
// instead of mutating the process environment.
func WithLookup(lookup func(name string) (string, bool)) Option {
	return func(options *options) {
		options.lookup = lookup
	}
}

// WithLogger provides the logger that unparsable variables are reported to.
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
		lookup: os.LookupEnv,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&option)
	}

	return option
}
