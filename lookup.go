// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package mantacfg

// Attribute finds a configuration value by key name.
//
// The key may be either the canonical form (e.g. "manta.url") or the
// environment alias (e.g. "MANTA_URL"); both resolve to the same setting.
// Unknown keys and unset values yield nil rather than an error, so generic
// lookup paths never fail on unrecognized input.
func Attribute(key string, ctx Context) any {
	setting, ok := schemaByKey[key]
	if !ok {
		return nil
	}

	return setting.Value(ctx)
}

// Lookup resolves a key name to its schema entry. It reports false for keys
// that name no recognized setting.
func Lookup(key string) (Setting, bool) {
	setting, ok := schemaByKey[key]
	if !ok {
		return Setting{}, false
	}

	return *setting, true
}
