// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package redact renders secret configuration material for diagnostics.
// Secrets are only ever reported by presence or by length, never by value.
package redact

import "strconv"

// Presence reports a secret as "non-null" when it is set and "null" otherwise.
func Presence(set bool) string {
	if set {
		return "non-null"
	}

	return "null"
}

// Bytes reports a secret byte slice by its length only,
// with a literal marker for the absent value.
func Bytes(b []byte) string {
	if b == nil {
		return "null object"
	}

	return strconv.Itoa(len(b))
}
