// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package mantacfg

import "strings"

// subaccountDelimiter separates the primary account from a subuser
// in an account name like "alice/subuser".
const subaccountDelimiter = "/"

// ParseAccount splits an account name into its primary account and,
// when present, its subuser.
func ParseAccount(user string) []string {
	return strings.Split(user, subaccountDelimiter)
}

// DeriveHomeDirectory maps an account name to its canonical root path:
// the primary account prefixed with a single path separator.
// A nil account yields a nil home directory.
func DeriveHomeDirectory(user *string) *string {
	if user == nil {
		return nil
	}

	home := subaccountDelimiter + ParseAccount(*user)[0]

	return &home
}
