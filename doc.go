// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package mantacfg resolves and validates the configuration of a Manta
storage-service client.

It defines a type, [Context], a read-only view over every recognized client
setting. Settings can come from whatever source is appropriate: explicit
[Settings] values, the process environment (provider/env), a plain key-value
map (provider/kv), or the built-in [Defaults]. [Overlay] composes several
contexts into one resolved view, with later contexts taking precedence over
the contexts before them.

Before a client is constructed, the resolved context must pass [Validate],
which checks every cross-field invariant and reports all failures at once as a
[ConfigurationError]. [Describe] renders a context for logs with secret
material redacted, and [Attribute] looks any setting up generically by its
canonical key or environment alias.
*/
package mantacfg
