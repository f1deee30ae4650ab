// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package env_test

import (
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantadev/mantacfg"
	"github.com/mantadev/mantacfg/provider/env"
)

func newContext(environ map[string]string) env.Context {
	return env.New(
		env.WithLookup(func(name string) (string, bool) {
			value, ok := environ[name]

			return value, ok
		}),
		env.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func TestContext(t *testing.T) {
	t.Parallel()

	keyBytes := []byte("key material")
	context := newContext(map[string]string{
		"MANTA_URL":                  "https://manta.example.com",
		"MANTA_USER":                 "alice/subuser",
		"MANTA_KEY_ID":               "a1:b2:c3:d4",
		"MANTA_TIMEOUT":              "4000",
		"MANTA_NO_AUTH":              "true",
		"MANTA_VERIFY_UPLOADS":       "false",
		"MANTA_ENCRYPTION_AUTH_MODE": "Optional",
		"MANTA_ENCRYPTION_KEY_BYTES": base64.StdEncoding.EncodeToString(keyBytes),
	})

	require.NotNil(t, context.URL())
	assert.Equal(t, "https://manta.example.com", *context.URL())
	require.NotNil(t, context.User())
	assert.Equal(t, "alice/subuser", *context.User())
	require.NotNil(t, context.Timeout())
	assert.Equal(t, 4000, *context.Timeout())
	require.NotNil(t, context.NoAuth())
	assert.True(t, *context.NoAuth())
	require.NotNil(t, context.VerifyUploads())
	assert.False(t, *context.VerifyUploads())
	require.NotNil(t, context.EncryptionAuthMode())
	assert.Equal(t, mantacfg.EncryptionAuthOptional, *context.EncryptionAuthMode())
	assert.Equal(t, keyBytes, context.EncryptionKeyBytes())

	require.NotNil(t, context.HomeDirectory())
	assert.Equal(t, "/alice", *context.HomeDirectory())

	// Variables that are not set stay unset.
	assert.Nil(t, context.Password())
	assert.Nil(t, context.Retries())
	assert.Nil(t, context.ClientEncryptionEnabled())
}

func TestContext_emptyValueIsUnset(t *testing.T) {
	t.Parallel()

	context := newContext(map[string]string{
		"MANTA_URL":  "",
		"MANTA_USER": "alice",
	})

	assert.Nil(t, context.URL())
	require.NotNil(t, context.User())
	assert.Equal(t, "alice", *context.User())
}

func TestContext_unparsableValuesAreUnset(t *testing.T) {
	t.Parallel()

	context := newContext(map[string]string{
		"MANTA_TIMEOUT":              "soon",
		"MANTA_NO_AUTH":              "yes please",
		"MANTA_ENCRYPTION_AUTH_MODE": "Paranoid",
		"MANTA_ENCRYPTION_KEY_BYTES": "%%% not base64 %%%",
	})

	assert.Nil(t, context.Timeout())
	assert.Nil(t, context.NoAuth())
	assert.Nil(t, context.EncryptionAuthMode())
	assert.Nil(t, context.EncryptionKeyBytes())
}

func TestContext_attributeParity(t *testing.T) {
	t.Parallel()

	context := newContext(map[string]string{
		"MANTA_URL": "https://manta.example.com",
	})

	assert.Equal(t,
		mantacfg.Attribute("manta.url", context),
		mantacfg.Attribute("MANTA_URL", context),
	)
}

func TestContext_processEnvironment(t *testing.T) {
	t.Setenv("MANTA_USER", "alice")

	context := env.New()
	require.NotNil(t, context.User())
	assert.Equal(t, "alice", *context.User())
}
