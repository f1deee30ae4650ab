// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package kv_test

import (
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantadev/mantacfg"
	"github.com/mantadev/mantacfg/provider/kv"
)

func newContext(values map[string]any) kv.Context {
	return kv.New(values, kv.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestContext(t *testing.T) {
	t.Parallel()

	context := newContext(map[string]any{
		"manta.url":     "https://manta.example.com",
		"manta.user":    "alice/subuser",
		"manta.timeout": 4000,
		"manta.no_auth": true,
	})

	require.NotNil(t, context.URL())
	assert.Equal(t, "https://manta.example.com", *context.URL())
	require.NotNil(t, context.Timeout())
	assert.Equal(t, 4000, *context.Timeout())
	require.NotNil(t, context.NoAuth())
	assert.True(t, *context.NoAuth())
	require.NotNil(t, context.HomeDirectory())
	assert.Equal(t, "/alice", *context.HomeDirectory())

	assert.Nil(t, context.Password())
	assert.Nil(t, context.EncryptionKeyBytes())
}

func TestContext_weakCoercion(t *testing.T) {
	t.Parallel()

	context := newContext(map[string]any{
		"manta.timeout":              "4000",
		"manta.verify_uploads":       "true",
		"manta.retries":              int64(5),
		"manta.encryption_auth_mode": "Optional",
	})

	require.NotNil(t, context.Timeout())
	assert.Equal(t, 4000, *context.Timeout())
	require.NotNil(t, context.VerifyUploads())
	assert.True(t, *context.VerifyUploads())
	require.NotNil(t, context.Retries())
	assert.Equal(t, 5, *context.Retries())
	require.NotNil(t, context.EncryptionAuthMode())
	assert.Equal(t, mantacfg.EncryptionAuthOptional, *context.EncryptionAuthMode())
}

func TestContext_environmentAliases(t *testing.T) {
	t.Parallel()

	context := newContext(map[string]any{
		"MANTA_URL":  "https://manta.example.com",
		"MANTA_USER": "alice",
	})

	require.NotNil(t, context.URL())
	assert.Equal(t, "https://manta.example.com", *context.URL())
	require.NotNil(t, context.User())
	assert.Equal(t, "alice", *context.User())
}

func TestContext_canonicalKeyWinsOverAlias(t *testing.T) {
	t.Parallel()

	context := newContext(map[string]any{
		"manta.user": "alice",
		"MANTA_USER": "bob",
	})

	require.NotNil(t, context.User())
	assert.Equal(t, "alice", *context.User())
}

func TestContext_keyBytes(t *testing.T) {
	t.Parallel()

	keyBytes := []byte("key material")

	testcases := []struct {
		description string
		values      map[string]any
		expected    []byte
	}{
		{
			description: "raw bytes",
			values:      map[string]any{"manta.encryption_key_bytes": keyBytes},
			expected:    keyBytes,
		},
		{
			description: "raw string",
			values:      map[string]any{"manta.encryption_key_bytes": "key material"},
			expected:    keyBytes,
		},
		{
			description: "base64 text",
			values: map[string]any{
				"manta.encryption_key_bytes_base64": base64.StdEncoding.EncodeToString(keyBytes),
			},
			expected: keyBytes,
		},
		{
			description: "base64 text via alias",
			values: map[string]any{
				"MANTA_ENCRYPTION_KEY_BYTES": base64.StdEncoding.EncodeToString(keyBytes),
			},
			expected: keyBytes,
		},
		{
			description: "unparsable base64",
			values:      map[string]any{"manta.encryption_key_bytes_base64": "%%% not base64 %%%"},
		},
		{
			description: "absent",
			values:      map[string]any{},
		},
	}

	for _, testcase := range testcases {
		testcase := testcase
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testcase.expected, newContext(testcase.values).EncryptionKeyBytes())
		})
	}
}

func TestContext_uncoercibleValuesAreUnset(t *testing.T) {
	t.Parallel()

	context := newContext(map[string]any{
		"manta.timeout":              "soon",
		"manta.encryption_auth_mode": "Paranoid",
	})

	assert.Nil(t, context.Timeout())
	assert.Nil(t, context.EncryptionAuthMode())
}

func TestContext_unknownKeysAreIgnored(t *testing.T) {
	t.Parallel()

	context := newContext(map[string]any{
		"manta.no_such_setting": "value",
		"manta.user":            "alice",
	})

	require.NotNil(t, context.User())
	assert.Equal(t, "alice", *context.User())
	assert.Nil(t, mantacfg.Attribute("manta.no_such_setting", context))
}

func TestContext_copiesValues(t *testing.T) {
	t.Parallel()

	values := map[string]any{"manta.user": "alice"}
	context := newContext(values)
	values["manta.user"] = "mallory"

	require.NotNil(t, context.User())
	assert.Equal(t, "alice", *context.User())
}

func TestContext_validates(t *testing.T) {
	t.Parallel()

	context := mantacfg.Overlay(
		mantacfg.Defaults(),
		newContext(map[string]any{
			"manta.user":   "alice",
			"manta.key_id": "a1:b2:c3:d4",
		}),
	)
	assert.NoError(t, mantacfg.Validate(context))
}
