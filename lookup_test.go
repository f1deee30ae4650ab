// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package mantacfg_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantadev/mantacfg"
)

func TestAttribute(t *testing.T) {
	t.Parallel()

	context := mantacfg.Defaults().
		SetUser("alice").
		SetKeyID("a1:b2:c3:d4").
		SetEncryptionKeyBytes([]byte("key material"))

	testcases := []struct {
		description string
		key         string
		value       any
	}{
		{
			description: "canonical key",
			key:         mantacfg.KeyURL,
			value:       mantacfg.DefaultURL,
		},
		{
			description: "environment alias",
			key:         mantacfg.EnvKeyURL,
			value:       mantacfg.DefaultURL,
		},
		{
			description: "integer setting",
			key:         mantacfg.KeyRetries,
			value:       mantacfg.DefaultRetries,
		},
		{
			description: "boolean setting via alias",
			key:         mantacfg.EnvKeyVerifyUploads,
			value:       true,
		},
		{
			description: "enumerated setting",
			key:         mantacfg.KeyEncryptionAuthMode,
			value:       mantacfg.EncryptionAuthMandatory,
		},
		{
			description: "unset setting",
			key:         mantacfg.KeyPassword,
			value:       nil,
		},
		{
			description: "unknown key",
			key:         "manta.no_such_setting",
			value:       nil,
		},
		{
			description: "raw key bytes",
			key:         mantacfg.KeyEncryptionKeyBytes,
			value:       []byte("key material"),
		},
		{
			description: "base64 key bytes",
			key:         mantacfg.KeyEncryptionKeyBytesBase64,
			value:       base64.StdEncoding.EncodeToString([]byte("key material")),
		},
	}

	for _, testcase := range testcases {
		testcase := testcase
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testcase.value, mantacfg.Attribute(testcase.key, context))
		})
	}
}

func TestAttribute_aliasParity(t *testing.T) {
	t.Parallel()

	context := valid()
	for _, setting := range mantacfg.Schema() {
		if setting.EnvKey == "" {
			continue
		}
		assert.Equal(t,
			mantacfg.Attribute(setting.Key, context),
			mantacfg.Attribute(setting.EnvKey, context),
			"setting %s", setting.Key,
		)
	}
}

// The base64 form of absent key bytes resolves to absent,
// never to an encoding fault.
func TestAttribute_base64OfAbsentBytes(t *testing.T) {
	t.Parallel()

	assert.Nil(t, mantacfg.Attribute(mantacfg.KeyEncryptionKeyBytesBase64, new(mantacfg.Settings)))
	assert.Nil(t, mantacfg.Attribute(mantacfg.KeyEncryptionKeyBytes, new(mantacfg.Settings)))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	setting, ok := mantacfg.Lookup(mantacfg.EnvKeyTimeout)
	require.True(t, ok)
	assert.Equal(t, mantacfg.KeyTimeout, setting.Key)
	assert.Equal(t, mantacfg.KindInt, setting.Kind)

	_, ok = mantacfg.Lookup("MANTA_NO_SUCH_SETTING")
	assert.False(t, ok)
}

func TestSchema(t *testing.T) {
	t.Parallel()

	schema := mantacfg.Schema()
	require.NotEmpty(t, schema)

	seen := make(map[string]bool, 2*len(schema))
	for _, setting := range schema {
		assert.False(t, seen[setting.Key], "duplicate key %s", setting.Key)
		seen[setting.Key] = true
		if setting.EnvKey != "" {
			assert.False(t, seen[setting.EnvKey], "duplicate alias %s", setting.EnvKey)
			seen[setting.EnvKey] = true
		}
	}

	// The returned catalogue is a copy; mutating it does not touch the schema.
	schema[0] = mantacfg.Setting{}
	fresh := mantacfg.Schema()
	assert.Equal(t, mantacfg.KeyURL, fresh[0].Key)
}
