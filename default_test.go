// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package mantacfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantadev/mantacfg"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	defaults := mantacfg.Defaults()

	require.NotNil(t, defaults.URL())
	assert.Equal(t, mantacfg.DefaultURL, *defaults.URL())
	require.NotNil(t, defaults.Timeout())
	assert.Equal(t, mantacfg.DefaultTimeout, *defaults.Timeout())
	require.NotNil(t, defaults.NoAuth())
	assert.False(t, *defaults.NoAuth())
	require.NotNil(t, defaults.ClientEncryptionEnabled())
	assert.False(t, *defaults.ClientEncryptionEnabled())
	require.NotNil(t, defaults.EncryptionAuthMode())
	assert.Equal(t, mantacfg.EncryptionAuthMandatory, *defaults.EncryptionAuthMode())

	// Defaults never supply account or key material.
	assert.Nil(t, defaults.User())
	assert.Nil(t, defaults.KeyID())
	assert.Nil(t, defaults.KeyContent())
	assert.Nil(t, defaults.EncryptionKeyBytes())
}

func TestDefaults_validateWithAccount(t *testing.T) {
	t.Parallel()

	ctx := mantacfg.Overlay(
		mantacfg.Defaults(),
		new(mantacfg.Settings).SetUser("alice").SetKeyID("a1:b2:c3:d4"),
	)
	assert.NoError(t, mantacfg.Validate(ctx))
}
