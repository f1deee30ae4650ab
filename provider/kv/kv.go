// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package kv reads client settings from a plain key-value map.
//
// Keys may be canonical (e.g. "manta.url") or environment aliases
// (e.g. "MANTA_URL"); both address the same setting, with the canonical form
// winning when a map carries both. Values are coerced weakly, so a map loaded
// from a properties file can hold "8080" for an integer setting or "true" for
// a boolean one. Values that cannot be coerced are logged and treated as
// unset rather than failing the whole context.
package kv

import (
	"encoding/base64"
	"errors"
	"log/slog"

	"github.com/go-viper/mapstructure/v2"

	"github.com/mantadev/mantacfg"
)

// Context is a [mantacfg.Context] backed by a key-value map.
type Context struct {
	values map[string]any
	logger *slog.Logger
}

var _ mantacfg.Context = Context{}

// New returns a Context over the given map with the given Option(s).
// The map is copied; later changes to it are not observed.
func New(values map[string]any, opts ...Option) Context {
	context := Context(apply(opts))
	context.values = make(map[string]any, len(values))
	// Normalize aliases to canonical keys so each setting has one slot.
	// A canonical entry wins over an alias entry for the same setting.
	for key, value := range values {
		setting, known := mantacfg.Lookup(key)
		if !known {
			continue
		}
		if key == setting.Key {
			context.values[setting.Key] = value
		} else if _, exists := values[setting.Key]; !exists {
			context.values[setting.Key] = value
		}
	}

	return context
}

func (c Context) URL() *string { return str(c, mantacfg.KeyURL) }
func (c Context) User() *string { return str(c, mantacfg.KeyUser) }
func (c Context) KeyID() *string { return str(c, mantacfg.KeyKeyID) }
func (c Context) KeyPath() *string { return str(c, mantacfg.KeyKeyPath) }
func (c Context) KeyContent() *string {
	return str(c, mantacfg.KeyKeyContent)
}
func (c Context) Password() *string { return str(c, mantacfg.KeyPassword) }
func (c Context) Timeout() *int { return integer(c, mantacfg.KeyTimeout) }
func (c Context) HomeDirectory() *string {
	return mantacfg.DeriveHomeDirectory(c.User())
}
func (c Context) Retries() *int { return integer(c, mantacfg.KeyRetries) }
func (c Context) MaxConnections() *int {
	return integer(c, mantacfg.KeyMaxConnections)
}
func (c Context) HTTPBufferSize() *int {
	return integer(c, mantacfg.KeyHTTPBufferSize)
}
func (c Context) HTTPSProtocols() *string {
	return str(c, mantacfg.KeyHTTPSProtocols)
}
func (c Context) HTTPSCipherSuites() *string {
	return str(c, mantacfg.KeyHTTPSCipherSuites)
}
func (c Context) NoAuth() *bool { return boolean(c, mantacfg.KeyNoAuth) }
func (c Context) DisableNativeSignatures() *bool {
	return boolean(c, mantacfg.KeyDisableNativeSignatures)
}
func (c Context) TCPSocketTimeout() *int {
	return integer(c, mantacfg.KeyTCPSocketTimeout)
}
func (c Context) VerifyUploads() *bool {
	return boolean(c, mantacfg.KeyVerifyUploads)
}
func (c Context) UploadBufferSize() *int {
	return integer(c, mantacfg.KeyUploadBufferSize)
}
func (c Context) ClientEncryptionEnabled() *bool {
	return boolean(c, mantacfg.KeyClientEncryption)
}
func (c Context) PermitUnencryptedDownloads() *bool {
	return boolean(c, mantacfg.KeyPermitUnencryptedDownloads)
}

func (c Context) EncryptionAuthMode() *mantacfg.EncryptionAuthMode {
	return decodeValue[mantacfg.EncryptionAuthMode](c, mantacfg.KeyEncryptionAuthMode)
}

func (c Context) EncryptionKeyID() *string {
	return str(c, mantacfg.KeyEncryptionKeyID)
}

func (c Context) EncryptionKeyPath() *string {
	return str(c, mantacfg.KeyEncryptionKeyPath)
}

// EncryptionKeyBytes answers from the raw-bytes slot first and falls back to
// decoding the base64 text slot.
func (c Context) EncryptionKeyBytes() []byte {
	if value, ok := c.values[mantacfg.KeyEncryptionKeyBytes]; ok && value != nil {
		switch bytes := value.(type) {
		case []byte:
			return bytes
		case string:
			return []byte(bytes)
		default:
			c.warn(mantacfg.KeyEncryptionKeyBytes, errNotBytes)

			return nil
		}
	}

	encoded := str(c, mantacfg.KeyEncryptionKeyBytesBase64)
	if encoded == nil {
		return nil
	}

	decoded, err := base64.StdEncoding.DecodeString(*encoded)
	if err != nil {
		c.warn(mantacfg.KeyEncryptionKeyBytesBase64, err)

		return nil
	}

	return decoded
}

func (c Context) String() string {
	return "kv"
}

func str(c Context, key string) *string { return decodeValue[string](c, key) }
func integer(c Context, key string) *int { return decodeValue[int](c, key) }
func boolean(c Context, key string) *bool { return decodeValue[bool](c, key) }

func decodeValue[T any](c Context, key string) *T {
	value, ok := c.values[key]
	if !ok || value == nil {
		return nil
	}

	var decoded T
	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           &decoded,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		},
	)
	if err != nil {
		c.warn(key, err)

		return nil
	}
	if err := decoder.Decode(value); err != nil {
		c.warn(key, err)

		return nil
	}

	return &decoded
}

func (c Context) warn(key string, err error) {
	c.logger.Warn("Ignoring uncoercible configuration value.",
		"key", key,
		"error", err,
	)
}

var errNotBytes = errors.New("value is neither []byte nor string")
