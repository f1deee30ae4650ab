// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package env reads client settings from environment variables.
//
// Each setting is read through its environment alias (e.g. MANTA_URL for
// manta.url). Environment variables with an empty value are treated as unset.
// Values that cannot be parsed into the setting's type are logged and treated
// as unset rather than failing the whole context; [mantacfg.Validate] reports
// anything that is still missing afterwards.
package env

import (
	"encoding/base64"
	"log/slog"
	"strconv"

	"github.com/mantadev/mantacfg"
)

// Context is a [mantacfg.Context] backed by the process environment.
type Context struct {
	lookup func(string) (string, bool)
	logger *slog.Logger
}

var _ mantacfg.Context = Context{}

// New returns a Context with the given Option(s).
func New(opts ...Option) Context {
	return Context(apply(opts))
}

func (c Context) URL() *string { return c.str(mantacfg.EnvKeyURL) }
func (c Context) User() *string { return c.str(mantacfg.EnvKeyUser) }
func (c Context) KeyID() *string { return c.str(mantacfg.EnvKeyKeyID) }
func (c Context) KeyPath() *string { return c.str(mantacfg.EnvKeyKeyPath) }
func (c Context) KeyContent() *string {
	return c.str(mantacfg.EnvKeyKeyContent)
}
func (c Context) Password() *string { return c.str(mantacfg.EnvKeyPassword) }
func (c Context) Timeout() *int { return c.integer(mantacfg.EnvKeyTimeout) }
func (c Context) HomeDirectory() *string {
	return mantacfg.DeriveHomeDirectory(c.User())
}
func (c Context) Retries() *int { return c.integer(mantacfg.EnvKeyRetries) }
func (c Context) MaxConnections() *int {
	return c.integer(mantacfg.EnvKeyMaxConnections)
}
func (c Context) HTTPBufferSize() *int {
	return c.integer(mantacfg.EnvKeyHTTPBufferSize)
}
func (c Context) HTTPSProtocols() *string {
	return c.str(mantacfg.EnvKeyHTTPSProtocols)
}
func (c Context) HTTPSCipherSuites() *string {
	return c.str(mantacfg.EnvKeyHTTPSCipherSuites)
}
func (c Context) NoAuth() *bool { return c.boolean(mantacfg.EnvKeyNoAuth) }
func (c Context) DisableNativeSignatures() *bool {
	return c.boolean(mantacfg.EnvKeyDisableNativeSignatures)
}
func (c Context) TCPSocketTimeout() *int {
	return c.integer(mantacfg.EnvKeyTCPSocketTimeout)
}
func (c Context) VerifyUploads() *bool {
	return c.boolean(mantacfg.EnvKeyVerifyUploads)
}
func (c Context) UploadBufferSize() *int {
	return c.integer(mantacfg.EnvKeyUploadBufferSize)
}
func (c Context) ClientEncryptionEnabled() *bool {
	return c.boolean(mantacfg.EnvKeyClientEncryption)
}
func (c Context) PermitUnencryptedDownloads() *bool {
	return c.boolean(mantacfg.EnvKeyPermitUnencryptedDownloads)
}

func (c Context) EncryptionAuthMode() *mantacfg.EncryptionAuthMode {
	value := c.str(mantacfg.EnvKeyEncryptionAuthMode)
	if value == nil {
		return nil
	}

	mode, err := mantacfg.ParseEncryptionAuthMode(*value)
	if err != nil {
		c.warn(mantacfg.EnvKeyEncryptionAuthMode, err)

		return nil
	}

	return &mode
}

func (c Context) EncryptionKeyID() *string {
	return c.str(mantacfg.EnvKeyEncryptionKeyID)
}

func (c Context) EncryptionKeyPath() *string {
	return c.str(mantacfg.EnvKeyEncryptionKeyPath)
}

// EncryptionKeyBytes decodes the base64 alias, since raw key bytes cannot
// ride an environment variable.
func (c Context) EncryptionKeyBytes() []byte {
	value := c.str(mantacfg.EnvKeyEncryptionKeyBytesBase64)
	if value == nil {
		return nil
	}

	decoded, err := base64.StdEncoding.DecodeString(*value)
	if err != nil {
		c.warn(mantacfg.EnvKeyEncryptionKeyBytesBase64, err)

		return nil
	}

	return decoded
}

func (c Context) str(name string) *string {
	value, ok := c.lookup(name)
	if !ok || value == "" {
		// The environment variable with empty value is treated as unset.
		return nil
	}

	return &value
}

func (c Context) integer(name string) *int {
	value := c.str(name)
	if value == nil {
		return nil
	}

	parsed, err := strconv.Atoi(*value)
	if err != nil {
		c.warn(name, err)

		return nil
	}

	return &parsed
}

func (c Context) boolean(name string) *bool {
	value := c.str(name)
	if value == nil {
		return nil
	}

	parsed, err := strconv.ParseBool(*value)
	if err != nil {
		c.warn(name, err)

		return nil
	}

	return &parsed
}

func (c Context) warn(name string, err error) {
	c.logger.Warn("Ignoring unparsable environment variable.",
		"name", name,
		"error", err,
	)
}

func (c Context) String() string {
	return "env"
}
