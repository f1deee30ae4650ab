// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package mantacfg

import "fmt"

// Context is a read-only view over every recognized client setting.
//
// A Context is usually assembled by overlaying several sources
// (defaults < environment < explicit overrides) with [Overlay],
// but any implementation of the interface can be validated and described.
// Accessors never perform I/O or validation; an optional setting that has
// no value in any layer is reported as nil.
type Context interface {
	// URL returns the Manta service endpoint.
	URL() *string
	// User returns the account name associated with the Manta service.
	User() *string
	// KeyID returns the fingerprint of the private key used to access Manta.
	KeyID() *string
	// KeyPath returns the filesystem path of the private key.
	KeyPath() *string
	// KeyContent returns the private key content.
	// It cannot be combined with KeyPath.
	KeyContent() *string
	// Password returns the password of the private key, which is rarely set.
	Password() *string
	// Timeout returns the general connection timeout in milliseconds.
	Timeout() *int
	// HomeDirectory returns the home directory derived from the account name.
	// It is never configured on its own and is nil iff User is nil.
	HomeDirectory() *string
	// Retries returns the number of times to retry failed HTTP requests.
	Retries() *int
	// MaxConnections returns the maximum number of open connections
	// to the Manta API.
	MaxConnections() *int
	// HTTPBufferSize returns the size in bytes of the buffer used for
	// streams of HTTP data.
	HTTPBufferSize() *int
	// HTTPSProtocols returns a comma delimited list of TLS protocols.
	HTTPSProtocols() *string
	// HTTPSCipherSuites returns a comma delimited list of TLS cipher suites
	// in order of preference.
	HTTPSCipherSuites() *string
	// NoAuth reports whether HTTP signature authentication is disabled.
	NoAuth() *bool
	// DisableNativeSignatures reports whether native code is not used
	// to generate HTTP signatures.
	DisableNativeSignatures() *bool
	// TCPSocketTimeout returns the time in milliseconds to wait before
	// a TCP socket is considered timed out.
	TCPSocketTimeout() *int
	// VerifyUploads reports whether uploaded files are checksummed
	// against the server's checksum.
	VerifyUploads() *bool
	// UploadBufferSize returns the number of bytes of a streaming upload
	// to buffer in memory before deciding how to send it.
	UploadBufferSize() *int
	// ClientEncryptionEnabled reports whether client-side encryption is on.
	ClientEncryptionEnabled() *bool
	// PermitUnencryptedDownloads reports whether unencrypted files may be
	// downloaded while client-side encryption is enabled.
	PermitUnencryptedDownloads() *bool
	// EncryptionAuthMode returns how strictly ciphertext authentication
	// is enforced on read.
	EncryptionAuthMode() *EncryptionAuthMode
	// EncryptionKeyID returns the plain-text identifier of the encryption
	// key. It is encoded in printable US-ASCII without whitespace.
	EncryptionKeyID() *string
	// EncryptionKeyPath returns the filesystem path of the private
	// encryption key. It cannot be combined with EncryptionKeyBytes.
	EncryptionKeyPath() *string
	// EncryptionKeyBytes returns the private encryption key data.
	// It cannot be combined with EncryptionKeyPath.
	EncryptionKeyBytes() []byte
}

// EncryptionAuthMode is the policy controlling how strictly ciphertext
// integrity is verified when objects are read back.
type EncryptionAuthMode uint8

const (
	// EncryptionAuthMandatory fails reads whose ciphertext cannot be
	// authenticated. It is the default mode.
	EncryptionAuthMandatory EncryptionAuthMode = iota
	// EncryptionAuthOptional allows unauthenticated reads, such as
	// random-access range requests.
	EncryptionAuthOptional
)

// ParseEncryptionAuthMode parses the textual form of an authentication mode.
func ParseEncryptionAuthMode(text string) (EncryptionAuthMode, error) {
	switch text {
	case "Mandatory", "mandatory":
		return EncryptionAuthMandatory, nil
	case "Optional", "optional":
		return EncryptionAuthOptional, nil
	default:
		return 0, fmt.Errorf("unknown encryption authentication mode %q", text)
	}
}

func (m EncryptionAuthMode) String() string {
	switch m {
	case EncryptionAuthOptional:
		return "Optional"
	default:
		return "Mandatory"
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (m EncryptionAuthMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] so that sources with
// textual values, such as environment variables, can decode the mode.
func (m *EncryptionAuthMode) UnmarshalText(text []byte) error {
	mode, err := ParseEncryptionAuthMode(string(text))
	if err != nil {
		return err
	}
	*m = mode

	return nil
}
