// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package mantacfg

// Default values applied by [Defaults]. They match the production Manta
// deployment and are safe for any client that supplies its own account
// and key settings on top.
const (
	// DefaultURL is the production Manta service endpoint.
	DefaultURL = "https://us-east.manta.joyent.com"
	// DefaultTimeout is the connection timeout in milliseconds.
	DefaultTimeout = 20_000
	// DefaultRetries is the number of times failed requests are retried.
	DefaultRetries = 3
	// DefaultMaxConnections bounds the open connections to the Manta API.
	DefaultMaxConnections = 24
	// DefaultHTTPBufferSize is the HTTP stream buffer size in bytes.
	DefaultHTTPBufferSize = 4096
	// DefaultHTTPSProtocols restricts TLS to modern protocol versions.
	DefaultHTTPSProtocols = "TLSv1.2"
	// DefaultTCPSocketTimeout is the socket timeout in milliseconds.
	DefaultTCPSocketTimeout = 10_000
	// DefaultUploadBufferSize is the streaming upload buffer size in bytes.
	DefaultUploadBufferSize = 16_384
)

// Defaults returns the context holding the standard value of every setting
// that has one. It is meant to be the bottom layer of an [Overlay]; it never
// supplies account, key, or encryption-key material.
func Defaults() *Settings {
	return new(Settings).
		SetURL(DefaultURL).
		SetTimeout(DefaultTimeout).
		SetRetries(DefaultRetries).
		SetMaxConnections(DefaultMaxConnections).
		SetHTTPBufferSize(DefaultHTTPBufferSize).
		SetHTTPSProtocols(DefaultHTTPSProtocols).
		SetNoAuth(false).
		SetDisableNativeSignatures(false).
		SetTCPSocketTimeout(DefaultTCPSocketTimeout).
		SetVerifyUploads(true).
		SetUploadBufferSize(DefaultUploadBufferSize).
		SetClientEncryptionEnabled(false).
		SetPermitUnencryptedDownloads(false).
		SetEncryptionAuthMode(EncryptionAuthMandatory)
}
