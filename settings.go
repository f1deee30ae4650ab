// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package mantacfg

// Settings is an explicit, in-memory [Context]. The zero value has every
// setting unset; the chainable setters fill individual settings in, which
// makes Settings the natural top layer of an [Overlay]:
//
//	ctx := mantacfg.Overlay(
//		mantacfg.Defaults(),
//		new(mantacfg.Settings).SetUser("alice").SetKeyID("a1:b2"),
//	)
//
// Settings is not safe for concurrent mutation; finish setting values before
// sharing it.
type Settings struct {
	url                        *string
	user                       *string
	keyID                      *string
	keyPath                    *string
	keyContent                 *string
	password                   *string
	timeout                    *int
	retries                    *int
	maxConnections             *int
	httpBufferSize             *int
	httpsProtocols             *string
	httpsCipherSuites          *string
	noAuth                     *bool
	disableNativeSignatures    *bool
	tcpSocketTimeout           *int
	verifyUploads              *bool
	uploadBufferSize           *int
	clientEncryptionEnabled    *bool
	permitUnencryptedDownloads *bool
	encryptionAuthMode         *EncryptionAuthMode
	encryptionKeyID            *string
	encryptionKeyPath          *string
	encryptionKeyBytes         []byte
}

var _ Context = (*Settings)(nil)

func (s *Settings) URL() *string { return s.url }
func (s *Settings) User() *string { return s.user }
func (s *Settings) KeyID() *string { return s.keyID }
func (s *Settings) KeyPath() *string { return s.keyPath }
func (s *Settings) KeyContent() *string { return s.keyContent }
func (s *Settings) Password() *string { return s.password }
func (s *Settings) Timeout() *int { return s.timeout }
func (s *Settings) HomeDirectory() *string { return DeriveHomeDirectory(s.user) }
func (s *Settings) Retries() *int { return s.retries }
func (s *Settings) MaxConnections() *int { return s.maxConnections }
func (s *Settings) HTTPBufferSize() *int { return s.httpBufferSize }
func (s *Settings) HTTPSProtocols() *string { return s.httpsProtocols }
func (s *Settings) HTTPSCipherSuites() *string { return s.httpsCipherSuites }
func (s *Settings) NoAuth() *bool { return s.noAuth }
func (s *Settings) DisableNativeSignatures() *bool {
	return s.disableNativeSignatures
}
func (s *Settings) TCPSocketTimeout() *int { return s.tcpSocketTimeout }
func (s *Settings) VerifyUploads() *bool { return s.verifyUploads }
func (s *Settings) UploadBufferSize() *int { return s.uploadBufferSize }
func (s *Settings) ClientEncryptionEnabled() *bool {
	return s.clientEncryptionEnabled
}
func (s *Settings) PermitUnencryptedDownloads() *bool {
	return s.permitUnencryptedDownloads
}
func (s *Settings) EncryptionAuthMode() *EncryptionAuthMode {
	return s.encryptionAuthMode
}
func (s *Settings) EncryptionKeyID() *string { return s.encryptionKeyID }
func (s *Settings) EncryptionKeyPath() *string { return s.encryptionKeyPath }
func (s *Settings) EncryptionKeyBytes() []byte { return s.encryptionKeyBytes }

func (s *Settings) SetURL(url string) *Settings {
	s.url = &url

	return s
}

func (s *Settings) SetUser(user string) *Settings {
	s.user = &user

	return s
}

func (s *Settings) SetKeyID(keyID string) *Settings {
	s.keyID = &keyID

	return s
}

func (s *Settings) SetKeyPath(path string) *Settings {
	s.keyPath = &path

	return s
}

func (s *Settings) SetKeyContent(content string) *Settings {
	s.keyContent = &content

	return s
}

func (s *Settings) SetPassword(password string) *Settings {
	s.password = &password

	return s
}

func (s *Settings) SetTimeout(millis int) *Settings {
	s.timeout = &millis

	return s
}

func (s *Settings) SetRetries(retries int) *Settings {
	s.retries = &retries

	return s
}

func (s *Settings) SetMaxConnections(conns int) *Settings {
	s.maxConnections = &conns

	return s
}

func (s *Settings) SetHTTPBufferSize(size int) *Settings {
	s.httpBufferSize = &size

	return s
}

func (s *Settings) SetHTTPSProtocols(protocols string) *Settings {
	s.httpsProtocols = &protocols

	return s
}

func (s *Settings) SetHTTPSCipherSuites(suites string) *Settings {
	s.httpsCipherSuites = &suites

	return s
}

func (s *Settings) SetNoAuth(noAuth bool) *Settings {
	s.noAuth = &noAuth

	return s
}

func (s *Settings) SetDisableNativeSignatures(disable bool) *Settings {
	s.disableNativeSignatures = &disable

	return s
}

func (s *Settings) SetTCPSocketTimeout(millis int) *Settings {
	s.tcpSocketTimeout = &millis

	return s
}

func (s *Settings) SetVerifyUploads(verify bool) *Settings {
	s.verifyUploads = &verify

	return s
}

func (s *Settings) SetUploadBufferSize(size int) *Settings {
	s.uploadBufferSize = &size

	return s
}

func (s *Settings) SetClientEncryptionEnabled(enabled bool) *Settings {
	s.clientEncryptionEnabled = &enabled

	return s
}

func (s *Settings) SetPermitUnencryptedDownloads(permit bool) *Settings {
	s.permitUnencryptedDownloads = &permit

	return s
}

func (s *Settings) SetEncryptionAuthMode(mode EncryptionAuthMode) *Settings {
	s.encryptionAuthMode = &mode

	return s
}

func (s *Settings) SetEncryptionKeyID(keyID string) *Settings {
	s.encryptionKeyID = &keyID

	return s
}

func (s *Settings) SetEncryptionKeyPath(path string) *Settings {
	s.encryptionKeyPath = &path

	return s
}

func (s *Settings) SetEncryptionKeyBytes(key []byte) *Settings {
	s.encryptionKeyBytes = key

	return s
}
