// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package mantacfg

import "encoding/base64"

// Canonical keys recognized by map-backed sources, and their environment
// variable aliases recognized by environment-backed sources. Both forms of a
// key resolve to the same setting everywhere in this package.
const (
	KeyURL    = "manta.url"
	EnvKeyURL = "MANTA_URL"

	KeyUser    = "manta.user"
	EnvKeyUser = "MANTA_USER"

	KeyKeyID    = "manta.key_id"
	EnvKeyKeyID = "MANTA_KEY_ID"

	KeyKeyPath    = "manta.key_path"
	EnvKeyKeyPath = "MANTA_KEY_PATH"

	KeyKeyContent    = "manta.key_content"
	EnvKeyKeyContent = "MANTA_KEY_CONTENT"

	KeyPassword    = "manta.password"
	EnvKeyPassword = "MANTA_PASSWORD"

	KeyTimeout    = "manta.timeout"
	EnvKeyTimeout = "MANTA_TIMEOUT"

	KeyRetries    = "manta.retries"
	EnvKeyRetries = "MANTA_HTTP_RETRIES"

	KeyMaxConnections    = "manta.max_connections"
	EnvKeyMaxConnections = "MANTA_MAX_CONNS"

	KeyHTTPBufferSize    = "manta.http_buffer_size"
	EnvKeyHTTPBufferSize = "MANTA_HTTP_BUFFER_SIZE"

	KeyHTTPSProtocols    = "manta.https_protocols"
	EnvKeyHTTPSProtocols = "MANTA_HTTPS_PROTOCOLS"

	KeyHTTPSCipherSuites    = "manta.https_cipher_suites"
	EnvKeyHTTPSCipherSuites = "MANTA_HTTPS_CIPHERS"

	KeyNoAuth    = "manta.no_auth"
	EnvKeyNoAuth = "MANTA_NO_AUTH"

	KeyDisableNativeSignatures    = "manta.disable_native_sig"
	EnvKeyDisableNativeSignatures = "MANTA_NO_NATIVE_SIGS"

	KeyTCPSocketTimeout    = "manta.tcp_socket_timeout"
	EnvKeyTCPSocketTimeout = "MANTA_TCP_SOCKET_TIMEOUT"

	KeyVerifyUploads    = "manta.verify_uploads"
	EnvKeyVerifyUploads = "MANTA_VERIFY_UPLOADS"

	KeyUploadBufferSize    = "manta.upload_buffer_size"
	EnvKeyUploadBufferSize = "MANTA_UPLOAD_BUFFER_SIZE"

	KeyClientEncryption    = "manta.client_encryption"
	EnvKeyClientEncryption = "MANTA_CLIENT_ENCRYPTION"

	KeyPermitUnencryptedDownloads    = "manta.permit_unencrypted_downloads"
	EnvKeyPermitUnencryptedDownloads = "MANTA_PERMIT_UNENCRYPTED_DOWNLOADS"

	KeyEncryptionAuthMode    = "manta.encryption_auth_mode"
	EnvKeyEncryptionAuthMode = "MANTA_ENCRYPTION_AUTH_MODE"

	KeyEncryptionKeyID    = "manta.encryption_key_id"
	EnvKeyEncryptionKeyID = "MANTA_ENCRYPTION_KEY_ID"

	KeyEncryptionKeyPath    = "manta.encryption_key_path"
	EnvKeyEncryptionKeyPath = "MANTA_ENCRYPTION_KEY_PATH"

	// Raw key bytes have no environment alias; only the base64 form can
	// ride an environment variable.
	KeyEncryptionKeyBytes = "manta.encryption_key_bytes"

	KeyEncryptionKeyBytesBase64    = "manta.encryption_key_bytes_base64"
	EnvKeyEncryptionKeyBytesBase64 = "MANTA_ENCRYPTION_KEY_BYTES"
)

// Kind is the semantic type of a setting.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindBytes
	KindEnum
)

// Setting is one entry of the schema: a canonical key, its optional
// environment alias, the semantic type, and the accessor that reads the
// setting from a [Context].
type Setting struct {
	Key    string
	EnvKey string
	Kind   Kind
	// Secret marks settings whose value must never appear in diagnostics.
	Secret bool

	value func(Context) any
}

// Value reads the setting from ctx, returning nil when it is unset.
func (s Setting) Value(ctx Context) any {
	return s.value(ctx)
}

// Schema returns the ordered catalogue of recognized settings.
// The catalogue is fixed at process scope; the returned slice is a copy.
func Schema() []Setting {
	return append([]Setting(nil), schema...)
}

//nolint:gochecknoglobals // The schema is the fixed, read-only setting catalogue.
var schema = []Setting{
	{Key: KeyURL, EnvKey: EnvKeyURL, Kind: KindString, value: func(c Context) any { return strVal(c.URL()) }},
	{Key: KeyUser, EnvKey: EnvKeyUser, Kind: KindString, value: func(c Context) any { return strVal(c.User()) }},
	{Key: KeyKeyID, EnvKey: EnvKeyKeyID, Kind: KindString, value: func(c Context) any { return strVal(c.KeyID()) }},
	{Key: KeyKeyPath, EnvKey: EnvKeyKeyPath, Kind: KindString, value: func(c Context) any { return strVal(c.KeyPath()) }},
	{
		Key: KeyKeyContent, EnvKey: EnvKeyKeyContent, Kind: KindString, Secret: true,
		value: func(c Context) any { return strVal(c.KeyContent()) },
	},
	{
		Key: KeyPassword, EnvKey: EnvKeyPassword, Kind: KindString, Secret: true,
		value: func(c Context) any { return strVal(c.Password()) },
	},
	{Key: KeyTimeout, EnvKey: EnvKeyTimeout, Kind: KindInt, value: func(c Context) any { return intVal(c.Timeout()) }},
	{Key: KeyRetries, EnvKey: EnvKeyRetries, Kind: KindInt, value: func(c Context) any { return intVal(c.Retries()) }},
	{
		Key: KeyMaxConnections, EnvKey: EnvKeyMaxConnections, Kind: KindInt,
		value: func(c Context) any { return intVal(c.MaxConnections()) },
	},
	{
		Key: KeyHTTPBufferSize, EnvKey: EnvKeyHTTPBufferSize, Kind: KindInt,
		value: func(c Context) any { return intVal(c.HTTPBufferSize()) },
	},
	{
		Key: KeyHTTPSProtocols, EnvKey: EnvKeyHTTPSProtocols, Kind: KindString,
		value: func(c Context) any { return strVal(c.HTTPSProtocols()) },
	},
	{
		Key: KeyHTTPSCipherSuites, EnvKey: EnvKeyHTTPSCipherSuites, Kind: KindString,
		value: func(c Context) any { return strVal(c.HTTPSCipherSuites()) },
	},
	{Key: KeyNoAuth, EnvKey: EnvKeyNoAuth, Kind: KindBool, value: func(c Context) any { return boolVal(c.NoAuth()) }},
	{
		Key: KeyDisableNativeSignatures, EnvKey: EnvKeyDisableNativeSignatures, Kind: KindBool,
		value: func(c Context) any { return boolVal(c.DisableNativeSignatures()) },
	},
	{
		Key: KeyTCPSocketTimeout, EnvKey: EnvKeyTCPSocketTimeout, Kind: KindInt,
		value: func(c Context) any { return intVal(c.TCPSocketTimeout()) },
	},
	{
		Key: KeyVerifyUploads, EnvKey: EnvKeyVerifyUploads, Kind: KindBool,
		value: func(c Context) any { return boolVal(c.VerifyUploads()) },
	},
	{
		Key: KeyUploadBufferSize, EnvKey: EnvKeyUploadBufferSize, Kind: KindInt,
		value: func(c Context) any { return intVal(c.UploadBufferSize()) },
	},
	{
		Key: KeyClientEncryption, EnvKey: EnvKeyClientEncryption, Kind: KindBool,
		value: func(c Context) any { return boolVal(c.ClientEncryptionEnabled()) },
	},
	{
		Key: KeyPermitUnencryptedDownloads, EnvKey: EnvKeyPermitUnencryptedDownloads, Kind: KindBool,
		value: func(c Context) any { return boolVal(c.PermitUnencryptedDownloads()) },
	},
	{
		Key: KeyEncryptionAuthMode, EnvKey: EnvKeyEncryptionAuthMode, Kind: KindEnum,
		value: func(c Context) any {
			if m := c.EncryptionAuthMode(); m != nil {
				return *m
			}

			return nil
		},
	},
	{
		Key: KeyEncryptionKeyID, EnvKey: EnvKeyEncryptionKeyID, Kind: KindString,
		value: func(c Context) any { return strVal(c.EncryptionKeyID()) },
	},
	{
		Key: KeyEncryptionKeyPath, EnvKey: EnvKeyEncryptionKeyPath, Kind: KindString,
		value: func(c Context) any { return strVal(c.EncryptionKeyPath()) },
	},
	{
		Key: KeyEncryptionKeyBytes, Kind: KindBytes, Secret: true,
		value: func(c Context) any {
			if b := c.EncryptionKeyBytes(); b != nil {
				return b
			}

			return nil
		},
	},
	{
		Key: KeyEncryptionKeyBytesBase64, EnvKey: EnvKeyEncryptionKeyBytesBase64, Kind: KindString, Secret: true,
		value: func(c Context) any {
			// Absent bytes resolve to absent rather than encoding nil.
			if b := c.EncryptionKeyBytes(); b != nil {
				return base64.StdEncoding.EncodeToString(b)
			}

			return nil
		},
	},
}

//nolint:gochecknoglobals // Index over the fixed schema, built once.
var schemaByKey = func() map[string]*Setting {
	byKey := make(map[string]*Setting, 2*len(schema))
	for i := range schema {
		byKey[schema[i].Key] = &schema[i]
		if schema[i].EnvKey != "" {
			byKey[schema[i].EnvKey] = &schema[i]
		}
	}

	return byKey
}()

func strVal(p *string) any {
	if p == nil {
		return nil
	}

	return *p
}

func intVal(p *int) any {
	if p == nil {
		return nil
	}

	return *p
}

func boolVal(p *bool) any {
	if p == nil {
		return nil
	}

	return *p
}
