// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package mantacfg

// Overlay composes several contexts into one resolved view.
//
// Each setting is answered by the last context that has a value for it, so
// later contexts take precedence over the contexts before them:
//
//	ctx := mantacfg.Overlay(mantacfg.Defaults(), env.New(), overrides)
//
// A nil layer is skipped. The home directory is derived from the resolved
// account rather than taken from any single layer.
func Overlay(layers ...Context) Context {
	merged := make(overlay, 0, len(layers))
	for _, layer := range layers {
		if layer != nil {
			merged = append(merged, layer)
		}
	}

	return merged
}

type overlay []Context

var _ Context = overlay(nil)

func resolve[T any](o overlay, read func(Context) *T) *T {
	for i := len(o) - 1; i >= 0; i-- {
		if v := read(o[i]); v != nil {
			return v
		}
	}

	return nil
}

func (o overlay) URL() *string { return resolve(o, Context.URL) }
func (o overlay) User() *string { return resolve(o, Context.User) }
func (o overlay) KeyID() *string { return resolve(o, Context.KeyID) }
func (o overlay) KeyPath() *string { return resolve(o, Context.KeyPath) }
func (o overlay) KeyContent() *string {
	return resolve(o, Context.KeyContent)
}
func (o overlay) Password() *string { return resolve(o, Context.Password) }
func (o overlay) Timeout() *int { return resolve(o, Context.Timeout) }
func (o overlay) HomeDirectory() *string {
	return DeriveHomeDirectory(o.User())
}
func (o overlay) Retries() *int { return resolve(o, Context.Retries) }
func (o overlay) MaxConnections() *int {
	return resolve(o, Context.MaxConnections)
}
func (o overlay) HTTPBufferSize() *int {
	return resolve(o, Context.HTTPBufferSize)
}
func (o overlay) HTTPSProtocols() *string {
	return resolve(o, Context.HTTPSProtocols)
}
func (o overlay) HTTPSCipherSuites() *string {
	return resolve(o, Context.HTTPSCipherSuites)
}
func (o overlay) NoAuth() *bool { return resolve(o, Context.NoAuth) }
func (o overlay) DisableNativeSignatures() *bool {
	return resolve(o, Context.DisableNativeSignatures)
}
func (o overlay) TCPSocketTimeout() *int {
	return resolve(o, Context.TCPSocketTimeout)
}
func (o overlay) VerifyUploads() *bool {
	return resolve(o, Context.VerifyUploads)
}
func (o overlay) UploadBufferSize() *int {
	return resolve(o, Context.UploadBufferSize)
}
func (o overlay) ClientEncryptionEnabled() *bool {
	return resolve(o, Context.ClientEncryptionEnabled)
}
func (o overlay) PermitUnencryptedDownloads() *bool {
	return resolve(o, Context.PermitUnencryptedDownloads)
}
func (o overlay) EncryptionAuthMode() *EncryptionAuthMode {
	return resolve(o, Context.EncryptionAuthMode)
}
func (o overlay) EncryptionKeyID() *string {
	return resolve(o, Context.EncryptionKeyID)
}
func (o overlay) EncryptionKeyPath() *string {
	return resolve(o, Context.EncryptionKeyPath)
}

func (o overlay) EncryptionKeyBytes() []byte {
	for i := len(o) - 1; i >= 0; i-- {
		if b := o[i].EncryptionKeyBytes(); b != nil {
			return b
		}
	}

	return nil
}
