// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package mantacfg

import (
	"fmt"
	"maps"
	"net/url"
	"os"
	"strconv"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/mantadev/mantacfg/internal/redact"
)

// Reason is a single human-readable validation failure,
// tied to the canonical key of the setting that failed.
type Reason struct {
	Setting string
	Message string
}

func (r Reason) String() string { return r.Message }

// ConfigurationError reports every invariant a context violated.
// It is the only error kind this package returns.
type ConfigurationError struct {
	// Reasons lists all failures in check order. Validating the same
	// context again yields the identical list.
	Reasons []Reason

	context map[string]string
}

func (e *ConfigurationError) Error() string {
	sb := new(strings.Builder)
	sb.WriteString("invalid Manta client configuration:")
	for _, reason := range e.Reasons {
		sb.WriteString("\n")
		sb.WriteString(reason.Message)
	}

	return sb.String()
}

// Context returns a redacted echo of the settings that matter most when
// debugging a bad configuration. Key material is reported by presence only.
func (e *ConfigurationError) Context() map[string]string {
	return maps.Clone(e.context)
}

// Validate checks that a context has been assembled with consistent settings.
//
// Every check runs; nothing short-circuits on the first failure, so a single
// call surfaces the complete remediation list as a [ConfigurationError].
// The only I/O is the existence and readability probe of the encryption
// private key path; a probe failure becomes one more reason, never a raw
// filesystem error. Validate does not mutate the context and is safe to call
// concurrently on the same context.
func Validate(ctx Context) error {
	var reasons []Reason
	add := func(key, message string) {
		reasons = append(reasons, Reason{Setting: key, Message: message})
	}

	if user := ctx.User(); user == nil || strings.TrimSpace(*user) == "" {
		add(KeyUser, "account name must be specified")
	}

	if endpoint := ctx.URL(); endpoint == nil || strings.TrimSpace(*endpoint) == "" {
		add(KeyURL, "service URL must be specified")
	} else if _, err := url.Parse(*endpoint); err != nil {
		add(KeyURL, fmt.Sprintf("invalid service URL %q: %v", *endpoint, err))
	}

	if timeout := ctx.Timeout(); timeout != nil {
		if err := validation.Validate(*timeout,
			validation.Min(0).Error("timeout must be 0 or greater"),
		); err != nil {
			add(KeyTimeout, err.Error())
		}
	}

	// Unset means authentication is on; only an explicit true skips the
	// fingerprint requirement.
	if noAuth := ctx.NoAuth(); noAuth == nil || !*noAuth {
		if ctx.KeyID() == nil {
			add(KeyKeyID, "key fingerprint must be specified")
		}
	}

	if keyID := ctx.KeyID(); keyID != nil && strings.HasPrefix(*keyID, "SHA256:") {
		add(KeyKeyID, "SHA256 key fingerprints are not supported; use the MD5 format")
	}

	if enabled := ctx.ClientEncryptionEnabled(); enabled != nil && *enabled {
		reasons = append(reasons, validateEncryption(ctx)...)
	}

	if len(reasons) == 0 {
		return nil
	}

	return &ConfigurationError{
		Reasons: reasons,
		// Only the settings worth echoing, with secrets redacted.
		context: map[string]string{
			KeyURL:              display(Attribute(KeyURL, ctx)),
			KeyUser:             display(Attribute(KeyUser, ctx)),
			KeyKeyID:            display(Attribute(KeyKeyID, ctx)),
			KeyNoAuth:           display(Attribute(KeyNoAuth, ctx)),
			KeyKeyPath:          display(Attribute(KeyKeyPath, ctx)),
			KeyKeyContent:       redact.Presence(ctx.KeyContent() != nil),
			KeyClientEncryption: display(Attribute(KeyClientEncryption, ctx)),
		},
	}
}

func validateEncryption(ctx Context) []Reason {
	var reasons []Reason
	add := func(key, message string) {
		reasons = append(reasons, Reason{Setting: key, Message: message})
	}

	if keyID := ctx.EncryptionKeyID(); keyID == nil {
		add(KeyEncryptionKeyID, "encryption key id must be set")
	} else {
		if err := validation.Validate(*keyID,
			validation.Required.Error("encryption key id must not be empty"),
		); err != nil {
			add(KeyEncryptionKeyID, err.Error())
		}
		if strings.ContainsFunc(*keyID, unicode.IsSpace) {
			add(KeyEncryptionKeyID, "encryption key id must not contain whitespace")
		}
		if err := validation.Validate(*keyID,
			is.PrintableASCII.Error("encryption key id must only contain printable ASCII characters"),
		); err != nil {
			add(KeyEncryptionKeyID, err.Error())
		}
	}

	if ctx.EncryptionAuthMode() == nil {
		add(KeyEncryptionAuthMode, "encryption authentication mode must be set")
	}

	if ctx.PermitUnencryptedDownloads() == nil {
		add(KeyPermitUnencryptedDownloads, "permit unencrypted downloads must be explicitly set")
	}

	keyPath, keyBytes := ctx.EncryptionKeyPath(), ctx.EncryptionKeyBytes()
	switch {
	case keyPath == nil && keyBytes == nil:
		add(KeyEncryptionKeyPath, "one of encryption private key path or private key bytes must be set")
	case keyPath != nil && keyBytes != nil:
		add(KeyEncryptionKeyPath, "encryption private key path and private key bytes must not both be set; choose one")
	}

	if keyPath != nil {
		if message := probeKeyFile(*keyPath); message != "" {
			add(KeyEncryptionKeyPath, message)
		}
	}

	if keyBytes != nil && len(keyBytes) == 0 {
		add(KeyEncryptionKeyBytes, "encryption private key byte length must be greater than zero")
	}

	return reasons
}

// probeKeyFile is best effort: any filesystem error, transient or not,
// folds into a validation failure.
func probeKeyFile(path string) string {
	if _, err := os.Stat(path); err != nil {
		return fmt.Sprintf("encryption private key could not be found at path %s: %v", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("encryption private key could not be read at path %s: %v", path, err)
	}
	_ = file.Close()

	return ""
}

// display renders a resolved attribute value for diagnostics,
// with a literal marker for the absent value.
func display(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
