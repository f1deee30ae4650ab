// Copyright (c) 2026 The mantacfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package mantacfg

import (
	"log/slog"
	"strings"

	"github.com/mantadev/mantacfg/internal/redact"
)

// Describe renders a context as a stable, human-readable line for logs and
// error reports. Settings appear in schema order as key='value' pairs with a
// "null" marker for unset values. Secret settings are left out entirely; the
// encryption private key appears as its byte length only.
func Describe(ctx Context) string {
	sb := new(strings.Builder)
	sb.WriteString("mantacfg.Context{")
	for _, setting := range schema {
		if setting.Secret {
			continue
		}
		sb.WriteString(setting.Key)
		sb.WriteString("='")
		sb.WriteString(display(setting.Value(ctx)))
		sb.WriteString("', ")
	}
	sb.WriteString(KeyEncryptionKeyBytes)
	sb.WriteString("_length='")
	sb.WriteString(redact.Bytes(ctx.EncryptionKeyBytes()))
	sb.WriteString("'}")

	return sb.String()
}

// Redacted adapts a context for structured logging with the same redaction
// rules as [Describe]:
//
//	logger.Info("client configured", slog.Any("config", mantacfg.Redacted(ctx)))
func Redacted(ctx Context) slog.Value {
	attrs := make([]slog.Attr, 0, len(schema))
	for _, setting := range schema {
		if setting.Secret {
			continue
		}
		attrs = append(attrs, slog.String(setting.Key, display(setting.Value(ctx))))
	}
	attrs = append(attrs, slog.String(KeyEncryptionKeyBytes+"_length", redact.Bytes(ctx.EncryptionKeyBytes())))

	return slog.GroupValue(attrs...)
}
