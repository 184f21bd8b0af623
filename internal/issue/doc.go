// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context and rendered help text.
//
// ActionableError wraps a failure with the operation that was attempted,
// the resource involved, and suggestions for fixing it; the CLI layer
// formats it for display. The issue catalog holds longer markdown help
// entries (rendered with glamour) for failure modes that deserve more than
// a one-line message.
package issue
