// Package common defines shared constants and sentinel errors used across
// client and server layers of the fair portal. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorValidation covers field-level violations: title/email bounds,
	// image count caps, empty comment bodies and vote types.
	ErrorValidation = errors.New("validation error")

	// ErrUploadFailed means an individual blob push did not succeed; the
	// whole ingestion attempt is aborted.
	ErrUploadFailed = errors.New("upload failed")

	// ErrMissingObject means a stored storage key no longer resolves to a
	// live object; the containing listing request fails entirely.
	ErrMissingObject = errors.New("object not found in storage")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
