// Package common defines shared sentinel errors and small helpers used across
// LabBench layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Bridge-level errors.
	ErrUnknownCommand = errors.New("unknown command")
)
