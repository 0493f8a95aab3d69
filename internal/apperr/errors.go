// Package apperr holds the sentinel errors shared across layers.
// Callers classify failures with errors.Is; the wrapped driver error keeps its
// original message.
package apperr

import "errors"

var (
	ErrEnvironment       = errors.New("environment error")
	ErrConnection        = errors.New("connection error")
	ErrSchemaConflict    = errors.New("schema conflict")
	ErrNotInstalled      = errors.New("store not installed")
	ErrConstraint        = errors.New("constraint violation")
	ErrAlreadyExists     = errors.New("already exists")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrInvalid           = errors.New("invalid value")
	ErrUsage             = errors.New("usage error")
)
