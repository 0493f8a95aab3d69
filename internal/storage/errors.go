package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/starford/note/internal/apperr"
)

// classify tags a driver error with the matching apperr sentinels. The driver
// error stays in the chain so its message reaches the user unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var se sqlite3.Error
	if !errors.As(err, &se) {
		return err
	}

	switch se.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return fmt.Errorf("%w: %w: %w", apperr.ErrConstraint, apperr.ErrAlreadyExists, err)
	case sqlite3.ErrConstraintForeignKey:
		return fmt.Errorf("%w: %w: %w", apperr.ErrConstraint, apperr.ErrUnknownCollection, err)
	case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
		return fmt.Errorf("%w: %w: %w", apperr.ErrConstraint, apperr.ErrInvalid, err)
	}
	if se.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %w", apperr.ErrConstraint, err)
	}

	// Schema errors share the generic SQLITE_ERROR code; only the message differs.
	msg := se.Error()
	switch {
	case strings.Contains(msg, "already exists"):
		return fmt.Errorf("%w: %w", apperr.ErrSchemaConflict, err)
	case strings.Contains(msg, "no such table"):
		return fmt.Errorf("%w: %w", apperr.ErrNotInstalled, err)
	case se.Code == sqlite3.ErrNotADB, se.Code == sqlite3.ErrCorrupt, se.Code == sqlite3.ErrCantOpen:
		return fmt.Errorf("%w: %w", apperr.ErrConnection, err)
	}
	return err
}
