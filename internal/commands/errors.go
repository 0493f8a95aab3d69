package commands

import (
	"errors"
	"fmt"

	"github.com/starford/note/internal/apperr"
)

const (
	ExitCodeSuccess = 0
	ExitCodeGeneric = 1
	ExitCodeUsage   = 2
)

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperr.ErrUsage, fmt.Sprintf(format, args...))
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, apperr.ErrUsage):
		return ExitCodeUsage
	default:
		return ExitCodeGeneric
	}
}
