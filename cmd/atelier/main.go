// Package main provides the atelier CLI, a local command surface over
// the canvas studio core.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/friisj/atelier/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error to the CLI exit code: caller mistakes exit
// with 1, environment and storage failures with 2.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrUnauthorized),
		errors.Is(err, types.ErrAccessDenied),
		errors.Is(err, types.ErrConflict),
		errors.Is(err, types.ErrDuplicate),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidData):
		return exitUserError
	default:
		return exitSysError
	}
}
