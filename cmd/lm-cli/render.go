package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/hpc-toolchain/license-manager/pkg/backend"
)

const (
	ansiDim   = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

// printJSON renders a ledger response to stdout.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// renderError prints a one-line subject for the failure, with a dimmed
// support hint for recoverable ledger and auth problems. Technical detail
// goes to the debug log.
func renderError(err error) {
	slog.Debug("Command failed", "error", err)

	subject := err.Error()
	support := false
	switch {
	case errors.Is(err, backend.ErrAuthToken):
		subject = "could not authenticate against the identity provider"
		support = true
	case errors.Is(err, backend.ErrBackendConnection):
		subject = "the license-manager ledger could not be reached or refused the request"
		support = true
	}

	fmt.Fprintln(os.Stderr, "Error: "+subject)
	if support {
		hint := "If the problem persists, contact your license-manager administrator."
		if term.IsTerminal(int(os.Stderr.Fd())) {
			hint = ansiDim + hint + ansiReset
		}
		fmt.Fprintln(os.Stderr, hint)
	}
}
