// Package backend is the authenticated HTTP client for the ledger, shared
// by the cluster agent and the operator CLI.
package backend

import "errors"

var (
	// ErrAuthToken is returned when an access token cannot be acquired
	// from the identity provider or the cache.
	ErrAuthToken = errors.New("failed to acquire access token")

	// ErrBackendConnection is returned when the ledger cannot be reached
	// or answers outside the expected status range.
	ErrBackendConnection = errors.New("ledger request failed")
)
