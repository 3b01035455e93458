package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and provider clients return
// these (optionally wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: row or upstream resource does not exist
//   - ErrConflict: a row with the same key already exists
//   - ErrUnavailable: storage or upstream temporarily unavailable
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
