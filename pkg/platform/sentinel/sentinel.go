package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and transport adapters
// return these (optionally wrapped) so services can translate them into domain
// errors without importing store internals.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: record does not exist in the store
// - ErrUnavailable: store or event transport temporarily unreachable
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
