// Package delta holds the ordering rule that decides whether an incoming
// delta may overwrite the stored record.
package delta

// IsStale reports whether an incoming delta must be rejected given the stored
// record's token. Comparison is plain ordinal string order, not parsed time:
// producers supply lexically sortable tokens (ISO-8601 UTC, fixed width).
// Equal tokens are stale, which makes redelivery of the same delta a no-op.
// An absent stored token (existing == "") never rejects.
func IsStale(incoming, existing string) bool {
	if existing == "" {
		return false
	}
	return incoming <= existing
}
