// Package repositories implements SQLite persistence for the info system's local state.
//
// Key Implementations:
//   - [AccountRepository] : opaque account fields, including the cached Hatchet user id and name
//   - [TokenRepository] : one [oauth2.Token] per provider, read by the send path's token provider
//   - [OutcomeRepository] : append-only log of per-request outcomes with soft deletes
//   - [OutcomeRecorderAdapter] : feeds engine outcomes into the outcome log
//
// Sequence numbers provide stable ordering of outcomes independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
