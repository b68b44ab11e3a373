// Package services talks to the Hatchet catalog API.
//
// # Query Builder
//
// [BuildQuery] maps a [Kind] and an ordered [Params] multimap onto an endpoint URL under /v1/.
// Path-scoped kinds (a user's playlists, a playlist's entries, an artist's albums) take the first
// "id" value as their path identifier; every "id" pair is then dropped and the remaining pairs are
// appended in insertion order. Batched lookups repeat the "ids[]" key.
//
// # Transport
//
// [Client] performs the HTTP calls. Each call waits on a token bucket limiter and runs inside a
// circuit breaker; 5xx responses and network failures count against the breaker, 4xx responses do not.
//
// # Response Shapes
//
// Every endpoint returns a primary list plus side tables that the primary entries refer to by ID.
// [Decode] parses a body into one of the shapes ([Artists], [Charts], [Search], ...) and the
// [Index] helpers turn side tables into ID lookups. A reference that does not resolve yields nil.
//
// # Authentication
//
// [OAuthTokenProvider] returns the stored access token while it is valid. Refresh is out of scope:
// a missing or expired token is reported as unavailable.
//
// # Error Handling
//
// Errors wrap sentinels from the shared package:
//   - [shared.ErrInvalidRequest] : a path-scoped kind without its identifier
//   - [shared.ErrTransport] : network failures, error statuses and an open circuit
//   - [shared.ErrParse] : a body that does not match the expected shape
//   - [shared.ErrAuthUnavailable] : no usable access token
package services
