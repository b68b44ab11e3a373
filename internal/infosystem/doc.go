// Package infosystem resolves music metadata and user activity from the Hatchet API.
//
// An [Engine] accepts resolve and send [Request]s and executes them on an [Executor].
// Each resolve request walks a per-kind fetch chain (one or more GETs joined by ID),
// converts the result into [models] objects, and optionally merges it into a fill
// target registered with [Engine.ResolveInto]. Send requests post a JSON payload when
// an access token is available.
//
// Completion is reported through a [Sink] with the id of each request that succeeded.
package infosystem
