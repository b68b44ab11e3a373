// Package metrics instruments the info system with Prometheus collectors.
//
// Collectors are registered on the default registry through promauto at package init:
//   - request counters and latency histograms per request kind and status
//   - transport call counters and latency per HTTP method
//   - circuit breaker state and transitions
//   - worker pool queue depth per lane
//
// [Snapshot] gathers the registered families into a flat, sorted list for the CLI `stats` command.
package metrics
