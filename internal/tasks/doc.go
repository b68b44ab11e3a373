// Package tasks runs background work for the info-resolution engine.
//
// # Worker Pool
//
// [Pool] owns a fixed number of workers fed by two buffered lanes. Workers drain the
// high lane before looking at the low lane, so chart lookups queued at [PriorityHigh]
// overtake catalog and send work queued at [PriorityLow]. Submission never blocks the
// caller beyond the lane buffer; a full lane blocks until a worker frees a slot or the
// pool context ends.
//
// # Lifecycle
//
// [Pool.Close] stops accepting tasks and waits for queued ones to finish.
// [Pool.Shutdown] cancels the pool context first, so tasks that honour their context
// return early. Submitting after either call yields [ErrPoolClosed].
//
// A panicking task is recovered and logged without taking its worker down. Lane depth is
// exported through the metrics package.
package tasks
