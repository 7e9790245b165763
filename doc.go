// Package taskgroup coordinates a dynamically growing set of tasks and reports
// whether any of them failed.
//
// Constructors
//   - NewSerial(opts...): tasks run inline, depth first, inside Append.
//   - NewThreaded(pool, opts...): tasks are submitted to a pool.Pool.
//
// Tasks may call Append on their own group while running, so the total number
// of tasks does not have to be known up front. Finish waits for all of them,
// transitively, and returns the first failure.
//
// Failures
// The first failure wins and is never replaced. Tasks already running always
// finish. By default, a task whose turn comes after a failure is skipped;
// WithRunAfterError disables skipping. Running tasks can poll OK to stop
// producing more work.
//
// Lifetime
// A group with outstanding tasks is kept reachable internally, so callers may
// drop it while work is pending. Tasks that append to a dropped group should
// reach it through a weak.Pointer.
//
// Defaults
//   - Metrics: metrics.NoopProvider
//   - ErrorTagging: false
//   - RunAfterError: false
package taskgroup
