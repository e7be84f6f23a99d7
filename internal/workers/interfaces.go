// Package workers runs the sync client's background jobs as one unit.
package workers

import "context"

// Worker is a background job with an explicit lifecycle. Run must return
// promptly and keep working in its own goroutines until Stop or until ctx
// is cancelled.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
