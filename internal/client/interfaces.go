package client

import "context"

// Client is a runnable lineage client. Run blocks until the user quits, the
// context ends, or a headless bootstrap completes.
type Client interface {
	Run(ctx context.Context) error
}
