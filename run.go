package templatesvc

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Runner is an auxiliary task run alongside the lifecycle.
// It should return when its context is cancelled.
type Runner func(context.Context) error

// Run starts lc in the foreground and the runners alongside it.
// The runners are cancelled once lc has stopped,
// a failing runner stops lc with its grace period.
// The first error is returned.
func Run(ctx context.Context, lc *Lifecycle, runners ...Runner) error {
	group, gctx := errgroup.WithContext(ctx)
	rctx, cancel := context.WithCancel(gctx)
	defer cancel()

	group.Go(func() error {
		defer cancel()
		return lc.Start(gctx)
	})
	for _, r := range runners {
		group.Go(func() error {
			return r(rctx)
		})
	}
	return group.Wait()
}
