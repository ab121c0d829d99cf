package closer

import (
	"context"
	"errors"
	"sync"

	"github.com/chwpym/autoreturns/pkg/logger"
)

// Closer is a process-wide registry of shutdown hooks, closed in reverse
// registration order.
type closerFn func(ctx context.Context) error

type namedCloser struct {
	name string
	fn   closerFn
}

var (
	mu      sync.Mutex
	closers []namedCloser
	log     = logger.L()
)

func SetLogger(l *logger.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

func AddNamed(name string, fn closerFn) {
	mu.Lock()
	defer mu.Unlock()
	closers = append(closers, namedCloser{name: name, fn: fn})
}

// CloseAll runs every registered hook, newest first, and joins their errors.
// The registry is drained so a second call is a no-op.
func CloseAll(ctx context.Context) error {
	mu.Lock()
	pending := closers
	closers = nil
	mu.Unlock()

	var errs []error
	for i := len(pending) - 1; i >= 0; i-- {
		c := pending[i]
		log.Info(ctx, "closing "+c.name)
		if err := c.fn(ctx); err != nil {
			log.Error(ctx, "failed to close "+c.name, logger.ErrorF(err))
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
