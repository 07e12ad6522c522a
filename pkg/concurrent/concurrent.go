package concurrent

import (
	"golang.org/x/sync/errgroup"

	"github.com/voxforge/voxforge/pkg/sequence"
)

// Concurrent runs the action function for each element of the iterator in a
// separate goroutine and waits for all of them. If action returns an error,
// the first error encountered is returned.
func Concurrent[T any](i *sequence.Iterator[T], action func(T) error) error {
	errGroup := errgroup.Group{}
	next, stop := i.Pull()
	defer stop()

	for {
		value, valid := next()
		if !valid {
			break
		}

		errGroup.Go(func() error {
			return action(value)
		})
	}

	return errGroup.Wait()
}

// ConcurrentLimit is Concurrent with a cap on simultaneously running
// goroutines. A limit below one means no cap.
func ConcurrentLimit[T any](i *sequence.Iterator[T], limit int, action func(T) error) error {
	errGroup := errgroup.Group{}
	if limit > 0 {
		errGroup.SetLimit(limit)
	}
	next, stop := i.Pull()
	defer stop()

	for {
		value, valid := next()
		if !valid {
			break
		}

		errGroup.Go(func() error {
			return action(value)
		})
	}

	return errGroup.Wait()
}
