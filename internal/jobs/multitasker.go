package jobs

import (
	"sync"

	"github.com/hashicorp/go-multierror"
)

type MultiTasker struct {
	wg     sync.WaitGroup
	errors chan error
}

func NewMultiTasker() *MultiTasker {
	return &MultiTasker{
		errors: make(chan error),
	}
}

func (mt *MultiTasker) Queue(f func() error) {
	mt.wg.Add(1)
	go func() {
		defer mt.wg.Done()
		mt.errors <- f()
	}()
}

// Wait blocks until all queued jobs finish and returns their failures
// combined into one error, nil if all succeeded.
func (mt *MultiTasker) Wait(errCallback func(error)) error {
	go func() {
		defer close(mt.errors)
		mt.wg.Wait()
	}()
	var rvErr error
	for err := range mt.errors {
		if err != nil {
			rvErr = multierror.Append(rvErr, err)
			if errCallback != nil {
				errCallback(err)
			}
		}
	}
	return rvErr
}
