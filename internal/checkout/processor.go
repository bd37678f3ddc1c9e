package checkout

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/nekogravitycat/experience-booking/internal/pkg/apperror"
)

// DefaultDelay is the simulated payment processing time.
const DefaultDelay = 2 * time.Second

// Task is a running checkout. It completes exactly once.
type Task struct {
	done   chan struct{}
	result Result
}

// Done is closed when the task has completed.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Result returns the outcome. It must only be called after Done is closed.
func (t *Task) Result() Result {
	return t.result
}

// Wait blocks until the task completes or ctx ends. An ended ctx only stops
// the wait; the task itself keeps running and Wait returns ErrStillProcessing
// wrapping the context error.
func (t *Task) Wait(ctx context.Context) (Result, error) {
	select {
	case <-t.done:
		return t.result, nil
	case <-ctx.Done():
		return Result{}, apperror.Wrap(ctx.Err(), ErrStillProcessing.Code, ErrStillProcessing.Message)
	}
}

// Processor validates checkout forms and simulates payment processing.
type Processor struct {
	delay     time.Duration
	reference ReferenceGenerator
}

// NewProcessor creates a Processor. A nil generator selects NewReference.
func NewProcessor(delay time.Duration, reference ReferenceGenerator) *Processor {
	if reference == nil {
		reference = NewReference
	}
	return &Processor{delay: delay, reference: reference}
}

// Submit validates f and starts processing it. The returned task completes
// after the configured delay with a successful Result. processing guards
// against resubmission: it is set for the lifetime of the task and Submit
// fails with ErrAlreadyProcessing when it is already set.
func (p *Processor) Submit(f Form, processing *atomic.Bool) (*Task, error) {
	if err := ValidateSubmission(f); err != nil {
		return nil, err
	}
	if !processing.CompareAndSwap(false, true) {
		return nil, ErrAlreadyProcessing
	}

	task := &Task{done: make(chan struct{})}
	go func() {
		time.Sleep(p.delay)

		task.result = Result{Success: true, ReferenceID: p.reference()}
		slog.Info("checkout processed", "reference_id", task.result.ReferenceID)

		// Release the flag before signalling so a waiter observes it cleared.
		processing.Store(false)
		close(task.done)
	}()

	return task, nil
}
