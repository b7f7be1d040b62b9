package testutil

import (
	"fmt"
	"sync"

	"github.com/broady/gantry"
)

// FakeTracer records tracer events so tests can assert that call paths hit
// the tracing hooks they should. The zero value is ready to use.
type FakeTracer struct {
	mu     sync.Mutex
	events []string
}

var _ gantry.Tracer = (*FakeTracer)(nil)

func (t *FakeTracer) AttemptStarted(attempt int) {
	t.record(fmt.Sprintf("attempt_started(%d)", attempt))
}

func (t *FakeTracer) AttemptSucceeded() {
	t.record("attempt_succeeded")
}

func (t *FakeTracer) AttemptFailed(err error) {
	t.record(fmt.Sprintf("attempt_failed(%v)", err))
}

func (t *FakeTracer) OperationSucceeded() {
	t.record("operation_succeeded")
}

func (t *FakeTracer) OperationFailed(err error) {
	t.record(fmt.Sprintf("operation_failed(%v)", err))
}

// Events returns the recorded events in arrival order.
func (t *FakeTracer) Events() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.events...)
}

func (t *FakeTracer) record(event string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
}
