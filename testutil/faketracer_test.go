package testutil

import (
	"errors"
	"reflect"
	"testing"
)

func TestFakeTracerRecordsEventsInOrder(t *testing.T) {
	tracer := &FakeTracer{}

	tracer.AttemptStarted(0)
	tracer.AttemptFailed(errors.New("unavailable"))
	tracer.AttemptStarted(1)
	tracer.AttemptSucceeded()
	tracer.OperationSucceeded()

	want := []string{
		"attempt_started(0)",
		"attempt_failed(unavailable)",
		"attempt_started(1)",
		"attempt_succeeded",
		"operation_succeeded",
	}
	if got := tracer.Events(); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestFakeTracerEventsCopies(t *testing.T) {
	tracer := &FakeTracer{}
	tracer.OperationFailed(errors.New("boom"))

	events := tracer.Events()
	events[0] = "mutated"
	if tracer.Events()[0] != "operation_failed(boom)" {
		t.Error("Events exposed internal state")
	}
}
