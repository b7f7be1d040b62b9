package gantry

// Tracer observes the lifecycle of a single logical RPC operation, including
// any retry attempts it spans. The call context only carries the tracer;
// the call pipeline drives it.
type Tracer interface {
	// AttemptStarted reports that an attempt began. The first attempt of an
	// operation is 0.
	AttemptStarted(attempt int)

	// AttemptSucceeded reports that the current attempt returned
	// successfully.
	AttemptSucceeded()

	// AttemptFailed reports that the current attempt failed. The pipeline
	// may follow with another AttemptStarted.
	AttemptFailed(err error)

	// OperationSucceeded reports that the operation as a whole finished
	// successfully. No further events follow.
	OperationSucceeded()

	// OperationFailed reports that the operation as a whole failed. No
	// further events follow.
	OperationFailed(err error)
}

// NoopTracer returns a Tracer that ignores every event. Client construction
// seeds it by default so that CallContext.Tracer never observes a nil tracer
// on production paths.
func NoopTracer() Tracer {
	return noopTracer{}
}

type noopTracer struct{}

func (noopTracer) AttemptStarted(int)    {}
func (noopTracer) AttemptSucceeded()     {}
func (noopTracer) AttemptFailed(error)   {}
func (noopTracer) OperationSucceeded()   {}
func (noopTracer) OperationFailed(error) {}
