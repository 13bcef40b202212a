package queue

import "github.com/pkg/errors"

var (
	ErrInvalidCapacity       = errors.New("capacity must be greater than zero")
	ErrEmptyQueue            = errors.New("queue is empty")
	ErrGrowthPolicyViolation = errors.New("growth function did not increase capacity")
	ErrIndexOutOfRange       = errors.New("index out of range")
	// ErrUnsupported is returned by Iterator.Remove, the queue can only be
	// mutated through its own methods.
	ErrUnsupported = errors.New("operation not supported")
)
