package workerpool

import "errors"

// ErrStopped is returned when a job is submitted to a stopped dispatcher.
var ErrStopped = errors.New("dispatcher is stopped")
