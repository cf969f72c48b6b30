package pool

import "sync"

// NewDynamic returns a dynamic-size pool backed by sync.Pool: workers are
// constructed on demand and reclaimed by the garbage collector when idle.
func NewDynamic(newFn func() interface{}) Pool {
	return &sync.Pool{New: newFn}
}
