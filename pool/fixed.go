package pool

import "sync"

// fixed caps the number of distinct workers in circulation. Idle workers
// wait in the available channel; Get blocks there once the cap is reached
// and every worker is out.
type fixed struct {
	mu        sync.Mutex
	created   uint
	capacity  uint
	available chan interface{}
	newFn     func() interface{}
}

// NewFixed returns a pool that never constructs more than capacity workers.
func NewFixed(capacity uint, newFn func() interface{}) Pool {
	return &fixed{
		capacity:  capacity,
		available: make(chan interface{}, capacity),
		newFn:     newFn,
	}
}

func (p *fixed) Get() interface{} {
	select {
	case el := <-p.available:
		return el
	default:
	}

	p.mu.Lock()
	if p.created < p.capacity {
		p.created++
		p.mu.Unlock()
		return p.newFn()
	}
	p.mu.Unlock()

	// cap reached; wait for a worker to come back
	return <-p.available
}

func (p *fixed) Put(el interface{}) {
	// The buffer holds every worker ever created, so this never blocks for
	// workers that came from Get.
	select {
	case p.available <- el:
	default:
	}
}
