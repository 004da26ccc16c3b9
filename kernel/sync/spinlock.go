// Package sync provides busy-waiting synchronization primitives that are safe
// to use while a CPU is being brought up and no scheduler is available yet.
package sync

import "sync/atomic"

// attemptsBeforeYielding is the number of failed acquisition attempts after
// which a spinning caller invokes yieldFn (if set).
const attemptsBeforeYielding = 64

var (
	// yieldFn is invoked while busy-waiting. It stays nil during early
	// bring-up; tests set it to runtime.Gosched.
	yieldFn func()
)

// Spinlock implements a lock where each CPU trying to acquire it busy-waits
// till the lock becomes available.
type Spinlock struct {
	state uint32
}

// Acquire blocks until the lock can be acquired by the calling CPU. Any
// attempt to re-acquire a lock already held by the caller will cause a
// deadlock.
func (l *Spinlock) Acquire() {
	for attempts := uint32(0); !l.TryToAcquire(); attempts++ {
		// Spin on a plain load to avoid bouncing the cache line.
		for atomic.LoadUint32(&l.state) != 0 {
			if attempts++; attempts >= attemptsBeforeYielding {
				attempts = 0
				if yieldFn != nil {
					yieldFn()
				}
			}
		}
	}
}

// TryToAcquire attempts to acquire the lock and returns true if the lock could
// be acquired or false otherwise.
func (l *Spinlock) TryToAcquire() bool {
	return atomic.SwapUint32(&l.state, 1) == 0
}

// Release relinquishes a held lock allowing other CPUs to acquire it. Calling
// Release while the lock is free has no effect.
func (l *Spinlock) Release() {
	atomic.StoreUint32(&l.state, 0)
}
