package sync

import "sync/atomic"

// Once performs an action exactly once. Callers arriving while the action is
// in progress spin until it completes, so every Do call returns only after
// the action has finished.
type Once struct {
	lock Spinlock
	done uint32
}

// Do invokes fn if and only if Do is being called for the first time for
// this instance. fn must not call Do on the same Once.
func (o *Once) Do(fn func()) {
	if atomic.LoadUint32(&o.done) == 1 {
		return
	}

	o.lock.Acquire()
	if o.done == 0 {
		fn()
		atomic.StoreUint32(&o.done, 1)
	}
	o.lock.Release()
}

// Done returns true if the action has completed.
func (o *Once) Done() bool {
	return atomic.LoadUint32(&o.done) == 1
}

// Flag is a one-way boolean. It starts cleared and can be set exactly once;
// there is no way to clear it again.
type Flag struct {
	state uint32
}

// TestAndSet atomically sets the flag. It returns true only for the single
// caller that observed the flag cleared.
func (f *Flag) TestAndSet() bool {
	return atomic.CompareAndSwapUint32(&f.state, 0, 1)
}

// IsSet returns true if the flag has been set.
func (f *Flag) IsSet() bool {
	return atomic.LoadUint32(&f.state) == 1
}
