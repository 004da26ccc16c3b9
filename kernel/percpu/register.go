package percpu

// ReadRegister returns the per-CPU base register of the calling CPU. After
// BindRegister it holds the base of the CPU's own area. It is safe to call
// from any context, including interrupt handlers.
func ReadRegister() uintptr {
	return readRegFn()
}

// WriteRegister loads base into the per-CPU base register of the calling CPU.
//
// The caller must guarantee that base is the area base of this CPU; any other
// value makes every subsequent per-CPU access on this CPU unsafe. On amd64 the
// write is paired with a store to the area's self-pointer slot and must not be
// interleaved with code that reads per-CPU data.
//
// If the platform refuses base, the register keeps its previous value and
// WriteRegister triggers a kernel panic.
func WriteRegister(base uintptr) {
	if err := writeRegFn(base); err != nil {
		panicFn(err)
	}
}

// BindRegister points the base register of the calling CPU to the area of
// cpuID. Each CPU calls it exactly once during bring-up, before touching any
// per-CPU data. Rebinding a CPU to a different area after per-CPU data has
// been used is a caller error.
func (s *Storage) BindRegister(cpuID int) {
	if cpuID < 0 || (s.initialized.IsSet() && cpuID >= s.maxCPUNum) {
		panicFn(errCPUOutOfRange)
		return
	}

	WriteRegister(s.AreaBase(cpuID))
}
