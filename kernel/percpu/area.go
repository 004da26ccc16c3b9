package percpu

// AreaBase returns the base address of the per-CPU area that belongs to
// cpuID. AreaBase(0) is the base of the whole per-CPU region and doubles as
// the template that Init replicates to the other CPUs.
//
// On hosted builds the arena only exists once Init has run.
func (s *Storage) AreaBase(cpuID int) uintptr {
	if cpuID < 0 {
		panicFn(errCPUOutOfRange)
		return 0
	}

	return s.globalBase() + uintptr(cpuID)*s.Stride()
}
