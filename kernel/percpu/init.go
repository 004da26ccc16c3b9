package percpu

import "gopercpu/kernel/kfmt"

// Init prepares the per-CPU areas for maxCPUNum CPUs and replicates the
// contents of the template area (CPU 0) into the areas of CPUs 1 through
// maxCPUNum-1.
//
// Only the first call has any effect; later or concurrent calls return
// immediately, regardless of the CPU count they pass. Callers that lose the
// race may return before the winner has finished replicating, so boot code
// must not bind secondary CPUs until the winning call returns.
func (s *Storage) Init(maxCPUNum int) {
	if maxCPUNum < 1 {
		panicFn(errNoCPUs)
		return
	}

	if !s.initialized.TestAndSet() {
		return
	}

	size := s.AreaSize()
	s.maxCPUNum = maxCPUNum
	s.provision()
	s.seedTemplate(size)

	template := s.AreaBase(0)
	for cpuID := 1; cpuID < maxCPUNum; cpuID++ {
		base := s.AreaBase(cpuID)
		if !s.checkBounds(base, size) {
			return
		}

		replicateFn(template, base, size)
	}

	kfmt.Printf("%d CPU areas of %d bytes (stride %d) at 0x%x\n", maxCPUNum, size, s.Stride(), template)
}
