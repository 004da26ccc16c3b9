package cpu

import "gopercpu/kernel"

// ReservedAreaBytes is the number of bytes at the start of each per-CPU area
// that the register access code owns.
const ReservedAreaBytes = 0

// ReadPerCPUBase returns the contents of TPIDR_EL1 (TPIDR_EL2 with the el2
// build tag).
func ReadPerCPUBase() uintptr

// WritePerCPUBase loads base into TPIDR_EL1 (TPIDR_EL2 with the el2 build
// tag). The write cannot fail.
func WritePerCPUBase(base uintptr) *kernel.Error {
	writeTPIDR(base)
	return nil
}

func writeTPIDR(base uintptr)
