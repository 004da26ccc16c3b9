package cpu

import "gopercpu/kernel"

// ReservedAreaBytes is the number of bytes at the start of each per-CPU area
// that the register access code owns.
const ReservedAreaBytes = 0

// ReadPerCPUBase returns the contents of the gp register.
func ReadPerCPUBase() uintptr

// WritePerCPUBase loads base into the gp register. The write cannot fail.
func WritePerCPUBase(base uintptr) *kernel.Error {
	writeGP(base)
	return nil
}

func writeGP(base uintptr)
