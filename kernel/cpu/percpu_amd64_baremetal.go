//go:build amd64 && baremetal

package cpu

import "gopercpu/kernel"

// ReadPerCPUBase returns the contents of the IA32_GS_BASE MSR.
func ReadPerCPUBase() uintptr

// WritePerCPUBase loads base into the IA32_GS_BASE MSR and stores it into the
// self-pointer slot of the area. Interrupts are masked across both writes so
// a handler never observes a GS base whose self pointer is stale. The write
// cannot fail.
func WritePerCPUBase(base uintptr) *kernel.Error {
	writeGSBase(base)
	return nil
}

func writeGSBase(base uintptr)
