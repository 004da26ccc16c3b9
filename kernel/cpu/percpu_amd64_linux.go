//go:build amd64 && linux && !baremetal

package cpu

import (
	"runtime"

	"gopercpu/kernel"

	"golang.org/x/sys/unix"
)

// archSetGS is the arch_prctl(2) code for loading the GS base of the calling
// thread.
const archSetGS = 0x1001

var errSetGSBase = &kernel.Error{Module: "cpu", Message: "arch_prctl(ARCH_SET_GS) rejected the per-CPU base"}

// ReadPerCPUBase returns the per-CPU area base of the calling thread. User
// space cannot read the GS base directly so the value is fetched through the
// self-pointer slot of the area GS points to.
//
// ReadPerCPUBase must not be called on a thread whose GS base has not been set
// by WritePerCPUBase.
func ReadPerCPUBase() uintptr {
	return readSelfPtr()
}

// WritePerCPUBase points the GS base of the calling thread to base and stores
// base into the self-pointer slot of that area. The caller must keep the
// goroutine locked to its OS thread for as long as it relies on the binding.
//
// If the kernel rejects base, neither the GS base nor the self pointer is
// modified.
func WritePerCPUBase(base uintptr) *kernel.Error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if _, _, errno := unix.RawSyscall(unix.SYS_ARCH_PRCTL, archSetGS, base, 0); errno != 0 {
		return errSetGSBase
	}
	writeSelfPtr(base)
	return nil
}
