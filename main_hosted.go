//go:build !baremetal

package main

import (
	"os"
	"runtime"

	"gopercpu/kernel/kfmt"
	"gopercpu/kernel/kmain"
	"gopercpu/kernel/percpu"
)

// perCPUImage stands in for the per-CPU section of a hosted build. Offset 0 is
// the register self pointer on amd64.
var perCPUImage [256]byte

type binding struct {
	cpuID int
	base  uintptr
}

// main brings up one simulated CPU per host CPU. Each simulated CPU is a
// goroutine locked to its own OS thread, which owns the per-CPU base register.
func main() {
	runtime.LockOSThread()

	maxCPUNum := runtime.NumCPU()
	areas := kmain.Boot(percpu.ImageOf(perCPUImage[:]), maxCPUNum, os.Stdout)

	bindings := make(chan binding, maxCPUNum)
	for cpuID := 1; cpuID < maxCPUNum; cpuID++ {
		go func(cpuID int) {
			// The thread is discarded when the goroutine exits locked.
			runtime.LockOSThread()
			kmain.StartCPU(cpuID)
			bindings <- binding{cpuID: cpuID, base: percpu.ReadRegister()}
		}(cpuID)
	}

	// kfmt is not safe for concurrent use so only main prints.
	for i := 1; i < maxCPUNum; i++ {
		b := <-bindings
		status := "ok"
		if b.base != areas.AreaBase(b.cpuID) {
			status = "MISMATCH"
		}
		kfmt.Printf("cpu %d bound to area 0x%x: %s\n", b.cpuID, b.base, status)
	}
}
