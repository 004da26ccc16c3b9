// Package kmain hands control from the architecture-specific start-up code to
// the per-CPU storage facility. The boot CPU calls Boot; every other CPU calls
// StartCPU while it is being brought up.
package kmain

import (
	"io"

	"gopercpu/kernel"
	"gopercpu/kernel/kfmt"
	"gopercpu/kernel/percpu"
)

var (
	// panicFn is mocked by tests and is automatically inlined by the compiler.
	panicFn = kfmt.Panic

	// areas is published by Boot and read by the secondary CPUs.
	areas *percpu.Storage

	consolePrefix = []byte("[percpu] ")

	errNotBooted = &kernel.Error{Module: "kmain", Message: "secondary CPU started before per-CPU storage was initialized"}
)

// Boot is invoked by the start-up code on the boot CPU. It receives the
// per-CPU image boundaries emitted by the linker and the number of CPUs
// discovered by the platform, replicates the image for every CPU and binds the
// boot CPU to area 0. Log output is sent to console when it is not nil.
//
// Secondary CPUs must not be released before Boot returns.
//
//go:noinline
func Boot(layout percpu.Layout, maxCPUNum int, console io.Writer) *percpu.Storage {
	if console != nil {
		kfmt.SetOutputSink(&kfmt.PrefixWriter{Sink: console, Prefix: consolePrefix})
	}

	s := percpu.New(layout)
	if s == nil {
		return nil
	}

	s.Init(maxCPUNum)
	s.BindRegister(0)
	areas = s

	kfmt.Printf("cpu 0 bound to area 0x%x\n", percpu.ReadRegister())
	return s
}

// StartCPU binds the calling secondary CPU to the per-CPU area of cpuID. It
// must run on that CPU before it touches any per-CPU data.
//
//go:noinline
func StartCPU(cpuID int) {
	if areas == nil || !areas.Initialized() {
		panicFn(errNotBooted)
		return
	}

	areas.BindRegister(cpuID)
}
