//go:build baremetal

package main

import (
	"gopercpu/kernel/kmain"
	"gopercpu/kernel/percpu"
)

// The rt0 code stores the per-CPU section symbols and the CPU count here
// before jumping to main.
var (
	perCPULayout percpu.Layout
	maxCPUNum    = 1
)

// apEntry is the Go entry point for secondary CPUs. The AP start-up
// trampoline jumps to it with the CPU index once the boot CPU has returned
// from Boot; referencing it here keeps StartCPU in the generated .o file.
var apEntry = kmain.StartCPU

// main makes a dummy call to the actual boot entrypoint. It is intentionally
// defined to prevent the Go compiler from optimizing away the real per-CPU
// code.
//
// Global variables are passed as arguments to Boot to prevent the compiler
// from inlining the call and removing Boot from the generated .o file. Only
// the boot CPU runs main; secondary CPUs never pass through it.
func main() {
	kmain.Boot(perCPULayout, maxCPUNum, nil)
}
