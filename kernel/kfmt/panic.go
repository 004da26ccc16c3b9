package kfmt

import (
	"gopercpu/kernel"
	"gopercpu/kernel/cpu"
)

// cpuHaltFn is mocked by tests and is automatically inlined by the compiler.
var cpuHaltFn = cpu.Halt

// runtimeModule tags panics raised with a plain Go error or string.
const runtimeModule = "rt"

// describe splits a panic cause into the module that raised it and its
// message. Causes of any other type, including a nil *kernel.Error, yield an
// empty module.
func describe(e interface{}) (module, message string) {
	switch t := e.(type) {
	case *kernel.Error:
		if t != nil {
			return t.Module, t.Message
		}
	case error:
		return runtimeModule, t.Error()
	case string:
		return runtimeModule, t
	}

	return "", ""
}

// Panic reports e on the console and halts the calling CPU. Several CPUs may
// panic at once during bring-up and none of them shares state with another.
// Calls to Panic never return.
func Panic(e interface{}) {
	module, message := describe(e)

	Printf("\n=== per-CPU bring-up aborted ===\n")
	if module != "" {
		Printf("[%s] %s\n", module, message)
	}
	Printf("=== halting CPU ===\n")

	cpuHaltFn()
}
