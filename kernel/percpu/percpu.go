// Package percpu provides per-CPU storage: one private instance of the
// per-CPU data image for every CPU, each located through an
// architecture-specific base register rather than a global address.
//
// Boot code creates a Storage from the linker-provided Layout, calls Init once
// with the CPU count and then has every CPU call BindRegister with its own
// index during bring-up. From then on a CPU finds its data by reading its base
// register (ReadRegister) and adding the offset of the variable it needs.
//
// Two platform variants are selected at build time. By default the areas live
// in a page-aligned arena mapped by the hosting OS; with the baremetal build
// tag they live in the region the loader reserved between Layout.Start and
// Layout.End.
package percpu

import (
	syscpu "golang.org/x/sys/cpu"

	"gopercpu/kernel"
	"gopercpu/kernel/cpu"
	"gopercpu/kernel/kfmt"
	"gopercpu/kernel/sync"
)

var (
	// The following functions are mocked by tests and are automatically
	// inlined by the compiler.
	panicFn     = kfmt.Panic
	replicateFn = kernel.Memcopy
	readRegFn   = cpu.ReadPerCPUBase
	writeRegFn  = cpu.WritePerCPUBase

	errInvalidLayout = &kernel.Error{Module: "percpu", Message: "per-CPU image ends before it starts"}
	errImageTooSmall = &kernel.Error{Module: "percpu", Message: "per-CPU image too small to hold the register self pointer"}
	errNoCPUs        = &kernel.Error{Module: "percpu", Message: "per-CPU init requires at least one CPU"}
	errCPUOutOfRange = &kernel.Error{Module: "percpu", Message: "CPU index outside the initialized per-CPU areas"}
)

// Layout holds the boundary markers that the linker and loader provide for
// the per-CPU data image.
type Layout struct {
	// LoadStart and LoadEnd bracket the per-CPU data image.
	LoadStart, LoadEnd uintptr

	// Start and End bound the region reserved for all per-CPU areas. They
	// are only consulted by bare-metal builds.
	Start, End uintptr

	// image holds a template that lives in Go memory. The runtime may move
	// such memory so it is never referred to by address.
	image []byte
}

// ImageOf returns a Layout whose image is the supplied byte slice. Hosted
// builds use it to describe a per-CPU template declared as a Go variable. The
// image spans [0, len(image)) and the Storage keeps a reference to the slice.
func ImageOf(image []byte) Layout {
	if len(image) == 0 {
		return Layout{}
	}

	return Layout{LoadEnd: uintptr(len(image)), image: image}
}

// Storage tracks the per-CPU areas for one image. A Storage starts
// uninitialized; the first call to Init sets it up and it stays initialized
// for the rest of its lifetime.
type Storage struct {
	layout Layout

	// Secondary CPUs poll initialized through Initialized and BindRegister
	// while the boot CPU is still storing maxCPUNum and the arena below it.
	// The pads keep those stores off the line being polled.
	_           syscpu.CacheLinePad
	initialized sync.Flag
	_           syscpu.CacheLinePad

	// maxCPUNum is written once by the Init winner.
	maxCPUNum int

	platform platformState
}

// New returns an uninitialized Storage for the per-CPU image described by
// layout. An inconsistent layout is a build misconfiguration and causes a
// kernel panic.
func New(layout Layout) *Storage {
	if layout.LoadEnd < layout.LoadStart {
		panicFn(errInvalidLayout)
		return nil
	}

	if layout.LoadEnd-layout.LoadStart < cpu.ReservedAreaBytes {
		panicFn(errImageTooSmall)
		return nil
	}

	return &Storage{layout: layout}
}

// Initialized returns true once Init has been called.
func (s *Storage) Initialized() bool {
	return s.initialized.IsSet()
}

// MaxCPUNum returns the CPU count passed to the first Init call or 0 if Init
// has not been called yet.
func (s *Storage) MaxCPUNum() int {
	return s.maxCPUNum
}
