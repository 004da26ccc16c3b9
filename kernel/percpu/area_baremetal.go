//go:build baremetal

package percpu

import (
	"gopercpu/kernel"
	"gopercpu/kernel/kfmt"
)

var errRegionOverflow = &kernel.Error{Module: "percpu", Message: "per-CPU areas exceed the reserved per-CPU region"}

// platformState is empty on bare metal: the loader reserves the per-CPU
// region and places the image at its start.
type platformState struct{}

func (s *Storage) globalBase() uintptr {
	return s.layout.Start
}

func (s *Storage) provision() {}

func (s *Storage) seedTemplate(_ uintptr) {}

// checkBounds reports whether an area of size bytes at base fits inside the
// reserved region. A misfit is a link-time misconfiguration and triggers a
// kernel panic.
func (s *Storage) checkBounds(base, size uintptr) bool {
	if base+size > s.layout.End {
		kfmt.Printf("area at 0x%x (+%d) ends past region end 0x%x\n", base, size, s.layout.End)
		panicFn(errRegionOverflow)
		return false
	}

	return true
}
