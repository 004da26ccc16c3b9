//go:build !baremetal

package percpu

import (
	"gopercpu/kernel"
	"gopercpu/kernel/kfmt"
	"gopercpu/kernel/sync"

	"golang.org/x/sys/unix"
)

var (
	// mmapFn is mocked by tests.
	mmapFn = mapArena

	errArenaUnavailable = &kernel.Error{Module: "percpu", Message: "per-CPU arena accessed before Init"}
	errArenaAlloc       = &kernel.Error{Module: "percpu", Message: "unable to allocate per-CPU arena"}
)

// platformState holds the arena backing the per-CPU areas of a hosted build.
// The loader does not know about the per-CPU image so the arena is mapped
// lazily, exactly once.
type platformState struct {
	once  sync.Once
	arena []byte
}

// mapArena maps size bytes of zeroed, page-aligned anonymous memory.
func mapArena(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// globalBase returns the base of the arena.
func (s *Storage) globalBase() uintptr {
	s.provision()
	if len(s.platform.arena) == 0 {
		return 0
	}

	return kernel.AddrOf(s.platform.arena)
}

// provision maps an arena large enough for MaxCPUNum areas. It must not be
// reached before Init has recorded the CPU count.
func (s *Storage) provision() {
	if s.maxCPUNum == 0 {
		panicFn(errArenaUnavailable)
		return
	}

	s.platform.once.Do(func() {
		pageSize := uintptr(unix.Getpagesize())
		size := (s.Stride()*uintptr(s.maxCPUNum) + pageSize - 1) &^ (pageSize - 1)
		if size == 0 {
			size = pageSize
		}

		arena, err := mmapFn(int(size))
		if err != nil {
			kfmt.Printf("mmap of %d bytes failed: %s\n", size, err.Error())
			panicFn(errArenaAlloc)
			return
		}

		s.platform.arena = arena
	})
}

// seedTemplate copies the per-CPU image into the template area. The arena is
// freshly mapped memory so it does not contain the image's initial values yet.
// Images in Go memory are copied as slices; only images outside the Go heap
// are addressed through LoadStart.
func (s *Storage) seedTemplate(size uintptr) {
	if len(s.platform.arena) == 0 {
		return
	}

	switch {
	case s.layout.image != nil:
		copy(s.platform.arena[:size], s.layout.image)
	case s.layout.LoadStart != 0:
		kernel.Memcopy(s.layout.LoadStart, s.AreaBase(0), size)
	}
}

// checkBounds always succeeds; the arena is sized for MaxCPUNum areas.
func (s *Storage) checkBounds(_, _ uintptr) bool {
	return true
}
