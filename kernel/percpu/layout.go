package percpu

// AreaAlign is the alignment of every per-CPU area. It matches the cache line
// size so that two CPUs never share a line.
const AreaAlign = 64

// alignUp64 rounds v up to the next multiple of AreaAlign.
func alignUp64(v uintptr) uintptr {
	return (v + AreaAlign - 1) &^ (AreaAlign - 1)
}

// AreaSize returns the size in bytes of one per-CPU area, i.e. the size of
// the per-CPU data image.
func (s *Storage) AreaSize() uintptr {
	return s.layout.LoadEnd - s.layout.LoadStart
}

// Stride returns the distance between the bases of two consecutive per-CPU
// areas.
func (s *Storage) Stride() uintptr {
	return alignUp64(s.AreaSize())
}
