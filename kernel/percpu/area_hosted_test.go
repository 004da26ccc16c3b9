//go:build !baremetal

package percpu

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

func TestAreaBaseBeforeInit(t *testing.T) {
	rec := recordPanics(t)
	image := newTemplate(100)
	s := New(ImageOf(image))

	s.AreaBase(1)
	rec.expect(t, errArenaUnavailable)
}

func TestAreaBaseHosted(t *testing.T) {
	rec := recordPanics(t)
	image := newTemplate(100)
	s := New(ImageOf(image))
	s.Init(4)
	rec.expectNone(t)

	base := s.AreaBase(0)
	if pageSize := uintptr(unix.Getpagesize()); base%pageSize != 0 {
		t.Fatalf("expected arena base 0x%x to be page-aligned", base)
	}

	if got := s.AreaBase(2) - s.AreaBase(0); got != 256 {
		t.Fatalf("expected area 2 to start 256 bytes after area 0; got %d", got)
	}

	if got := s.AreaBase(0); got != base {
		t.Fatalf("expected arena base to be memoized; got 0x%x then 0x%x", base, got)
	}

	size := s.AreaSize()
	for a := 0; a < 4; a++ {
		if s.AreaBase(a)%AreaAlign != 0 {
			t.Errorf("expected area %d to be %d-byte aligned", a, AreaAlign)
		}

		for b := 0; b < 4; b++ {
			if a == b {
				continue
			}

			aStart, bStart := s.AreaBase(a), s.AreaBase(b)
			if aStart == bStart {
				t.Errorf("expected areas %d and %d to have distinct bases", a, b)
			}

			if aStart < bStart+size && bStart < aStart+size {
				t.Errorf("expected areas %d and %d not to overlap", a, b)
			}
		}
	}
}

func TestArenaAllocFailure(t *testing.T) {
	defer func(origMmapFn func(int) ([]byte, error)) { mmapFn = origMmapFn }(mmapFn)
	mmapFn = func(_ int) ([]byte, error) {
		return nil, errors.New("out of memory")
	}

	defer func(origReplicateFn func(uintptr, uintptr, uintptr)) { replicateFn = origReplicateFn }(replicateFn)
	replicateFn = func(_, _, _ uintptr) {}

	// Panic halts the CPU so only the first error is of interest.
	rec := recordPanics(t)
	s := New(Layout{LoadEnd: 128})
	s.Init(2)

	if len(rec.errs) == 0 || rec.errs[0] != errArenaAlloc {
		t.Fatalf("expected kernel panic with %q; got %v", errArenaAlloc.Message, rec.errs)
	}
}
