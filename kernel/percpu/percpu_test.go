package percpu

import (
	"testing"
	"unsafe"

	"gopercpu/kernel"
	"gopercpu/kernel/cpu"
)

// panicRecorder replaces panicFn for the duration of a test and records the
// errors it receives instead of halting.
type panicRecorder struct {
	errs []interface{}
}

func recordPanics(t *testing.T) *panicRecorder {
	rec := new(panicRecorder)
	origPanicFn := panicFn
	panicFn = func(e interface{}) {
		rec.errs = append(rec.errs, e)
	}
	t.Cleanup(func() { panicFn = origPanicFn })
	return rec
}

func (rec *panicRecorder) expect(t *testing.T, exp *kernel.Error) {
	t.Helper()
	if len(rec.errs) != 1 || rec.errs[0] != exp {
		t.Fatalf("expected a single kernel panic with %q; got %v", exp.Message, rec.errs)
	}
}

func (rec *panicRecorder) expectNone(t *testing.T) {
	t.Helper()
	if len(rec.errs) != 0 {
		t.Fatalf("expected no kernel panic; got %v", rec.errs)
	}
}

// newTemplate returns a per-CPU image of the given size with a recognisable
// byte pattern.
func newTemplate(size int) []byte {
	image := make([]byte, size)
	for i := range image {
		image[i] = byte(i*7 + 1)
	}
	return image
}

// areaBytes overlays a byte slice on the area of cpuID.
func areaBytes(s *Storage, cpuID int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(s.AreaBase(cpuID))), s.AreaSize())
}

func TestNew(t *testing.T) {
	t.Run("valid layout", func(t *testing.T) {
		rec := recordPanics(t)
		layout := Layout{LoadStart: 0x1000, LoadEnd: 0x1064}

		s := New(layout)
		rec.expectNone(t)

		if s == nil {
			t.Fatal("expected New to return a Storage")
		}

		if s.Initialized() {
			t.Fatal("expected a new Storage to be uninitialized")
		}

		if got := s.MaxCPUNum(); got != 0 {
			t.Fatalf("expected MaxCPUNum to be 0 before Init; got %d", got)
		}
	})

	t.Run("image end before start", func(t *testing.T) {
		rec := recordPanics(t)

		if s := New(Layout{LoadStart: 0x2000, LoadEnd: 0x1000}); s != nil {
			t.Fatal("expected New to return nil")
		}
		rec.expect(t, errInvalidLayout)
	})

	t.Run("image smaller than reserved slot", func(t *testing.T) {
		if cpu.ReservedAreaBytes == 0 {
			t.Skip("no reserved per-CPU bytes on this architecture")
		}
		rec := recordPanics(t)

		if s := New(Layout{LoadStart: 0x1000, LoadEnd: 0x1000 + cpu.ReservedAreaBytes - 1}); s != nil {
			t.Fatal("expected New to return nil")
		}
		rec.expect(t, errImageTooSmall)
	})
}

func TestImageOf(t *testing.T) {
	if got := ImageOf(nil); got.LoadStart != 0 || got.LoadEnd != 0 || got.image != nil {
		t.Fatalf("expected empty image to yield a zero Layout; got %+v", got)
	}

	image := newTemplate(100)
	layout := ImageOf(image)

	if layout.LoadStart != 0 || layout.LoadEnd != 100 {
		t.Fatalf("expected image span [0, 100); got [%d, %d)", layout.LoadStart, layout.LoadEnd)
	}

	if len(layout.image) != 100 || &layout.image[0] != &image[0] {
		t.Fatal("expected Layout to reference the supplied image")
	}
}
