package cpu

const (
	// SelfPtrOffset is the byte offset, inside every per-CPU area, of the
	// word holding that area's own base address. Loading GS:SelfPtrOffset
	// yields the base without touching the GS base register itself.
	SelfPtrOffset = 0

	// ReservedAreaBytes is the number of bytes at the start of each per-CPU
	// area that the register access code owns.
	ReservedAreaBytes = 8
)

// readSelfPtr returns the word stored at GS:SelfPtrOffset.
func readSelfPtr() uintptr

// writeSelfPtr stores v at GS:SelfPtrOffset.
func writeSelfPtr(v uintptr)
