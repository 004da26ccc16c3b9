//go:build baremetal

package cpu

// Halt masks interrupts and stops instruction execution on the calling CPU.
func Halt()
