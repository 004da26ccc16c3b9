//go:build !baremetal

package cpu

import "golang.org/x/sys/unix"

var (
	killFn = unix.Kill
	exitFn = unix.Exit
)

// haltExitCode is the status reported when SIGABRT does not terminate the
// process, for example because the signal is ignored or handled.
const haltExitCode = 2

// Halt aborts the hosting process. There is no CPU to stop when running as a
// regular process so SIGABRT is the closest equivalent; Halt falls back to
// exiting with haltExitCode if the signal cannot be delivered or is survived.
func Halt() {
	_ = killFn(unix.Getpid(), unix.SIGABRT)
	exitFn(haltExitCode)
}
