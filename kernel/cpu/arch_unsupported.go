//go:build (!amd64 && !arm64 && !riscv64) || (amd64 && !baremetal && !linux)

package cpu

// Register access for the per-CPU base is only defined for the targets listed
// in the package documentation. Referencing an undefined function turns an
// unsupported GOARCH/GOOS/tag combination into a build error.
func init() {
	perCPUBaseRegisterUnavailableForTarget()
}
