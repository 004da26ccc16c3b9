// Package cpu provides low-level access to the architecture-specific control
// register that each CPU uses to locate its own per-CPU area.
//
// The register in use depends on the target:
//
//	amd64    GS base (IA32_GS_BASE on bare metal, arch_prctl on linux)
//	riscv64  gp (x3)
//	arm64    TPIDR_EL1, or TPIDR_EL2 when built with the el2 tag
//
// The concrete implementation is selected by GOARCH and by the baremetal and
// el2 build tags. Building for any other target fails at compile time.
package cpu
