//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package main

// The oto backend hands float32 sample memory to the device as
// FormatFloat32LE bytes without swapping.
var _ = "Intuition Theremin requires a little-endian architecture" + 1
