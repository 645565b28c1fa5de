//go:build amd64

package hash

import "golang.org/x/sys/cpu"

func init() {
	hasCRC32 = cpu.X86.HasSSE42
	initCapabilities()
}
