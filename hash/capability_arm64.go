//go:build arm64

package hash

import "golang.org/x/sys/cpu"

func init() {
	hasCRC32 = cpu.ARM64.HasCRC32
	initCapabilities()
}
