//go:build !amd64 && !arm64

package hash

func init() {
	initCapabilities()
}
