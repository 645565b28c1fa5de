package hash

import "os"

// Package-level state, initialized once by the platform-specific init.
var (
	// autoStrategy is what Auto resolves to.
	autoStrategy Strategy

	// hasOverride is true if SORTCHECK_HASH selected the strategy.
	hasOverride bool

	// hasCRC32 reports a hardware CRC32C instruction (set by platform init).
	hasCRC32 bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv("SORTCHECK_HASH"); override != "" {
		if s, ok := ParseStrategy(override); ok && s != Auto {
			hasOverride = true
			autoStrategy = s
			return
		}
		// Invalid override - fall through to auto-detection
	}

	autoStrategy = selectBestStrategy(hasCRC32)
}

func selectBestStrategy(crc bool) Strategy {
	if crc {
		return CRC32CStrategy
	}
	return TabulationStrategy
}

// AutoStrategy returns the strategy Auto resolves to on this machine.
func AutoStrategy() Strategy {
	return autoStrategy
}

// IsOverridden returns true if SORTCHECK_HASH was set to a known strategy.
func IsOverridden() bool {
	return hasOverride
}

// HasCRC32 returns true if the CPU computes CRC32C in hardware.
func HasCRC32() bool {
	return hasCRC32
}
