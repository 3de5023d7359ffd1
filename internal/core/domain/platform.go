package domain

import (
	"runtime"
	"strings"
)

// Platform identifies the operating system family an install step targets.
// The zero value is not a valid platform.
type Platform int

const (
	// PlatformWindows targets Windows hosts.
	PlatformWindows Platform = iota + 1
	// PlatformPOSIX targets Linux, macOS and other POSIX hosts.
	PlatformPOSIX
)

// String returns the lowercase name of the platform.
func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformPOSIX:
		return "posix"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	return p == PlatformWindows || p == PlatformPOSIX
}

// ParsePlatform converts a platform name to a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows":
		return PlatformWindows, nil
	case "posix":
		return PlatformPOSIX, nil
	default:
		return 0, invalid("platform")
	}
}

// HostPlatform returns the platform of the running process.
func HostPlatform() Platform {
	return platformForGOOS(runtime.GOOS)
}

func platformForGOOS(goos string) Platform {
	if goos == "windows" {
		return PlatformWindows
	}
	return PlatformPOSIX
}
