package sdl

import "fmt"

// Version of the SDL3 headers these bindings were written against.
const (
	MAJOR_VERSION = 3
	MINOR_VERSION = 2
	MICRO_VERSION = 0
)

// VersionNum packs a major/minor/micro triple the way SDL encodes its
// linked version number.
func VersionNum(major, minor, micro int) int {
	return major*1000000 + minor*1000 + micro
}

// VersionNumMajor extracts the major version from a packed version number.
func VersionNumMajor(version int) int { return version / 1000000 }

// VersionNumMinor extracts the minor version from a packed version number.
func VersionNumMinor(version int) int { return version / 1000 % 1000 }

// VersionNumMicro extracts the micro version from a packed version number.
func VersionNumMicro(version int) int { return version % 1000 }

// VersionString formats a packed version number as "major.minor.micro".
func VersionString(version int) string {
	return fmt.Sprintf("%d.%d.%d",
		VersionNumMajor(version), VersionNumMinor(version), VersionNumMicro(version))
}

type versionFns struct {
	GetVersion  func() int32  `ffi:"SDL_GetVersion"`
	GetRevision func() string `ffi:"SDL_GetRevision"`
}

var versionProcs procs[versionFns]

// GetVersion returns the packed version number of the loaded library,
// which may be newer than the headers these bindings follow.
func GetVersion() int {
	return int(versionProcs.get().GetVersion())
}

// GetRevision returns the source revision string of the loaded library.
func GetRevision() string {
	return versionProcs.get().GetRevision()
}
