package sdl

import "unsafe"

// Folder names the well-known user directories.
type Folder int32

const (
	FOLDER_HOME Folder = iota
	FOLDER_DESKTOP
	FOLDER_DOCUMENTS
	FOLDER_DOWNLOADS
	FOLDER_MUSIC
	FOLDER_PICTURES
	FOLDER_PUBLICSHARE
	FOLDER_SAVEDGAMES
	FOLDER_SCREENSHOTS
	FOLDER_TEMPLATES
	FOLDER_VIDEOS
)

// PathType classifies directory entries.
type PathType int32

const (
	PATHTYPE_NONE PathType = iota
	PATHTYPE_FILE
	PATHTYPE_DIRECTORY
	PATHTYPE_OTHER
)

// PathInfo describes a filesystem entry. Times are in nanoseconds since
// the Unix epoch.
type PathInfo struct {
	Type       PathType
	_          [4]byte
	Size       uint64
	CreateTime int64
	ModifyTime int64
	AccessTime int64
}

// Glob flags.
const (
	GLOB_CASEINSENSITIVE uint32 = 1 << 0
)

type filesystemFns struct {
	GetBasePath         func() string                              `ffi:"SDL_GetBasePath"`
	GetPrefPath         func(string, string) *byte                 `ffi:"SDL_GetPrefPath"`
	GetUserFolder       func(Folder) string                        `ffi:"SDL_GetUserFolder"`
	GetCurrentDirectory func() *byte                               `ffi:"SDL_GetCurrentDirectory"`
	GetPathInfo         func(string, *PathInfo) bool               `ffi:"SDL_GetPathInfo"`
	CreateDirectory     func(string) bool                          `ffi:"SDL_CreateDirectory"`
	RemovePath          func(string) bool                          `ffi:"SDL_RemovePath"`
	RenamePath          func(string, string) bool                  `ffi:"SDL_RenamePath"`
	CopyFile            func(string, string) bool                  `ffi:"SDL_CopyFile"`
	GlobDirectory       func(string, *byte, uint32, *int32) **byte `ffi:"SDL_GlobDirectory"`
}

var fsProcs procs[filesystemFns]

// GetBasePath returns the directory the application was run from, with a
// trailing path separator, or "" on failure.
func GetBasePath() string {
	return fsProcs.get().GetBasePath()
}

// GetPrefPath returns a per-user writable directory for the app, created
// if missing, with a trailing path separator.
func GetPrefPath(org, app string) (string, error) {
	p := fsProcs.get().GetPrefPath(org, app)
	if p == nil {
		return "", lastErr()
	}
	return takeString(p), nil
}

// GetUserFolder returns a well-known user directory with a trailing path
// separator, or "" on failure.
func GetUserFolder(folder Folder) string {
	return fsProcs.get().GetUserFolder(folder)
}

// GetCurrentDirectory returns the process working directory.
func GetCurrentDirectory() (string, error) {
	p := fsProcs.get().GetCurrentDirectory()
	if p == nil {
		return "", lastErr()
	}
	return takeString(p), nil
}

// GetPathInfo stats a path.
func GetPathInfo(path string) (PathInfo, error) {
	var info PathInfo
	if !fsProcs.get().GetPathInfo(path, &info) {
		return PathInfo{}, lastErr()
	}
	return info, nil
}

// CreateDirectory makes a directory and any missing parents. Succeeds if
// it already exists.
func CreateDirectory(path string) error {
	if !fsProcs.get().CreateDirectory(path) {
		return lastErr()
	}
	return nil
}

// RemovePath deletes a file or an empty directory. Succeeds if the path
// is already gone.
func RemovePath(path string) error {
	if !fsProcs.get().RemovePath(path) {
		return lastErr()
	}
	return nil
}

// RenamePath renames a file or directory within a filesystem.
func RenamePath(oldPath, newPath string) error {
	if !fsProcs.get().RenamePath(oldPath, newPath) {
		return lastErr()
	}
	return nil
}

// CopyFile copies a file, replacing the destination. A failed copy may
// leave a partial destination behind.
func CopyFile(src, dst string) error {
	if !fsProcs.get().CopyFile(src, dst) {
		return lastErr()
	}
	return nil
}

// GlobDirectory lists entries under path matching pattern, relative to
// path. An empty pattern matches everything. Flags take GLOB_* values.
func GlobDirectory(path, pattern string, flags uint32) ([]string, error) {
	var n int32
	arr := fsProcs.get().GlobDirectory(path, cstrOrNil(pattern), flags, &n)
	if arr == nil {
		return nil, lastErr()
	}
	out := make([]string, 0, n)
	for _, p := range unsafe.Slice(arr, n) {
		out = append(out, goString(p))
	}
	free(unsafe.Pointer(arr))
	return out, nil
}
