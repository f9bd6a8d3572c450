package sdl

import "unsafe"

// Storage is an opaque handle to an abstract filesystem container: the
// read-only title data shipped with an app, a per-user writable area, or
// a plain directory.
type Storage struct{}

type storageFns struct {
	OpenTitleStorage         func(*byte, PropertiesID) *Storage                   `ffi:"SDL_OpenTitleStorage"`
	OpenUserStorage          func(string, string, PropertiesID) *Storage          `ffi:"SDL_OpenUserStorage"`
	OpenFileStorage          func(string) *Storage                                `ffi:"SDL_OpenFileStorage"`
	CloseStorage             func(*Storage) bool                                  `ffi:"SDL_CloseStorage"`
	StorageReady             func(*Storage) bool                                  `ffi:"SDL_StorageReady"`
	GetStorageFileSize       func(*Storage, string, *uint64) bool                 `ffi:"SDL_GetStorageFileSize"`
	ReadStorageFile          func(*Storage, string, unsafe.Pointer, uint64) bool  `ffi:"SDL_ReadStorageFile"`
	WriteStorageFile         func(*Storage, string, unsafe.Pointer, uint64) bool  `ffi:"SDL_WriteStorageFile"`
	CreateStorageDirectory   func(*Storage, string) bool                          `ffi:"SDL_CreateStorageDirectory"`
	RemoveStoragePath        func(*Storage, string) bool                          `ffi:"SDL_RemoveStoragePath"`
	RenameStoragePath        func(*Storage, string, string) bool                  `ffi:"SDL_RenameStoragePath"`
	CopyStorageFile          func(*Storage, string, string) bool                  `ffi:"SDL_CopyStorageFile"`
	GetStoragePathInfo       func(*Storage, string, *PathInfo) bool               `ffi:"SDL_GetStoragePathInfo"`
	GetStorageSpaceRemaining func(*Storage) uint64                                `ffi:"SDL_GetStorageSpaceRemaining"`
	GlobStorageDirectory     func(*Storage, string, *byte, uint32, *int32) **byte `ffi:"SDL_GlobStorageDirectory"`
}

var storageProcs procs[storageFns]

// OpenTitleStorage opens the read-only container of data shipped with
// the title. override replaces the default location when non-empty.
func OpenTitleStorage(override string, props PropertiesID) (*Storage, error) {
	s := storageProcs.get().OpenTitleStorage(cstrOrNil(override), props)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// OpenUserStorage opens the per-user writable container for the app.
func OpenUserStorage(org, app string, props PropertiesID) (*Storage, error) {
	s := storageProcs.get().OpenUserStorage(org, app, props)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// OpenFileStorage opens a plain directory as a storage container.
func OpenFileStorage(path string) (*Storage, error) {
	s := storageProcs.get().OpenFileStorage(path)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// Close flushes and releases the container. An error means pending
// writes may not have landed.
func (s *Storage) Close() error {
	if !storageProcs.get().CloseStorage(s) {
		return lastErr()
	}
	return nil
}

// Ready reports whether the container is ready for IO. Remote-backed
// containers may need a few calls across frames before this is true.
func (s *Storage) Ready() bool {
	return storageProcs.get().StorageReady(s)
}

// FileSize returns the size of a file in the container.
func (s *Storage) FileSize(path string) (uint64, error) {
	var size uint64
	if !storageProcs.get().GetStorageFileSize(s, path, &size) {
		return 0, lastErr()
	}
	return size, nil
}

// ReadFile returns the whole content of a file in the container.
func (s *Storage) ReadFile(path string) ([]byte, error) {
	size, err := s.FileSize(path)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, size)
	if !storageProcs.get().ReadStorageFile(s, path, unsafe.Pointer(&buf[0]), size) {
		return nil, lastErr()
	}
	return buf, nil
}

// WriteFile replaces a file in the container with data.
func (s *Storage) WriteFile(path string, data []byte) error {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	if !storageProcs.get().WriteStorageFile(s, path, p, uint64(len(data))) {
		return lastErr()
	}
	return nil
}

// CreateDirectory makes a directory in the container.
func (s *Storage) CreateDirectory(path string) error {
	if !storageProcs.get().CreateStorageDirectory(s, path) {
		return lastErr()
	}
	return nil
}

// RemovePath deletes a file or an empty directory in the container.
func (s *Storage) RemovePath(path string) error {
	if !storageProcs.get().RemoveStoragePath(s, path) {
		return lastErr()
	}
	return nil
}

// RenamePath renames a file or directory in the container.
func (s *Storage) RenamePath(oldPath, newPath string) error {
	if !storageProcs.get().RenameStoragePath(s, oldPath, newPath) {
		return lastErr()
	}
	return nil
}

// CopyFile copies a file within the container.
func (s *Storage) CopyFile(src, dst string) error {
	if !storageProcs.get().CopyStorageFile(s, src, dst) {
		return lastErr()
	}
	return nil
}

// PathInfo stats a path in the container.
func (s *Storage) PathInfo(path string) (PathInfo, error) {
	var info PathInfo
	if !storageProcs.get().GetStoragePathInfo(s, path, &info) {
		return PathInfo{}, lastErr()
	}
	return info, nil
}

// SpaceRemaining returns how many bytes the container can still take.
func (s *Storage) SpaceRemaining() uint64 {
	return storageProcs.get().GetStorageSpaceRemaining(s)
}

// GlobDirectory lists entries under path in the container matching
// pattern, relative to path. An empty pattern matches everything. Flags
// take GLOB_* values.
func (s *Storage) GlobDirectory(path, pattern string, flags uint32) ([]string, error) {
	var n int32
	arr := storageProcs.get().GlobStorageDirectory(s, path, cstrOrNil(pattern), flags, &n)
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
