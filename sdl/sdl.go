// Package sdl exposes the SDL3 C API to Go programs.
//
// Every function in this package is a thin wrapper over one native entry
// point, resolved by name from the SDL3 shared library on first use of its
// subsystem and cached afterwards. Calls that SDL reports as failed (a
// false or NULL return) come back as a Go error carrying the text of
// SDL_GetError at the moment of failure.
//
// The library is located automatically from the usual install names for
// the platform. Set the SDL3_LIBRARY environment variable to load a
// specific file instead, or call LoadLibrary before anything else.
package sdl

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"gosdl3/internal/dl"
)

var (
	libMu  sync.Mutex
	lib    *dl.Library
	libErr error
)

func libraryNames() []string {
	if path := os.Getenv("SDL3_LIBRARY"); path != "" {
		return []string{path}
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{"libSDL3.dylib", "libSDL3.0.dylib"}
	case "windows":
		return []string{"SDL3.dll"}
	default:
		return []string{"libSDL3.so", "libSDL3.so.0"}
	}
}

// LoadLibrary opens the SDL3 shared library at path. Calling it is
// optional; the first native call loads the library from the default
// names. It fails if a library is already loaded. A failed load leaves
// the package untouched, so the default search still runs later.
func LoadLibrary(path string) error {
	libMu.Lock()
	defer libMu.Unlock()
	if lib != nil {
		return fmt.Errorf("sdl: library already loaded from %s", lib.Name())
	}
	l, err := dl.Open(path)
	if err != nil {
		return err
	}
	lib, libErr = l, nil
	return nil
}

func library() *dl.Library {
	libMu.Lock()
	defer libMu.Unlock()
	if lib == nil && libErr == nil {
		lib, libErr = dl.Open(libraryNames()...)
	}
	if libErr != nil {
		panic("sdl: " + libErr.Error())
	}
	return lib
}

// procs lazily registers a struct of native entry points the first time a
// subsystem is touched. Registration failures are programming errors
// (misspelled symbol, ancient library) and panic.
type procs[T any] struct {
	once sync.Once
	fns  T
}

func (p *procs[T]) get() *T {
	p.once.Do(func() {
		if err := library().Register(&p.fns); err != nil {
			panic("sdl: " + err.Error())
		}
	})
	return &p.fns
}
