// Package dl loads a shared library once and resolves native entry points
// by name, caching each resolved address so every symbol is looked up at
// most once for the lifetime of the process.
package dl

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

// Library is an open shared-library handle plus a symbol cache.
type Library struct {
	name   string
	handle uintptr

	mu   sync.RWMutex
	syms map[string]uintptr

	// lookup is the platform symbol resolver. Tests replace it.
	lookup func(handle uintptr, name string) (uintptr, error)
}

// Open tries each candidate name in order and returns the first library
// that loads. The returned Library owns the handle until Close.
func Open(names ...string) (*Library, error) {
	if len(names) == 0 {
		return nil, errors.New("dl: no library names given")
	}
	var firstErr error
	for _, name := range names {
		handle, err := openLibrary(name)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			logrus.WithFields(logrus.Fields{
				"library": name,
				"error":   err,
			}).Debug("dl: open failed")
			continue
		}
		logrus.WithField("library", name).Debug("dl: opened")
		return &Library{
			name:   name,
			handle: handle,
			syms:   make(map[string]uintptr),
			lookup: lookupSymbol,
		}, nil
	}
	return nil, fmt.Errorf("dl: cannot open %v: %w", names, firstErr)
}

// Name returns the name the library was opened under.
func (l *Library) Name() string { return l.name }

// Symbol resolves name to an address, consulting the cache first.
func (l *Library) Symbol(name string) (uintptr, error) {
	l.mu.RLock()
	addr, ok := l.syms[name]
	l.mu.RUnlock()
	if ok {
		return addr, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if addr, ok = l.syms[name]; ok {
		return addr, nil
	}
	addr, err := l.lookup(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("dl: %s: symbol %q: %w", l.name, name, err)
	}
	l.syms[name] = addr
	logrus.WithFields(logrus.Fields{
		"library": l.name,
		"symbol":  name,
	}).Trace("dl: resolved")
	return addr, nil
}

// Register fills every func field of the struct pointed to by procs with a
// callable bound to the native entry point named by its `ffi` tag. Fields
// without a tag are skipped.
func (l *Library) Register(procs any) error {
	v := reflect.ValueOf(procs)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dl: Register wants *struct, got %T", procs)
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type.Kind() != reflect.Func {
			continue
		}
		name := field.Tag.Get("ffi")
		if name == "" {
			continue
		}
		addr, err := l.Symbol(name)
		if err != nil {
			return err
		}
		purego.RegisterFunc(v.Field(i).Addr().Interface(), addr)
	}
	return nil
}

// Close releases the library handle. Cached addresses become invalid.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.syms = nil
	if l.handle == 0 {
		return nil
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	return err
}
