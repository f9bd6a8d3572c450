package dl

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLibrary(lookup func(uintptr, string) (uintptr, error)) *Library {
	return &Library{
		name:   "libfake.so",
		handle: 1,
		syms:   make(map[string]uintptr),
		lookup: lookup,
	}
}

func TestSymbolResolvedOnce(t *testing.T) {
	var calls int32
	lib := fakeLibrary(func(_ uintptr, name string) (uintptr, error) {
		atomic.AddInt32(&calls, 1)
		return 0x1000, nil
	})

	for i := 0; i < 5; i++ {
		addr, err := lib.Symbol("SDL_Init")
		require.NoError(t, err)
		assert.Equal(t, uintptr(0x1000), addr)
	}
	assert.Equal(t, int32(1), calls, "symbol must be resolved exactly once")
}

func TestSymbolConcurrent(t *testing.T) {
	var calls int32
	lib := fakeLibrary(func(_ uintptr, name string) (uintptr, error) {
		atomic.AddInt32(&calls, 1)
		return uintptr(len(name)), nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range []string{"SDL_Init", "SDL_Quit", "SDL_GetError"} {
				if _, err := lib.Symbol(name); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(3), calls, "one lookup per distinct symbol")
}

func TestSymbolMissing(t *testing.T) {
	lib := fakeLibrary(func(_ uintptr, name string) (uintptr, error) {
		return 0, errors.New("undefined symbol")
	})

	_, err := lib.Symbol("SDL_Bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SDL_Bogus")
	assert.Contains(t, err.Error(), "libfake.so")
}

func TestRegister(t *testing.T) {
	lib := fakeLibrary(func(_ uintptr, name string) (uintptr, error) {
		return 0x2000, nil
	})

	var procs struct {
		Quit    func() `ffi:"SDL_Quit"`
		ignored int
		NoTag   func()
	}
	require.NoError(t, lib.Register(&procs))
	assert.NotNil(t, procs.Quit)
	assert.Nil(t, procs.NoTag)
	_ = procs.ignored
}

func TestRegisterRejectsNonStruct(t *testing.T) {
	lib := fakeLibrary(nil)
	assert.Error(t, lib.Register(42))
	var fns struct{}
	assert.Error(t, lib.Register(fns)) // must be a pointer
}

func TestRegisterMissingSymbol(t *testing.T) {
	lib := fakeLibrary(func(_ uintptr, name string) (uintptr, error) {
		return 0, errors.New("undefined symbol")
	})
	var procs struct {
		Init func(uint32) bool `ffi:"SDL_Init"`
	}
	err := lib.Register(&procs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SDL_Init")
}

func TestOpenNoNames(t *testing.T) {
	_, err := Open()
	assert.Error(t, err)
}

func TestCloseClearsCache(t *testing.T) {
	lib := fakeLibrary(func(_ uintptr, name string) (uintptr, error) {
		return 0x3000, nil
	})
	_, err := lib.Symbol("SDL_GetTicks")
	require.NoError(t, err)
	lib.handle = 0 // avoid touching the real loader on close
	require.NoError(t, lib.Close())
	assert.Nil(t, lib.syms)
}
