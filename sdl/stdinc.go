package sdl

import "unsafe"

type memFns struct {
	Free   func(unsafe.Pointer)        `ffi:"SDL_free"`
	Malloc func(uint64) unsafe.Pointer `ffi:"SDL_malloc"`
}

var memProcs procs[memFns]

// free releases memory the native library allocated and handed to us,
// such as enumeration arrays.
func free(p unsafe.Pointer) {
	if p != nil {
		memProcs.get().Free(p)
	}
}

// goString copies a NUL-terminated native string into a Go string without
// freeing it.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// takeString copies a NUL-terminated native string we own into a Go
// string and frees the native memory.
func takeString(p *byte) string {
	if p == nil {
		return ""
	}
	s := goString(p)
	free(unsafe.Pointer(p))
	return s
}

// cstrOrNil returns a NUL-terminated copy of s, or nil for "", for
// native parameters where NULL and empty mean different things.
func cstrOrNil(s string) *byte {
	if s == "" {
		return nil
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0]
}

// littleEndian reports the byte order of the machine we run on.
func littleEndian() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}

// copyIDs copies a native ID array of length n into a Go slice and frees
// the native array.
func copyIDs[T ~uint32 | ~uint64](ptr *T, n int32) []T {
	if ptr == nil || n <= 0 {
		return nil
	}
	out := make([]T, n)
	copy(out, unsafe.Slice(ptr, n))
	free(unsafe.Pointer(ptr))
	return out
}
