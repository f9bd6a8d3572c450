package sdl

import "unsafe"

// IOStream is an opaque handle to the library's stream abstraction over
// files and memory.
type IOStream struct{}

// IOStatus describes why a read or write stopped short.
type IOStatus int32

const (
	IO_STATUS_READY IOStatus = iota
	IO_STATUS_ERROR
	IO_STATUS_EOF
	IO_STATUS_NOT_READY
	IO_STATUS_READONLY
	IO_STATUS_WRITEONLY
)

// Seek origins for IOStream.Seek.
const (
	IO_SEEK_SET int32 = iota
	IO_SEEK_CUR
	IO_SEEK_END
)

type ioFns struct {
	IOFromFile     func(string, string) *IOStream                 `ffi:"SDL_IOFromFile"`
	IOFromMem      func(unsafe.Pointer, uint64) *IOStream         `ffi:"SDL_IOFromMem"`
	IOFromConstMem func(unsafe.Pointer, uint64) *IOStream         `ffi:"SDL_IOFromConstMem"`
	CloseIO        func(*IOStream) bool                           `ffi:"SDL_CloseIO"`
	GetIOStatus    func(*IOStream) IOStatus                       `ffi:"SDL_GetIOStatus"`
	GetIOSize      func(*IOStream) int64                          `ffi:"SDL_GetIOSize"`
	SeekIO         func(*IOStream, int64, int32) int64            `ffi:"SDL_SeekIO"`
	TellIO         func(*IOStream) int64                          `ffi:"SDL_TellIO"`
	ReadIO         func(*IOStream, unsafe.Pointer, uint64) uint64 `ffi:"SDL_ReadIO"`
	WriteIO        func(*IOStream, unsafe.Pointer, uint64) uint64 `ffi:"SDL_WriteIO"`
	FlushIO        func(*IOStream) bool                           `ffi:"SDL_FlushIO"`
	LoadFile       func(string, *uint64) unsafe.Pointer           `ffi:"SDL_LoadFile"`
	SaveFile       func(string, unsafe.Pointer, uint64) bool      `ffi:"SDL_SaveFile"`
}

var ioProcs procs[ioFns]

// IOFromFile opens a file as a stream. mode follows fopen ("rb", "wb",
// "ab", "r+b", ...).
func IOFromFile(path, mode string) (*IOStream, error) {
	s := ioProcs.get().IOFromFile(path, mode)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// IOFromMem wraps a byte slice as a read-write stream. The slice must
// outlive the stream.
func IOFromMem(buf []byte) (*IOStream, error) {
	if len(buf) == 0 {
		return nil, lastErr()
	}
	s := ioProcs.get().IOFromMem(unsafe.Pointer(&buf[0]), uint64(len(buf)))
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// IOFromConstMem wraps a byte slice as a read-only stream. The slice
// must outlive the stream.
func IOFromConstMem(buf []byte) (*IOStream, error) {
	if len(buf) == 0 {
		return nil, lastErr()
	}
	s := ioProcs.get().IOFromConstMem(unsafe.Pointer(&buf[0]), uint64(len(buf)))
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// Close flushes and closes the stream. The handle is dead even on
// failure.
func (s *IOStream) Close() error {
	if !ioProcs.get().CloseIO(s) {
		return lastErr()
	}
	return nil
}

// Status explains the most recent short read or write.
func (s *IOStream) Status() IOStatus {
	return ioProcs.get().GetIOStatus(s)
}

// Size returns the stream length, negative on failure.
func (s *IOStream) Size() (int64, error) {
	n := ioProcs.get().GetIOSize(s)
	if n < 0 {
		return 0, lastErr()
	}
	return n, nil
}

// Seek moves the read-write offset relative to an IO_SEEK_* origin and
// returns the new absolute offset.
func (s *IOStream) Seek(offset int64, whence int32) (int64, error) {
	n := ioProcs.get().SeekIO(s, offset, whence)
	if n < 0 {
		return 0, lastErr()
	}
	return n, nil
}

// Tell returns the current offset.
func (s *IOStream) Tell() int64 {
	return ioProcs.get().TellIO(s)
}

// Read fills buf and returns the byte count. Zero means end of stream or
// error; check Status to tell them apart.
func (s *IOStream) Read(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	return int(ioProcs.get().ReadIO(s, unsafe.Pointer(&buf[0]), uint64(len(buf))))
}

// Write writes buf and returns the byte count, short on error.
func (s *IOStream) Write(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	n := int(ioProcs.get().WriteIO(s, unsafe.Pointer(&buf[0]), uint64(len(buf))))
	if n < len(buf) {
		return n, lastErr()
	}
	return n, nil
}

// Flush pushes buffered writes out.
func (s *IOStream) Flush() error {
	if !ioProcs.get().FlushIO(s) {
		return lastErr()
	}
	return nil
}

// LoadFile reads a whole file into a Go slice.
func LoadFile(path string) ([]byte, error) {
	var size uint64
	p := ioProcs.get().LoadFile(path, &size)
	if p == nil {
		return nil, lastErr()
	}
	data := make([]byte, size)
	copy(data, unsafe.Slice((*byte)(p), size))
	free(p)
	return data, nil
}

// SaveFile writes data to a file, replacing any existing contents.
func SaveFile(path string, data []byte) error {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	if !ioProcs.get().SaveFile(path, p, uint64(len(data))) {
		return lastErr()
	}
	return nil
}
