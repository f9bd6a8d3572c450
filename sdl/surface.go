package sdl

import "unsafe"

// SurfaceFlags describe how a surface's pixel memory is managed.
type SurfaceFlags uint32

const (
	SURFACE_PREALLOCATED SurfaceFlags = 0x00000001 // pixels owned by the caller
	SURFACE_LOCK_NEEDED  SurfaceFlags = 0x00000002 // must lock before touching pixels
	SURFACE_LOCKED       SurfaceFlags = 0x00000004
	SURFACE_SIMD_ALIGNED SurfaceFlags = 0x00000008
)

// ScaleMode selects the filter used when scaling pixels.
type ScaleMode int32

const (
	SCALEMODE_NEAREST ScaleMode = iota
	SCALEMODE_LINEAR
)

// FlipMode mirrors pixels during a flip or copy.
type FlipMode int32

const (
	FLIP_NONE FlipMode = iota
	FLIP_HORIZONTAL
	FLIP_VERTICAL
)

// Surface is a block of pixels in main memory. The leading fields mirror
// the native struct layout; everything past Reserved is private to the
// library.
type Surface struct {
	Flags    SurfaceFlags
	Format   PixelFormat
	W        int32
	H        int32
	Pitch    int32
	Pixels   unsafe.Pointer
	RefCount int32
	Reserved unsafe.Pointer
}

// MustLock reports whether Lock is required before reading or writing
// Pixels.
func (s *Surface) MustLock() bool {
	return s.Flags&SURFACE_LOCK_NEEDED != 0
}

type surfaceFns struct {
	CreateSurface        func(int32, int32, PixelFormat) *Surface                        `ffi:"SDL_CreateSurface"`
	CreateSurfaceFrom    func(int32, int32, PixelFormat, unsafe.Pointer, int32) *Surface `ffi:"SDL_CreateSurfaceFrom"`
	DestroySurface       func(*Surface)                                                  `ffi:"SDL_DestroySurface"`
	GetSurfaceProperties func(*Surface) PropertiesID                                     `ffi:"SDL_GetSurfaceProperties"`
	LockSurface          func(*Surface) bool                                             `ffi:"SDL_LockSurface"`
	UnlockSurface        func(*Surface)                                                  `ffi:"SDL_UnlockSurface"`
	LoadBMP              func(string) *Surface                                           `ffi:"SDL_LoadBMP"`
	SaveBMP              func(*Surface, string) bool                                     `ffi:"SDL_SaveBMP"`
	SetSurfaceColorKey   func(*Surface, bool, uint32) bool                               `ffi:"SDL_SetSurfaceColorKey"`
	GetSurfaceColorKey   func(*Surface, *uint32) bool                                    `ffi:"SDL_GetSurfaceColorKey"`
	SetSurfaceBlendMode  func(*Surface, BlendMode) bool                                  `ffi:"SDL_SetSurfaceBlendMode"`
	GetSurfaceBlendMode  func(*Surface, *BlendMode) bool                                 `ffi:"SDL_GetSurfaceBlendMode"`
	FillSurfaceRect      func(*Surface, *Rect, uint32) bool                              `ffi:"SDL_FillSurfaceRect"`
	ClearSurface         func(*Surface, float32, float32, float32, float32) bool         `ffi:"SDL_ClearSurface"`
	BlitSurface          func(*Surface, *Rect, *Surface, *Rect) bool                     `ffi:"SDL_BlitSurface"`
	BlitSurfaceScaled    func(*Surface, *Rect, *Surface, *Rect, ScaleMode) bool          `ffi:"SDL_BlitSurfaceScaled"`
	ConvertSurface       func(*Surface, PixelFormat) *Surface                            `ffi:"SDL_ConvertSurface"`
	DuplicateSurface     func(*Surface) *Surface                                         `ffi:"SDL_DuplicateSurface"`
	FlipSurface          func(*Surface, FlipMode) bool                                   `ffi:"SDL_FlipSurface"`
}

var surfProcs procs[surfaceFns]

// CreateSurface allocates a surface of the given size and format.
func CreateSurface(w, h int, format PixelFormat) (*Surface, error) {
	s := surfProcs.get().CreateSurface(int32(w), int32(h), format)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// CreateSurfaceFrom wraps existing pixel memory without copying it. The
// memory must outlive the surface.
func CreateSurfaceFrom(w, h int, format PixelFormat, pixels unsafe.Pointer, pitch int) (*Surface, error) {
	s := surfProcs.get().CreateSurfaceFrom(int32(w), int32(h), format, pixels, int32(pitch))
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// Destroy frees the surface.
func (s *Surface) Destroy() {
	surfProcs.get().DestroySurface(s)
}

// Properties returns the surface's property group.
func (s *Surface) Properties() PropertiesID {
	return surfProcs.get().GetSurfaceProperties(s)
}

// Lock makes Pixels safe to touch; pair with Unlock.
func (s *Surface) Lock() error {
	if !surfProcs.get().LockSurface(s) {
		return lastErr()
	}
	return nil
}

// Unlock releases a Lock.
func (s *Surface) Unlock() {
	surfProcs.get().UnlockSurface(s)
}

// LoadBMP reads a BMP file into a new surface.
func LoadBMP(path string) (*Surface, error) {
	s := surfProcs.get().LoadBMP(path)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// SaveBMP writes the surface to a BMP file.
func (s *Surface) SaveBMP(path string) error {
	if !surfProcs.get().SaveBMP(s, path) {
		return lastErr()
	}
	return nil
}

// SetColorKey marks a pixel value as transparent for blits. enabled false
// removes the key.
func (s *Surface) SetColorKey(enabled bool, key uint32) error {
	if !surfProcs.get().SetSurfaceColorKey(s, enabled, key) {
		return lastErr()
	}
	return nil
}

// ColorKey returns the transparent pixel value, or an error when none is
// set.
func (s *Surface) ColorKey() (uint32, error) {
	var key uint32
	if !surfProcs.get().GetSurfaceColorKey(s, &key) {
		return 0, lastErr()
	}
	return key, nil
}

// SetBlendMode sets the blend mode used when this surface is blitted.
func (s *Surface) SetBlendMode(mode BlendMode) error {
	if !surfProcs.get().SetSurfaceBlendMode(s, mode) {
		return lastErr()
	}
	return nil
}

// BlendMode returns the blend mode used when this surface is blitted.
func (s *Surface) BlendMode() (BlendMode, error) {
	var mode BlendMode
	if !surfProcs.get().GetSurfaceBlendMode(s, &mode) {
		return BLENDMODE_INVALID, lastErr()
	}
	return mode, nil
}

// FillRect fills an area with a pixel value mapped for this surface's
// format. A nil rect fills the whole surface.
func (s *Surface) FillRect(rect *Rect, color uint32) error {
	if !surfProcs.get().FillSurfaceRect(s, rect, color) {
		return lastErr()
	}
	return nil
}

// Clear fills the whole surface with a color, ignoring clip rectangles.
func (s *Surface) Clear(r, g, b, a float32) error {
	if !surfProcs.get().ClearSurface(s, r, g, b, a) {
		return lastErr()
	}
	return nil
}

// Blit copies srcRect of s onto dst at dstRect's origin, converting
// formats as needed. Nil rects mean the whole surface.
func (s *Surface) Blit(srcRect *Rect, dst *Surface, dstRect *Rect) error {
	if !surfProcs.get().BlitSurface(s, srcRect, dst, dstRect) {
		return lastErr()
	}
	return nil
}

// BlitScaled is Blit with scaling to fit dstRect.
func (s *Surface) BlitScaled(srcRect *Rect, dst *Surface, dstRect *Rect, mode ScaleMode) error {
	if !surfProcs.get().BlitSurfaceScaled(s, srcRect, dst, dstRect, mode) {
		return lastErr()
	}
	return nil
}

// Convert copies the surface into a new one with the given format.
func (s *Surface) Convert(format PixelFormat) (*Surface, error) {
	out := surfProcs.get().ConvertSurface(s, format)
	if out == nil {
		return nil, lastErr()
	}
	return out, nil
}

// Duplicate copies the surface.
func (s *Surface) Duplicate() (*Surface, error) {
	out := surfProcs.get().DuplicateSurface(s)
	if out == nil {
		return nil, lastErr()
	}
	return out, nil
}

// Flip mirrors the surface in place.
func (s *Surface) Flip(mode FlipMode) error {
	if !surfProcs.get().FlipSurface(s, mode) {
		return lastErr()
	}
	return nil
}
