package sdl

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// FColor is a float-per-channel RGBA color.
type FColor struct {
	R float32
	G float32
	B float32
	A float32
}

// Palette is a set of indexed colors owned by the native library.
type Palette struct {
	NColors  int32
	Colors   *Color
	Version  uint32
	RefCount int32
}

// PixelFormat encodes how pixels are laid out: a type, channel order,
// packed layout, bits and bytes per pixel, all packed into one 32-bit
// value exactly as the native header composes it.
type PixelFormat uint32

// PixelType is the storage class of a format.
type PixelType uint32

const (
	PIXELTYPE_UNKNOWN PixelType = iota
	PIXELTYPE_INDEX1
	PIXELTYPE_INDEX4
	PIXELTYPE_INDEX8
	PIXELTYPE_PACKED8
	PIXELTYPE_PACKED16
	PIXELTYPE_PACKED32
	PIXELTYPE_ARRAYU8
	PIXELTYPE_ARRAYU16
	PIXELTYPE_ARRAYU32
	PIXELTYPE_ARRAYF16
	PIXELTYPE_ARRAYF32
	PIXELTYPE_INDEX2
)

// Packed channel orders, high bit to low bit.
const (
	PACKEDORDER_NONE uint32 = iota
	PACKEDORDER_XRGB
	PACKEDORDER_RGBX
	PACKEDORDER_ARGB
	PACKEDORDER_RGBA
	PACKEDORDER_XBGR
	PACKEDORDER_BGRX
	PACKEDORDER_ABGR
	PACKEDORDER_BGRA
)

// Array channel orders, low byte to high byte.
const (
	ARRAYORDER_NONE uint32 = iota
	ARRAYORDER_RGB
	ARRAYORDER_RGBA
	ARRAYORDER_ARGB
	ARRAYORDER_BGR
	ARRAYORDER_BGRA
	ARRAYORDER_ABGR
)

// Packed layouts.
const (
	PACKEDLAYOUT_NONE uint32 = iota
	PACKEDLAYOUT_332
	PACKEDLAYOUT_4444
	PACKEDLAYOUT_1555
	PACKEDLAYOUT_5551
	PACKEDLAYOUT_565
	PACKEDLAYOUT_8888
	PACKEDLAYOUT_2101010
	PACKEDLAYOUT_1010102
)

// DefinePixelFormat composes a format value from its parts, mirroring the
// native SDL_DEFINE_PIXELFORMAT macro.
func DefinePixelFormat(typ PixelType, order, layout, bits, bytes uint32) PixelFormat {
	return PixelFormat(1<<28 | uint32(typ)<<24 | order<<20 | layout<<16 | bits<<8 | bytes)
}

// FourCC composes a format value from four characters.
func FourCC(a, b, c, d byte) PixelFormat {
	return PixelFormat(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

const (
	PIXELFORMAT_UNKNOWN     PixelFormat = 0
	PIXELFORMAT_INDEX8      PixelFormat = 0x13000801
	PIXELFORMAT_RGB565      PixelFormat = 0x15151002
	PIXELFORMAT_RGB24       PixelFormat = 0x17101803
	PIXELFORMAT_BGR24       PixelFormat = 0x17401803
	PIXELFORMAT_XRGB8888    PixelFormat = 0x16161804
	PIXELFORMAT_RGBX8888    PixelFormat = 0x16261804
	PIXELFORMAT_XBGR8888    PixelFormat = 0x16561804
	PIXELFORMAT_BGRX8888    PixelFormat = 0x16661804
	PIXELFORMAT_ARGB8888    PixelFormat = 0x16362004
	PIXELFORMAT_RGBA8888    PixelFormat = 0x16462004
	PIXELFORMAT_ABGR8888    PixelFormat = 0x16762004
	PIXELFORMAT_BGRA8888    PixelFormat = 0x16862004
	PIXELFORMAT_ARGB2101010 PixelFormat = 0x16372004
)

// FourCC formats for planar and packed YUV data.
var (
	PIXELFORMAT_YV12 = FourCC('Y', 'V', '1', '2')
	PIXELFORMAT_IYUV = FourCC('I', 'Y', 'U', 'V')
	PIXELFORMAT_YUY2 = FourCC('Y', 'U', 'Y', '2')
	PIXELFORMAT_UYVY = FourCC('U', 'Y', 'V', 'Y')
	PIXELFORMAT_YVYU = FourCC('Y', 'V', 'Y', 'U')
	PIXELFORMAT_NV12 = FourCC('N', 'V', '1', '2')
	PIXELFORMAT_NV21 = FourCC('N', 'V', '2', '1')
	PIXELFORMAT_P010 = FourCC('P', '0', '1', '0')
)

// Byte-order-dependent aliases for "32-bit RGBA as bytes in memory".
var (
	PIXELFORMAT_RGBA32 = pick32(PIXELFORMAT_ABGR8888, PIXELFORMAT_RGBA8888)
	PIXELFORMAT_ARGB32 = pick32(PIXELFORMAT_BGRA8888, PIXELFORMAT_ARGB8888)
	PIXELFORMAT_BGRA32 = pick32(PIXELFORMAT_ARGB8888, PIXELFORMAT_BGRA8888)
	PIXELFORMAT_ABGR32 = pick32(PIXELFORMAT_RGBA8888, PIXELFORMAT_ABGR8888)
	PIXELFORMAT_XRGB32 = pick32(PIXELFORMAT_XBGR8888, PIXELFORMAT_XRGB8888)
	PIXELFORMAT_XBGR32 = pick32(PIXELFORMAT_XRGB8888, PIXELFORMAT_XBGR8888)
)

func pick32(little, big PixelFormat) PixelFormat {
	if littleEndian() {
		return little
	}
	return big
}

// IsFourCC reports whether the format is a FourCC code rather than a
// composed value.
func (f PixelFormat) IsFourCC() bool {
	return f != 0 && f>>28 != 1
}

// Type returns the storage class of a composed format.
func (f PixelFormat) Type() PixelType {
	if f.IsFourCC() {
		return PIXELTYPE_UNKNOWN
	}
	return PixelType(f >> 24 & 0x0f)
}

// Order returns the channel order of a composed format.
func (f PixelFormat) Order() uint32 {
	if f.IsFourCC() {
		return 0
	}
	return uint32(f >> 20 & 0x0f)
}

// Layout returns the packed layout of a composed format.
func (f PixelFormat) Layout() uint32 {
	if f.IsFourCC() {
		return 0
	}
	return uint32(f >> 16 & 0x0f)
}

// BitsPerPixel returns the significant bits in a pixel, 0 for FourCC
// formats.
func (f PixelFormat) BitsPerPixel() int {
	if f.IsFourCC() {
		return 0
	}
	return int(f >> 8 & 0xff)
}

// BytesPerPixel returns the bytes used per pixel. Packed FourCC formats
// take two, planar ones one.
func (f PixelFormat) BytesPerPixel() int {
	if f.IsFourCC() {
		switch f {
		case PIXELFORMAT_YUY2, PIXELFORMAT_UYVY, PIXELFORMAT_YVYU, PIXELFORMAT_P010:
			return 2
		}
		return 1
	}
	return int(f & 0xff)
}

// IsIndexed reports whether pixels are palette indices.
func (f PixelFormat) IsIndexed() bool {
	switch f.Type() {
	case PIXELTYPE_INDEX1, PIXELTYPE_INDEX2, PIXELTYPE_INDEX4, PIXELTYPE_INDEX8:
		return !f.IsFourCC()
	}
	return false
}

// IsPacked reports whether channels share machine words.
func (f PixelFormat) IsPacked() bool {
	switch f.Type() {
	case PIXELTYPE_PACKED8, PIXELTYPE_PACKED16, PIXELTYPE_PACKED32:
		return !f.IsFourCC()
	}
	return false
}

// IsArray reports whether channels are stored as separate array elements.
func (f PixelFormat) IsArray() bool {
	switch f.Type() {
	case PIXELTYPE_ARRAYU8, PIXELTYPE_ARRAYU16, PIXELTYPE_ARRAYU32,
		PIXELTYPE_ARRAYF16, PIXELTYPE_ARRAYF32:
		return !f.IsFourCC()
	}
	return false
}

// HasAlpha reports whether the format carries an alpha channel.
func (f PixelFormat) HasAlpha() bool {
	if f.IsPacked() {
		switch f.Order() {
		case PACKEDORDER_ARGB, PACKEDORDER_RGBA, PACKEDORDER_ABGR, PACKEDORDER_BGRA:
			return true
		}
		return false
	}
	if f.IsArray() {
		switch f.Order() {
		case ARRAYORDER_ARGB, ARRAYORDER_RGBA, ARRAYORDER_ABGR, ARRAYORDER_BGRA:
			return true
		}
	}
	return false
}

// Is10Bit reports a packed 32-bit format with a 2101010 layout.
func (f PixelFormat) Is10Bit() bool {
	return !f.IsFourCC() && f.Type() == PIXELTYPE_PACKED32 && f.Layout() == PACKEDLAYOUT_2101010
}

// IsFloat reports a float-array format.
func (f PixelFormat) IsFloat() bool {
	if f.IsFourCC() {
		return false
	}
	t := f.Type()
	return t == PIXELTYPE_ARRAYF16 || t == PIXELTYPE_ARRAYF32
}

// PixelFormatDetails is the native per-format channel breakdown.
type PixelFormatDetails struct {
	Format        PixelFormat
	BitsPerPixel  uint8
	BytesPerPixel uint8
	_             [2]uint8
	Rmask         uint32
	Gmask         uint32
	Bmask         uint32
	Amask         uint32
	Rbits         uint8
	Gbits         uint8
	Bbits         uint8
	Abits         uint8
	Rshift        uint8
	Gshift        uint8
	Bshift        uint8
	Ashift        uint8
}

type pixelsFns struct {
	GetPixelFormatName     func(PixelFormat) string                                               `ffi:"SDL_GetPixelFormatName"`
	GetMasksForPixelFormat func(PixelFormat, *int32, *uint32, *uint32, *uint32, *uint32) bool     `ffi:"SDL_GetMasksForPixelFormat"`
	GetPixelFormatForMasks func(int32, uint32, uint32, uint32, uint32) PixelFormat                `ffi:"SDL_GetPixelFormatForMasks"`
	GetPixelFormatDetails  func(PixelFormat) *PixelFormatDetails                                  `ffi:"SDL_GetPixelFormatDetails"`
	MapRGB                 func(*PixelFormatDetails, *Palette, uint8, uint8, uint8) uint32        `ffi:"SDL_MapRGB"`
	MapRGBA                func(*PixelFormatDetails, *Palette, uint8, uint8, uint8, uint8) uint32 `ffi:"SDL_MapRGBA"`
}

var pixelProcs procs[pixelsFns]

// Name returns the native name of the format, "SDL_PIXELFORMAT_UNKNOWN"
// for values the library does not recognize.
func (f PixelFormat) Name() string {
	return pixelProcs.get().GetPixelFormatName(f)
}

// Masks returns bits-per-pixel plus the four channel masks for a format.
func (f PixelFormat) Masks() (bpp int, rmask, gmask, bmask, amask uint32, err error) {
	var b int32
	if !pixelProcs.get().GetMasksForPixelFormat(f, &b, &rmask, &gmask, &bmask, &amask) {
		return 0, 0, 0, 0, 0, lastErr()
	}
	return int(b), rmask, gmask, bmask, amask, nil
}

// PixelFormatForMasks finds the format matching a channel-mask layout.
func PixelFormatForMasks(bpp int, rmask, gmask, bmask, amask uint32) PixelFormat {
	return pixelProcs.get().GetPixelFormatForMasks(int32(bpp), rmask, gmask, bmask, amask)
}

// Details returns the native channel breakdown for the format. The result
// is owned by the library and must not be freed.
func (f PixelFormat) Details() (*PixelFormatDetails, error) {
	d := pixelProcs.get().GetPixelFormatDetails(f)
	if d == nil {
		return nil, lastErr()
	}
	return d, nil
}

// MapRGB maps a color to a pixel value in this format. palette may be nil
// for non-indexed formats.
func (d *PixelFormatDetails) MapRGB(palette *Palette, r, g, b uint8) uint32 {
	return pixelProcs.get().MapRGB(d, palette, r, g, b)
}

// MapRGBA maps a color with alpha to a pixel value in this format.
func (d *PixelFormatDetails) MapRGBA(palette *Palette, r, g, b, a uint8) uint32 {
	return pixelProcs.get().MapRGBA(d, palette, r, g, b, a)
}

// Colorspace describes how pixel values map to colors. The named values
// below are the ones surfaces, renderers and cameras commonly report.
type Colorspace uint32

const (
	COLORSPACE_UNKNOWN        Colorspace = 0
	COLORSPACE_SRGB           Colorspace = 0x120005a0
	COLORSPACE_SRGB_LINEAR    Colorspace = 0x12000500
	COLORSPACE_HDR10          Colorspace = 0x12002600
	COLORSPACE_JPEG           Colorspace = 0x220004c6
	COLORSPACE_BT601_LIMITED  Colorspace = 0x211018c6
	COLORSPACE_BT601_FULL     Colorspace = 0x221018c6
	COLORSPACE_BT709_LIMITED  Colorspace = 0x21100421
	COLORSPACE_BT709_FULL     Colorspace = 0x22100421
	COLORSPACE_BT2020_LIMITED Colorspace = 0x21102609
	COLORSPACE_BT2020_FULL    Colorspace = 0x22102609

	COLORSPACE_RGB_DEFAULT Colorspace = COLORSPACE_SRGB
	COLORSPACE_YUV_DEFAULT Colorspace = COLORSPACE_JPEG
)
