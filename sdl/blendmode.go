package sdl

// BlendMode controls how drawing operations mix with the destination.
type BlendMode uint32

const (
	BLENDMODE_NONE                BlendMode = 0x00000000 // dst = src
	BLENDMODE_BLEND               BlendMode = 0x00000001 // alpha blending
	BLENDMODE_ADD                 BlendMode = 0x00000002 // additive
	BLENDMODE_MOD                 BlendMode = 0x00000004 // color modulate
	BLENDMODE_MUL                 BlendMode = 0x00000008 // color multiply
	BLENDMODE_BLEND_PREMULTIPLIED BlendMode = 0x00000010
	BLENDMODE_ADD_PREMULTIPLIED   BlendMode = 0x00000020
	BLENDMODE_INVALID             BlendMode = 0x7fffffff
)

// BlendOperation combines source and destination terms.
type BlendOperation uint32

const (
	BLENDOPERATION_ADD          BlendOperation = 0x1
	BLENDOPERATION_SUBTRACT     BlendOperation = 0x2
	BLENDOPERATION_REV_SUBTRACT BlendOperation = 0x3
	BLENDOPERATION_MINIMUM      BlendOperation = 0x4
	BLENDOPERATION_MAXIMUM      BlendOperation = 0x5
)

// BlendFactor scales a term of a blend operation.
type BlendFactor uint32

const (
	BLENDFACTOR_ZERO                BlendFactor = 0x1
	BLENDFACTOR_ONE                 BlendFactor = 0x2
	BLENDFACTOR_SRC_COLOR           BlendFactor = 0x3
	BLENDFACTOR_ONE_MINUS_SRC_COLOR BlendFactor = 0x4
	BLENDFACTOR_SRC_ALPHA           BlendFactor = 0x5
	BLENDFACTOR_ONE_MINUS_SRC_ALPHA BlendFactor = 0x6
	BLENDFACTOR_DST_COLOR           BlendFactor = 0x7
	BLENDFACTOR_ONE_MINUS_DST_COLOR BlendFactor = 0x8
	BLENDFACTOR_DST_ALPHA           BlendFactor = 0x9
	BLENDFACTOR_ONE_MINUS_DST_ALPHA BlendFactor = 0xa
)

type blendFns struct {
	ComposeCustomBlendMode func(BlendFactor, BlendFactor, BlendOperation, BlendFactor, BlendFactor, BlendOperation) BlendMode `ffi:"SDL_ComposeCustomBlendMode"`
}

var blendProcs procs[blendFns]

// ComposeCustomBlendMode builds a custom blend mode from per-channel
// factors and operations. Renderers reject combinations their backend
// cannot express, at SetDrawBlendMode time.
func ComposeCustomBlendMode(srcColor, dstColor BlendFactor, colorOp BlendOperation,
	srcAlpha, dstAlpha BlendFactor, alphaOp BlendOperation) BlendMode {
	return blendProcs.get().ComposeCustomBlendMode(srcColor, dstColor, colorOp, srcAlpha, dstAlpha, alphaOp)
}
