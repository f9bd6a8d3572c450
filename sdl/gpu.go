package sdl

import "unsafe"

// GPUDevice is an opaque handle to the modern GPU API's device context.
type GPUDevice struct{}

// Opaque GPU resource handles. All are created from a device and must be
// released before the device is destroyed.
type (
	GPUBuffer           struct{}
	GPUTransferBuffer   struct{}
	GPUTexture          struct{}
	GPUSampler          struct{}
	GPUShader           struct{}
	GPUGraphicsPipeline struct{}
	GPUCommandBuffer    struct{}
	GPURenderPass       struct{}
	GPUCopyPass         struct{}
	GPUFence            struct{}
)

// GPUShaderFormat flags the shader bytecode formats a device consumes.
type GPUShaderFormat uint32

const (
	GPU_SHADERFORMAT_INVALID  GPUShaderFormat = 0
	GPU_SHADERFORMAT_PRIVATE  GPUShaderFormat = 1 << 0
	GPU_SHADERFORMAT_SPIRV    GPUShaderFormat = 1 << 1
	GPU_SHADERFORMAT_DXBC     GPUShaderFormat = 1 << 2
	GPU_SHADERFORMAT_DXIL     GPUShaderFormat = 1 << 3
	GPU_SHADERFORMAT_MSL      GPUShaderFormat = 1 << 4
	GPU_SHADERFORMAT_METALLIB GPUShaderFormat = 1 << 5
)

// GPUShaderStage is the pipeline stage a shader runs in.
type GPUShaderStage int32

const (
	GPU_SHADERSTAGE_VERTEX GPUShaderStage = iota
	GPU_SHADERSTAGE_FRAGMENT
)

// GPULoadOp says what happens to target contents at render pass begin.
type GPULoadOp int32

const (
	GPU_LOADOP_LOAD GPULoadOp = iota
	GPU_LOADOP_CLEAR
	GPU_LOADOP_DONT_CARE
)

// GPUStoreOp says what happens to target contents at render pass end.
type GPUStoreOp int32

const (
	GPU_STOREOP_STORE GPUStoreOp = iota
	GPU_STOREOP_DONT_CARE
	GPU_STOREOP_RESOLVE
	GPU_STOREOP_RESOLVE_AND_STORE
)

// GPUPrimitiveType selects how vertices assemble into primitives.
type GPUPrimitiveType int32

const (
	GPU_PRIMITIVETYPE_TRIANGLELIST GPUPrimitiveType = iota
	GPU_PRIMITIVETYPE_TRIANGLESTRIP
	GPU_PRIMITIVETYPE_LINELIST
	GPU_PRIMITIVETYPE_LINESTRIP
	GPU_PRIMITIVETYPE_POINTLIST
)

// GPUBufferUsageFlags declare how a buffer will be bound.
type GPUBufferUsageFlags uint32

const (
	GPU_BUFFERUSAGE_VERTEX                GPUBufferUsageFlags = 1 << 0
	GPU_BUFFERUSAGE_INDEX                 GPUBufferUsageFlags = 1 << 1
	GPU_BUFFERUSAGE_INDIRECT              GPUBufferUsageFlags = 1 << 2
	GPU_BUFFERUSAGE_GRAPHICS_STORAGE_READ GPUBufferUsageFlags = 1 << 3
	GPU_BUFFERUSAGE_COMPUTE_STORAGE_READ  GPUBufferUsageFlags = 1 << 4
	GPU_BUFFERUSAGE_COMPUTE_STORAGE_WRITE GPUBufferUsageFlags = 1 << 5
)

// GPUTransferBufferUsage is the direction a transfer buffer moves data.
type GPUTransferBufferUsage int32

const (
	GPU_TRANSFERBUFFERUSAGE_UPLOAD GPUTransferBufferUsage = iota
	GPU_TRANSFERBUFFERUSAGE_DOWNLOAD
)

// GPUTextureType is a texture's dimensionality.
type GPUTextureType int32

const (
	GPU_TEXTURETYPE_2D GPUTextureType = iota
	GPU_TEXTURETYPE_2D_ARRAY
	GPU_TEXTURETYPE_3D
	GPU_TEXTURETYPE_CUBE
	GPU_TEXTURETYPE_CUBE_ARRAY
)

// GPUTextureUsageFlags declare how a texture will be bound.
type GPUTextureUsageFlags uint32

const (
	GPU_TEXTUREUSAGE_SAMPLER               GPUTextureUsageFlags = 1 << 0
	GPU_TEXTUREUSAGE_COLOR_TARGET          GPUTextureUsageFlags = 1 << 1
	GPU_TEXTUREUSAGE_DEPTH_STENCIL_TARGET  GPUTextureUsageFlags = 1 << 2
	GPU_TEXTUREUSAGE_GRAPHICS_STORAGE_READ GPUTextureUsageFlags = 1 << 3
	GPU_TEXTUREUSAGE_COMPUTE_STORAGE_READ  GPUTextureUsageFlags = 1 << 4
	GPU_TEXTUREUSAGE_COMPUTE_STORAGE_WRITE GPUTextureUsageFlags = 1 << 5
)

// GPUTextureFormat mirrors the native texture format enum through the
// depth-stencil formats.
type GPUTextureFormat int32

const (
	GPU_TEXTUREFORMAT_INVALID GPUTextureFormat = iota
	GPU_TEXTUREFORMAT_A8_UNORM
	GPU_TEXTUREFORMAT_R8_UNORM
	GPU_TEXTUREFORMAT_R8G8_UNORM
	GPU_TEXTUREFORMAT_R8G8B8A8_UNORM
	GPU_TEXTUREFORMAT_R16_UNORM
	GPU_TEXTUREFORMAT_R16G16_UNORM
	GPU_TEXTUREFORMAT_R16G16B16A16_UNORM
	GPU_TEXTUREFORMAT_R10G10B10A2_UNORM
	GPU_TEXTUREFORMAT_B5G6R5_UNORM
	GPU_TEXTUREFORMAT_B5G5R5A1_UNORM
	GPU_TEXTUREFORMAT_B4G4R4A4_UNORM
	GPU_TEXTUREFORMAT_B8G8R8A8_UNORM
	GPU_TEXTUREFORMAT_BC1_RGBA_UNORM
	GPU_TEXTUREFORMAT_BC2_RGBA_UNORM
	GPU_TEXTUREFORMAT_BC3_RGBA_UNORM
	GPU_TEXTUREFORMAT_BC4_R_UNORM
	GPU_TEXTUREFORMAT_BC5_RG_UNORM
	GPU_TEXTUREFORMAT_BC7_RGBA_UNORM
	GPU_TEXTUREFORMAT_BC6H_RGB_FLOAT
	GPU_TEXTUREFORMAT_BC6H_RGB_UFLOAT
	GPU_TEXTUREFORMAT_R8_SNORM
	GPU_TEXTUREFORMAT_R8G8_SNORM
	GPU_TEXTUREFORMAT_R8G8B8A8_SNORM
	GPU_TEXTUREFORMAT_R16_SNORM
	GPU_TEXTUREFORMAT_R16G16_SNORM
	GPU_TEXTUREFORMAT_R16G16B16A16_SNORM
	GPU_TEXTUREFORMAT_R16_FLOAT
	GPU_TEXTUREFORMAT_R16G16_FLOAT
	GPU_TEXTUREFORMAT_R16G16B16A16_FLOAT
	GPU_TEXTUREFORMAT_R32_FLOAT
	GPU_TEXTUREFORMAT_R32G32_FLOAT
	GPU_TEXTUREFORMAT_R32G32B32A32_FLOAT
	GPU_TEXTUREFORMAT_R11G11B10_UFLOAT
	GPU_TEXTUREFORMAT_R8_UINT
	GPU_TEXTUREFORMAT_R8G8_UINT
	GPU_TEXTUREFORMAT_R8G8B8A8_UINT
	GPU_TEXTUREFORMAT_R16_UINT
	GPU_TEXTUREFORMAT_R16G16_UINT
	GPU_TEXTUREFORMAT_R16G16B16A16_UINT
	GPU_TEXTUREFORMAT_R32_UINT
	GPU_TEXTUREFORMAT_R32G32_UINT
	GPU_TEXTUREFORMAT_R32G32B32A32_UINT
	GPU_TEXTUREFORMAT_R8_INT
	GPU_TEXTUREFORMAT_R8G8_INT
	GPU_TEXTUREFORMAT_R8G8B8A8_INT
	GPU_TEXTUREFORMAT_R16_INT
	GPU_TEXTUREFORMAT_R16G16_INT
	GPU_TEXTUREFORMAT_R16G16B16A16_INT
	GPU_TEXTUREFORMAT_R32_INT
	GPU_TEXTUREFORMAT_R32G32_INT
	GPU_TEXTUREFORMAT_R32G32B32A32_INT
	GPU_TEXTUREFORMAT_R8G8B8A8_UNORM_SRGB
	GPU_TEXTUREFORMAT_B8G8R8A8_UNORM_SRGB
	GPU_TEXTUREFORMAT_BC1_RGBA_UNORM_SRGB
	GPU_TEXTUREFORMAT_BC2_RGBA_UNORM_SRGB
	GPU_TEXTUREFORMAT_BC3_RGBA_UNORM_SRGB
	GPU_TEXTUREFORMAT_BC7_RGBA_UNORM_SRGB
	GPU_TEXTUREFORMAT_D16_UNORM
	GPU_TEXTUREFORMAT_D24_UNORM
	GPU_TEXTUREFORMAT_D32_FLOAT
	GPU_TEXTUREFORMAT_D24_UNORM_S8_UINT
	GPU_TEXTUREFORMAT_D32_FLOAT_S8_UINT
)

// GPUSampleCount selects multisample antialiasing level.
type GPUSampleCount int32

const (
	GPU_SAMPLECOUNT_1 GPUSampleCount = iota
	GPU_SAMPLECOUNT_2
	GPU_SAMPLECOUNT_4
	GPU_SAMPLECOUNT_8
)

// Sampler filtering and addressing.
type (
	GPUFilter             int32
	GPUSamplerMipmapMode  int32
	GPUSamplerAddressMode int32
)

const (
	GPU_FILTER_NEAREST GPUFilter = iota
	GPU_FILTER_LINEAR
)

const (
	GPU_SAMPLERMIPMAPMODE_NEAREST GPUSamplerMipmapMode = iota
	GPU_SAMPLERMIPMAPMODE_LINEAR
)

const (
	GPU_SAMPLERADDRESSMODE_REPEAT GPUSamplerAddressMode = iota
	GPU_SAMPLERADDRESSMODE_MIRRORED_REPEAT
	GPU_SAMPLERADDRESSMODE_CLAMP_TO_EDGE
)

// GPUCompareOp is a depth or stencil comparison.
type GPUCompareOp int32

const (
	GPU_COMPAREOP_INVALID GPUCompareOp = iota
	GPU_COMPAREOP_NEVER
	GPU_COMPAREOP_LESS
	GPU_COMPAREOP_EQUAL
	GPU_COMPAREOP_LESS_OR_EQUAL
	GPU_COMPAREOP_GREATER
	GPU_COMPAREOP_NOT_EQUAL
	GPU_COMPAREOP_GREATER_OR_EQUAL
	GPU_COMPAREOP_ALWAYS
)

// GPUStencilOp is applied to the stencil value after a test.
type GPUStencilOp int32

const (
	GPU_STENCILOP_INVALID GPUStencilOp = iota
	GPU_STENCILOP_KEEP
	GPU_STENCILOP_ZERO
	GPU_STENCILOP_REPLACE
	GPU_STENCILOP_INCREMENT_AND_CLAMP
	GPU_STENCILOP_DECREMENT_AND_CLAMP
	GPU_STENCILOP_INVERT
	GPU_STENCILOP_INCREMENT_AND_WRAP
	GPU_STENCILOP_DECREMENT_AND_WRAP
)

// Blending factors and operations.
type (
	GPUBlendFactor int32
	GPUBlendOp     int32
)

const (
	GPU_BLENDFACTOR_INVALID GPUBlendFactor = iota
	GPU_BLENDFACTOR_ZERO
	GPU_BLENDFACTOR_ONE
	GPU_BLENDFACTOR_SRC_COLOR
	GPU_BLENDFACTOR_ONE_MINUS_SRC_COLOR
	GPU_BLENDFACTOR_DST_COLOR
	GPU_BLENDFACTOR_ONE_MINUS_DST_COLOR
	GPU_BLENDFACTOR_SRC_ALPHA
	GPU_BLENDFACTOR_ONE_MINUS_SRC_ALPHA
	GPU_BLENDFACTOR_DST_ALPHA
	GPU_BLENDFACTOR_ONE_MINUS_DST_ALPHA
	GPU_BLENDFACTOR_CONSTANT_COLOR
	GPU_BLENDFACTOR_ONE_MINUS_CONSTANT_COLOR
	GPU_BLENDFACTOR_SRC_ALPHA_SATURATE
)

const (
	GPU_BLENDOP_INVALID GPUBlendOp = iota
	GPU_BLENDOP_ADD
	GPU_BLENDOP_SUBTRACT
	GPU_BLENDOP_REVERSE_SUBTRACT
	GPU_BLENDOP_MIN
	GPU_BLENDOP_MAX
)

// GPUColorComponentFlags mask which channels a pipeline writes.
type GPUColorComponentFlags uint8

const (
	GPU_COLORCOMPONENT_R GPUColorComponentFlags = 1 << 0
	GPU_COLORCOMPONENT_G GPUColorComponentFlags = 1 << 1
	GPU_COLORCOMPONENT_B GPUColorComponentFlags = 1 << 2
	GPU_COLORCOMPONENT_A GPUColorComponentFlags = 1 << 3
)

// Rasterizer settings.
type (
	GPUFillMode  int32
	GPUCullMode  int32
	GPUFrontFace int32
)

const (
	GPU_FILLMODE_FILL GPUFillMode = iota
	GPU_FILLMODE_LINE
)

const (
	GPU_CULLMODE_NONE GPUCullMode = iota
	GPU_CULLMODE_FRONT
	GPU_CULLMODE_BACK
)

const (
	GPU_FRONTFACE_COUNTER_CLOCKWISE GPUFrontFace = iota
	GPU_FRONTFACE_CLOCKWISE
)

// Vertex fetch configuration.
type (
	GPUVertexInputRate     int32
	GPUVertexElementFormat int32
	GPUIndexElementSize    int32
)

const (
	GPU_VERTEXINPUTRATE_VERTEX GPUVertexInputRate = iota
	GPU_VERTEXINPUTRATE_INSTANCE
)

const (
	GPU_VERTEXELEMENTFORMAT_INVALID GPUVertexElementFormat = iota
	GPU_VERTEXELEMENTFORMAT_INT
	GPU_VERTEXELEMENTFORMAT_INT2
	GPU_VERTEXELEMENTFORMAT_INT3
	GPU_VERTEXELEMENTFORMAT_INT4
	GPU_VERTEXELEMENTFORMAT_UINT
	GPU_VERTEXELEMENTFORMAT_UINT2
	GPU_VERTEXELEMENTFORMAT_UINT3
	GPU_VERTEXELEMENTFORMAT_UINT4
	GPU_VERTEXELEMENTFORMAT_FLOAT
	GPU_VERTEXELEMENTFORMAT_FLOAT2
	GPU_VERTEXELEMENTFORMAT_FLOAT3
	GPU_VERTEXELEMENTFORMAT_FLOAT4
	GPU_VERTEXELEMENTFORMAT_BYTE2
	GPU_VERTEXELEMENTFORMAT_BYTE4
	GPU_VERTEXELEMENTFORMAT_UBYTE2
	GPU_VERTEXELEMENTFORMAT_UBYTE4
	GPU_VERTEXELEMENTFORMAT_BYTE2_NORM
	GPU_VERTEXELEMENTFORMAT_BYTE4_NORM
	GPU_VERTEXELEMENTFORMAT_UBYTE2_NORM
	GPU_VERTEXELEMENTFORMAT_UBYTE4_NORM
	GPU_VERTEXELEMENTFORMAT_SHORT2
	GPU_VERTEXELEMENTFORMAT_SHORT4
	GPU_VERTEXELEMENTFORMAT_USHORT2
	GPU_VERTEXELEMENTFORMAT_USHORT4
	GPU_VERTEXELEMENTFORMAT_SHORT2_NORM
	GPU_VERTEXELEMENTFORMAT_SHORT4_NORM
	GPU_VERTEXELEMENTFORMAT_USHORT2_NORM
	GPU_VERTEXELEMENTFORMAT_USHORT4_NORM
	GPU_VERTEXELEMENTFORMAT_HALF2
	GPU_VERTEXELEMENTFORMAT_HALF4
)

const (
	GPU_INDEXELEMENTSIZE_16BIT GPUIndexElementSize = iota
	GPU_INDEXELEMENTSIZE_32BIT
)

// Swapchain presentation controls.
type (
	GPUPresentMode          int32
	GPUSwapchainComposition int32
)

const (
	GPU_PRESENTMODE_VSYNC GPUPresentMode = iota
	GPU_PRESENTMODE_IMMEDIATE
	GPU_PRESENTMODE_MAILBOX
)

const (
	GPU_SWAPCHAINCOMPOSITION_SDR GPUSwapchainComposition = iota
	GPU_SWAPCHAINCOMPOSITION_SDR_LINEAR
	GPU_SWAPCHAINCOMPOSITION_HDR_EXTENDED_LINEAR
	GPU_SWAPCHAINCOMPOSITION_HDR10_ST2084
)

// GPUViewport is the drawable region and depth range of a render pass.
type GPUViewport struct {
	X, Y, W, H float32
	MinDepth   float32
	MaxDepth   float32
}

// GPUColorTargetInfo configures one color attachment of a render pass.
// Cycle lets the driver hand back a fresh texture when the old contents
// are still in flight and about to be fully overwritten.
type GPUColorTargetInfo struct {
	Texture             *GPUTexture
	MipLevel            uint32
	LayerOrDepthPlane   uint32
	ClearColor          FColor
	LoadOp              GPULoadOp
	StoreOp             GPUStoreOp
	ResolveTexture      *GPUTexture
	ResolveMipLevel     uint32
	ResolveLayer        uint32
	Cycle               bool
	CycleResolveTexture bool
	_                   [2]byte
}

// GPUDepthStencilTargetInfo configures the depth-stencil attachment.
type GPUDepthStencilTargetInfo struct {
	Texture        *GPUTexture
	ClearDepth     float32
	LoadOp         GPULoadOp
	StoreOp        GPUStoreOp
	StencilLoadOp  GPULoadOp
	StencilStoreOp GPUStoreOp
	Cycle          bool
	ClearStencil   uint8
	_              [2]byte
}

// GPUBufferCreateInfo describes a new GPU buffer.
type GPUBufferCreateInfo struct {
	Usage GPUBufferUsageFlags
	Size  uint32
	Props PropertiesID
}

// GPUTransferBufferCreateInfo describes a new transfer buffer.
type GPUTransferBufferCreateInfo struct {
	Usage GPUTransferBufferUsage
	Size  uint32
	Props PropertiesID
}

// GPUTextureCreateInfo describes a new texture.
type GPUTextureCreateInfo struct {
	Type              GPUTextureType
	Format            GPUTextureFormat
	Usage             GPUTextureUsageFlags
	Width             uint32
	Height            uint32
	LayerCountOrDepth uint32
	NumLevels         uint32
	SampleCount       GPUSampleCount
	Props             PropertiesID
}

// GPUSamplerCreateInfo describes a new sampler.
type GPUSamplerCreateInfo struct {
	MinFilter        GPUFilter
	MagFilter        GPUFilter
	MipmapMode       GPUSamplerMipmapMode
	AddressModeU     GPUSamplerAddressMode
	AddressModeV     GPUSamplerAddressMode
	AddressModeW     GPUSamplerAddressMode
	MipLodBias       float32
	MaxAnisotropy    float32
	CompareOp        GPUCompareOp
	MinLod           float32
	MaxLod           float32
	EnableAnisotropy bool
	EnableCompare    bool
	_                [2]byte
	Props            PropertiesID
}

// GPUShaderCreateInfo describes shader bytecode to compile. The resource
// counts must match the shader's bindings.
type GPUShaderCreateInfo struct {
	CodeSize           uint64
	Code               *uint8
	Entrypoint         *byte
	Format             GPUShaderFormat
	Stage              GPUShaderStage
	NumSamplers        uint32
	NumStorageTextures uint32
	NumStorageBuffers  uint32
	NumUniformBuffers  uint32
	Props              PropertiesID
}

// GPUVertexBufferDescription declares the layout of one vertex buffer
// slot.
type GPUVertexBufferDescription struct {
	Slot             uint32
	Pitch            uint32
	InputRate        GPUVertexInputRate
	InstanceStepRate uint32
}

// GPUVertexAttribute declares one vertex shader input.
type GPUVertexAttribute struct {
	Location   uint32
	BufferSlot uint32
	Format     GPUVertexElementFormat
	Offset     uint32
}

// GPUVertexInputState wires buffer descriptions and attributes into a
// pipeline.
type GPUVertexInputState struct {
	VertexBufferDescriptions *GPUVertexBufferDescription
	NumVertexBuffers         uint32
	_                        [4]byte
	VertexAttributes         *GPUVertexAttribute
	NumVertexAttributes      uint32
	_                        [4]byte
}

// GPURasterizerState configures primitive rasterization.
type GPURasterizerState struct {
	FillMode                GPUFillMode
	CullMode                GPUCullMode
	FrontFace               GPUFrontFace
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	EnableDepthBias         bool
	EnableDepthClip         bool
	_                       [2]byte
}

// GPUMultisampleState configures multisampling for a pipeline.
type GPUMultisampleState struct {
	SampleCount GPUSampleCount
	SampleMask  uint32
	EnableMask  bool
	_           [3]byte
}

// GPUStencilOpState is the per-face stencil configuration.
type GPUStencilOpState struct {
	FailOp      GPUStencilOp
	PassOp      GPUStencilOp
	DepthFailOp GPUStencilOp
	CompareOp   GPUCompareOp
}

// GPUDepthStencilState configures depth and stencil testing.
type GPUDepthStencilState struct {
	CompareOp         GPUCompareOp
	BackStencilState  GPUStencilOpState
	FrontStencilState GPUStencilOpState
	CompareMask       uint8
	WriteMask         uint8
	EnableDepthTest   bool
	EnableDepthWrite  bool
	EnableStencilTest bool
	_                 [3]byte
}

// GPUColorTargetBlendState configures blending for one color target.
type GPUColorTargetBlendState struct {
	SrcColorBlendFactor  GPUBlendFactor
	DstColorBlendFactor  GPUBlendFactor
	ColorBlendOp         GPUBlendOp
	SrcAlphaBlendFactor  GPUBlendFactor
	DstAlphaBlendFactor  GPUBlendFactor
	AlphaBlendOp         GPUBlendOp
	ColorWriteMask       GPUColorComponentFlags
	EnableBlend          bool
	EnableColorWriteMask bool
	_                    [1]byte
}

// GPUColorTargetDescription pairs a format with its blend state.
type GPUColorTargetDescription struct {
	Format     GPUTextureFormat
	BlendState GPUColorTargetBlendState
}

// GPUGraphicsPipelineTargetInfo declares the attachment formats a
// pipeline renders to.
type GPUGraphicsPipelineTargetInfo struct {
	ColorTargetDescriptions *GPUColorTargetDescription
	NumColorTargets         uint32
	DepthStencilFormat      GPUTextureFormat
	HasDepthStencilTarget   bool
	_                       [3]byte
	_                       [4]byte
}

// GPUGraphicsPipelineCreateInfo bundles everything needed to build a
// graphics pipeline.
type GPUGraphicsPipelineCreateInfo struct {
	VertexShader      *GPUShader
	FragmentShader    *GPUShader
	VertexInputState  GPUVertexInputState
	PrimitiveType     GPUPrimitiveType
	RasterizerState   GPURasterizerState
	MultisampleState  GPUMultisampleState
	DepthStencilState GPUDepthStencilState
	_                 [4]byte
	TargetInfo        GPUGraphicsPipelineTargetInfo
	Props             PropertiesID
	_                 [4]byte
}

// GPUBufferBinding points a bind slot at an offset within a buffer.
type GPUBufferBinding struct {
	Buffer *GPUBuffer
	Offset uint32
	_      [4]byte
}

// GPUTextureSamplerBinding pairs a texture with a sampler for a shader
// slot.
type GPUTextureSamplerBinding struct {
	Texture *GPUTexture
	Sampler *GPUSampler
}

// GPUTransferBufferLocation is an offset into a transfer buffer.
type GPUTransferBufferLocation struct {
	TransferBuffer *GPUTransferBuffer
	Offset         uint32
	_              [4]byte
}

// GPUBufferRegion is a byte range within a GPU buffer.
type GPUBufferRegion struct {
	Buffer *GPUBuffer
	Offset uint32
	Size   uint32
}

// GPUTextureTransferInfo describes pixel layout within a transfer
// buffer. Zero PixelsPerRow and RowsPerLayer mean tightly packed.
type GPUTextureTransferInfo struct {
	TransferBuffer *GPUTransferBuffer
	Offset         uint32
	PixelsPerRow   uint32
	RowsPerLayer   uint32
	_              [4]byte
}

// GPUTextureRegion is a box within a texture layer and mip level.
type GPUTextureRegion struct {
	Texture  *GPUTexture
	MipLevel uint32
	Layer    uint32
	X, Y, Z  uint32
	W, H, D  uint32
}

type gpuFns struct {
	GPUSupportsShaderFormats              func(GPUShaderFormat, *byte) bool                                                               `ffi:"SDL_GPUSupportsShaderFormats"`
	CreateGPUDevice                       func(GPUShaderFormat, bool, *byte) *GPUDevice                                                   `ffi:"SDL_CreateGPUDevice"`
	DestroyGPUDevice                      func(*GPUDevice)                                                                                `ffi:"SDL_DestroyGPUDevice"`
	GetNumGPUDrivers                      func() int32                                                                                    `ffi:"SDL_GetNumGPUDrivers"`
	GetGPUDriver                          func(int32) string                                                                              `ffi:"SDL_GetGPUDriver"`
	GetGPUDeviceDriver                    func(*GPUDevice) string                                                                         `ffi:"SDL_GetGPUDeviceDriver"`
	GetGPUShaderFormats                   func(*GPUDevice) GPUShaderFormat                                                                `ffi:"SDL_GetGPUShaderFormats"`
	ClaimWindowForGPUDevice               func(*GPUDevice, *Window) bool                                                                  `ffi:"SDL_ClaimWindowForGPUDevice"`
	ReleaseWindowFromGPUDevice            func(*GPUDevice, *Window)                                                                       `ffi:"SDL_ReleaseWindowFromGPUDevice"`
	WindowSupportsGPUSwapchainComposition func(*GPUDevice, *Window, GPUSwapchainComposition) bool                                         `ffi:"SDL_WindowSupportsGPUSwapchainComposition"`
	WindowSupportsGPUPresentMode          func(*GPUDevice, *Window, GPUPresentMode) bool                                                  `ffi:"SDL_WindowSupportsGPUPresentMode"`
	SetGPUSwapchainParameters             func(*GPUDevice, *Window, GPUSwapchainComposition, GPUPresentMode) bool                         `ffi:"SDL_SetGPUSwapchainParameters"`
	GetGPUSwapchainTextureFormat          func(*GPUDevice, *Window) GPUTextureFormat                                                      `ffi:"SDL_GetGPUSwapchainTextureFormat"`
	AcquireGPUCommandBuffer               func(*GPUDevice) *GPUCommandBuffer                                                              `ffi:"SDL_AcquireGPUCommandBuffer"`
	WaitAndAcquireGPUSwapchainTexture     func(*GPUCommandBuffer, *Window, **GPUTexture, *uint32, *uint32) bool                           `ffi:"SDL_WaitAndAcquireGPUSwapchainTexture"`
	PushGPUVertexUniformData              func(*GPUCommandBuffer, uint32, unsafe.Pointer, uint32)                                         `ffi:"SDL_PushGPUVertexUniformData"`
	PushGPUFragmentUniformData            func(*GPUCommandBuffer, uint32, unsafe.Pointer, uint32)                                         `ffi:"SDL_PushGPUFragmentUniformData"`
	BeginGPURenderPass                    func(*GPUCommandBuffer, *GPUColorTargetInfo, uint32, *GPUDepthStencilTargetInfo) *GPURenderPass `ffi:"SDL_BeginGPURenderPass"`
	BindGPUGraphicsPipeline               func(*GPURenderPass, *GPUGraphicsPipeline)                                                      `ffi:"SDL_BindGPUGraphicsPipeline"`
	SetGPUViewport                        func(*GPURenderPass, *GPUViewport)                                                              `ffi:"SDL_SetGPUViewport"`
	SetGPUScissor                         func(*GPURenderPass, *Rect)                                                                     `ffi:"SDL_SetGPUScissor"`
	BindGPUVertexBuffers                  func(*GPURenderPass, uint32, *GPUBufferBinding, uint32)                                         `ffi:"SDL_BindGPUVertexBuffers"`
	BindGPUIndexBuffer                    func(*GPURenderPass, *GPUBufferBinding, GPUIndexElementSize)                                    `ffi:"SDL_BindGPUIndexBuffer"`
	BindGPUVertexSamplers                 func(*GPURenderPass, uint32, *GPUTextureSamplerBinding, uint32)                                 `ffi:"SDL_BindGPUVertexSamplers"`
	BindGPUFragmentSamplers               func(*GPURenderPass, uint32, *GPUTextureSamplerBinding, uint32)                                 `ffi:"SDL_BindGPUFragmentSamplers"`
	DrawGPUPrimitives                     func(*GPURenderPass, uint32, uint32, uint32, uint32)                                            `ffi:"SDL_DrawGPUPrimitives"`
	DrawGPUIndexedPrimitives              func(*GPURenderPass, uint32, uint32, uint32, int32, uint32)                                     `ffi:"SDL_DrawGPUIndexedPrimitives"`
	EndGPURenderPass                      func(*GPURenderPass)                                                                            `ffi:"SDL_EndGPURenderPass"`
	BeginGPUCopyPass                      func(*GPUCommandBuffer) *GPUCopyPass                                                            `ffi:"SDL_BeginGPUCopyPass"`
	UploadToGPUBuffer                     func(*GPUCopyPass, *GPUTransferBufferLocation, *GPUBufferRegion, bool)                          `ffi:"SDL_UploadToGPUBuffer"`
	UploadToGPUTexture                    func(*GPUCopyPass, *GPUTextureTransferInfo, *GPUTextureRegion, bool)                            `ffi:"SDL_UploadToGPUTexture"`
	DownloadFromGPUBuffer                 func(*GPUCopyPass, *GPUBufferRegion, *GPUTransferBufferLocation)                                `ffi:"SDL_DownloadFromGPUBuffer"`
	EndGPUCopyPass                        func(*GPUCopyPass)                                                                              `ffi:"SDL_EndGPUCopyPass"`
	CreateGPUBuffer                       func(*GPUDevice, *GPUBufferCreateInfo) *GPUBuffer                                               `ffi:"SDL_CreateGPUBuffer"`
	ReleaseGPUBuffer                      func(*GPUDevice, *GPUBuffer)                                                                    `ffi:"SDL_ReleaseGPUBuffer"`
	CreateGPUTransferBuffer               func(*GPUDevice, *GPUTransferBufferCreateInfo) *GPUTransferBuffer                               `ffi:"SDL_CreateGPUTransferBuffer"`
	ReleaseGPUTransferBuffer              func(*GPUDevice, *GPUTransferBuffer)                                                            `ffi:"SDL_ReleaseGPUTransferBuffer"`
	MapGPUTransferBuffer                  func(*GPUDevice, *GPUTransferBuffer, bool) unsafe.Pointer                                       `ffi:"SDL_MapGPUTransferBuffer"`
	UnmapGPUTransferBuffer                func(*GPUDevice, *GPUTransferBuffer)                                                            `ffi:"SDL_UnmapGPUTransferBuffer"`
	CreateGPUTexture                      func(*GPUDevice, *GPUTextureCreateInfo) *GPUTexture                                             `ffi:"SDL_CreateGPUTexture"`
	ReleaseGPUTexture                     func(*GPUDevice, *GPUTexture)                                                                   `ffi:"SDL_ReleaseGPUTexture"`
	CreateGPUSampler                      func(*GPUDevice, *GPUSamplerCreateInfo) *GPUSampler                                             `ffi:"SDL_CreateGPUSampler"`
	ReleaseGPUSampler                     func(*GPUDevice, *GPUSampler)                                                                   `ffi:"SDL_ReleaseGPUSampler"`
	CreateGPUShader                       func(*GPUDevice, *GPUShaderCreateInfo) *GPUShader                                               `ffi:"SDL_CreateGPUShader"`
	ReleaseGPUShader                      func(*GPUDevice, *GPUShader)                                                                    `ffi:"SDL_ReleaseGPUShader"`
	CreateGPUGraphicsPipeline             func(*GPUDevice, *GPUGraphicsPipelineCreateInfo) *GPUGraphicsPipeline                           `ffi:"SDL_CreateGPUGraphicsPipeline"`
	ReleaseGPUGraphicsPipeline            func(*GPUDevice, *GPUGraphicsPipeline)                                                          `ffi:"SDL_ReleaseGPUGraphicsPipeline"`
	SubmitGPUCommandBuffer                func(*GPUCommandBuffer) bool                                                                    `ffi:"SDL_SubmitGPUCommandBuffer"`
	SubmitGPUCommandBufferAndAcquireFence func(*GPUCommandBuffer) *GPUFence                                                               `ffi:"SDL_SubmitGPUCommandBufferAndAcquireFence"`
	CancelGPUCommandBuffer                func(*GPUCommandBuffer) bool                                                                    `ffi:"SDL_CancelGPUCommandBuffer"`
	WaitForGPUIdle                        func(*GPUDevice) bool                                                                           `ffi:"SDL_WaitForGPUIdle"`
	WaitForGPUFences                      func(*GPUDevice, bool, **GPUFence, uint32) bool                                                 `ffi:"SDL_WaitForGPUFences"`
	QueryGPUFence                         func(*GPUDevice, *GPUFence) bool                                                                `ffi:"SDL_QueryGPUFence"`
	ReleaseGPUFence                       func(*GPUDevice, *GPUFence)                                                                     `ffi:"SDL_ReleaseGPUFence"`
	GPUTextureSupportsFormat              func(*GPUDevice, GPUTextureFormat, GPUTextureType, GPUTextureUsageFlags) bool                   `ffi:"SDL_GPUTextureSupportsFormat"`
}

var gpuProcs procs[gpuFns]

// GPUSupportsShaderFormats reports whether any backend consumes one of
// the formats. An empty name checks all backends.
func GPUSupportsShaderFormats(formats GPUShaderFormat, name string) bool {
	return gpuProcs.get().GPUSupportsShaderFormats(formats, cstrOrNil(name))
}

// CreateGPUDevice creates a device that consumes one of the given shader
// formats. An empty name picks the best backend for the platform.
func CreateGPUDevice(formats GPUShaderFormat, debug bool, name string) (*GPUDevice, error) {
	d := gpuProcs.get().CreateGPUDevice(formats, debug, cstrOrNil(name))
	if d == nil {
		return nil, lastErr()
	}
	return d, nil
}

// Destroy frees the device after waiting for pending work.
func (d *GPUDevice) Destroy() {
	gpuProcs.get().DestroyGPUDevice(d)
}

// GetNumGPUDrivers returns how many GPU backends were built in.
func GetNumGPUDrivers() int {
	return int(gpuProcs.get().GetNumGPUDrivers())
}

// GetGPUDriver returns a built-in GPU backend's name by index.
func GetGPUDriver(index int) string {
	return gpuProcs.get().GetGPUDriver(int32(index))
}

// Driver returns the backend name behind the device.
func (d *GPUDevice) Driver() string {
	return gpuProcs.get().GetGPUDeviceDriver(d)
}

// ShaderFormats returns the bytecode formats the device consumes.
func (d *GPUDevice) ShaderFormats() GPUShaderFormat {
	return gpuProcs.get().GetGPUShaderFormats(d)
}

// ClaimWindow creates a swapchain for the window on this device.
func (d *GPUDevice) ClaimWindow(w *Window) error {
	if !gpuProcs.get().ClaimWindowForGPUDevice(d, w) {
		return lastErr()
	}
	return nil
}

// ReleaseWindow destroys the window's swapchain.
func (d *GPUDevice) ReleaseWindow(w *Window) {
	gpuProcs.get().ReleaseWindowFromGPUDevice(d, w)
}

// SupportsSwapchainComposition reports whether the window can use the
// composition.
func (d *GPUDevice) SupportsSwapchainComposition(w *Window, c GPUSwapchainComposition) bool {
	return gpuProcs.get().WindowSupportsGPUSwapchainComposition(d, w, c)
}

// SupportsPresentMode reports whether the window can use the present
// mode.
func (d *GPUDevice) SupportsPresentMode(w *Window, m GPUPresentMode) bool {
	return gpuProcs.get().WindowSupportsGPUPresentMode(d, w, m)
}

// SetSwapchainParameters reconfigures a claimed window's swapchain.
func (d *GPUDevice) SetSwapchainParameters(w *Window, c GPUSwapchainComposition, m GPUPresentMode) error {
	if !gpuProcs.get().SetGPUSwapchainParameters(d, w, c, m) {
		return lastErr()
	}
	return nil
}

// SwapchainTextureFormat returns the format swapchain textures come in.
func (d *GPUDevice) SwapchainTextureFormat(w *Window) GPUTextureFormat {
	return gpuProcs.get().GetGPUSwapchainTextureFormat(d, w)
}

// AcquireCommandBuffer starts recording a frame of GPU commands. Command
// buffers belong to the acquiring goroutine and end at Submit or Cancel.
func (d *GPUDevice) AcquireCommandBuffer() (*GPUCommandBuffer, error) {
	cb := gpuProcs.get().AcquireGPUCommandBuffer(d)
	if cb == nil {
		return nil, lastErr()
	}
	return cb, nil
}

// WaitAndAcquireSwapchainTexture blocks until a swapchain texture is
// ready and returns it with its size. The texture belongs to the
// swapchain; do not release it, just submit the command buffer.
func (cb *GPUCommandBuffer) WaitAndAcquireSwapchainTexture(w *Window) (*GPUTexture, uint32, uint32, error) {
	var t *GPUTexture
	var tw, th uint32
	if !gpuProcs.get().WaitAndAcquireGPUSwapchainTexture(cb, w, &t, &tw, &th) {
		return nil, 0, 0, lastErr()
	}
	return t, tw, th, nil
}

// PushVertexUniforms sets a vertex uniform slot for subsequent draws.
func (cb *GPUCommandBuffer) PushVertexUniforms(slot uint32, data []byte) {
	if len(data) == 0 {
		return
	}
	gpuProcs.get().PushGPUVertexUniformData(cb, slot, unsafe.Pointer(&data[0]), uint32(len(data)))
}

// PushFragmentUniforms sets a fragment uniform slot for subsequent draws.
func (cb *GPUCommandBuffer) PushFragmentUniforms(slot uint32, data []byte) {
	if len(data) == 0 {
		return
	}
	gpuProcs.get().PushGPUFragmentUniformData(cb, slot, unsafe.Pointer(&data[0]), uint32(len(data)))
}

// BeginRenderPass starts a render pass over the given attachments. Only
// Bind, Draw and Set calls are legal until EndRenderPass.
func (cb *GPUCommandBuffer) BeginRenderPass(colors []GPUColorTargetInfo, depthStencil *GPUDepthStencilTargetInfo) (*GPURenderPass, error) {
	var first *GPUColorTargetInfo
	if len(colors) > 0 {
		first = &colors[0]
	}
	p := gpuProcs.get().BeginGPURenderPass(cb, first, uint32(len(colors)), depthStencil)
	if p == nil {
		return nil, lastErr()
	}
	return p, nil
}

// BindPipeline selects the graphics pipeline for following draws.
func (p *GPURenderPass) BindPipeline(pipeline *GPUGraphicsPipeline) {
	gpuProcs.get().BindGPUGraphicsPipeline(p, pipeline)
}

// SetViewport sets the pass viewport.
func (p *GPURenderPass) SetViewport(v *GPUViewport) {
	gpuProcs.get().SetGPUViewport(p, v)
}

// SetScissor sets the pass scissor rectangle.
func (p *GPURenderPass) SetScissor(r *Rect) {
	gpuProcs.get().SetGPUScissor(p, r)
}

// BindVertexBuffers binds consecutive vertex buffer slots starting at
// firstSlot.
func (p *GPURenderPass) BindVertexBuffers(firstSlot uint32, bindings []GPUBufferBinding) {
	if len(bindings) == 0 {
		return
	}
	gpuProcs.get().BindGPUVertexBuffers(p, firstSlot, &bindings[0], uint32(len(bindings)))
}

// BindIndexBuffer binds the index buffer for indexed draws.
func (p *GPURenderPass) BindIndexBuffer(binding *GPUBufferBinding, size GPUIndexElementSize) {
	gpuProcs.get().BindGPUIndexBuffer(p, binding, size)
}

// BindVertexSamplers binds texture-sampler pairs to vertex shader slots.
func (p *GPURenderPass) BindVertexSamplers(firstSlot uint32, bindings []GPUTextureSamplerBinding) {
	if len(bindings) == 0 {
		return
	}
	gpuProcs.get().BindGPUVertexSamplers(p, firstSlot, &bindings[0], uint32(len(bindings)))
}

// BindFragmentSamplers binds texture-sampler pairs to fragment shader
// slots.
func (p *GPURenderPass) BindFragmentSamplers(firstSlot uint32, bindings []GPUTextureSamplerBinding) {
	if len(bindings) == 0 {
		return
	}
	gpuProcs.get().BindGPUFragmentSamplers(p, firstSlot, &bindings[0], uint32(len(bindings)))
}

// Draw issues a non-indexed draw.
func (p *GPURenderPass) Draw(numVertices, numInstances, firstVertex, firstInstance uint32) {
	gpuProcs.get().DrawGPUPrimitives(p, numVertices, numInstances, firstVertex, firstInstance)
}

// DrawIndexed issues an indexed draw. vertexOffset is added to each
// index before fetch.
func (p *GPURenderPass) DrawIndexed(numIndices, numInstances, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	gpuProcs.get().DrawGPUIndexedPrimitives(p, numIndices, numInstances, firstIndex, vertexOffset, firstInstance)
}

// End closes the render pass; the handle is dead afterwards.
func (p *GPURenderPass) End() {
	gpuProcs.get().EndGPURenderPass(p)
}

// BeginCopyPass starts a pass for transfer operations.
func (cb *GPUCommandBuffer) BeginCopyPass() *GPUCopyPass {
	return gpuProcs.get().BeginGPUCopyPass(cb)
}

// UploadToBuffer copies transfer buffer bytes into a GPU buffer region.
// cycle hands the destination a fresh allocation if it is still in
// flight.
func (p *GPUCopyPass) UploadToBuffer(src *GPUTransferBufferLocation, dst *GPUBufferRegion, cycle bool) {
	gpuProcs.get().UploadToGPUBuffer(p, src, dst, cycle)
}

// UploadToTexture copies transfer buffer pixels into a texture region.
func (p *GPUCopyPass) UploadToTexture(src *GPUTextureTransferInfo, dst *GPUTextureRegion, cycle bool) {
	gpuProcs.get().UploadToGPUTexture(p, src, dst, cycle)
}

// DownloadFromBuffer copies a GPU buffer region into a transfer buffer.
// The data is readable after the command buffer's fence signals.
func (p *GPUCopyPass) DownloadFromBuffer(src *GPUBufferRegion, dst *GPUTransferBufferLocation) {
	gpuProcs.get().DownloadFromGPUBuffer(p, src, dst)
}

// End closes the copy pass.
func (p *GPUCopyPass) End() {
	gpuProcs.get().EndGPUCopyPass(p)
}

// CreateBuffer allocates a GPU buffer. Contents are undefined until
// uploaded.
func (d *GPUDevice) CreateBuffer(info *GPUBufferCreateInfo) (*GPUBuffer, error) {
	b := gpuProcs.get().CreateGPUBuffer(d, info)
	if b == nil {
		return nil, lastErr()
	}
	return b, nil
}

// ReleaseBuffer frees a buffer once pending work using it completes.
func (d *GPUDevice) ReleaseBuffer(b *GPUBuffer) {
	gpuProcs.get().ReleaseGPUBuffer(d, b)
}

// CreateTransferBuffer allocates a CPU-visible staging buffer.
func (d *GPUDevice) CreateTransferBuffer(info *GPUTransferBufferCreateInfo) (*GPUTransferBuffer, error) {
	b := gpuProcs.get().CreateGPUTransferBuffer(d, info)
	if b == nil {
		return nil, lastErr()
	}
	return b, nil
}

// ReleaseTransferBuffer frees a transfer buffer.
func (d *GPUDevice) ReleaseTransferBuffer(b *GPUTransferBuffer) {
	gpuProcs.get().ReleaseGPUTransferBuffer(d, b)
}

// MapTransferBuffer maps the buffer into CPU memory until Unmap.
func (d *GPUDevice) MapTransferBuffer(b *GPUTransferBuffer, cycle bool) (unsafe.Pointer, error) {
	p := gpuProcs.get().MapGPUTransferBuffer(d, b, cycle)
	if p == nil {
		return nil, lastErr()
	}
	return p, nil
}

// UnmapTransferBuffer ends a mapping started by MapTransferBuffer.
func (d *GPUDevice) UnmapTransferBuffer(b *GPUTransferBuffer) {
	gpuProcs.get().UnmapGPUTransferBuffer(d, b)
}

// CreateTexture allocates a texture. Contents are undefined until
// uploaded or rendered to.
func (d *GPUDevice) CreateTexture(info *GPUTextureCreateInfo) (*GPUTexture, error) {
	t := gpuProcs.get().CreateGPUTexture(d, info)
	if t == nil {
		return nil, lastErr()
	}
	return t, nil
}

// ReleaseTexture frees a texture once pending work using it completes.
func (d *GPUDevice) ReleaseTexture(t *GPUTexture) {
	gpuProcs.get().ReleaseGPUTexture(d, t)
}

// CreateSampler creates a sampler.
func (d *GPUDevice) CreateSampler(info *GPUSamplerCreateInfo) (*GPUSampler, error) {
	s := gpuProcs.get().CreateGPUSampler(d, info)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// ReleaseSampler frees a sampler.
func (d *GPUDevice) ReleaseSampler(s *GPUSampler) {
	gpuProcs.get().ReleaseGPUSampler(d, s)
}

// CreateShader compiles shader bytecode for the device.
func (d *GPUDevice) CreateShader(info *GPUShaderCreateInfo) (*GPUShader, error) {
	s := gpuProcs.get().CreateGPUShader(d, info)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// ReleaseShader frees a shader. Pipelines built from it stay valid.
func (d *GPUDevice) ReleaseShader(s *GPUShader) {
	gpuProcs.get().ReleaseGPUShader(d, s)
}

// CreatePipeline builds a graphics pipeline.
func (d *GPUDevice) CreatePipeline(info *GPUGraphicsPipelineCreateInfo) (*GPUGraphicsPipeline, error) {
	p := gpuProcs.get().CreateGPUGraphicsPipeline(d, info)
	if p == nil {
		return nil, lastErr()
	}
	return p, nil
}

// ReleasePipeline frees a graphics pipeline.
func (d *GPUDevice) ReleasePipeline(p *GPUGraphicsPipeline) {
	gpuProcs.get().ReleaseGPUGraphicsPipeline(d, p)
}

// Submit queues the recorded commands for execution. The command buffer
// is dead afterwards.
func (cb *GPUCommandBuffer) Submit() error {
	if !gpuProcs.get().SubmitGPUCommandBuffer(cb) {
		return lastErr()
	}
	return nil
}

// SubmitAndAcquireFence is Submit returning a fence that signals when
// the commands finish. Release the fence when done with it.
func (cb *GPUCommandBuffer) SubmitAndAcquireFence() (*GPUFence, error) {
	f := gpuProcs.get().SubmitGPUCommandBufferAndAcquireFence(cb)
	if f == nil {
		return nil, lastErr()
	}
	return f, nil
}

// Cancel discards the recorded commands. Illegal after acquiring a
// swapchain texture.
func (cb *GPUCommandBuffer) Cancel() error {
	if !gpuProcs.get().CancelGPUCommandBuffer(cb) {
		return lastErr()
	}
	return nil
}

// WaitIdle blocks until all submitted work completes.
func (d *GPUDevice) WaitIdle() error {
	if !gpuProcs.get().WaitForGPUIdle(d) {
		return lastErr()
	}
	return nil
}

// WaitFences blocks on fences, all of them or any one.
func (d *GPUDevice) WaitFences(waitAll bool, fences []*GPUFence) error {
	if len(fences) == 0 {
		return nil
	}
	if !gpuProcs.get().WaitForGPUFences(d, waitAll, &fences[0], uint32(len(fences))) {
		return lastErr()
	}
	return nil
}

// FenceSignaled reports whether the fence's work has completed.
func (d *GPUDevice) FenceSignaled(f *GPUFence) bool {
	return gpuProcs.get().QueryGPUFence(d, f)
}

// ReleaseFence frees a fence from SubmitAndAcquireFence.
func (d *GPUDevice) ReleaseFence(f *GPUFence) {
	gpuProcs.get().ReleaseGPUFence(d, f)
}

// TextureSupportsFormat reports whether a format works for a texture
// type and usage on this device.
func (d *GPUDevice) TextureSupportsFormat(format GPUTextureFormat, typ GPUTextureType, usage GPUTextureUsageFlags) bool {
	return gpuProcs.get().GPUTextureSupportsFormat(d, format, typ, usage)
}
