package sdl

import "unsafe"

// Renderer is an opaque handle to a 2D rendering context.
type Renderer struct{}

// Texture is an opaque handle to GPU-resident image data owned by a
// renderer.
type Texture struct{}

// TextureAccess declares how a texture will be updated.
type TextureAccess int32

const (
	TEXTUREACCESS_STATIC TextureAccess = iota
	TEXTUREACCESS_STREAMING
	TEXTUREACCESS_TARGET
)

// RendererVSync values for SetVSync beyond plain swap-interval numbers.
const (
	RENDERER_VSYNC_DISABLED = 0
	RENDERER_VSYNC_ADAPTIVE = -1
)

// Software renderer name, usable with CreateRenderer.
const SOFTWARE_RENDERER = "software"

type renderFns struct {
	GetNumRenderDrivers          func() int32                                                               `ffi:"SDL_GetNumRenderDrivers"`
	GetRenderDriver              func(int32) string                                                         `ffi:"SDL_GetRenderDriver"`
	CreateRenderer               func(*Window, *byte) *Renderer                                             `ffi:"SDL_CreateRenderer"`
	CreateSoftwareRenderer       func(*Surface) *Renderer                                                   `ffi:"SDL_CreateSoftwareRenderer"`
	CreateWindowAndRenderer      func(string, int32, int32, WindowFlags, **Window, **Renderer) bool         `ffi:"SDL_CreateWindowAndRenderer"`
	DestroyRenderer              func(*Renderer)                                                            `ffi:"SDL_DestroyRenderer"`
	GetRenderer                  func(*Window) *Renderer                                                    `ffi:"SDL_GetRenderer"`
	GetRenderWindow              func(*Renderer) *Window                                                    `ffi:"SDL_GetRenderWindow"`
	GetRendererName              func(*Renderer) string                                                     `ffi:"SDL_GetRendererName"`
	GetRendererProperties        func(*Renderer) PropertiesID                                               `ffi:"SDL_GetRendererProperties"`
	GetRenderOutputSize          func(*Renderer, *int32, *int32) bool                                       `ffi:"SDL_GetRenderOutputSize"`
	GetCurrentRenderOutputSize   func(*Renderer, *int32, *int32) bool                                       `ffi:"SDL_GetCurrentRenderOutputSize"`
	SetRenderVSync               func(*Renderer, int32) bool                                                `ffi:"SDL_SetRenderVSync"`
	GetRenderVSync               func(*Renderer, *int32) bool                                               `ffi:"SDL_GetRenderVSync"`
	SetRenderDrawColor           func(*Renderer, uint8, uint8, uint8, uint8) bool                           `ffi:"SDL_SetRenderDrawColor"`
	SetRenderDrawColorFloat      func(*Renderer, float32, float32, float32, float32) bool                   `ffi:"SDL_SetRenderDrawColorFloat"`
	GetRenderDrawColor           func(*Renderer, *uint8, *uint8, *uint8, *uint8) bool                       `ffi:"SDL_GetRenderDrawColor"`
	SetRenderDrawBlendMode       func(*Renderer, BlendMode) bool                                            `ffi:"SDL_SetRenderDrawBlendMode"`
	GetRenderDrawBlendMode       func(*Renderer, *BlendMode) bool                                           `ffi:"SDL_GetRenderDrawBlendMode"`
	SetRenderScale               func(*Renderer, float32, float32) bool                                     `ffi:"SDL_SetRenderScale"`
	GetRenderScale               func(*Renderer, *float32, *float32) bool                                   `ffi:"SDL_GetRenderScale"`
	SetRenderViewport            func(*Renderer, *Rect) bool                                                `ffi:"SDL_SetRenderViewport"`
	GetRenderViewport            func(*Renderer, *Rect) bool                                                `ffi:"SDL_GetRenderViewport"`
	SetRenderClipRect            func(*Renderer, *Rect) bool                                                `ffi:"SDL_SetRenderClipRect"`
	GetRenderClipRect            func(*Renderer, *Rect) bool                                                `ffi:"SDL_GetRenderClipRect"`
	RenderClipEnabled            func(*Renderer) bool                                                       `ffi:"SDL_RenderClipEnabled"`
	SetRenderLogicalPresentation func(*Renderer, int32, int32, int32) bool                                  `ffi:"SDL_SetRenderLogicalPresentation"`
	RenderClear                  func(*Renderer) bool                                                       `ffi:"SDL_RenderClear"`
	RenderPoint                  func(*Renderer, float32, float32) bool                                     `ffi:"SDL_RenderPoint"`
	RenderPoints                 func(*Renderer, *FPoint, int32) bool                                       `ffi:"SDL_RenderPoints"`
	RenderLine                   func(*Renderer, float32, float32, float32, float32) bool                   `ffi:"SDL_RenderLine"`
	RenderLines                  func(*Renderer, *FPoint, int32) bool                                       `ffi:"SDL_RenderLines"`
	RenderRect                   func(*Renderer, *FRect) bool                                               `ffi:"SDL_RenderRect"`
	RenderRects                  func(*Renderer, *FRect, int32) bool                                        `ffi:"SDL_RenderRects"`
	RenderFillRect               func(*Renderer, *FRect) bool                                               `ffi:"SDL_RenderFillRect"`
	RenderFillRects              func(*Renderer, *FRect, int32) bool                                        `ffi:"SDL_RenderFillRects"`
	RenderTexture                func(*Renderer, *Texture, *FRect, *FRect) bool                             `ffi:"SDL_RenderTexture"`
	RenderTextureRotated         func(*Renderer, *Texture, *FRect, *FRect, float64, *FPoint, FlipMode) bool `ffi:"SDL_RenderTextureRotated"`
	RenderPresent                func(*Renderer) bool                                                       `ffi:"SDL_RenderPresent"`
	FlushRenderer                func(*Renderer) bool                                                       `ffi:"SDL_FlushRenderer"`
	SetRenderTarget              func(*Renderer, *Texture) bool                                             `ffi:"SDL_SetRenderTarget"`
	GetRenderTarget              func(*Renderer) *Texture                                                   `ffi:"SDL_GetRenderTarget"`
	RenderReadPixels             func(*Renderer, *Rect) *Surface                                            `ffi:"SDL_RenderReadPixels"`
	RenderDebugText              func(*Renderer, float32, float32, string) bool                             `ffi:"SDL_RenderDebugText"`
	CreateTexture                func(*Renderer, PixelFormat, TextureAccess, int32, int32) *Texture         `ffi:"SDL_CreateTexture"`
	CreateTextureFromSurface     func(*Renderer, *Surface) *Texture                                         `ffi:"SDL_CreateTextureFromSurface"`
	DestroyTexture               func(*Texture)                                                             `ffi:"SDL_DestroyTexture"`
	GetTextureSize               func(*Texture, *float32, *float32) bool                                    `ffi:"SDL_GetTextureSize"`
	SetTextureColorMod           func(*Texture, uint8, uint8, uint8) bool                                   `ffi:"SDL_SetTextureColorMod"`
	SetTextureAlphaMod           func(*Texture, uint8) bool                                                 `ffi:"SDL_SetTextureAlphaMod"`
	SetTextureBlendMode          func(*Texture, BlendMode) bool                                             `ffi:"SDL_SetTextureBlendMode"`
	SetTextureScaleMode          func(*Texture, ScaleMode) bool                                             `ffi:"SDL_SetTextureScaleMode"`
	UpdateTexture                func(*Texture, *Rect, unsafe.Pointer, int32) bool                          `ffi:"SDL_UpdateTexture"`
	LockTexture                  func(*Texture, *Rect, *unsafe.Pointer, *int32) bool                        `ffi:"SDL_LockTexture"`
	UnlockTexture                func(*Texture)                                                             `ffi:"SDL_UnlockTexture"`
}

var renderProcs procs[renderFns]

// GetNumRenderDrivers returns how many render drivers were built in.
func GetNumRenderDrivers() int {
	return int(renderProcs.get().GetNumRenderDrivers())
}

// GetRenderDriver returns a built-in render driver's name by index.
func GetRenderDriver(index int) string {
	return renderProcs.get().GetRenderDriver(int32(index))
}

// CreateRenderer creates a 2D rendering context for the window. An empty
// name picks the best available driver.
func CreateRenderer(w *Window, name string) (*Renderer, error) {
	r := renderProcs.get().CreateRenderer(w, cstrOrNil(name))
	if r == nil {
		return nil, lastErr()
	}
	return r, nil
}

// CreateSoftwareRenderer renders into a surface instead of a window.
func CreateSoftwareRenderer(s *Surface) (*Renderer, error) {
	r := renderProcs.get().CreateSoftwareRenderer(s)
	if r == nil {
		return nil, lastErr()
	}
	return r, nil
}

// CreateWindowAndRenderer creates both in one call.
func CreateWindowAndRenderer(title string, w, h int32, flags WindowFlags) (*Window, *Renderer, error) {
	var win *Window
	var ren *Renderer
	if !renderProcs.get().CreateWindowAndRenderer(title, w, h, flags, &win, &ren) {
		return nil, nil, lastErr()
	}
	return win, ren, nil
}

// Destroy frees the rendering context and all its textures.
func (r *Renderer) Destroy() {
	renderProcs.get().DestroyRenderer(r)
}

// Renderer returns the window's renderer, or nil.
func (w *Window) Renderer() *Renderer {
	return renderProcs.get().GetRenderer(w)
}

// Window returns the window the renderer draws to.
func (r *Renderer) Window() *Window {
	return renderProcs.get().GetRenderWindow(r)
}

// Name returns the driver name backing the renderer.
func (r *Renderer) Name() string {
	return renderProcs.get().GetRendererName(r)
}

// Properties returns the renderer's property set.
func (r *Renderer) Properties() PropertiesID {
	return renderProcs.get().GetRendererProperties(r)
}

// OutputSize returns the output size in pixels.
func (r *Renderer) OutputSize() (w, h int32, err error) {
	if !renderProcs.get().GetRenderOutputSize(r, &w, &h) {
		return 0, 0, lastErr()
	}
	return w, h, nil
}

// CurrentOutputSize is OutputSize adjusted for the current render target
// and logical presentation.
func (r *Renderer) CurrentOutputSize() (w, h int32, err error) {
	if !renderProcs.get().GetCurrentRenderOutputSize(r, &w, &h) {
		return 0, 0, lastErr()
	}
	return w, h, nil
}

// SetVSync sets the swap interval, RENDERER_VSYNC_DISABLED or
// RENDERER_VSYNC_ADAPTIVE.
func (r *Renderer) SetVSync(vsync int) error {
	if !renderProcs.get().SetRenderVSync(r, int32(vsync)) {
		return lastErr()
	}
	return nil
}

// VSync returns the current vsync setting.
func (r *Renderer) VSync() (int, error) {
	var v int32
	if !renderProcs.get().GetRenderVSync(r, &v) {
		return 0, lastErr()
	}
	return int(v), nil
}

// SetDrawColor sets the color used by Clear and the primitive calls.
func (r *Renderer) SetDrawColor(red, green, blue, alpha uint8) error {
	if !renderProcs.get().SetRenderDrawColor(r, red, green, blue, alpha) {
		return lastErr()
	}
	return nil
}

// SetDrawColorFloat is SetDrawColor with unclamped float components.
func (r *Renderer) SetDrawColorFloat(red, green, blue, alpha float32) error {
	if !renderProcs.get().SetRenderDrawColorFloat(r, red, green, blue, alpha) {
		return lastErr()
	}
	return nil
}

// DrawColor returns the current draw color.
func (r *Renderer) DrawColor() (Color, error) {
	var c Color
	if !renderProcs.get().GetRenderDrawColor(r, &c.R, &c.G, &c.B, &c.A) {
		return Color{}, lastErr()
	}
	return c, nil
}

// SetDrawBlendMode sets blending for primitive drawing.
func (r *Renderer) SetDrawBlendMode(mode BlendMode) error {
	if !renderProcs.get().SetRenderDrawBlendMode(r, mode) {
		return lastErr()
	}
	return nil
}

// DrawBlendMode returns the blend mode for primitive drawing.
func (r *Renderer) DrawBlendMode() (BlendMode, error) {
	var mode BlendMode
	if !renderProcs.get().GetRenderDrawBlendMode(r, &mode) {
		return 0, lastErr()
	}
	return mode, nil
}

// SetScale scales all drawing coordinates.
func (r *Renderer) SetScale(x, y float32) error {
	if !renderProcs.get().SetRenderScale(r, x, y) {
		return lastErr()
	}
	return nil
}

// Scale returns the drawing scale.
func (r *Renderer) Scale() (x, y float32, err error) {
	if !renderProcs.get().GetRenderScale(r, &x, &y) {
		return 0, 0, lastErr()
	}
	return x, y, nil
}

// SetViewport restricts drawing to an area; nil restores the whole
// target.
func (r *Renderer) SetViewport(rect *Rect) error {
	if !renderProcs.get().SetRenderViewport(r, rect) {
		return lastErr()
	}
	return nil
}

// Viewport returns the current drawing area.
func (r *Renderer) Viewport() (Rect, error) {
	var rect Rect
	if !renderProcs.get().GetRenderViewport(r, &rect) {
		return Rect{}, lastErr()
	}
	return rect, nil
}

// SetClipRect clips drawing to an area; nil disables clipping.
func (r *Renderer) SetClipRect(rect *Rect) error {
	if !renderProcs.get().SetRenderClipRect(r, rect) {
		return lastErr()
	}
	return nil
}

// ClipRect returns the clip area, empty when clipping is off.
func (r *Renderer) ClipRect() (Rect, error) {
	var rect Rect
	if !renderProcs.get().GetRenderClipRect(r, &rect) {
		return Rect{}, lastErr()
	}
	return rect, nil
}

// ClipEnabled reports whether clipping is on.
func (r *Renderer) ClipEnabled() bool {
	return renderProcs.get().RenderClipEnabled(r)
}

// LogicalPresentationMode controls how a fixed logical size maps onto the
// output.
type LogicalPresentationMode int32

const (
	LOGICAL_PRESENTATION_DISABLED LogicalPresentationMode = iota
	LOGICAL_PRESENTATION_STRETCH
	LOGICAL_PRESENTATION_LETTERBOX
	LOGICAL_PRESENTATION_OVERSCAN
	LOGICAL_PRESENTATION_INTEGER_SCALE
)

// SetLogicalPresentation makes drawing use a fixed logical resolution
// independent of the window size.
func (r *Renderer) SetLogicalPresentation(w, h int32, mode LogicalPresentationMode) error {
	if !renderProcs.get().SetRenderLogicalPresentation(r, w, h, int32(mode)) {
		return lastErr()
	}
	return nil
}

// Clear fills the whole target with the draw color, ignoring viewport
// and clip.
func (r *Renderer) Clear() error {
	if !renderProcs.get().RenderClear(r) {
		return lastErr()
	}
	return nil
}

// Point draws a single point.
func (r *Renderer) Point(x, y float32) error {
	if !renderProcs.get().RenderPoint(r, x, y) {
		return lastErr()
	}
	return nil
}

// Points draws multiple points.
func (r *Renderer) Points(points []FPoint) error {
	if len(points) == 0 {
		return nil
	}
	if !renderProcs.get().RenderPoints(r, &points[0], int32(len(points))) {
		return lastErr()
	}
	return nil
}

// Line draws a line between two points.
func (r *Renderer) Line(x1, y1, x2, y2 float32) error {
	if !renderProcs.get().RenderLine(r, x1, y1, x2, y2) {
		return lastErr()
	}
	return nil
}

// Lines draws connected line segments through the points.
func (r *Renderer) Lines(points []FPoint) error {
	if len(points) < 2 {
		return nil
	}
	if !renderProcs.get().RenderLines(r, &points[0], int32(len(points))) {
		return lastErr()
	}
	return nil
}

// Rect draws a rectangle outline; nil outlines the whole target.
func (r *Renderer) Rect(rect *FRect) error {
	if !renderProcs.get().RenderRect(r, rect) {
		return lastErr()
	}
	return nil
}

// Rects draws several rectangle outlines.
func (r *Renderer) Rects(rects []FRect) error {
	if len(rects) == 0 {
		return nil
	}
	if !renderProcs.get().RenderRects(r, &rects[0], int32(len(rects))) {
		return lastErr()
	}
	return nil
}

// FillRect fills a rectangle; nil fills the whole target.
func (r *Renderer) FillRect(rect *FRect) error {
	if !renderProcs.get().RenderFillRect(r, rect) {
		return lastErr()
	}
	return nil
}

// FillRects fills several rectangles.
func (r *Renderer) FillRects(rects []FRect) error {
	if len(rects) == 0 {
		return nil
	}
	if !renderProcs.get().RenderFillRects(r, &rects[0], int32(len(rects))) {
		return lastErr()
	}
	return nil
}

// Copy draws a texture region to a target region. Nil src uses the whole
// texture, nil dst stretches over the whole target.
func (r *Renderer) Copy(t *Texture, src, dst *FRect) error {
	if !renderProcs.get().RenderTexture(r, t, src, dst) {
		return lastErr()
	}
	return nil
}

// CopyRotated is Copy with rotation in degrees around center (the dst
// middle when nil) and optional flipping.
func (r *Renderer) CopyRotated(t *Texture, src, dst *FRect, angle float64, center *FPoint, flip FlipMode) error {
	if !renderProcs.get().RenderTextureRotated(r, t, src, dst, angle, center, flip) {
		return lastErr()
	}
	return nil
}

// Present shows the frame drawn since the last Present. The backbuffer
// is undefined afterwards; redraw everything each frame.
func (r *Renderer) Present() error {
	if !renderProcs.get().RenderPresent(r) {
		return lastErr()
	}
	return nil
}

// Flush forces queued drawing to the driver, for code mixing in direct
// GPU API calls.
func (r *Renderer) Flush() error {
	if !renderProcs.get().FlushRenderer(r) {
		return lastErr()
	}
	return nil
}

// SetTarget redirects drawing into a TEXTUREACCESS_TARGET texture; nil
// restores the window.
func (r *Renderer) SetTarget(t *Texture) error {
	if !renderProcs.get().SetRenderTarget(r, t) {
		return lastErr()
	}
	return nil
}

// Target returns the current render target texture, nil for the window.
func (r *Renderer) Target() *Texture {
	return renderProcs.get().GetRenderTarget(r)
}

// ReadPixels copies an area of the current target into a new surface.
// Slow; meant for screenshots.
func (r *Renderer) ReadPixels(rect *Rect) (*Surface, error) {
	s := renderProcs.get().RenderReadPixels(r, rect)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// DebugText draws text with the built-in 8x8 debug font.
func (r *Renderer) DebugText(x, y float32, text string) error {
	if !renderProcs.get().RenderDebugText(r, x, y, text) {
		return lastErr()
	}
	return nil
}

// CreateTexture creates a blank texture.
func (r *Renderer) CreateTexture(format PixelFormat, access TextureAccess, w, h int32) (*Texture, error) {
	t := renderProcs.get().CreateTexture(r, format, access, w, h)
	if t == nil {
		return nil, lastErr()
	}
	return t, nil
}

// CreateTextureFromSurface uploads a surface into a static texture.
func (r *Renderer) CreateTextureFromSurface(s *Surface) (*Texture, error) {
	t := renderProcs.get().CreateTextureFromSurface(r, s)
	if t == nil {
		return nil, lastErr()
	}
	return t, nil
}

// Destroy frees the texture.
func (t *Texture) Destroy() {
	renderProcs.get().DestroyTexture(t)
}

// Size returns the texture's dimensions.
func (t *Texture) Size() (w, h float32, err error) {
	if !renderProcs.get().GetTextureSize(t, &w, &h) {
		return 0, 0, lastErr()
	}
	return w, h, nil
}

// SetColorMod multiplies the texture's colors when copying.
func (t *Texture) SetColorMod(red, green, blue uint8) error {
	if !renderProcs.get().SetTextureColorMod(t, red, green, blue) {
		return lastErr()
	}
	return nil
}

// SetAlphaMod multiplies the texture's alpha when copying.
func (t *Texture) SetAlphaMod(alpha uint8) error {
	if !renderProcs.get().SetTextureAlphaMod(t, alpha) {
		return lastErr()
	}
	return nil
}

// SetBlendMode sets blending used when copying the texture.
func (t *Texture) SetBlendMode(mode BlendMode) error {
	if !renderProcs.get().SetTextureBlendMode(t, mode) {
		return lastErr()
	}
	return nil
}

// SetScaleMode sets the filter used when the texture is scaled.
func (t *Texture) SetScaleMode(mode ScaleMode) error {
	if !renderProcs.get().SetTextureScaleMode(t, mode) {
		return lastErr()
	}
	return nil
}

// Update replaces pixel data in an area; nil rect updates everything.
// Slow for per-frame use; prefer a streaming texture with Lock.
func (t *Texture) Update(rect *Rect, pixels []byte, pitch int) error {
	if len(pixels) == 0 {
		return nil
	}
	if !renderProcs.get().UpdateTexture(t, rect, unsafe.Pointer(&pixels[0]), int32(pitch)) {
		return lastErr()
	}
	return nil
}

// Lock maps an area of a streaming texture for writing. The returned
// memory is write-only and belongs to the driver until Unlock.
func (t *Texture) Lock(rect *Rect) (pixels unsafe.Pointer, pitch int, err error) {
	var p unsafe.Pointer
	var pi int32
	if !renderProcs.get().LockTexture(t, rect, &p, &pi) {
		return nil, 0, lastErr()
	}
	return p, int(pi), nil
}

// Unlock uploads the area mapped by Lock.
func (t *Texture) Unlock() {
	renderProcs.get().UnlockTexture(t)
}
