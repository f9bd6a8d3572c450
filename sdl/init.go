package sdl

// InitFlags selects which subsystems Init brings up.
type InitFlags uint32

const (
	INIT_AUDIO    InitFlags = 0x00000010
	INIT_VIDEO    InitFlags = 0x00000020 // implies INIT_EVENTS
	INIT_JOYSTICK InitFlags = 0x00000200 // implies INIT_EVENTS
	INIT_HAPTIC   InitFlags = 0x00001000
	INIT_GAMEPAD  InitFlags = 0x00002000 // implies INIT_JOYSTICK
	INIT_EVENTS   InitFlags = 0x00004000
	INIT_SENSOR   InitFlags = 0x00008000 // implies INIT_EVENTS
	INIT_CAMERA   InitFlags = 0x00010000 // implies INIT_EVENTS
)

// App metadata property names for SetAppMetadataProperty.
const (
	PROP_APP_METADATA_NAME_STRING       = "SDL.app.metadata.name"
	PROP_APP_METADATA_VERSION_STRING    = "SDL.app.metadata.version"
	PROP_APP_METADATA_IDENTIFIER_STRING = "SDL.app.metadata.identifier"
	PROP_APP_METADATA_CREATOR_STRING    = "SDL.app.metadata.creator"
	PROP_APP_METADATA_COPYRIGHT_STRING  = "SDL.app.metadata.copyright"
	PROP_APP_METADATA_URL_STRING        = "SDL.app.metadata.url"
	PROP_APP_METADATA_TYPE_STRING       = "SDL.app.metadata.type"
)

type initFns struct {
	Init                   func(InitFlags) bool              `ffi:"SDL_Init"`
	InitSubSystem          func(InitFlags) bool              `ffi:"SDL_InitSubSystem"`
	QuitSubSystem          func(InitFlags)                   `ffi:"SDL_QuitSubSystem"`
	WasInit                func(InitFlags) InitFlags         `ffi:"SDL_WasInit"`
	Quit                   func()                            `ffi:"SDL_Quit"`
	SetAppMetadata         func(string, string, string) bool `ffi:"SDL_SetAppMetadata"`
	SetAppMetadataProperty func(string, string) bool         `ffi:"SDL_SetAppMetadataProperty"`
	GetAppMetadataProperty func(string) string               `ffi:"SDL_GetAppMetadataProperty"`
}

var initProcs procs[initFns]

// Init brings up the subsystems named by flags.
func Init(flags InitFlags) error {
	if !initProcs.get().Init(flags) {
		return lastErr()
	}
	return nil
}

// InitSubSystem brings up additional subsystems after Init.
func InitSubSystem(flags InitFlags) error {
	if !initProcs.get().InitSubSystem(flags) {
		return lastErr()
	}
	return nil
}

// QuitSubSystem shuts down the named subsystems.
func QuitSubSystem(flags InitFlags) {
	initProcs.get().QuitSubSystem(flags)
}

// WasInit reports which of the named subsystems are up. Zero flags asks
// about all of them.
func WasInit(flags InitFlags) InitFlags {
	return initProcs.get().WasInit(flags)
}

// Quit shuts everything down. Call it before exiting.
func Quit() {
	initProcs.get().Quit()
}

// SetAppMetadata tells SDL the application name, version and identifier
// for use by the OS (window titles, audio mixers, about dialogs).
func SetAppMetadata(name, version, identifier string) error {
	if !initProcs.get().SetAppMetadata(name, version, identifier) {
		return lastErr()
	}
	return nil
}

// SetAppMetadataProperty sets one metadata property by name.
func SetAppMetadataProperty(name, value string) error {
	if !initProcs.get().SetAppMetadataProperty(name, value) {
		return lastErr()
	}
	return nil
}

// GetAppMetadataProperty returns a previously set metadata property.
func GetAppMetadataProperty(name string) string {
	return initProcs.get().GetAppMetadataProperty(name)
}
