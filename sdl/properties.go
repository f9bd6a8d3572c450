package sdl

import "unsafe"

// PropertiesID names a group of typed key/value properties. Zero is the
// invalid group.
type PropertiesID uint32

// PropertyType tags the value stored under a property name.
type PropertyType int32

const (
	PROPERTY_TYPE_INVALID PropertyType = iota
	PROPERTY_TYPE_POINTER
	PROPERTY_TYPE_STRING
	PROPERTY_TYPE_NUMBER
	PROPERTY_TYPE_FLOAT
	PROPERTY_TYPE_BOOLEAN
)

type propertiesFns struct {
	GetGlobalProperties func() PropertiesID                                       `ffi:"SDL_GetGlobalProperties"`
	CreateProperties    func() PropertiesID                                       `ffi:"SDL_CreateProperties"`
	CopyProperties      func(PropertiesID, PropertiesID) bool                     `ffi:"SDL_CopyProperties"`
	LockProperties      func(PropertiesID) bool                                   `ffi:"SDL_LockProperties"`
	UnlockProperties    func(PropertiesID)                                        `ffi:"SDL_UnlockProperties"`
	SetPointerProperty  func(PropertiesID, string, unsafe.Pointer) bool           `ffi:"SDL_SetPointerProperty"`
	SetStringProperty   func(PropertiesID, string, string) bool                   `ffi:"SDL_SetStringProperty"`
	SetNumberProperty   func(PropertiesID, string, int64) bool                    `ffi:"SDL_SetNumberProperty"`
	SetFloatProperty    func(PropertiesID, string, float32) bool                  `ffi:"SDL_SetFloatProperty"`
	SetBooleanProperty  func(PropertiesID, string, bool) bool                     `ffi:"SDL_SetBooleanProperty"`
	HasProperty         func(PropertiesID, string) bool                           `ffi:"SDL_HasProperty"`
	GetPropertyType     func(PropertiesID, string) PropertyType                   `ffi:"SDL_GetPropertyType"`
	GetPointerProperty  func(PropertiesID, string, unsafe.Pointer) unsafe.Pointer `ffi:"SDL_GetPointerProperty"`
	GetStringProperty   func(PropertiesID, string, string) string                 `ffi:"SDL_GetStringProperty"`
	GetNumberProperty   func(PropertiesID, string, int64) int64                   `ffi:"SDL_GetNumberProperty"`
	GetFloatProperty    func(PropertiesID, string, float32) float32               `ffi:"SDL_GetFloatProperty"`
	GetBooleanProperty  func(PropertiesID, string, bool) bool                     `ffi:"SDL_GetBooleanProperty"`
	ClearProperty       func(PropertiesID, string) bool                           `ffi:"SDL_ClearProperty"`
	DestroyProperties   func(PropertiesID)                                        `ffi:"SDL_DestroyProperties"`
}

var propProcs procs[propertiesFns]

// GetGlobalProperties returns the process-wide property group.
func GetGlobalProperties() PropertiesID {
	return propProcs.get().GetGlobalProperties()
}

// CreateProperties makes a new empty property group. Destroy it with
// DestroyProperties when done.
func CreateProperties() (PropertiesID, error) {
	props := propProcs.get().CreateProperties()
	if props == 0 {
		return 0, lastErr()
	}
	return props, nil
}

// CopyProperties copies every property from src into dst.
func CopyProperties(src, dst PropertiesID) error {
	if !propProcs.get().CopyProperties(src, dst) {
		return lastErr()
	}
	return nil
}

// Lock locks the group so multi-property updates are seen atomically by
// other threads. Pair with Unlock.
func (p PropertiesID) Lock() error {
	if !propProcs.get().LockProperties(p) {
		return lastErr()
	}
	return nil
}

// Unlock releases a Lock.
func (p PropertiesID) Unlock() {
	propProcs.get().UnlockProperties(p)
}

// SetPointer stores a raw pointer value under name.
func (p PropertiesID) SetPointer(name string, value unsafe.Pointer) error {
	if !propProcs.get().SetPointerProperty(p, name, value) {
		return lastErr()
	}
	return nil
}

// SetString stores a string value under name.
func (p PropertiesID) SetString(name, value string) error {
	if !propProcs.get().SetStringProperty(p, name, value) {
		return lastErr()
	}
	return nil
}

// SetNumber stores an integer value under name.
func (p PropertiesID) SetNumber(name string, value int64) error {
	if !propProcs.get().SetNumberProperty(p, name, value) {
		return lastErr()
	}
	return nil
}

// SetFloat stores a float value under name.
func (p PropertiesID) SetFloat(name string, value float32) error {
	if !propProcs.get().SetFloatProperty(p, name, value) {
		return lastErr()
	}
	return nil
}

// SetBoolean stores a boolean value under name.
func (p PropertiesID) SetBoolean(name string, value bool) error {
	if !propProcs.get().SetBooleanProperty(p, name, value) {
		return lastErr()
	}
	return nil
}

// Has reports whether name is set in the group.
func (p PropertiesID) Has(name string) bool {
	return propProcs.get().HasProperty(p, name)
}

// Type returns the type of the value under name, or
// PROPERTY_TYPE_INVALID when it is not set.
func (p PropertiesID) Type(name string) PropertyType {
	return propProcs.get().GetPropertyType(p, name)
}

// GetPointer fetches a pointer value, or def when unset or mistyped.
func (p PropertiesID) GetPointer(name string, def unsafe.Pointer) unsafe.Pointer {
	return propProcs.get().GetPointerProperty(p, name, def)
}

// GetString fetches a string value, or def when unset or mistyped.
func (p PropertiesID) GetString(name, def string) string {
	return propProcs.get().GetStringProperty(p, name, def)
}

// GetNumber fetches an integer value, or def when unset or mistyped.
func (p PropertiesID) GetNumber(name string, def int64) int64 {
	return propProcs.get().GetNumberProperty(p, name, def)
}

// GetFloat fetches a float value, or def when unset or mistyped.
func (p PropertiesID) GetFloat(name string, def float32) float32 {
	return propProcs.get().GetFloatProperty(p, name, def)
}

// GetBoolean fetches a boolean value, or def when unset or mistyped.
func (p PropertiesID) GetBoolean(name string, def bool) bool {
	return propProcs.get().GetBooleanProperty(p, name, def)
}

// Clear removes name from the group.
func (p PropertiesID) Clear(name string) error {
	if !propProcs.get().ClearProperty(p, name) {
		return lastErr()
	}
	return nil
}

// Destroy frees the group and everything in it.
func (p PropertiesID) Destroy() {
	propProcs.get().DestroyProperties(p)
}
