package sdl

import "unsafe"

// AudioFormat encodes sample width, signedness, endianness and float-ness
// in one value, mirroring the native bit layout.
type AudioFormat uint32

const (
	audioMaskBitsize   = 0xFF
	audioMaskFloat     = 1 << 8
	audioMaskBigEndian = 1 << 12
	audioMaskSigned    = 1 << 15
)

const (
	AUDIO_UNKNOWN AudioFormat = 0x0000
	AUDIO_U8      AudioFormat = 0x0008
	AUDIO_S8      AudioFormat = 0x8008
	AUDIO_S16LE   AudioFormat = 0x8010
	AUDIO_S16BE   AudioFormat = 0x9010
	AUDIO_S32LE   AudioFormat = 0x8020
	AUDIO_S32BE   AudioFormat = 0x9020
	AUDIO_F32LE   AudioFormat = 0x8120
	AUDIO_F32BE   AudioFormat = 0x9120
)

// Native-endian aliases, resolved at runtime like the RGBA32 pixel
// formats.
var (
	AUDIO_S16 = pickAudio(AUDIO_S16LE, AUDIO_S16BE)
	AUDIO_S32 = pickAudio(AUDIO_S32LE, AUDIO_S32BE)
	AUDIO_F32 = pickAudio(AUDIO_F32LE, AUDIO_F32BE)
)

func pickAudio(le, be AudioFormat) AudioFormat {
	if littleEndian() {
		return le
	}
	return be
}

// BitSize returns the sample width in bits.
func (f AudioFormat) BitSize() int { return int(f & audioMaskBitsize) }

// ByteSize returns the sample width in bytes.
func (f AudioFormat) ByteSize() int { return f.BitSize() / 8 }

// IsFloat reports whether samples are floating point.
func (f AudioFormat) IsFloat() bool { return f&audioMaskFloat != 0 }

// IsBigEndian reports whether samples are big endian.
func (f AudioFormat) IsBigEndian() bool { return f&audioMaskBigEndian != 0 }

// IsSigned reports whether integer samples are signed.
func (f AudioFormat) IsSigned() bool { return f&audioMaskSigned != 0 }

// AudioSpec describes a stream's sample format, channel count and rate.
type AudioSpec struct {
	Format   AudioFormat
	Channels int32
	Freq     int32
}

// FrameSize returns the byte size of one sample frame across all
// channels.
func (s AudioSpec) FrameSize() int {
	return s.Format.ByteSize() * int(s.Channels)
}

// AudioDeviceID identifies an audio device, or one of the defaults below.
type AudioDeviceID uint32

const (
	AUDIO_DEVICE_DEFAULT_PLAYBACK  AudioDeviceID = 0xFFFFFFFF
	AUDIO_DEVICE_DEFAULT_RECORDING AudioDeviceID = 0xFFFFFFFE
)

// AudioStream is an opaque handle converting between audio formats while
// buffering data between the app and a device.
type AudioStream struct{}

type audioFns struct {
	GetNumAudioDrivers       func() int32                                                   `ffi:"SDL_GetNumAudioDrivers"`
	GetAudioDriver           func(int32) string                                             `ffi:"SDL_GetAudioDriver"`
	GetCurrentAudioDriver    func() string                                                  `ffi:"SDL_GetCurrentAudioDriver"`
	GetAudioPlaybackDevices  func(*int32) *AudioDeviceID                                    `ffi:"SDL_GetAudioPlaybackDevices"`
	GetAudioRecordingDevices func(*int32) *AudioDeviceID                                    `ffi:"SDL_GetAudioRecordingDevices"`
	GetAudioDeviceName       func(AudioDeviceID) string                                     `ffi:"SDL_GetAudioDeviceName"`
	GetAudioDeviceFormat     func(AudioDeviceID, *AudioSpec, *int32) bool                   `ffi:"SDL_GetAudioDeviceFormat"`
	OpenAudioDevice          func(AudioDeviceID, *AudioSpec) AudioDeviceID                  `ffi:"SDL_OpenAudioDevice"`
	CloseAudioDevice         func(AudioDeviceID)                                            `ffi:"SDL_CloseAudioDevice"`
	PauseAudioDevice         func(AudioDeviceID) bool                                       `ffi:"SDL_PauseAudioDevice"`
	ResumeAudioDevice        func(AudioDeviceID) bool                                       `ffi:"SDL_ResumeAudioDevice"`
	AudioDevicePaused        func(AudioDeviceID) bool                                       `ffi:"SDL_AudioDevicePaused"`
	GetAudioDeviceGain       func(AudioDeviceID) float32                                    `ffi:"SDL_GetAudioDeviceGain"`
	SetAudioDeviceGain       func(AudioDeviceID, float32) bool                              `ffi:"SDL_SetAudioDeviceGain"`
	OpenAudioDeviceStream    func(AudioDeviceID, *AudioSpec, uintptr, uintptr) *AudioStream `ffi:"SDL_OpenAudioDeviceStream"`
	CreateAudioStream        func(*AudioSpec, *AudioSpec) *AudioStream                      `ffi:"SDL_CreateAudioStream"`
	DestroyAudioStream       func(*AudioStream)                                             `ffi:"SDL_DestroyAudioStream"`
	GetAudioStreamDevice     func(*AudioStream) AudioDeviceID                               `ffi:"SDL_GetAudioStreamDevice"`
	GetAudioStreamFormat     func(*AudioStream, *AudioSpec, *AudioSpec) bool                `ffi:"SDL_GetAudioStreamFormat"`
	SetAudioStreamFormat     func(*AudioStream, *AudioSpec, *AudioSpec) bool                `ffi:"SDL_SetAudioStreamFormat"`
	PutAudioStreamData       func(*AudioStream, unsafe.Pointer, int32) bool                 `ffi:"SDL_PutAudioStreamData"`
	GetAudioStreamData       func(*AudioStream, unsafe.Pointer, int32) int32                `ffi:"SDL_GetAudioStreamData"`
	GetAudioStreamAvailable  func(*AudioStream) int32                                       `ffi:"SDL_GetAudioStreamAvailable"`
	GetAudioStreamQueued     func(*AudioStream) int32                                       `ffi:"SDL_GetAudioStreamQueued"`
	FlushAudioStream         func(*AudioStream) bool                                        `ffi:"SDL_FlushAudioStream"`
	ClearAudioStream         func(*AudioStream) bool                                        `ffi:"SDL_ClearAudioStream"`
	PauseAudioStreamDevice   func(*AudioStream) bool                                        `ffi:"SDL_PauseAudioStreamDevice"`
	ResumeAudioStreamDevice  func(*AudioStream) bool                                        `ffi:"SDL_ResumeAudioStreamDevice"`
	AudioStreamDevicePaused  func(*AudioStream) bool                                        `ffi:"SDL_AudioStreamDevicePaused"`
	GetAudioStreamGain       func(*AudioStream) float32                                     `ffi:"SDL_GetAudioStreamGain"`
	SetAudioStreamGain       func(*AudioStream, float32) bool                               `ffi:"SDL_SetAudioStreamGain"`
	BindAudioStream          func(AudioDeviceID, *AudioStream) bool                         `ffi:"SDL_BindAudioStream"`
	UnbindAudioStream        func(*AudioStream)                                             `ffi:"SDL_UnbindAudioStream"`
	LoadWAV                  func(string, *AudioSpec, **uint8, *uint32) bool                `ffi:"SDL_LoadWAV"`
}

var audioProcs procs[audioFns]

// GetNumAudioDrivers returns how many audio drivers were built in.
func GetNumAudioDrivers() int {
	return int(audioProcs.get().GetNumAudioDrivers())
}

// GetAudioDriver returns a built-in driver's name by index.
func GetAudioDriver(index int) string {
	return audioProcs.get().GetAudioDriver(int32(index))
}

// GetCurrentAudioDriver returns the active driver, "" before audio init.
func GetCurrentAudioDriver() string {
	return audioProcs.get().GetCurrentAudioDriver()
}

// GetAudioPlaybackDevices returns the connected playback devices.
func GetAudioPlaybackDevices() ([]AudioDeviceID, error) {
	var n int32
	ptr := audioProcs.get().GetAudioPlaybackDevices(&n)
	if ptr == nil {
		return nil, lastErr()
	}
	return copyIDs(ptr, n), nil
}

// GetAudioRecordingDevices returns the connected recording devices.
func GetAudioRecordingDevices() ([]AudioDeviceID, error) {
	var n int32
	ptr := audioProcs.get().GetAudioRecordingDevices(&n)
	if ptr == nil {
		return nil, lastErr()
	}
	return copyIDs(ptr, n), nil
}

// Name returns the device's name.
func (id AudioDeviceID) Name() string {
	return audioProcs.get().GetAudioDeviceName(id)
}

// Format returns the device's preferred spec and buffer size in sample
// frames.
func (id AudioDeviceID) Format() (AudioSpec, int, error) {
	var spec AudioSpec
	var frames int32
	if !audioProcs.get().GetAudioDeviceFormat(id, &spec, &frames) {
		return AudioSpec{}, 0, lastErr()
	}
	return spec, int(frames), nil
}

// Open opens the device as a logical device with the requested spec, or
// the device's preferred spec when nil. Streams still convert from
// whatever format data is bound in.
func (id AudioDeviceID) Open(spec *AudioSpec) (AudioDeviceID, error) {
	dev := audioProcs.get().OpenAudioDevice(id, spec)
	if dev == 0 {
		return 0, lastErr()
	}
	return dev, nil
}

// Close closes a logical device returned by Open.
func (id AudioDeviceID) Close() {
	audioProcs.get().CloseAudioDevice(id)
}

// Pause stops the logical device from playing or recording.
func (id AudioDeviceID) Pause() error {
	if !audioProcs.get().PauseAudioDevice(id) {
		return lastErr()
	}
	return nil
}

// Resume continues after Pause.
func (id AudioDeviceID) Resume() error {
	if !audioProcs.get().ResumeAudioDevice(id) {
		return lastErr()
	}
	return nil
}

// Paused reports whether the logical device is paused.
func (id AudioDeviceID) Paused() bool {
	return audioProcs.get().AudioDevicePaused(id)
}

// Gain returns the device's volume scale, -1 on failure.
func (id AudioDeviceID) Gain() float32 {
	return audioProcs.get().GetAudioDeviceGain(id)
}

// SetGain scales the device's volume. 1 is unchanged, values above 1
// may clip.
func (id AudioDeviceID) SetGain(gain float32) error {
	if !audioProcs.get().SetAudioDeviceGain(id, gain) {
		return lastErr()
	}
	return nil
}

// OpenStream opens the device and binds a new stream to it in one step.
// The stream starts paused; feed it with Put and call Resume.
func (id AudioDeviceID) OpenStream(spec *AudioSpec) (*AudioStream, error) {
	s := audioProcs.get().OpenAudioDeviceStream(id, spec, 0, 0)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// CreateAudioStream creates an unbound stream converting between two
// specs.
func CreateAudioStream(src, dst *AudioSpec) (*AudioStream, error) {
	s := audioProcs.get().CreateAudioStream(src, dst)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// Destroy frees the stream, unbinding it first if needed. Queued data is
// lost.
func (s *AudioStream) Destroy() {
	audioProcs.get().DestroyAudioStream(s)
}

// Device returns the bound device, 0 when unbound.
func (s *AudioStream) Device() AudioDeviceID {
	return audioProcs.get().GetAudioStreamDevice(s)
}

// Format returns the stream's input and output specs.
func (s *AudioStream) Format() (src, dst AudioSpec, err error) {
	if !audioProcs.get().GetAudioStreamFormat(s, &src, &dst) {
		return AudioSpec{}, AudioSpec{}, lastErr()
	}
	return src, dst, nil
}

// SetFormat changes either spec; nil leaves that side unchanged. Data
// already queued converts under the old input spec.
func (s *AudioStream) SetFormat(src, dst *AudioSpec) error {
	if !audioProcs.get().SetAudioStreamFormat(s, src, dst) {
		return lastErr()
	}
	return nil
}

// Put queues sample data in the stream's input format.
func (s *AudioStream) Put(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if !audioProcs.get().PutAudioStreamData(s, unsafe.Pointer(&data[0]), int32(len(data))) {
		return lastErr()
	}
	return nil
}

// Get fills buf with converted data and returns the byte count, which
// may be short.
func (s *AudioStream) Get(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	n := audioProcs.get().GetAudioStreamData(s, unsafe.Pointer(&buf[0]), int32(len(buf)))
	if n < 0 {
		return 0, lastErr()
	}
	return int(n), nil
}

// Available returns how many converted bytes Get could return now.
func (s *AudioStream) Available() (int, error) {
	n := audioProcs.get().GetAudioStreamAvailable(s)
	if n < 0 {
		return 0, lastErr()
	}
	return int(n), nil
}

// Queued returns how many unconverted input bytes are waiting.
func (s *AudioStream) Queued() (int, error) {
	n := audioProcs.get().GetAudioStreamQueued(s)
	if n < 0 {
		return 0, lastErr()
	}
	return int(n), nil
}

// Flush signals end of input so resampling can drain the tail. Put after
// Flush may glitch at the seam.
func (s *AudioStream) Flush() error {
	if !audioProcs.get().FlushAudioStream(s) {
		return lastErr()
	}
	return nil
}

// Clear drops all queued data.
func (s *AudioStream) Clear() error {
	if !audioProcs.get().ClearAudioStream(s) {
		return lastErr()
	}
	return nil
}

// Pause pauses the stream's bound device.
func (s *AudioStream) Pause() error {
	if !audioProcs.get().PauseAudioStreamDevice(s) {
		return lastErr()
	}
	return nil
}

// Resume starts the stream's bound device.
func (s *AudioStream) Resume() error {
	if !audioProcs.get().ResumeAudioStreamDevice(s) {
		return lastErr()
	}
	return nil
}

// Paused reports whether the stream's bound device is paused.
func (s *AudioStream) Paused() bool {
	return audioProcs.get().AudioStreamDevicePaused(s)
}

// Gain returns the stream's volume scale, -1 on failure.
func (s *AudioStream) Gain() float32 {
	return audioProcs.get().GetAudioStreamGain(s)
}

// SetGain scales the stream's volume.
func (s *AudioStream) SetGain(gain float32) error {
	if !audioProcs.get().SetAudioStreamGain(s, gain) {
		return lastErr()
	}
	return nil
}

// Bind attaches the stream to an opened logical device.
func (id AudioDeviceID) Bind(s *AudioStream) error {
	if !audioProcs.get().BindAudioStream(id, s) {
		return lastErr()
	}
	return nil
}

// Unbind detaches the stream from its device.
func (s *AudioStream) Unbind() {
	audioProcs.get().UnbindAudioStream(s)
}

// LoadWAV loads a WAV file, returning its spec and sample data. The
// returned slice is a Go copy; native memory is freed before returning.
func LoadWAV(path string) (AudioSpec, []byte, error) {
	var spec AudioSpec
	var buf *uint8
	var length uint32
	if !audioProcs.get().LoadWAV(path, &spec, &buf, &length) {
		return AudioSpec{}, nil, lastErr()
	}
	data := make([]byte, length)
	copy(data, unsafe.Slice(buf, length))
	free(unsafe.Pointer(buf))
	return spec, data, nil
}
