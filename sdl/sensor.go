package sdl

// SensorID identifies a sensor for the lifetime of its connection.
type SensorID uint32

// Sensor is an opaque handle to an opened sensor.
type Sensor struct{}

// SensorType is the kind of hardware behind a sensor.
type SensorType int32

const (
	SENSOR_INVALID SensorType = iota - 1
	SENSOR_UNKNOWN
	SENSOR_ACCEL
	SENSOR_GYRO
	SENSOR_ACCEL_L
	SENSOR_GYRO_L
	SENSOR_ACCEL_R
	SENSOR_GYRO_R
)

// STANDARD_GRAVITY is the accelerometer reading for earth gravity, in
// m/s^2. Accelerometer axes report in multiples of it.
const STANDARD_GRAVITY = 9.80665

type sensorFns struct {
	GetSensors                  func(*int32) *SensorID              `ffi:"SDL_GetSensors"`
	GetSensorNameForID          func(SensorID) string               `ffi:"SDL_GetSensorNameForID"`
	GetSensorTypeForID          func(SensorID) SensorType           `ffi:"SDL_GetSensorTypeForID"`
	GetSensorNonPortableTypeFor func(SensorID) int32                `ffi:"SDL_GetSensorNonPortableTypeForID"`
	OpenSensor                  func(SensorID) *Sensor              `ffi:"SDL_OpenSensor"`
	GetSensorFromID             func(SensorID) *Sensor              `ffi:"SDL_GetSensorFromID"`
	GetSensorName               func(*Sensor) string                `ffi:"SDL_GetSensorName"`
	GetSensorType               func(*Sensor) SensorType            `ffi:"SDL_GetSensorType"`
	GetSensorNonPortableType    func(*Sensor) int32                 `ffi:"SDL_GetSensorNonPortableType"`
	GetSensorID                 func(*Sensor) SensorID              `ffi:"SDL_GetSensorID"`
	GetSensorData               func(*Sensor, *float32, int32) bool `ffi:"SDL_GetSensorData"`
	CloseSensor                 func(*Sensor)                       `ffi:"SDL_CloseSensor"`
	UpdateSensors               func()                              `ffi:"SDL_UpdateSensors"`
}

var sensorProcs procs[sensorFns]

// GetSensors returns the connected sensors.
func GetSensors() ([]SensorID, error) {
	var n int32
	ptr := sensorProcs.get().GetSensors(&n)
	if ptr == nil {
		return nil, lastErr()
	}
	return copyIDs(ptr, n), nil
}

// Name returns the sensor's name without opening it.
func (id SensorID) Name() string {
	return sensorProcs.get().GetSensorNameForID(id)
}

// Type returns the sensor's kind without opening it.
func (id SensorID) Type() SensorType {
	return sensorProcs.get().GetSensorTypeForID(id)
}

// NonPortableType returns the platform sensor type, or -1.
func (id SensorID) NonPortableType() int {
	return int(sensorProcs.get().GetSensorNonPortableTypeFor(id))
}

// Open opens the sensor for use.
func (id SensorID) Open() (*Sensor, error) {
	s := sensorProcs.get().OpenSensor(id)
	if s == nil {
		return nil, lastErr()
	}
	return s, nil
}

// GetSensorFromID returns the already-open sensor for an ID, or nil.
func GetSensorFromID(id SensorID) *Sensor {
	return sensorProcs.get().GetSensorFromID(id)
}

// Name returns the sensor's name.
func (s *Sensor) Name() string {
	return sensorProcs.get().GetSensorName(s)
}

// Type returns the sensor's kind.
func (s *Sensor) Type() SensorType {
	return sensorProcs.get().GetSensorType(s)
}

// NonPortableType returns the platform sensor type, or -1.
func (s *Sensor) NonPortableType() int {
	return int(sensorProcs.get().GetSensorNonPortableType(s))
}

// ID returns the instance ID of an open sensor.
func (s *Sensor) ID() SensorID {
	return sensorProcs.get().GetSensorID(s)
}

// Data fills data with the sensor's current readings. The number of
// values and their meaning depend on the sensor type.
func (s *Sensor) Data(data []float32) error {
	if len(data) == 0 {
		return nil
	}
	if !sensorProcs.get().GetSensorData(s, &data[0], int32(len(data))) {
		return lastErr()
	}
	return nil
}

// Close releases the sensor.
func (s *Sensor) Close() {
	sensorProcs.get().CloseSensor(s)
}

// UpdateSensors refreshes the current state of open sensors. Called
// implicitly by the event loop.
func UpdateSensors() {
	sensorProcs.get().UpdateSensors()
}
