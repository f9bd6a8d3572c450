package sdl

import "time"

// Time is a point in time: nanoseconds since the Unix epoch, in UTC.
type Time int64

// Std converts to the standard library representation.
func (t Time) Std() time.Time {
	return time.Unix(0, int64(t))
}

// TimeFromStd converts a standard library time.
func TimeFromStd(t time.Time) Time {
	return Time(t.UnixNano())
}

// DateTime is a calendar-broken-down time.
type DateTime struct {
	Year       int32
	Month      int32 // 1..12
	Day        int32 // 1..28/29/30/31
	Hour       int32 // 0..23
	Minute     int32 // 0..59
	Second     int32 // 0..59, 60 on a leap second
	Nanosecond int32
	DayOfWeek  int32 // 0..6, Sunday is 0
	UTCOffset  int32 // seconds east of UTC
}

// DateFormat is the locale's preferred date field order.
type DateFormat int32

const (
	DATE_FORMAT_YYYYMMDD DateFormat = iota
	DATE_FORMAT_DDMMYYYY
	DATE_FORMAT_MMDDYYYY
)

// TimeFormat is the locale's preferred clock style.
type TimeFormat int32

const (
	TIME_FORMAT_24HR TimeFormat = iota
	TIME_FORMAT_12HR
)

type timeFns struct {
	GetDateTimeLocalePreferences func(*DateFormat, *TimeFormat) bool `ffi:"SDL_GetDateTimeLocalePreferences"`
	GetCurrentTime               func(*Time) bool                    `ffi:"SDL_GetCurrentTime"`
	TimeToDateTime               func(Time, *DateTime, bool) bool    `ffi:"SDL_TimeToDateTime"`
	DateTimeToTime               func(*DateTime, *Time) bool         `ffi:"SDL_DateTimeToTime"`
	TimeToWindows                func(Time, *uint32, *uint32)        `ffi:"SDL_TimeToWindows"`
	TimeFromWindows              func(uint32, uint32) Time           `ffi:"SDL_TimeFromWindows"`
	GetDaysInMonth               func(int32, int32) int32            `ffi:"SDL_GetDaysInMonth"`
	GetDayOfYear                 func(int32, int32, int32) int32     `ffi:"SDL_GetDayOfYear"`
	GetDayOfWeek                 func(int32, int32, int32) int32     `ffi:"SDL_GetDayOfWeek"`
}

var timeProcs procs[timeFns]

// GetDateTimeLocalePreferences returns the current locale's date and
// time display preferences.
func GetDateTimeLocalePreferences() (DateFormat, TimeFormat, error) {
	var df DateFormat
	var tf TimeFormat
	if !timeProcs.get().GetDateTimeLocalePreferences(&df, &tf) {
		return 0, 0, lastErr()
	}
	return df, tf, nil
}

// GetCurrentTime returns the wall-clock time.
func GetCurrentTime() (Time, error) {
	var t Time
	if !timeProcs.get().GetCurrentTime(&t) {
		return 0, lastErr()
	}
	return t, nil
}

// ToDateTime breaks t down into calendar fields, in local time when
// local is true, else in UTC.
func (t Time) ToDateTime(local bool) (DateTime, error) {
	var dt DateTime
	if !timeProcs.get().TimeToDateTime(t, &dt, local) {
		return DateTime{}, lastErr()
	}
	return dt, nil
}

// ToTime converts calendar fields back to a point in time. DayOfWeek is
// ignored; UTCOffset places the fields in their zone.
func (dt *DateTime) ToTime() (Time, error) {
	var t Time
	if !timeProcs.get().DateTimeToTime(dt, &t) {
		return 0, lastErr()
	}
	return t, nil
}

// ToWindows converts to a Windows FILETIME pair: 100ns intervals since
// January 1 1601, split into low and high 32-bit halves.
func (t Time) ToWindows() (low, high uint32) {
	timeProcs.get().TimeToWindows(t, &low, &high)
	return
}

// TimeFromWindows converts a Windows FILETIME pair.
func TimeFromWindows(low, high uint32) Time {
	return timeProcs.get().TimeFromWindows(low, high)
}

// GetDaysInMonth returns the day count of a calendar month.
func GetDaysInMonth(year, month int) int {
	return int(timeProcs.get().GetDaysInMonth(int32(year), int32(month)))
}

// GetDayOfYear returns the day of the year, 0..365.
func GetDayOfYear(year, month, day int) int {
	return int(timeProcs.get().GetDayOfYear(int32(year), int32(month), int32(day)))
}

// GetDayOfWeek returns the day of the week, 0..6 with Sunday as 0.
func GetDayOfWeek(year, month, day int) int {
	return int(timeProcs.get().GetDayOfWeek(int32(year), int32(month), int32(day)))
}
