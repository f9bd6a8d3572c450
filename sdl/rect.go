package sdl

// Point is an integer point in screen space.
type Point struct {
	X int32
	Y int32
}

// FPoint is a point with float precision.
type FPoint struct {
	X float32
	Y float32
}

// Rect is an integer rectangle, origin at the top left.
type Rect struct {
	X int32
	Y int32
	W int32
	H int32
}

// FRect is a rectangle with float precision.
type FRect struct {
	X float32
	Y float32
	W float32
	H float32
}

// The predicates below mirror the inline helpers from the native header;
// they never touch the library.

// InRect reports whether the point lies inside r.
func (p Point) InRect(r Rect) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// InRect reports whether the point lies inside r.
func (p FPoint) InRect(r FRect) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Empty reports whether the rectangle has no area.
func (r FRect) Empty() bool {
	return r.W < 0 || r.H < 0
}

// Equals reports whether two rectangles match exactly.
func (r Rect) Equals(other Rect) bool {
	return r == other
}

// EqualsEpsilon reports whether two rectangles match within epsilon on
// every edge.
func (r FRect) EqualsEpsilon(other FRect, epsilon float32) bool {
	abs := func(v float32) float32 {
		if v < 0 {
			return -v
		}
		return v
	}
	return abs(r.X-other.X) <= epsilon &&
		abs(r.Y-other.Y) <= epsilon &&
		abs(r.W-other.W) <= epsilon &&
		abs(r.H-other.H) <= epsilon
}

// Equals reports whether two rectangles match within a small epsilon.
func (r FRect) Equals(other FRect) bool {
	const epsilon = 1.1920929e-7 // FLT_EPSILON
	return r.EqualsEpsilon(other, epsilon)
}

// ToFRect converts an integer rectangle to float.
func (r Rect) ToFRect() FRect {
	return FRect{X: float32(r.X), Y: float32(r.Y), W: float32(r.W), H: float32(r.H)}
}

type rectFns struct {
	HasRectIntersection        func(*Rect, *Rect) bool                          `ffi:"SDL_HasRectIntersection"`
	GetRectIntersection        func(*Rect, *Rect, *Rect) bool                   `ffi:"SDL_GetRectIntersection"`
	GetRectUnion               func(*Rect, *Rect, *Rect) bool                   `ffi:"SDL_GetRectUnion"`
	GetRectEnclosingPoints     func(*Point, int32, *Rect, *Rect) bool           `ffi:"SDL_GetRectEnclosingPoints"`
	GetRectAndLineIntersection func(*Rect, *int32, *int32, *int32, *int32) bool `ffi:"SDL_GetRectAndLineIntersection"`

	HasRectIntersectionFloat        func(*FRect, *FRect) bool                                 `ffi:"SDL_HasRectIntersectionFloat"`
	GetRectIntersectionFloat        func(*FRect, *FRect, *FRect) bool                         `ffi:"SDL_GetRectIntersectionFloat"`
	GetRectUnionFloat               func(*FRect, *FRect, *FRect) bool                         `ffi:"SDL_GetRectUnionFloat"`
	GetRectEnclosingPointsFloat     func(*FPoint, int32, *FRect, *FRect) bool                 `ffi:"SDL_GetRectEnclosingPointsFloat"`
	GetRectAndLineIntersectionFloat func(*FRect, *float32, *float32, *float32, *float32) bool `ffi:"SDL_GetRectAndLineIntersectionFloat"`
}

var rectProcs procs[rectFns]

// HasIntersection reports whether two rectangles overlap.
func (r Rect) HasIntersection(other Rect) bool {
	return rectProcs.get().HasRectIntersection(&r, &other)
}

// Intersection returns the overlap of two rectangles; ok is false when
// they do not touch.
func (r Rect) Intersection(other Rect) (result Rect, ok bool) {
	ok = rectProcs.get().GetRectIntersection(&r, &other, &result)
	return result, ok
}

// Union returns the smallest rectangle covering both.
func (r Rect) Union(other Rect) Rect {
	var result Rect
	rectProcs.get().GetRectUnion(&r, &other, &result)
	return result
}

// EnclosePoints returns the minimal rectangle around the points that fall
// inside clip. A nil clip encloses every point. ok is false when no point
// qualified.
func EnclosePoints(points []Point, clip *Rect) (result Rect, ok bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	ok = rectProcs.get().GetRectEnclosingPoints(&points[0], int32(len(points)), clip, &result)
	return result, ok
}

// LineIntersection clips the segment (x1,y1)-(x2,y2) against r, returning
// the clipped endpoints. ok is false when the segment misses entirely.
func (r Rect) LineIntersection(x1, y1, x2, y2 int32) (cx1, cy1, cx2, cy2 int32, ok bool) {
	cx1, cy1, cx2, cy2 = x1, y1, x2, y2
	ok = rectProcs.get().GetRectAndLineIntersection(&r, &cx1, &cy1, &cx2, &cy2)
	return
}

// HasIntersection reports whether two rectangles overlap.
func (r FRect) HasIntersection(other FRect) bool {
	return rectProcs.get().HasRectIntersectionFloat(&r, &other)
}

// Intersection returns the overlap of two rectangles; ok is false when
// they do not touch.
func (r FRect) Intersection(other FRect) (result FRect, ok bool) {
	ok = rectProcs.get().GetRectIntersectionFloat(&r, &other, &result)
	return result, ok
}

// Union returns the smallest rectangle covering both.
func (r FRect) Union(other FRect) FRect {
	var result FRect
	rectProcs.get().GetRectUnionFloat(&r, &other, &result)
	return result
}

// EnclosePointsFloat is EnclosePoints for float points.
func EnclosePointsFloat(points []FPoint, clip *FRect) (result FRect, ok bool) {
	if len(points) == 0 {
		return FRect{}, false
	}
	ok = rectProcs.get().GetRectEnclosingPointsFloat(&points[0], int32(len(points)), clip, &result)
	return result, ok
}

// LineIntersection clips the segment (x1,y1)-(x2,y2) against r, returning
// the clipped endpoints. ok is false when the segment misses entirely.
func (r FRect) LineIntersection(x1, y1, x2, y2 float32) (cx1, cy1, cx2, cy2 float32, ok bool) {
	cx1, cy1, cx2, cy2 = x1, y1, x2, y2
	ok = rectProcs.get().GetRectAndLineIntersectionFloat(&r, &cx1, &cy1, &cx2, &cy2)
	return
}
