package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointInRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	assert.True(t, Point{X: 10, Y: 10}.InRect(r))
	assert.True(t, Point{X: 29, Y: 29}.InRect(r))
	assert.False(t, Point{X: 30, Y: 30}.InRect(r), "right and bottom edges are exclusive")
	assert.False(t, Point{X: 9, Y: 15}.InRect(r))
}

func TestFPointInRect(t *testing.T) {
	r := FRect{X: 0, Y: 0, W: 1, H: 1}

	assert.True(t, FPoint{X: 0, Y: 0}.InRect(r))
	assert.True(t, FPoint{X: 1, Y: 1}.InRect(r), "float rects include the far edge")
	assert.False(t, FPoint{X: 1.001, Y: 0.5}.InRect(r))
}

func TestRectEmpty(t *testing.T) {
	assert.True(t, Rect{}.Empty())
	assert.True(t, Rect{X: 5, Y: 5, W: 0, H: 10}.Empty())
	assert.True(t, Rect{W: 10, H: -1}.Empty())
	assert.False(t, Rect{W: 1, H: 1}.Empty())
}

func TestRectEquals(t *testing.T) {
	a := Rect{X: 1, Y: 2, W: 3, H: 4}
	assert.True(t, a.Equals(Rect{X: 1, Y: 2, W: 3, H: 4}))
	assert.False(t, a.Equals(Rect{X: 1, Y: 2, W: 3, H: 5}))
}

func TestFRectEqualsEpsilon(t *testing.T) {
	a := FRect{X: 1, Y: 2, W: 3, H: 4}
	b := FRect{X: 1.05, Y: 2, W: 3, H: 4}

	assert.True(t, a.EqualsEpsilon(b, 0.1))
	assert.False(t, a.EqualsEpsilon(b, 0.01))
	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))
}

func TestRectToFRect(t *testing.T) {
	f := Rect{X: 1, Y: 2, W: 3, H: 4}.ToFRect()
	assert.Equal(t, FRect{X: 1, Y: 2, W: 3, H: 4}, f)
}
