package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientationApply(t *testing.T) {
	d := Dims{L: 1, W: 2, H: 3}
	seen := map[Dims]bool{}
	for _, o := range Orientations(false) {
		got := o.Apply(d)
		assert.InDelta(t, d.Volume(), got.Volume(), 1e-12, "rotation must preserve volume")
		seen[got] = true
	}
	assert.Len(t, seen, 6, "distinct dims should yield six distinct poses")
}

func TestUprightOrientations(t *testing.T) {
	d := Dims{L: 1, W: 2, H: 3}
	for _, o := range Orientations(true) {
		assert.Equal(t, d.H, o.Apply(d).H, "upright poses keep the height axis vertical")
	}
	assert.Len(t, Orientations(true), 2)
}

func TestOverlaps(t *testing.T) {
	a := Box{At: Point{}, Size: Dims{L: 1, W: 1, H: 1}}
	assert.True(t, a.Overlaps(Box{At: Point{X: 0.5}, Size: Dims{L: 1, W: 1, H: 1}}))
	// face contact is not overlap
	assert.False(t, a.Overlaps(Box{At: Point{X: 1}, Size: Dims{L: 1, W: 1, H: 1}}))
	assert.False(t, a.Overlaps(Box{At: Point{Z: 1}, Size: Dims{L: 1, W: 1, H: 1}}))
	assert.False(t, a.Overlaps(Box{At: Point{X: 2, Y: 2, Z: 2}, Size: Dims{L: 1, W: 1, H: 1}}))
}

func TestWithin(t *testing.T) {
	bounds := Dims{L: 2, W: 2, H: 2}
	assert.True(t, Box{At: Point{X: 1, Y: 1, Z: 1}, Size: Dims{L: 1, W: 1, H: 1}}.Within(bounds))
	assert.False(t, Box{At: Point{X: 1.5}, Size: Dims{L: 1, W: 1, H: 1}}.Within(bounds))
	assert.False(t, Box{At: Point{X: -0.1}, Size: Dims{L: 1, W: 1, H: 1}}.Within(bounds))
}
