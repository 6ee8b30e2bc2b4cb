package geom

// Axis-aligned 3D primitives shared by the placement engine. Positions and
// dimensions use the same length unit as the truck catalog (meters).

// Dims is an (L, W, H) triple.
type Dims struct {
	L float64 `json:"l"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (d Dims) Volume() float64 { return d.L * d.W * d.H }

// Point is a position inside a truck volume, measured from the origin
// corner (front-left-floor).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Box is a placed axis-aligned cuboid: origin corner plus oriented dims.
type Box struct {
	At   Point `json:"at"`
	Size Dims  `json:"size"`
}

// Overlaps reports whether two boxes share interior volume. Touching faces
// do not count as overlap.
func (b Box) Overlaps(o Box) bool {
	if b.At.X+b.Size.L <= o.At.X || o.At.X+o.Size.L <= b.At.X {
		return false
	}
	if b.At.Y+b.Size.W <= o.At.Y || o.At.Y+o.Size.W <= b.At.Y {
		return false
	}
	if b.At.Z+b.Size.H <= o.At.Z || o.At.Z+o.Size.H <= b.At.Z {
		return false
	}
	return true
}

// Within reports whether the box lies fully inside a volume of the given
// dims anchored at the origin. eps absorbs float drift from accumulated
// anchor coordinates.
func (b Box) Within(bounds Dims) bool {
	const eps = 1e-9
	return b.At.X >= -eps && b.At.Y >= -eps && b.At.Z >= -eps &&
		b.At.X+b.Size.L <= bounds.L+eps &&
		b.At.Y+b.Size.W <= bounds.W+eps &&
		b.At.Z+b.Size.H <= bounds.H+eps
}

// Orientation names one of the six axis-aligned permutations of a dims
// triple. The zero value is the carton's natural pose.
type Orientation int

const (
	OrientLWH Orientation = iota // natural
	OrientWLH
	OrientLHW
	OrientHLW
	OrientWHL
	OrientHWL
)

// Apply returns d permuted into the given orientation.
func (o Orientation) Apply(d Dims) Dims {
	switch o {
	case OrientWLH:
		return Dims{L: d.W, W: d.L, H: d.H}
	case OrientLHW:
		return Dims{L: d.L, W: d.H, H: d.W}
	case OrientHLW:
		return Dims{L: d.H, W: d.L, H: d.W}
	case OrientWHL:
		return Dims{L: d.W, W: d.H, H: d.L}
	case OrientHWL:
		return Dims{L: d.H, W: d.W, H: d.L}
	default:
		return d
	}
}

var (
	allOrientations = []Orientation{OrientLWH, OrientWLH, OrientLHW, OrientHLW, OrientWHL, OrientHWL}
	// upright keeps the natural height axis vertical; used for fragile
	// cartons that must not be tipped.
	uprightOrientations = []Orientation{OrientLWH, OrientWLH}
)

// Orientations returns the permitted poses for a carton. Fragile cartons
// are restricted to the upright subset.
func Orientations(upright bool) []Orientation {
	if upright {
		return uprightOrientations
	}
	return allOrientations
}
