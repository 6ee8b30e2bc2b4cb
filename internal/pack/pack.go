package pack

import (
	"fmt"
	"sort"

	"github.com/prakashgarg91/Truck-Opti-sub001/internal/geom"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/model"
)

// Unplaced reasons. Oversize means the carton cannot fit the truck in any
// permitted orientation on its own; no_space means it lost to earlier
// placements.
const (
	ReasonOversize = "oversize"
	ReasonNoSpace  = "no_space"
)

// Instance is one physical carton unit expanded from a CartonSpec. It is
// owned by the packer during a run and discarded after scoring.
type Instance struct {
	SpecID  string    `json:"specId"`
	Seq     int       `json:"seq"`
	Dims    geom.Dims `json:"dims"`
	Weight  float64   `json:"weight"`
	Value   float64   `json:"value"`
	Fragile bool      `json:"fragile"`

	Placed      bool             `json:"placed"`
	Box         geom.Box         `json:"box"`
	Orientation geom.Orientation `json:"orientation,omitempty"`
	Reason      string           `json:"reason,omitempty"`
}

// Key identifies an instance uniquely within one run.
func (in Instance) Key() string { return fmt.Sprintf("%s#%d", in.SpecID, in.Seq) }

// Result is the outcome of packing one truck.
type Result struct {
	TruckID      string     `json:"truckId"`
	Placed       []Instance `json:"placed"`
	Unplaced     []Instance `json:"unplaced"`
	PlacedVolume float64    `json:"placedVolume"`
	PlacedWeight float64    `json:"placedWeight"`
	WasteVolume  float64    `json:"wasteVolume"`
	FullyPacked  bool       `json:"fullyPacked"`

	// Inputs to the balanced scorer: how many placed instances ended up
	// rotated away from their natural pose, and how many are fragile.
	OrientationChanges int `json:"orientationChanges"`
	FragileCount       int `json:"fragileCount"`
}

// Utilization returns placed volume over truck volume in percent.
func (r Result) Utilization(truck model.TruckSpec) float64 {
	v := truck.Volume()
	if v <= 0 {
		return 0
	}
	return r.PlacedVolume / v * 100
}

// Expand turns a manifest into one Instance per physical unit, preserving
// manifest order. Quantity must already be validated.
func Expand(cartons []model.CartonSpec) []Instance {
	var out []Instance
	for _, c := range cartons {
		for q := 0; q < c.Quantity; q++ {
			out = append(out, Instance{
				SpecID:  c.ID,
				Seq:     len(out),
				Dims:    geom.Dims{L: c.Length, W: c.Width, H: c.Height},
				Weight:  c.Weight,
				Value:   c.Value,
				Fragile: c.Fragile,
			})
		}
	}
	return out
}

// Pack places instances into the truck using a largest-first corner-point
// heuristic. Instances are tried in volume-descending order (weight, then
// expansion ordinal break ties, keeping runs deterministic); each is
// placed at the first anchor/orientation that fits in bounds, overlaps
// nothing and keeps cumulative weight under the payload limit. A failed
// instance is recorded and the run continues.
func Pack(truck model.TruckSpec, instances []Instance) Result {
	pending := make([]Instance, len(instances))
	copy(pending, instances)
	sort.SliceStable(pending, func(i, j int) bool {
		vi, vj := pending[i].Dims.Volume(), pending[j].Dims.Volume()
		if vi != vj {
			return vi > vj
		}
		if pending[i].Weight != pending[j].Weight {
			return pending[i].Weight > pending[j].Weight
		}
		return pending[i].Seq < pending[j].Seq
	})

	bounds := geom.Dims{L: truck.Length, W: truck.Width, H: truck.Height}
	res := Result{TruckID: truck.ID}

	// Anchor arena: candidate origin corners in insertion order, seeded
	// with the truck's origin. Grows by three far corners per placement
	// and is never pruned, so placement order is reproducible.
	anchors := []geom.Point{{}}

	for _, in := range pending {
		placed := false
		oversize := true
		for _, o := range geom.Orientations(in.Fragile) {
			size := o.Apply(in.Dims)
			if size.L <= bounds.L && size.W <= bounds.W && size.H <= bounds.H {
				oversize = false
				break
			}
		}
		if !oversize && res.PlacedWeight+in.Weight <= truck.MaxWeight {
			if box, o, ok := findSpot(anchors, in, bounds, res.Placed); ok {
				in.Placed = true
				in.Box = box
				in.Orientation = o
				placed = true
			}
		}
		if !placed {
			if oversize {
				in.Reason = ReasonOversize
			} else {
				in.Reason = ReasonNoSpace
			}
			res.Unplaced = append(res.Unplaced, in)
			continue
		}
		res.Placed = append(res.Placed, in)
		res.PlacedVolume += in.Dims.Volume()
		res.PlacedWeight += in.Weight
		if in.Orientation != geom.OrientLWH {
			res.OrientationChanges++
		}
		if in.Fragile {
			res.FragileCount++
		}
		// Corner-point growth: far corner along each axis.
		b := in.Box
		anchors = append(anchors,
			geom.Point{X: b.At.X + b.Size.L, Y: b.At.Y, Z: b.At.Z},
			geom.Point{X: b.At.X, Y: b.At.Y + b.Size.W, Z: b.At.Z},
			geom.Point{X: b.At.X, Y: b.At.Y, Z: b.At.Z + b.Size.H},
		)
	}

	res.WasteVolume = truck.Volume() - res.PlacedVolume
	res.FullyPacked = len(res.Unplaced) == 0 && len(res.Placed) > 0
	return res
}

// findSpot scans anchors in insertion order and permitted orientations in
// enum order, accepting the first in-bounds, non-overlapping pose.
func findSpot(anchors []geom.Point, in Instance, bounds geom.Dims, placed []Instance) (geom.Box, geom.Orientation, bool) {
	for _, at := range anchors {
		for _, o := range geom.Orientations(in.Fragile) {
			box := geom.Box{At: at, Size: o.Apply(in.Dims)}
			if !box.Within(bounds) {
				continue
			}
			if overlapsAny(box, placed) {
				continue
			}
			return box, o, true
		}
	}
	return geom.Box{}, 0, false
}

func overlapsAny(box geom.Box, placed []Instance) bool {
	for i := range placed {
		if box.Overlaps(placed[i].Box) {
			return true
		}
	}
	return false
}

// Totals sums volume and weight over a set of instances.
func Totals(instances []Instance) (volume, weight float64) {
	for i := range instances {
		volume += instances[i].Dims.Volume()
		weight += instances[i].Weight
	}
	return volume, weight
}
