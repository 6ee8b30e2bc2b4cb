package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashgarg91/Truck-Opti-sub001/internal/geom"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/model"
)

// assertInvariants checks the placement guarantees every run must hold:
// placed boxes in bounds, pairwise disjoint, weight under the limit, and
// non-negative waste.
func assertInvariants(t *testing.T, truck model.TruckSpec, res Result) {
	t.Helper()
	bounds := geom.Dims{L: truck.Length, W: truck.Width, H: truck.Height}
	for i := range res.Placed {
		assert.True(t, res.Placed[i].Box.Within(bounds), "instance %s out of bounds", res.Placed[i].Key())
		for j := i + 1; j < len(res.Placed); j++ {
			assert.False(t, res.Placed[i].Box.Overlaps(res.Placed[j].Box),
				"instances %s and %s overlap", res.Placed[i].Key(), res.Placed[j].Key())
		}
	}
	assert.LessOrEqual(t, res.PlacedWeight, truck.MaxWeight)
	assert.GreaterOrEqual(t, res.WasteVolume, 0.0)
	util := res.Utilization(truck)
	assert.GreaterOrEqual(t, util, 0.0)
	assert.LessOrEqual(t, util, 100.0)
}

func TestExpandQuantity(t *testing.T) {
	manifest := []model.CartonSpec{
		{ID: "a", Length: 1, Width: 1, Height: 1, Weight: 10, Quantity: 3},
		{ID: "b", Length: 2, Width: 1, Height: 1, Weight: 5, Quantity: 1},
	}
	inst := Expand(manifest)
	require.Len(t, inst, 4)
	assert.Equal(t, "a#0", inst[0].Key())
	assert.Equal(t, "b#3", inst[3].Key())
}

func TestPackSimpleRow(t *testing.T) {
	truck := model.TruckSpec{ID: "t", Length: 3, Width: 1, Height: 1, MaxWeight: 100}
	inst := Expand([]model.CartonSpec{{ID: "c", Length: 1, Width: 1, Height: 1, Weight: 10, Quantity: 3}})
	res := Pack(truck, inst)
	assertInvariants(t, truck, res)
	assert.True(t, res.FullyPacked)
	assert.Empty(t, res.Unplaced)
	assert.InDelta(t, 100.0, res.Utilization(truck), 1e-9)
}

func TestPackWeightLimit(t *testing.T) {
	truck := model.TruckSpec{ID: "t", Length: 10, Width: 10, Height: 10, MaxWeight: 25}
	inst := Expand([]model.CartonSpec{{ID: "c", Length: 1, Width: 1, Height: 1, Weight: 10, Quantity: 3}})
	res := Pack(truck, inst)
	assertInvariants(t, truck, res)
	assert.False(t, res.FullyPacked)
	assert.Len(t, res.Placed, 2)
	require.Len(t, res.Unplaced, 1)
	assert.Equal(t, ReasonNoSpace, res.Unplaced[0].Reason)
}

func TestPackOversizeReportedIndividually(t *testing.T) {
	truck := model.TruckSpec{ID: "t", Length: 2, Width: 2, Height: 2, MaxWeight: 1000}
	inst := Expand([]model.CartonSpec{
		{ID: "big", Length: 5, Width: 1, Height: 1, Weight: 10, Quantity: 1},
		{ID: "ok", Length: 1, Width: 1, Height: 1, Weight: 10, Quantity: 1},
	})
	res := Pack(truck, inst)
	assertInvariants(t, truck, res)
	require.Len(t, res.Unplaced, 1)
	assert.Equal(t, "big", res.Unplaced[0].SpecID)
	assert.Equal(t, ReasonOversize, res.Unplaced[0].Reason)
	assert.Len(t, res.Placed, 1)
}

func TestPackOversizeFragileUprightOnly(t *testing.T) {
	// fits only when tipped on its side, but the fragile flag forbids it
	truck := model.TruckSpec{ID: "t", Length: 5, Width: 2, Height: 1, MaxWeight: 1000}
	spec := model.CartonSpec{ID: "f", Length: 1, Width: 1, Height: 3, Weight: 10, Quantity: 1, Fragile: true}
	res := Pack(truck, Expand([]model.CartonSpec{spec}))
	require.Len(t, res.Unplaced, 1)
	assert.Equal(t, ReasonOversize, res.Unplaced[0].Reason)

	spec.Fragile = false
	res = Pack(truck, Expand([]model.CartonSpec{spec}))
	assert.True(t, res.FullyPacked)
}

func TestPackRotatesIntoLeftoverSpace(t *testing.T) {
	// 1x1x0.5 cartons in a 2.5-wide truck: the last column only fits a
	// rotated pose in the 0.5 m strip.
	truck := model.TruckSpec{ID: "t", Length: 6, Width: 2.5, Height: 2, MaxWeight: 12000}
	inst := Expand([]model.CartonSpec{{ID: "c", Length: 1, Width: 1, Height: 0.5, Weight: 200, Quantity: 50}})
	res := Pack(truck, inst)
	assertInvariants(t, truck, res)
	assert.True(t, res.FullyPacked, "50 cartons of 0.5 m3 must fit in 30 m3: %d unplaced", len(res.Unplaced))
	assert.InDelta(t, 83.33, res.Utilization(truck), 0.05)
	assert.InDelta(t, 10000.0, res.PlacedWeight, 1e-9)
	assert.Greater(t, res.OrientationChanges, 0)
}

func TestPackDeterministic(t *testing.T) {
	truck := model.TruckSpec{ID: "t", Length: 4, Width: 2, Height: 2, MaxWeight: 5000}
	manifest := []model.CartonSpec{
		{ID: "a", Length: 1, Width: 1, Height: 1, Weight: 40, Quantity: 5},
		{ID: "b", Length: 2, Width: 1, Height: 0.5, Weight: 25, Quantity: 4},
		{ID: "c", Length: 0.5, Width: 0.5, Height: 0.5, Weight: 5, Quantity: 8},
	}
	first := Pack(truck, Expand(manifest))
	for i := 0; i < 5; i++ {
		again := Pack(truck, Expand(manifest))
		assert.Equal(t, first, again, "identical inputs must place identically")
	}
}

func TestPackDoesNotAbortAfterFailure(t *testing.T) {
	// a mid-sort unplaceable instance must not stop smaller ones
	truck := model.TruckSpec{ID: "t", Length: 2, Width: 1, Height: 1.5, MaxWeight: 1000}
	inst := Expand([]model.CartonSpec{
		{ID: "wide", Length: 2, Width: 1, Height: 1, Weight: 1, Quantity: 2}, // only one fits
		{ID: "tiny", Length: 0.4, Width: 0.4, Height: 0.4, Weight: 1, Quantity: 1},
	})
	res := Pack(truck, inst)
	assertInvariants(t, truck, res)
	assert.Len(t, res.Unplaced, 1)
	placedIDs := map[string]bool{}
	for _, p := range res.Placed {
		placedIDs[p.SpecID] = true
	}
	assert.True(t, placedIDs["tiny"], "small carton should still place after a failure")
}
