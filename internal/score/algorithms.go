package score

import (
	"fmt"
	"math"

	"github.com/prakashgarg91/Truck-Opti-sub001/internal/model"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/pack"
)

// laffScorer rewards raw space usage with a mild waste penalty.
type laffScorer struct{}

func (laffScorer) ID() Algorithm { return LAFF }

func (laffScorer) Score(truck model.TruckSpec, res pack.Result) Result {
	util := res.Utilization(truck)
	wasteRatio := 0.0
	if v := truck.Volume(); v > 0 {
		wasteRatio = res.WasteVolume / v
	}
	s := util - wasteRatio*5
	return Result{
		TruckID:     truck.ID,
		Algorithm:   LAFF,
		Score:       s,
		Utilization: util,
		Cost:        tripCost(truck, util),
		FullyPacked: res.FullyPacked,
		Reasoning: fmt.Sprintf("space usage %.1f%% of %s with %.1f%% waste",
			util, truck.ID, wasteRatio*100),
	}
}

// costScorer ranks by effective trip cost: higher utilization improves the
// fuel/trip efficiency factor, lowering the effective cost. The score is
// the inverted cost so that cheaper trucks rank higher.
type costScorer struct{}

func (costScorer) ID() Algorithm { return CostOptimized }

func (costScorer) Score(truck model.TruckSpec, res pack.Result) Result {
	util := res.Utilization(truck)
	cost := tripCost(truck, util)
	s := 0.0
	if cost > 0 {
		s = 10000 / cost
	}
	return Result{
		TruckID:     truck.ID,
		Algorithm:   CostOptimized,
		Score:       s,
		Utilization: util,
		Cost:        cost,
		FullyPacked: res.FullyPacked,
		Reasoning: fmt.Sprintf("effective trip cost %.2f for %s over %.0f km reference at %.1f%% utilization",
			cost, truck.ID, referenceDistanceKm, util),
	}
}

// valueScorer prefers a protective utilization band (70-85%) so high-value
// cargo is neither rattling loose nor crushed tight. A fragile manifest
// adds a handling surcharge to the reported cost only; ranking is
// unaffected.
type valueScorer struct{}

func (valueScorer) ID() Algorithm { return ValueProtected }

func (valueScorer) Score(truck model.TruckSpec, res pack.Result) Result {
	util := res.Utilization(truck)
	s := 100 - math.Abs(util-bandCenter)*bandPenalty
	cost := tripCost(truck, util)
	note := ""
	if res.FragileCount > 0 {
		cost *= 1 + fragileSurcharge
		note = fmt.Sprintf(" (+%.0f%% fragile handling on cost)", fragileSurcharge*100)
	}
	return Result{
		TruckID:     truck.ID,
		Algorithm:   ValueProtected,
		Score:       s,
		Utilization: util,
		Cost:        cost,
		FullyPacked: res.FullyPacked,
		Reasoning: fmt.Sprintf("utilization %.1f%% vs protective optimum %.0f%%%s",
			util, bandCenter, note),
	}
}

// Weights are the balanced scorer's criteria weights. They sum to 1 in the
// default configuration; callers overriding them own the normalization.
type Weights struct {
	Space       float64 `json:"space" mapstructure:"space"`
	Cost        float64 `json:"cost" mapstructure:"cost"`
	Ease        float64 `json:"ease" mapstructure:"ease"`
	Reliability float64 `json:"reliability" mapstructure:"reliability"`
}

// DefaultWeights returns the stock 35/25/25/15 split.
func DefaultWeights() Weights {
	return Weights{Space: 0.35, Cost: 0.25, Ease: 0.25, Reliability: 0.15}
}

func (w Weights) orDefault() Weights {
	if w.Space == 0 && w.Cost == 0 && w.Ease == 0 && w.Reliability == 0 {
		return DefaultWeights()
	}
	return w
}

// balancedScorer combines four normalized sub-scores: space usage, cost,
// operational ease (orientation changes and fragile handling overhead) and
// reliability (a small head-room below full utilization).
type balancedScorer struct {
	weights Weights
}

func (balancedScorer) ID() Algorithm { return Balanced }

const (
	mcdaCostBase       = 500.0
	mcdaTargetMargin   = 10.0
	easePerRotation    = 2.0
	easePerFragileUnit = 5.0
)

func (b balancedScorer) Score(truck model.TruckSpec, res pack.Result) Result {
	util := res.Utilization(truck)
	space := clamp(util, 0, 100)
	cost := clamp(100*mcdaCostBase/(mcdaCostBase+truck.CostPerKm*referenceDistanceKm), 0, 100)
	ease := clamp(100-easePerRotation*float64(res.OrientationChanges)-easePerFragileUnit*float64(res.FragileCount), 0, 100)
	margin := 100 - util
	reliability := clamp(100-2*math.Abs(margin-mcdaTargetMargin), 0, 100)

	w := b.weights
	s := w.Space*space + w.Cost*cost + w.Ease*ease + w.Reliability*reliability
	return Result{
		TruckID:     truck.ID,
		Algorithm:   Balanced,
		Score:       s,
		Utilization: util,
		Cost:        tripCost(truck, util),
		FullyPacked: res.FullyPacked,
		Reasoning: fmt.Sprintf("weighted criteria for %s: space %.1f, cost %.1f, ease %.1f, reliability %.1f",
			truck.ID, space, cost, ease, reliability),
	}
}
