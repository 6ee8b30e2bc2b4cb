package score

import (
	"fmt"

	"github.com/prakashgarg91/Truck-Opti-sub001/internal/model"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/pack"
)

// Algorithm names one of the fixed scoring strategies. The set is closed:
// adding a strategy means adding a constant and a case in ForAlgorithm.
type Algorithm string

const (
	LAFF           Algorithm = "laff"     // largest-area-first space usage
	CostOptimized  Algorithm = "cost"     // lowest effective trip cost
	ValueProtected Algorithm = "value"    // protective utilization band
	Balanced       Algorithm = "balanced" // weighted multi-criteria
)

// Algorithms lists the valid selectors in display order.
func Algorithms() []Algorithm {
	return []Algorithm{LAFF, CostOptimized, ValueProtected, Balanced}
}

// Result is one scored truck attempt. Rank is assigned by the ranker, not
// by the scorer.
type Result struct {
	TruckID     string    `json:"truckId"`
	Algorithm   Algorithm `json:"algorithm"`
	Score       float64   `json:"score"`
	Utilization float64   `json:"utilization"`
	Cost        float64   `json:"cost"`
	Reasoning   string    `json:"reasoning"`
	Rank        int       `json:"rank,omitempty"`
	FullyPacked bool      `json:"fullyPacked"`
}

// Scorer converts one placement outcome into a comparable score. Scorers
// are pure: identical inputs always yield identical results.
type Scorer interface {
	ID() Algorithm
	Score(truck model.TruckSpec, res pack.Result) Result
}

// ForAlgorithm resolves a selector to its scorer. Unknown selectors are
// an input error, not a fallback.
func ForAlgorithm(a Algorithm, weights Weights) (Scorer, error) {
	switch a {
	case LAFF, "":
		return laffScorer{}, nil
	case CostOptimized:
		return costScorer{}, nil
	case ValueProtected:
		return valueScorer{}, nil
	case Balanced:
		return balancedScorer{weights: weights.orDefault()}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s", a)
	}
}

// Tunables shared by the scorers. Reference distance stands in for a
// standard trip so per-truck costs compare; it is not a route.
const (
	referenceDistanceKm = 150.0
	fragileSurcharge    = 0.15
	bandCenter          = 78.0
	bandPenalty         = 1.5
	minEfficiency       = 0.75
)

// tripCost is the comparative transport cost for one truck: flat per-km
// rate over the reference distance, inflated as utilization drops (an
// under-filled truck burns the same fuel for less cargo).
func tripCost(truck model.TruckSpec, utilization float64) float64 {
	eff := minEfficiency + (1-minEfficiency)*(utilization/100)
	if eff <= 0 {
		eff = minEfficiency
	}
	return truck.CostPerKm * referenceDistanceKm / eff
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
