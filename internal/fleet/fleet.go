package fleet

import (
	"context"
	"sync"

	"github.com/prakashgarg91/Truck-Opti-sub001/internal/geom"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/model"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/pack"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/score"
)

// Leg is one truck's share of a multi-truck plan.
type Leg struct {
	Truck  model.TruckSpec `json:"truck"`
	Result pack.Result     `json:"result"`
	Score  score.Result    `json:"score"`
}

// Plan covers a manifest that no single truck can carry. Legs are in
// greedy pick order; their placed instances partition the manifest
// exactly once.
type Plan struct {
	Legs []Leg `json:"legs"`
}

// Build runs the greedy multi-bin loop: each round scores every truck
// against the remaining cargo, keeps the best-scoring truck that places
// at least one instance, and repeats on what is left. Trucks may be
// reused across rounds. A round in which no truck places anything is a
// hard failure reported with the unassignable totals.
//
// The loop itself is sequential; the per-round truck evaluation fans out
// to goroutines because candidates are independent.
func Build(ctx context.Context, trucks []model.TruckSpec, instances []pack.Instance, scorer score.Scorer) (*Plan, error) {
	plan := &Plan{}
	remaining := make([]pack.Instance, len(instances))
	copy(remaining, instances)

	for len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		best := -1
		results := evaluateAll(trucks, remaining, scorer)
		for i, r := range results {
			if len(r.res.Placed) == 0 {
				continue
			}
			if best == -1 || better(r, results[best], trucks[i], trucks[best]) {
				best = i
			}
		}
		if best == -1 {
			vol, wt := pack.Totals(remaining)
			return nil, &model.FleetError{
				UnassignedCount:  len(remaining),
				UnassignedVolume: vol,
				UnassignedWeight: wt,
			}
		}
		leg := Leg{Truck: trucks[best], Result: results[best].res, Score: results[best].sc}
		plan.Legs = append(plan.Legs, leg)
		remaining = subtract(remaining, leg.Result.Placed)
	}

	rebalance(plan, scorer)
	return plan, nil
}

type evaluated struct {
	res pack.Result
	sc  score.Result
}

func evaluateAll(trucks []model.TruckSpec, remaining []pack.Instance, scorer score.Scorer) []evaluated {
	out := make([]evaluated, len(trucks))
	var wg sync.WaitGroup
	for i := range trucks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res := pack.Pack(trucks[i], remaining)
			out[i] = evaluated{res: res, sc: scorer.Score(trucks[i], res)}
		}(i)
	}
	wg.Wait()
	return out
}

// better orders candidates by score, then cheaper running cost, then
// truck id, so greedy picks are deterministic.
func better(a, b evaluated, ta, tb model.TruckSpec) bool {
	if a.sc.Score != b.sc.Score {
		return a.sc.Score > b.sc.Score
	}
	if ta.CostPerKm != tb.CostPerKm {
		return ta.CostPerKm < tb.CostPerKm
	}
	return ta.ID < tb.ID
}

func subtract(from, placed []pack.Instance) []pack.Instance {
	gone := make(map[string]bool, len(placed))
	for i := range placed {
		gone[placed[i].Key()] = true
	}
	var out []pack.Instance
	for i := range from {
		if !gone[from[i].Key()] {
			out = append(out, from[i])
		}
	}
	return out
}

// rebalance shifts single instances between same-category legs when the
// move strictly narrows the utilization spread and both legs still pack
// everything assigned to them. The greedy assignment stands otherwise.
func rebalance(plan *Plan, scorer score.Scorer) {
	improved := true
	for rounds := 0; improved && rounds < 16; rounds++ {
		improved = false
		for i := range plan.Legs {
			for j := range plan.Legs {
				if i == j || plan.Legs[i].Truck.Category != plan.Legs[j].Truck.Category {
					continue
				}
				if tryMove(&plan.Legs[i], &plan.Legs[j], scorer) {
					improved = true
				}
			}
		}
	}
}

func tryMove(hi, lo *Leg, scorer score.Scorer) bool {
	uh := hi.Result.Utilization(hi.Truck)
	ul := lo.Result.Utilization(lo.Truck)
	if uh <= ul {
		return false
	}
	before := uh - ul
	for k := range hi.Result.Placed {
		moved := hi.Result.Placed[k]
		srcSet := append([]pack.Instance(nil), hi.Result.Placed[:k]...)
		srcSet = append(srcSet, hi.Result.Placed[k+1:]...)
		dstSet := append([]pack.Instance(nil), lo.Result.Placed...)
		dstSet = append(dstSet, moved)

		srcRes := pack.Pack(hi.Truck, clean(srcSet))
		dstRes := pack.Pack(lo.Truck, clean(dstSet))
		if len(srcSet) > 0 && !srcRes.FullyPacked {
			continue
		}
		if !dstRes.FullyPacked {
			continue
		}
		after := diff(srcRes.Utilization(hi.Truck), dstRes.Utilization(lo.Truck))
		if after >= before {
			continue
		}
		hi.Result = srcRes
		lo.Result = dstRes
		hi.Score = scorer.Score(hi.Truck, srcRes)
		lo.Score = scorer.Score(lo.Truck, dstRes)
		return true
	}
	return false
}

// clean strips prior placement state so instances can be re-packed.
func clean(in []pack.Instance) []pack.Instance {
	out := make([]pack.Instance, len(in))
	for i := range in {
		out[i] = in[i]
		out[i].Placed = false
		out[i].Box = geom.Box{}
		out[i].Orientation = geom.OrientLWH
		out[i].Reason = ""
	}
	return out
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
