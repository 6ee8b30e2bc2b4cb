package recommend

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/prakashgarg91/Truck-Opti-sub001/internal/fleet"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/model"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/pack"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/score"
)

const defaultTopN = 3

// Options tunes a Ranker. Zero values fall back to defaults.
type Options struct {
	Workers int           // parallel per-truck evaluations, default NumCPU
	TopN    int           // ranked results returned, default 3
	Weights score.Weights // balanced-scorer weights, default 35/25/25/15
}

// Ranker orchestrates candidate trucks: placement, scoring, ranking and
// the fleet fallback. It holds no per-request state and is safe for
// concurrent use.
type Ranker struct {
	workers int
	topN    int
	weights score.Weights
}

func New(opts Options) *Ranker {
	w := opts.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	n := opts.TopN
	if n <= 0 {
		n = defaultTopN
	}
	return &Ranker{workers: w, topN: n, weights: opts.Weights}
}

// Recommendation is the ranked outcome of one request. Results is the
// ranked single-truck list when at least one truck holds everything;
// otherwise Fleet carries the multi-truck plan and Results is empty.
type Recommendation struct {
	Algorithm score.Algorithm `json:"algorithm"`
	Results   []score.Result  `json:"results,omitempty"`
	Fleet     *fleet.Plan     `json:"fleet,omitempty"`
	Evaluated int             `json:"evaluated"`
}

// Recommend validates the manifest, evaluates every plausible catalog
// truck in parallel, and returns either a ranked top-N or a fleet plan.
// Cancellation is honored between per-truck evaluations and between
// fleet iterations; a cancelled run returns ctx.Err().
func (rk *Ranker) Recommend(ctx context.Context, manifest []model.CartonSpec, catalog []model.TruckSpec, algo score.Algorithm, topN int) (*Recommendation, error) {
	if err := model.ValidateManifest(manifest); err != nil {
		return nil, err
	}
	if err := model.ValidateCatalog(catalog); err != nil {
		return nil, err
	}
	scorer, err := score.ForAlgorithm(algo, rk.weights)
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = rk.topN
	}

	instances := pack.Expand(manifest)
	needVol, needWt := pack.Totals(instances)

	// Conservative pre-filter: waste only raises the required capacity,
	// so a truck below the raw totals can never fully pack. Filtered
	// trucks stay available to the fleet fallback.
	var candidates []model.TruckSpec
	for _, t := range catalog {
		if t.Volume() >= needVol && t.MaxWeight >= needWt {
			candidates = append(candidates, t)
		}
	}

	results, err := rk.evaluate(ctx, candidates, instances, scorer)
	if err != nil {
		return nil, err
	}

	rec := &Recommendation{Algorithm: scorer.ID(), Evaluated: len(results)}
	var full []score.Result
	for _, r := range results {
		if r.FullyPacked {
			full = append(full, r)
		}
	}
	if len(full) == 0 {
		// No single truck holds the manifest; partition across the whole
		// catalog instead.
		plan, ferr := fleet.Build(ctx, catalog, instances, scorer)
		if ferr != nil {
			return nil, ferr
		}
		rec.Fleet = plan
		return rec, nil
	}

	sortResults(full, catalog)
	if len(full) > topN {
		full = full[:topN]
	}
	for i := range full {
		full[i].Rank = i + 1
	}
	rec.Results = full
	return rec, nil
}

// evaluate fans per-truck placement+scoring out to a bounded worker pool.
// Evaluations share nothing mutable, so collection is the only sync
// point.
func (rk *Ranker) evaluate(ctx context.Context, trucks []model.TruckSpec, instances []pack.Instance, scorer score.Scorer) ([]score.Result, error) {
	if len(trucks) == 0 {
		return nil, nil
	}
	out := make([]score.Result, len(trucks))
	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := rk.workers
	if workers > len(trucks) {
		workers = len(trucks)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res := pack.Pack(trucks[i], instances)
				out[i] = scorer.Score(trucks[i], res)
			}
		}()
	}
	var cancelled error
	for i := range trucks {
		// cooperative cancellation between per-truck evaluations
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	if cancelled != nil {
		return nil, cancelled
	}
	return out, nil
}

// sortResults orders by score descending, cheaper cost-per-km, then truck
// id, so identical inputs always rank identically.
func sortResults(results []score.Result, catalog []model.TruckSpec) {
	cost := make(map[string]float64, len(catalog))
	for _, t := range catalog {
		cost[t.ID] = t.CostPerKm
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if cost[results[i].TruckID] != cost[results[j].TruckID] {
			return cost[results[i].TruckID] < cost[results[j].TruckID]
		}
		return results[i].TruckID < results[j].TruckID
	})
}
