package api

import (
	"fmt"

	"github.com/prakashgarg91/Truck-Opti-sub001/internal/model"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/score"
)

// validateRecommendRequest rejects wire-level problems early; the deep
// manifest checks happen inside the ranker.
func validateRecommendRequest(req *model.RecommendRequest) error {
	if req.Algorithm != "" {
		ok := false
		for _, a := range score.Algorithms() {
			if score.Algorithm(req.Algorithm) == a {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("invalid algorithm: %s (allowed: laff,cost,value,balanced)", req.Algorithm)
		}
	}
	if req.TopN < 0 {
		return fmt.Errorf("topN must be >= 0")
	}
	if len(req.Cartons) == 0 {
		return fmt.Errorf("cartons must not be empty")
	}
	const maxManifest = 10000
	n := 0
	for _, c := range req.Cartons {
		if c.Quantity > 0 {
			n += c.Quantity
		}
	}
	if n > maxManifest {
		return fmt.Errorf("manifest too large: %d instances (max %d)", n, maxManifest)
	}
	return nil
}
