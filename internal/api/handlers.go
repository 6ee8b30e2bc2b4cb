package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/prakashgarg91/Truck-Opti-sub001/internal/buildinfo"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/metrics"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/model"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/score"
)

// RecommendHandler runs one recommendation request: POST /v1/recommend.
func (s *Server) RecommendHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeProblem(w, http.StatusMethodNotAllowed, "method not allowed", "", nil)
		return
	}
	if !s.Limiter.Allow() {
		writeProblem(w, http.StatusTooManyRequests, "rate limited", "too many recommendation requests", nil)
		return
	}
	var req model.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid body", err.Error(), nil)
		return
	}
	if err := validateRecommendRequest(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid request", err.Error(), nil)
		return
	}
	trucks := req.Trucks
	if len(trucks) == 0 {
		trucks = s.Catalog
	}

	key := requestDigest(req, trucks)
	if body, ok := s.Cache.Get(r.Context(), key); ok {
		metrics.CacheHits.WithLabelValues("hit").Inc()
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		_, _ = w.Write(body)
		return
	}
	metrics.CacheHits.WithLabelValues("miss").Inc()

	algo := score.Algorithm(req.Algorithm)
	start := time.Now()
	rec, err := s.Ranker.Recommend(r.Context(), req.Cartons, trucks, algo, req.TopN)
	metrics.RecommendDuration.WithLabelValues(string(algo)).Observe(time.Since(start).Seconds())
	if err != nil {
		s.writeRecommendError(w, algo, err)
		return
	}
	metrics.TrucksEvaluated.Observe(float64(rec.Evaluated))
	outcome := "ranked"
	if rec.Fleet != nil {
		outcome = "fleet"
	}
	metrics.Recommendations.WithLabelValues(string(rec.Algorithm), outcome).Inc()

	body, _ := json.Marshal(rec)
	s.Cache.Set(r.Context(), key, body)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (s *Server) writeRecommendError(w http.ResponseWriter, algo score.Algorithm, err error) {
	var verr *model.ValidationError
	var ferr *model.FleetError
	switch {
	case errors.As(err, &verr):
		metrics.Recommendations.WithLabelValues(string(algo), "invalid").Inc()
		writeProblem(w, http.StatusBadRequest, "invalid manifest", verr.Error(), verr.Fields)
	case errors.As(err, &ferr):
		metrics.Recommendations.WithLabelValues(string(algo), "no_feasible_fleet").Inc()
		writeProblem(w, http.StatusUnprocessableEntity, "no feasible fleet", ferr.Error(), ferr)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		metrics.Recommendations.WithLabelValues(string(algo), "cancelled").Inc()
		s.Log.Info("recommendation cancelled", zap.Error(err))
		// client is gone; status is best effort
		writeProblem(w, http.StatusServiceUnavailable, "cancelled", err.Error(), nil)
	default:
		metrics.Recommendations.WithLabelValues(string(algo), "error").Inc()
		s.Log.Error("recommendation failed", zap.Error(err))
		writeProblem(w, http.StatusInternalServerError, "internal error", err.Error(), nil)
	}
}

// requestDigest is the cache key: a hash over the manifest, the effective
// catalog, the algorithm and the ranking size. Determinism of the engine
// makes equal digests interchangeable.
func requestDigest(req model.RecommendRequest, trucks []model.TruckSpec) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(req.Cartons)
	_ = enc.Encode(trucks)
	_ = enc.Encode(req.Algorithm)
	_ = enc.Encode(req.TopN)
	return hex.EncodeToString(h.Sum(nil))
}

// AlgorithmsHandler lists the available scoring algorithms.
func (s *Server) AlgorithmsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeProblem(w, http.StatusMethodNotAllowed, "method not allowed", "", nil)
		return
	}
	type algo struct {
		ID          string `json:"id"`
		Description string `json:"description"`
	}
	writeJSON(w, http.StatusOK, []algo{
		{ID: string(score.LAFF), Description: "largest-area-first: maximum space usage, mild waste penalty"},
		{ID: string(score.CostOptimized), Description: "lowest effective trip cost over a reference distance"},
		{ID: string(score.ValueProtected), Description: "protective 70-85% utilization band for high-value cargo"},
		{ID: string(score.Balanced), Description: "weighted space/cost/ease/reliability criteria"},
	})
}

// TrucksHandler exposes the loaded catalog snapshot (read-only).
func (s *Server) TrucksHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeProblem(w, http.StatusMethodNotAllowed, "method not allowed", "", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"trucks": s.Catalog})
}

func (s *Server) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "build": buildinfo.Info()})
}

func (s *Server) ReadyHandler(w http.ResponseWriter, _ *http.Request) {
	if len(s.Catalog) == 0 {
		writeProblem(w, http.StatusServiceUnavailable, "not ready", "no truck catalog loaded", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
