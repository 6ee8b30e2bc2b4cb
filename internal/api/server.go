package api

import (
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/prakashgarg91/Truck-Opti-sub001/internal/cache"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/config"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/model"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/recommend"
)

// Server hosts the recommendation engine over JSON HTTP. The engine
// packages stay network-free; everything wire-level lives here.
type Server struct {
	Log     *zap.Logger
	Catalog []model.TruckSpec
	Ranker  *recommend.Ranker
	Cache   cache.Cache
	Limiter *rate.Limiter
}

// NewServer wires a Server from loaded config and catalog. If a Redis URL
// is configured the response cache is shared; otherwise it is
// process-local.
func NewServer(cfg *config.Config, log *zap.Logger, catalog []model.TruckSpec) *Server {
	var c cache.Cache
	if cfg.Cache.RedisURL != "" {
		if rc, err := cache.NewRedis(cfg.Cache.RedisURL, cfg.Cache.TTL); err == nil {
			c = rc
		} else {
			log.Warn("redis cache unavailable, using memory", zap.Error(err))
		}
	}
	if c == nil {
		c = cache.NewMemory(cfg.Cache.TTL)
	}
	return &Server{
		Log:     log,
		Catalog: catalog,
		Ranker: recommend.New(recommend.Options{
			Workers: cfg.Engine.Workers,
			TopN:    cfg.Engine.TopN,
			Weights: cfg.MCDA,
		}),
		Cache:   c,
		Limiter: rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst),
	}
}
