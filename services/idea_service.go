package services

import (
	"context"
	"encoding/json"

	"gather.link/configs/configslog"
	"gather.link/monitoring"
	"gather.link/pkg/giftgen"
	"gather.link/pkg/ideacache"
	"gather.link/pkg/ratelimit"

	"go.uber.org/zap"
)

// IdeaServiceError is a typed service error.
type IdeaServiceError string

func (e IdeaServiceError) Error() string { return string(e) }

const (
	ErrIdeaRateLimited IdeaServiceError = "too many requests, please try again later"
)

// IIdeaService serves gift idea requests.
type IIdeaService interface {
	Generate(ctx context.Context, clientID string, req giftgen.Request) (giftgen.Result, error)
	Offline(lang string) giftgen.Result
}

// IdeaService shields the producer behind a fixed-window rate limiter and a
// TTL cache, and degrades to the offline pool instead of ever surfacing a
// generation failure.
type IdeaService struct {
	limiter  ratelimit.Limiter
	cache    ideacache.Cache
	producer giftgen.Producer
	offline  *giftgen.OfflinePool
	model    string
}

func NewIdeaService(limiter ratelimit.Limiter, cache ideacache.Cache, producer giftgen.Producer, offline *giftgen.OfflinePool, model string) IIdeaService {
	return &IdeaService{
		limiter:  limiter,
		cache:    cache,
		producer: producer,
		offline:  offline,
		model:    model,
	}
}

func (s *IdeaService) Generate(ctx context.Context, clientID string, req giftgen.Request) (giftgen.Result, error) {
	// The limiter runs before any other work, cache lookups included.
	allowed, err := s.limiter.Allow(ctx, clientID)
	if err != nil {
		// A broken limiter backend must not take the endpoint down; let the
		// request through and log it.
		configslog.Log.Error("rate limiter failure, allowing request", zap.Error(err))
		allowed = true
	}
	if !allowed {
		monitoring.RateLimited.Inc()
		return giftgen.Result{}, ErrIdeaRateLimited
	}

	if err := req.Validate(); err != nil {
		return giftgen.Result{}, err
	}

	key := req.CacheKey()
	if payload, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var cached giftgen.Result
		if err := json.Unmarshal(payload, &cached); err == nil {
			monitoring.IdeaCacheHits.Inc()
			monitoring.IdeaRequests.WithLabelValues("cached").Inc()
			return cached, nil
		}
		configslog.Log.Warn("discarding undecodable cache entry", zap.Error(err))
	} else if err != nil {
		configslog.Log.Error("cache lookup failure", zap.Error(err))
	}
	monitoring.IdeaCacheMisses.Inc()

	if err := s.cache.SweepExpired(ctx); err != nil {
		configslog.Log.Error("cache sweep failure", zap.Error(err))
	}

	result, err := s.producer.Generate(ctx, req)
	if err != nil {
		configslog.Log.Warn("idea generation failed, serving offline pool", zap.Error(err))
		result = s.offline.Result(req.Lang)
		// Keep the configured model name visible so the degradation is
		// observable in the response.
		result.Meta.Model = s.model
	}
	monitoring.IdeaRequests.WithLabelValues(result.Meta.Source).Inc()

	if payload, err := json.Marshal(result); err == nil {
		if err := s.cache.Put(ctx, key, payload); err != nil {
			configslog.Log.Error("cache write failure", zap.Error(err))
		}
	}

	return result, nil
}

// Offline serves the curated pool directly, bypassing limiter and cache.
func (s *IdeaService) Offline(lang string) giftgen.Result {
	if lang != "en" {
		lang = "ru"
	}
	result := s.offline.Result(lang)
	monitoring.IdeaRequests.WithLabelValues("offline").Inc()
	return result
}

var _ IIdeaService = (*IdeaService)(nil)
