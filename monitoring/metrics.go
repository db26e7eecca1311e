package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RSVPRecorded counts persisted RSVP submissions by status.
	RSVPRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gather_rsvp_recorded_total",
		Help: "RSVP submissions persisted, by status",
	}, []string{"status"})

	// IdeaRequests counts generate responses by the source that produced them.
	IdeaRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gather_idea_requests_total",
		Help: "Idea responses served, by source (cached, template, hf, offline)",
	}, []string{"source"})

	// IdeaCacheHits counts idea cache lookups that were served from cache.
	IdeaCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gather_idea_cache_hits_total",
		Help: "Idea cache hits",
	})

	// IdeaCacheMisses counts idea cache lookups that missed or were expired.
	IdeaCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gather_idea_cache_misses_total",
		Help: "Idea cache misses",
	})

	// RateLimited counts generate requests rejected by the fixed-window limiter.
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gather_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})
)
