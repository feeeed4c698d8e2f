// Package metrics exposes Prometheus counters and histograms for the quest
// engine and the HTTP layer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

const namespace = "hug"

// Collector holds every metric the service exports. It owns its registry so
// tests can build as many as they need.
type Collector struct {
	registry *prometheus.Registry

	questsCompleted    *prometheus.CounterVec
	questsRejected     *prometheus.CounterVec
	questsReset        prometheus.Counter
	missionTransitions *prometheus.CounterVec
	rewardsGranted     *prometheus.CounterVec
	rewardExp          *prometheus.CounterVec
	rewardPoints       *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// New creates a Collector with Go runtime and process collectors registered.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &Collector{
		registry: reg,
		questsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "quest", Name: "completed_total",
			Help: "User quests completed, by quest type.",
		}, []string{"type"}),
		questsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "quest", Name: "rejected_total",
			Help: "Completion attempts whose condition was not met, by quest type.",
		}, []string{"type"}),
		questsReset: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "quest", Name: "reset_total",
			Help: "User quests cleared by daily resets.",
		}),
		missionTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "mission", Name: "transitions_total",
			Help: "User mission state transitions.",
		}, []string{"from", "to"}),
		rewardsGranted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "reward", Name: "grants_total",
			Help: "Reward ledger rows written, by source.",
		}, []string{"source"}),
		rewardExp: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "reward", Name: "exp_total",
			Help: "Experience granted, by source.",
		}, []string{"source"}),
		rewardPoints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "reward", Name: "points_total",
			Help: "Points granted, by source.",
		}, []string{"source"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "HTTP requests, by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.questsCompleted,
		c.questsRejected,
		c.questsReset,
		c.missionTransitions,
		c.rewardsGranted,
		c.rewardExp,
		c.rewardPoints,
		c.httpRequests,
		c.httpDuration,
	)
	return c
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) QuestCompleted(t domain.QuestType) {
	c.questsCompleted.WithLabelValues(t.String()).Inc()
}

func (c *Collector) QuestRejected(t domain.QuestType) {
	c.questsRejected.WithLabelValues(t.String()).Inc()
}

func (c *Collector) QuestsReset(n int64) {
	c.questsReset.Add(float64(n))
}

func (c *Collector) MissionTransition(from, to domain.UserMissionState) {
	c.missionTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (c *Collector) RewardGranted(source domain.RewardSource, exp, points int64) {
	c.rewardsGranted.WithLabelValues(source.String()).Inc()
	c.rewardExp.WithLabelValues(source.String()).Add(float64(exp))
	c.rewardPoints.WithLabelValues(source.String()).Add(float64(points))
}

// ObserveHTTP records one finished request. route is the mux pattern, not
// the raw path, to keep label cardinality bounded.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
