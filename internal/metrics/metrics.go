package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	StepsRecorded Counter

	BotRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func New() *Counters {
	return &Counters{
		StepsRecorded: NewPrometheusCounter(
			"steps_recorded_total",
			"Number of step log entries recorded",
			[]string{"username"},
		),
		BotRequests: NewPrometheusCounter(
			"bot_requests_total",
			"Number of bot commands handled",
			[]string{"command", "status"},
		),
	}
}

func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	stepsRecorded := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "steps_recorded_total",
			Help: "Number of step log entries recorded",
		}, []string{"username"}),
	}

	botRequests := &PrometheusCounter{
		prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bot_requests_total",
			Help: "Number of bot commands handled",
		}, []string{"command", "status"}),
	}

	reg.MustRegister(stepsRecorded.counter)
	reg.MustRegister(botRequests.counter)

	return &Counters{
		StepsRecorded: stepsRecorded,
		BotRequests:   botRequests,
	}
}
