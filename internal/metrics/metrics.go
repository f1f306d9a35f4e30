package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	LogsIngested Counter

	WorkerCycles Counter

	AlertsSent Counter
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
		LogsIngested: NewPrometheusCounter(
			"logs_ingested_total",
			"Log records accepted over HTTP",
			[]string{"status"},
		),
		WorkerCycles: NewPrometheusCounter(
			"worker_cycles_total",
			"Drift worker cycles",
			[]string{"status"},
		),
		AlertsSent: NewPrometheusCounter(
			"alerts_sent_total",
			"Webhook alerts dispatched",
			[]string{"status"},
		),
	}
}

func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	logsIngested := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logs_ingested_total",
			Help: "Log records accepted over HTTP",
		}, []string{"status"}),
	}

	workerCycles := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_cycles_total",
			Help: "Drift worker cycles",
		}, []string{"status"}),
	}

	alertsSent := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alerts_sent_total",
			Help: "Webhook alerts dispatched",
		}, []string{"status"}),
	}

	reg.MustRegister(logsIngested.counter)
	reg.MustRegister(workerCycles.counter)
	reg.MustRegister(alertsSent.counter)

	return &Counters{
		LogsIngested: logsIngested,
		WorkerCycles: workerCycles,
		AlertsSent:   alertsSent,
	}
}
