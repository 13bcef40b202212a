package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"ringqueue/util/queue"
)

// StatsSource is the read side of a queue the collector needs.
type StatsSource interface {
	Len() int
	Cap() int
	Stats() queue.Stats
}

type collector struct {
	source        StatsSource
	size          *prometheus.Desc
	capacity      *prometheus.Desc
	reallocations *prometheus.Desc
	inserts       *prometheus.Desc
	removals      *prometheus.Desc
}

// NewCollector reports source under the const label queue=name. The source
// is read at scrape time, so scrapes must not race with queue mutation.
func NewCollector(name string, source StatsSource) prometheus.Collector {
	labels := prometheus.Labels{"queue": name}
	return &collector{
		source:        source,
		size:          prometheus.NewDesc("ringqueue_size", "Number of elements held by the queue.", nil, labels),
		capacity:      prometheus.NewDesc("ringqueue_capacity", "Number of allocated slots.", nil, labels),
		reallocations: prometheus.NewDesc("ringqueue_reallocations_total", "Times the buffer was replaced by a larger one.", nil, labels),
		inserts:       prometheus.NewDesc("ringqueue_inserts_total", "Elements pushed.", nil, labels),
		removals:      prometheus.NewDesc("ringqueue_removals_total", "Elements removed from any position.", nil, labels),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.capacity
	ch <- c.reallocations
	ch <- c.inserts
	ch <- c.removals
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(c.source.Len()))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(c.source.Cap()))
	ch <- prometheus.MustNewConstMetric(c.reallocations, prometheus.CounterValue, float64(stats.Reallocations))
	ch <- prometheus.MustNewConstMetric(c.inserts, prometheus.CounterValue, float64(stats.Inserts))
	ch <- prometheus.MustNewConstMetric(c.removals, prometheus.CounterValue, float64(stats.Removals))
}

// Sample is one gathered value, Name carries no labels.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Samples flattens everything g exposes into gauge and counter values.
func Samples(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := Sample{Name: mf.GetName(), Labels: map[string]string{}}
			for _, lp := range m.GetLabel() {
				s.Labels[lp.GetName()] = lp.GetValue()
			}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				s.Value = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				s.Value = m.GetGauge().GetValue()
			default:
				continue
			}
			out = append(out, s)
		}
	}
	return out, nil
}
