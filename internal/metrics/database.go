package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

type poolCollector struct {
	pool *pgxpool.Pool

	total    *prometheus.Desc
	acquired *prometheus.Desc
	idle     *prometheus.Desc
	max      *prometheus.Desc
}

// RegisterPool exposes pgx pool statistics. Registering the same pool twice
// returns the registry's AlreadyRegisteredError.
func RegisterPool(pool *pgxpool.Pool) error {
	return Registry.Register(&poolCollector{
		pool:     pool,
		total:    prometheus.NewDesc(namespace+"_db_connections_open", "Total number of open database connections", nil, nil),
		acquired: prometheus.NewDesc(namespace+"_db_connections_in_use", "Number of database connections currently acquired", nil, nil),
		idle:     prometheus.NewDesc(namespace+"_db_connections_idle", "Number of idle database connections", nil, nil),
		max:      prometheus.NewDesc(namespace+"_db_connections_max_open", "Maximum number of open database connections allowed", nil, nil),
	})
}

func (c *poolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.total
	ch <- c.acquired
	ch <- c.idle
	ch <- c.max
}

func (c *poolCollector) Collect(ch chan<- prometheus.Metric) {
	stat := c.pool.Stat()
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(stat.TotalConns()))
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(stat.AcquiredConns()))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(stat.IdleConns()))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(stat.MaxConns()))
}
