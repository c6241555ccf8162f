package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus returns a registry with the go runtime, process and build info collectors,
// plus the given ones (e.g. the db pool collector). A collector clashing with an already
// registered one is an error.
func SetupPrometheus(extraCollectors ...prometheus.Collector) (*prometheus.Registry, error) {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	for i, c := range extraCollectors {
		if err := promRegistry.Register(c); err != nil {
			return nil, fmt.Errorf("register collector #%d: %w", i, err)
		}
	}

	return promRegistry, nil
}
