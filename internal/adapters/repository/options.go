package repository

// Option applies a configuration option to the SnapshotStore.
type Option func(*SnapshotStore)

// WithMetricsPublish controls whether the constructor publishes dataset
// gauges. Tests disable it to keep the global registry quiet.
func WithMetricsPublish(enabled bool) Option {
	return func(s *SnapshotStore) {
		s.publishMetrics = enabled
	}
}
