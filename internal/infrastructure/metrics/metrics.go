package metrics

// Metrics collects process-level telemetry exposed on /metrics.
type Metrics interface {
	IncHTTPRequests(method, path string, statusCode int)
	ObserveHTTPDuration(method, path string, duration float64)
	ObserveStoreLookup(status string, duration float64)
}

// Emitter sends individual samples to an external statsd collector. Tags must
// be "key:value" strings; a tag without a colon is an error and nothing is
// sent. Every call is a single send attempt.
type Emitter interface {
	Increment(name string, tags ...string) error
	Histogram(name string, value float64, tags ...string) error
	Close() error
}

const (
	LookupStatusOK    = "ok"
	LookupStatusError = "error"
)
