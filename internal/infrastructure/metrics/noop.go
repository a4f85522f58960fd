package metrics

// NoopEmitter implements Emitter but drops every sample.
type NoopEmitter struct{}

func NewNoopEmitter() *NoopEmitter {
	return &NoopEmitter{}
}

func (NoopEmitter) Increment(string, ...string) error          { return nil }
func (NoopEmitter) Histogram(string, float64, ...string) error { return nil }
func (NoopEmitter) Close() error                               { return nil }
