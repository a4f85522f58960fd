package metrics

import (
	"dogweb/internal/infrastructure/logger"
)

// BestEffort wraps an Emitter so that send failures are logged and dropped.
// Callers never see an emission error.
type BestEffort struct {
	emitter Emitter
	logger  logger.Logger
}

func NewBestEffort(emitter Emitter, logger logger.Logger) *BestEffort {
	if emitter == nil {
		emitter = NewNoopEmitter()
	}

	return &BestEffort{
		emitter: emitter,
		logger:  logger,
	}
}

func (b *BestEffort) Increment(name string, tags ...string) {
	if err := b.emitter.Increment(name, tags...); err != nil {
		b.logger.Warn("Failed to emit counter", "metric", name, "error", err)
	}
}

func (b *BestEffort) Histogram(name string, value float64, tags ...string) {
	if err := b.emitter.Histogram(name, value, tags...); err != nil {
		b.logger.Warn("Failed to emit histogram", "metric", name, "value", value, "error", err)
	}
}
