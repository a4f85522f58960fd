package metrics

import (
	"dogweb/internal/config"
	"dogweb/internal/infrastructure/logger"
)

// NewEmitter never fails: metrics are best-effort, so a socket that cannot be
// bound downgrades to a noop emitter instead of stopping the service.
func NewEmitter(cfg config.StatsdConfig, log logger.Logger) Emitter {
	if !cfg.Enabled {
		log.Info("Statsd metrics disabled")
		return NewNoopEmitter()
	}

	emitter, err := NewStatsdEmitter(cfg.LocalAddress, cfg.CollectorAddress, cfg.Namespace)
	if err != nil {
		log.Warn("Failed to create statsd emitter, metrics will be dropped", "error", err)
		return NewNoopEmitter()
	}

	log.Info("Statsd metrics enabled",
		"local_address", cfg.LocalAddress,
		"collector_address", cfg.CollectorAddress,
		"namespace", cfg.Namespace,
	)
	return emitter
}
