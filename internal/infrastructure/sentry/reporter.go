package sentry

import (
	"fmt"

	"github.com/getsentry/raven-go"
)

// Reporter forwards surfaced errors to an error tracking backend.
type Reporter interface {
	Report(err error, tags map[string]string)
}

type RavenReporter struct {
	client *raven.Client
}

func NewRavenReporter(dsn, release string) (*RavenReporter, error) {
	client, err := raven.New(dsn)
	if err != nil {
		return nil, fmt.Errorf("sentry: invalid dsn: %w", err)
	}
	client.SetRelease(release)

	return &RavenReporter{client: client}, nil
}

// Report sends err asynchronously; delivery failures are not surfaced.
func (r *RavenReporter) Report(err error, tags map[string]string) {
	r.client.CaptureError(err, tags)
}

func (r *RavenReporter) Close() {
	r.client.Wait()
	r.client.Close()
}

type NoopReporter struct{}

func NewNoopReporter() NoopReporter {
	return NoopReporter{}
}

func (NoopReporter) Report(error, map[string]string) {}
