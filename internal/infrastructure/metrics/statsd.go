package metrics

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/cactus/go-statsd-client/v5/statsd"
)

// StatsdEmitter is an Emitter writing DogStatsD lines over UDP. Samples are
// sent unbuffered, one datagram each, at a sample rate of 1.
type StatsdEmitter struct {
	client statsd.Statter
}

// NewStatsdEmitter binds a UDP socket on localAddr, connects it to the
// collector and prefixes every metric name with namespace.
func NewStatsdEmitter(localAddr, collectorAddr, namespace string) (*StatsdEmitter, error) {
	sender, err := NewUDPSender(localAddr, collectorAddr)
	if err != nil {
		return nil, err
	}

	client, err := statsd.NewClientWithSender(sender, namespace, statsd.SuffixOctothorpe)
	if err != nil {
		_ = sender.Close()
		return nil, fmt.Errorf("statsd: error creating statsd client: %w", err)
	}

	return &StatsdEmitter{client: client}, nil
}

func (e *StatsdEmitter) Increment(name string, tags ...string) error {
	statsdTags, err := toStatsdTags(tags)
	if err != nil {
		return err
	}
	return e.client.Inc(name, 1, 1.0, statsdTags...)
}

// Histogram emits a DogStatsD histogram ("|h"), which plain statsd has no
// dedicated call for.
func (e *StatsdEmitter) Histogram(name string, value float64, tags ...string) error {
	statsdTags, err := toStatsdTags(tags)
	if err != nil {
		return err
	}
	v := strconv.FormatFloat(value, 'f', -1, 64) + "|h"
	return e.client.Raw(name, v, 1.0, statsdTags...)
}

func (e *StatsdEmitter) Close() error {
	return e.client.Close()
}

// toStatsdTags splits "key:value" tags on the first colon. The client always
// writes "key:value", so a tag without a colon would go out as "key:" and is
// rejected instead.
func toStatsdTags(tags []string) ([]statsd.Tag, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	out := make([]statsd.Tag, 0, len(tags))
	for _, tag := range tags {
		key, value, ok := strings.Cut(tag, ":")
		if !ok || key == "" {
			return nil, fmt.Errorf("statsd: tag %q is not in key:value form", tag)
		}
		out = append(out, statsd.Tag{key, value})
	}
	return out, nil
}

// UDPSender implements statsd.Sender on a UDP socket bound to a fixed local
// address. The stock senders always use an ephemeral local port.
type UDPSender struct {
	conn *net.UDPConn
}

func NewUDPSender(localAddr, collectorAddr string) (*UDPSender, error) {
	laddr, err := net.ResolveUDPAddr("udp", localAddr)
	if err != nil {
		return nil, fmt.Errorf("statsd: invalid local address %q: %w", localAddr, err)
	}

	raddr, err := net.ResolveUDPAddr("udp", collectorAddr)
	if err != nil {
		return nil, fmt.Errorf("statsd: invalid collector address %q: %w", collectorAddr, err)
	}

	conn, err := net.DialUDP("udp", laddr, raddr)
	if err != nil {
		return nil, fmt.Errorf("statsd: failed to bind %s: %w", localAddr, err)
	}

	return &UDPSender{conn: conn}, nil
}

func (s *UDPSender) Send(data []byte) (int, error) {
	return s.conn.Write(data)
}

func (s *UDPSender) Close() error {
	return s.conn.Close()
}

func (s *UDPSender) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}
