package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/dmitrijs2005/citylifes/internal/logging"
)

// DefaultSubjectPrefix is used when the configured prefix is empty.
const DefaultSubjectPrefix = "citylifes"

// NATSPublisher publishes MessageEvents as JSON to
// <prefix>.messages.<receiver_id>.
type NATSPublisher struct {
	prefix string
	pub    func(subject string, data []byte) error
	close  func()
}

// Connect dials NATS at url and returns a publisher on top of the
// connection. Connection state changes are logged.
func Connect(url, prefix string, log logging.Logger) (*NATSPublisher, error) {
	log = log.With("module", "events")
	ctx := context.Background()

	conn, err := nats.Connect(url,
		nats.Name("citylifes-server"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn(ctx, "nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info(ctx, "nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	p := NewNATSPublisher(conn, prefix)
	return p, nil
}

// NewNATSPublisher wraps an established connection.
func NewNATSPublisher(conn *nats.Conn, prefix string) *NATSPublisher {
	p := newPublisher(conn.Publish, prefix)
	p.close = func() {
		_ = conn.Drain()
	}
	return p
}

func newPublisher(pub func(string, []byte) error, prefix string) *NATSPublisher {
	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSPublisher{prefix: prefix, pub: pub}
}

// Subject returns the subject events for receiverID are published on.
func (p *NATSPublisher) Subject(receiverID string) string {
	return p.prefix + ".messages." + receiverID
}

func (p *NATSPublisher) PublishMessage(ctx context.Context, ev MessageEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ev.ReceiverID == "" || strings.ContainsAny(ev.ReceiverID, ". *>") {
		return fmt.Errorf("invalid receiver id %q for subject", ev.ReceiverID)
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.pub(p.Subject(ev.ReceiverID), data); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	return nil
}

// Close drains the underlying connection, if any.
func (p *NATSPublisher) Close() {
	if p.close != nil {
		p.close()
	}
}
