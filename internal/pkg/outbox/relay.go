// Package outbox relays committed outbox_events rows to Kafka.
package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/murkotick/promotion-catalog-service/internal/pkg/clock"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/metrics"
)

// Header names carried on every published message.
const (
	HeaderEventType = "event-type"
	HeaderEventID   = "event-id"
)

// Event is a pending outbox row.
type Event struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	CreatedAt   time.Time
}

// Source reads pending events and acknowledges published ones.
type Source interface {
	FetchPending(ctx context.Context, limit int) ([]Event, error)
	MarkProcessed(ctx context.Context, eventIDs []string, at time.Time) error
}

// Writer is the subset of *kafka.Writer the relay uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Options struct {
	PollInterval time.Duration
	BatchSize    int
}

// Relay publishes pending events in creation order. Delivery is at least
// once: a crash between publish and acknowledgement republishes the batch.
type Relay struct {
	source  Source
	writer  Writer
	clock   clock.Clock
	opts    Options
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewRelay(source Source, writer Writer, clk clock.Clock, opts Options, logger *zap.Logger, m *metrics.Metrics) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 2 * time.Second
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	return &Relay{
		source:  source,
		writer:  writer,
		clock:   clk,
		opts:    opts,
		logger:  logger.Named("outbox"),
		metrics: m,
	}
}

// Run polls until ctx is done. Failed passes are logged and retried on the
// next tick.
func (r *Relay) Run(ctx context.Context) error {
	ticker := r.clock.NewTicker(r.opts.PollInterval)
	defer ticker.Stop()

	r.logger.Info("outbox relay started",
		zap.Duration("poll_interval", r.opts.PollInterval),
		zap.Int("batch_size", r.opts.BatchSize),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return nil
		case <-ticker.C():
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				r.metrics.ObserveRelayFailure()
				r.logger.Warn("outbox relay pass failed", zap.Error(err))
			}
		}
	}
}

// RunOnce publishes at most one batch and returns how many events it
// acknowledged.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	events, err := r.source.FetchPending(ctx, r.opts.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("fetch pending: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		msgs = append(msgs, toMessage(e))
		ids = append(ids, e.EventID)
	}

	if err := r.writer.WriteMessages(ctx, msgs...); err != nil {
		return 0, fmt.Errorf("publish %d events: %w", len(msgs), err)
	}
	if err := r.source.MarkProcessed(ctx, ids, r.clock.Now()); err != nil {
		return 0, fmt.Errorf("mark processed: %w", err)
	}

	r.metrics.ObservePublished(len(ids))
	r.logger.Debug("outbox events published", zap.Int("count", len(ids)))
	return len(ids), nil
}

func toMessage(e Event) kafka.Message {
	return kafka.Message{
		Key:   []byte(e.AggregateID),
		Value: []byte(e.Payload),
		Time:  e.CreatedAt,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(e.EventType)},
			{Key: HeaderEventID, Value: []byte(e.EventID)},
		},
	}
}

// NewKafkaWriter builds a writer that keeps every event of one promotion on
// the same partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}
