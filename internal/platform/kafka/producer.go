package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/household-platform/household-service/internal/platform/logging"
	"github.com/household-platform/household-service/internal/platform/metrics"
)

// Envelope is the wire format for household domain events
type Envelope struct {
	ID            string      `json:"id"`
	Type          string      `json:"type"`
	Source        string      `json:"source"`
	Subject       string      `json:"subject,omitempty"`
	Time          time.Time   `json:"time"`
	CorrelationID string      `json:"correlationId,omitempty"`
	Data          interface{} `json:"data"`
}

// NewEnvelope wraps event data in a publishable envelope
func NewEnvelope(eventType, source, subject string, data interface{}) *Envelope {
	return &Envelope{
		ID:      uuid.New().String(),
		Type:    eventType,
		Source:  source,
		Subject: subject,
		Time:    time.Now().UTC(),
		Data:    data,
	}
}

// Producer handles publishing household events to Kafka topics
type Producer struct {
	mu      sync.Mutex
	writers map[string]*kafka.Writer
	config  *Config
	metrics *metrics.Metrics
	logger  *logging.Logger
}

// NewProducer creates a new Kafka producer
func NewProducer(config *Config, m *metrics.Metrics, logger *logging.Logger) *Producer {
	return &Producer{
		writers: make(map[string]*kafka.Writer),
		config:  config,
		metrics: m,
		logger:  logger,
	}
}

// getWriter returns a writer for the specified topic, creating one if necessary
func (p *Producer) getWriter(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, exists := p.writers[topic]; exists {
		return writer
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(p.config.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    p.config.BatchSize,
		BatchTimeout: p.config.BatchTimeout,
		RequiredAcks: kafka.RequiredAcks(p.config.RequiredAcks),
		Async:        false,
	}

	p.writers[topic] = writer
	return writer
}

func buildMessage(event *Envelope) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Subject),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-source", Value: []byte(event.Source)},
			{Key: "event-id", Value: []byte(event.ID)},
			{Key: "event-time", Value: []byte(event.Time.Format(time.RFC3339))},
			{Key: "content-type", Value: []byte("application/json")},
		},
		Time: event.Time,
	}

	if event.CorrelationID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{
			Key:   "correlation-id",
			Value: []byte(event.CorrelationID),
		})
	}

	return msg, nil
}

// Publish publishes a single event to the specified topic
func (p *Producer) Publish(ctx context.Context, topic string, event *Envelope) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}

	start := time.Now()
	err = p.getWriter(topic).WriteMessages(ctx, msg)
	duration := time.Since(start)

	if p.metrics != nil {
		p.metrics.RecordKafkaPublish(topic, event.Type, err == nil, duration)
	}
	if p.logger != nil {
		p.logger.KafkaPublish(ctx, topic, event.Type, err == nil, duration)
	}

	if err != nil {
		return fmt.Errorf("failed to publish event to topic %s: %w", topic, err)
	}
	return nil
}

// PublishBatch publishes multiple events to a topic
func (p *Producer) PublishBatch(ctx context.Context, topic string, events []*Envelope) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msg, err := buildMessage(event)
		if err != nil {
			return fmt.Errorf("event %s: %w", event.ID, err)
		}
		messages = append(messages, msg)
	}

	start := time.Now()
	err := p.getWriter(topic).WriteMessages(ctx, messages...)
	duration := time.Since(start)

	if p.metrics != nil {
		for _, event := range events {
			p.metrics.RecordKafkaPublish(topic, event.Type, err == nil, duration)
		}
	}

	if err != nil {
		return fmt.Errorf("failed to publish batch to topic %s: %w", topic, err)
	}
	return nil
}

// Close closes all writers
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil {
			lastErr = fmt.Errorf("failed to close writer for topic %s: %w", topic, err)
		}
	}
	return lastErr
}
