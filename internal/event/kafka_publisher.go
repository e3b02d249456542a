package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
)

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafka connects a synchronous producer to brokers.
func NewKafka(brokers []string, topic string, logger *slog.Logger) (port.OrderEventPublisher, func() error, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, nil, fmt.Errorf("sarama.NewSyncProducer: %w", err)
	}

	return NewKafkaWithProducer(producer, topic, logger), producer.Close, nil
}

func NewKafkaWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) port.OrderEventPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka"),
	}
}

// PublishOrderPlaced sends the order keyed by its number so that all events of one
// order land on the same partition.
func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, order domain.Order) error {
	payload, err := json.Marshal(NewOrderPlaced(order))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(order.Number),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte("order.placed")},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("producer.SendMessage: %w", err)
	}

	p.logger.DebugContext(ctx, "order placed event sent",
		"topic", p.topic, "partition", partition, "offset", offset, "order_number", order.Number)

	return nil
}

type nopPublisher struct{}

// NewNop returns a publisher that drops every event.
func NewNop() port.OrderEventPublisher {
	return nopPublisher{}
}

func (nopPublisher) PublishOrderPlaced(context.Context, domain.Order) error {
	return nil
}
