package outbox

import (
	"context"
	"time"

	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

var ErrNoBrokers = errs.New("kafka publisher requires at least one broker")

type Publisher interface {
	Publish(ctx context.Context, topic string, key, payload []byte) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher hashes on the message key so all events of one booking
// land on the same partition and keep their order.
func NewKafkaPublisher(cfg config.Config) (*KafkaPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           50 * time.Millisecond,
		},
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key, payload []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: payload,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		return errs.Wrapf(err, "publish to %s", topic)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
