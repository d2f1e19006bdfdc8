package notifier

import (
	"context"
	"time"

	"table-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes jobs synchronously so the relay only marks a job
// sent after the brokers acknowledged it.
type KafkaPublisher struct {
	w *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			WriteTimeout:           10 * time.Second,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, job shared.NotificationJob) error {
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   messageKey(job.Payload),
		Value: job.Payload,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "topic", Value: []byte(job.Topic)},
			{Key: "kind", Value: []byte(job.Kind)},
			{Key: "job_id", Value: []byte(job.ID.String())},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}
