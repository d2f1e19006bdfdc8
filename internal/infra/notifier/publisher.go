package notifier

import (
	"context"
	"encoding/json"
	"log/slog"

	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/shared"
)

const (
	TransportLog   = "log"
	TransportKafka = "kafka"
	TransportAMQP  = "amqp"
)

// Publisher hands one outbox job to the delivery transport.
type Publisher interface {
	Publish(ctx context.Context, job shared.NotificationJob) error
	Close() error
}

// NewPublisher picks the transport named by NOTIFY_TRANSPORT.
func NewPublisher(cfg config.NotifyConfig) (Publisher, error) {
	switch cfg.Transport {
	case "", TransportLog:
		return NewLogPublisher(slog.Default()), nil
	case TransportKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	case TransportAMQP:
		return NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPQueue), nil
	default:
		return nil, errs.Newf("unknown notify transport %q", cfg.Transport)
	}
}

// messageKey extracts booking_id so all events of one booking share a partition.
func messageKey(payload []byte) []byte {
	var head struct {
		BookingID string `json:"booking_id"`
	}
	if err := json.Unmarshal(payload, &head); err != nil || head.BookingID == "" {
		return nil
	}
	return []byte(head.BookingID)
}
