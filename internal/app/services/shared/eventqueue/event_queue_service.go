package eventqueue

import (
	"context"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const RecordEventQueueName = "record_event_queue"

type eventQueueService struct {
	channel *amqp.Channel
	log     *zap.Logger
}

// NewEventQueueService declares the durable record-event queue and
// returns a publisher over it.
func NewEventQueueService(conn *amqp.Connection, log *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		RecordEventQueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &eventQueueService{
		channel: channel,
		log:     log,
	}, nil
}

func (s *eventQueueService) PublishRecordEvent(ctx context.Context, event *contracts.RecordEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.channel.PublishWithContext(ctx,
		"", // default exchange
		RecordEventQueueName,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, RecordEventQueueName)
	}
	return nil
}
