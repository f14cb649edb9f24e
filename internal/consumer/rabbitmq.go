package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"estate_ingest/internal/domain"
)

// Ingestor is the service surface the consumer drives.
type Ingestor interface {
	Ingest(ctx context.Context, raw *domain.RawPost) (*domain.IngestResult, error)
	DeleteByMessage(ctx context.Context, channelTelegramID, messageID int64) error
}

type RabbitMQ struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	queueName   string
	consumerTag string
	ingestor    Ingestor
	logger      *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
	Prefetch   int
}

func NewRabbitMQ(cfg Config, ingestor Ingestor, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	if err := ch.Qos(cfg.Prefetch, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("set qos: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
		"prefetch", cfg.Prefetch,
	)

	return &RabbitMQ{
		conn:        conn,
		channel:     ch,
		queueName:   q.Name,
		consumerTag: "ingestor-" + uuid.NewString(),
		ingestor:    ingestor,
		logger:      logger,
	}, nil
}

// PostMessage is the envelope the channel listener publishes. Action
// "post" carries a raw post; "delete" carries only the channel/message
// identity of a removed message.
type PostMessage struct {
	Action    string          `json:"action"` // "post" or "delete"
	Post      *domain.RawPost `json:"post,omitempty"`
	ChannelID int64           `json:"channel_id,omitempty"`
	MessageID int64           `json:"message_id,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Run consumes until ctx is cancelled or the delivery channel closes.
// Handled messages are acked; storage failures nack with requeue, which
// is safe because ingestion is idempotent on post_uid. Malformed
// messages are dropped with an ack — requeueing them would loop forever.
func (r *RabbitMQ) Run(ctx context.Context) error {
	deliveries, err := r.channel.Consume(
		r.queueName,
		r.consumerTag,
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("start consume: %w", err)
	}

	r.logger.Info("consuming", "queue", r.queueName, "consumer_tag", r.consumerTag)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			r.handle(ctx, delivery)
		}
	}
}

func (r *RabbitMQ) handle(ctx context.Context, delivery amqp.Delivery) {
	var msg PostMessage
	if err := json.Unmarshal(delivery.Body, &msg); err != nil {
		r.logger.Error("malformed message dropped", "error", err)
		_ = delivery.Ack(false)
		return
	}

	if err := r.dispatch(ctx, &msg); err != nil {
		r.logger.Error("message handling failed, requeueing",
			"action", msg.Action,
			"error", err,
		)
		_ = delivery.Nack(false, true)
		return
	}

	_ = delivery.Ack(false)
}

func (r *RabbitMQ) dispatch(ctx context.Context, msg *PostMessage) error {
	switch msg.Action {
	case "post":
		if msg.Post == nil {
			r.logger.Warn("post message without payload dropped")
			return nil
		}
		result, err := r.ingestor.Ingest(ctx, msg.Post)
		if err != nil {
			return fmt.Errorf("ingest: %w", err)
		}
		if !result.Ingested {
			r.logger.Debug("redelivery skipped", "post_uid", msg.Post.PostUID)
		}
		return nil
	case "delete":
		if err := r.ingestor.DeleteByMessage(ctx, msg.ChannelID, msg.MessageID); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		return nil
	default:
		r.logger.Warn("unknown action dropped", "action", msg.Action)
		return nil
	}
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		_ = r.channel.Cancel(r.consumerTag, false)
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
