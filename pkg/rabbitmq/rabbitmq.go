package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"footballfinder/internal/models"

	"github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

// GameEventsQueue receives one message per created game.
const GameEventsQueue = "game_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	log     *logrus.Logger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the game events queue.
func NewClient(cfg Config, log *logrus.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declareGameEvents(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.WithField("queue", GameEventsQueue).Info("RabbitMQ client connected")

	return &Client{
		conn:    conn,
		channel: ch,
		log:     log,
	}, nil
}

func declareGameEvents(ch *amqp.Channel) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		GameEventsQueue, // name
		true,            // durable
		false,           // delete when unused
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return amqp.Queue{}, fmt.Errorf("failed to declare %s: %w", GameEventsQueue, err)
	}
	return q, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing RabbitMQ client: %v", errs)
	}
	return nil
}

// PublishGameCreated sends event as a persistent JSON message to the game events queue.
func (c *Client) PublishGameCreated(event models.GameCreatedEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal game event: %w", err)
	}

	err = c.channel.Publish(
		"",              // default exchange
		GameEventsQueue, // routing key: the queue name
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         "game.created",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish game event: %w", err)
	}

	c.log.WithField("game_id", event.GameID).Debug("published game created event")
	return nil
}

// ConsumeGameEvents delivers decoded game events to handler on a background goroutine.
// Messages the handler rejects are requeued once; malformed messages are dropped.
func (c *Client) ConsumeGameEvents(handler func(event models.GameCreatedEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := declareGameEvents(c.channel)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		queue.Name, // queue
		"",         // consumer tag
		false,      // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			c.handleDelivery(msg, handler)
		}
	}()
	return nil
}

func (c *Client) handleDelivery(msg amqp.Delivery, handler func(event models.GameCreatedEvent) error) {
	entry := c.log.WithField("delivery_tag", msg.DeliveryTag)

	var event models.GameCreatedEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		entry.WithError(err).Warn("dropping malformed game event")
		if nackErr := msg.Nack(false, false); nackErr != nil {
			entry.WithError(nackErr).Error("failed to nack message")
		}
		return
	}

	if err := handler(event); err != nil {
		entry.WithError(err).Warn("game event handler failed")
		if nackErr := msg.Nack(false, !msg.Redelivered); nackErr != nil {
			entry.WithError(nackErr).Error("failed to nack message")
		}
		return
	}

	if ackErr := msg.Ack(false); ackErr != nil {
		entry.WithError(ackErr).Error("failed to ack message")
	}
}
