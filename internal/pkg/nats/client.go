package nats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// JetStreamMessageHandler processes one JetStream message. A nil return acks
// the message, an error naks it for redelivery.
type JetStreamMessageHandler func(msg jetstream.Msg) error

// Client is a NATS connection with JetStream enabled
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream

	mu        sync.Mutex
	consumers map[string]jetstream.Consumer
	consuming []jetstream.ConsumeContext
}

// NewClient connects to url and initialises JetStream
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name("heartfund"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Client{
		conn:      conn,
		js:        js,
		consumers: make(map[string]jetstream.Consumer),
	}, nil
}

// GetConn returns the underlying connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// GetJetStream returns the JetStream context
func (c *Client) GetJetStream() jetstream.JetStream {
	return c.js
}

// IsConnected reports whether the connection is up
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// EnsureStreams creates or updates every stream in configs
func (c *Client) EnsureStreams(ctx context.Context, configs []StreamConfig) error {
	for _, cfg := range configs {
		_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:      cfg.Name,
			Subjects:  cfg.Subjects,
			Retention: cfg.Retention,
			Storage:   cfg.Storage,
			Replicas:  cfg.Replicas,
			MaxAge:    cfg.MaxAge,
			MaxBytes:  cfg.MaxBytes,
			MaxMsgs:   cfg.MaxMsgs,
			Discard:   cfg.Discard,
		})
		if err != nil {
			return fmt.Errorf("failed to ensure stream %s: %w", cfg.Name, err)
		}
		logger.Info("JetStream stream ready",
			logger.String("stream", cfg.Name),
			logger.Strings("subjects", cfg.Subjects))
	}
	return nil
}

// Publish sends data to subject through JetStream and waits for the ack
func (c *Client) Publish(ctx context.Context, subject string, data []byte) error {
	if _, err := c.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Subscribe creates a core NATS subscription
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// CreateConsumer creates or updates a durable consumer
func (c *Client) CreateConsumer(ctx context.Context, cfg ConsumerConfig) error {
	consumer, err := c.js.CreateOrUpdateConsumer(ctx, cfg.StreamName, jetstream.ConsumerConfig{
		Durable:       cfg.ConsumerName,
		FilterSubject: cfg.FilterSubject,
		DeliverPolicy: cfg.DeliverPolicy,
		AckPolicy:     cfg.AckPolicy,
		AckWait:       cfg.AckWait,
		MaxDeliver:    cfg.MaxDeliver,
		ReplayPolicy:  cfg.ReplayPolicy,
		MaxAckPending: cfg.MaxAckPending,
		RateLimit:     cfg.RateLimitBps,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", cfg.ConsumerName, err)
	}

	c.mu.Lock()
	c.consumers[consumerKey(cfg.StreamName, cfg.ConsumerName)] = consumer
	c.mu.Unlock()
	return nil
}

// ConsumeMessages starts delivering messages of a previously created consumer to handler
func (c *Client) ConsumeMessages(streamName, consumerName string, handler JetStreamMessageHandler) error {
	c.mu.Lock()
	consumer, ok := c.consumers[consumerKey(streamName, consumerName)]
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("consumer %s not found on stream %s", consumerName, streamName)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("subject", msg.Subject()),
				logger.Err(err))
			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}
		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.mu.Lock()
	c.consuming = append(c.consuming, consumeCtx)
	c.mu.Unlock()
	return nil
}

// StreamNames lists the stream names known to the server
func (c *Client) StreamNames(ctx context.Context) ([]string, error) {
	lister := c.js.StreamNames(ctx)
	var names []string
	for name := range lister.Name() {
		names = append(names, name)
	}
	if err := lister.Err(); err != nil {
		return nil, fmt.Errorf("failed to list streams: %w", err)
	}
	return names, nil
}

// Close stops consumers and closes the connection
func (c *Client) Close() {
	c.mu.Lock()
	for _, cc := range c.consuming {
		cc.Stop()
	}
	c.consuming = nil
	c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
	}
}

func consumerKey(stream, consumer string) string {
	return stream + ":" + consumer
}
