package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *connectionImpl) connect() error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("rabbitmq: failed to connect: %w", err)
	}
	c.conn = conn
	return nil
}

// Channel opens a channel, reconnecting first if the connection was lost.
func (c *connectionImpl) Channel() (IChannel, error) {
	if c.IsClosed() {
		if err := c.connect(); err != nil {
			return nil, err
		}
	}
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: failed to open channel: %w", err)
	}
	return &channelImpl{ch: ch}, nil
}

// IsClosed reports whether the underlying connection is closed.
func (c *connectionImpl) IsClosed() bool {
	return c.conn == nil || c.conn.IsClosed()
}

// Close closes the connection.
func (c *connectionImpl) Close() {
	if c.conn != nil && !c.conn.IsClosed() {
		_ = c.conn.Close()
	}
}
