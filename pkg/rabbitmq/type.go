package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// connectionImpl implements IRabbitMQ.
type connectionImpl struct {
	url  string
	conn *amqp.Connection
}

// channelImpl implements IChannel.
type channelImpl struct {
	ch *amqp.Channel
}

// QueueArgs holds arguments for QueueDeclare.
type QueueArgs struct {
	Name       string
	Durable    bool
	AutoDelete bool
	Exclusive  bool
	NoWait     bool
	Args       map[string]interface{}
}

func (q QueueArgs) spread() (name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) {
	return q.Name, q.Durable, q.AutoDelete, q.Exclusive, q.NoWait, q.Args
}

// Publishing is an alias for amqp.Publishing.
type Publishing = amqp.Publishing

// PublishArgs holds arguments for Publish.
type PublishArgs struct {
	Exchange   string
	RoutingKey string
	Mandatory  bool
	Immediate  bool
	Msg        Publishing
}

func (p PublishArgs) spread(ctx context.Context) (c context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) {
	return ctx, p.Exchange, p.RoutingKey, p.Mandatory, p.Immediate, p.Msg
}

// ConsumeArgs holds arguments for Consume.
type ConsumeArgs struct {
	Queue     string
	Consumer  string
	AutoAck   bool
	Exclusive bool
	NoLocal   bool
	NoWait    bool
	Args      map[string]interface{}
}

func (c ConsumeArgs) spread() (queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) {
	return c.Queue, c.Consumer, c.AutoAck, c.Exclusive, c.NoLocal, c.NoWait, c.Args
}
