package events

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"
)

const (
	OrderCreated = "order.created"
	OrderUpdated = "order.updated"
)

// Publisher emits order lifecycle events to a topic exchange. A nil Publisher
// is valid and drops every event, so wiring it stays optional.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %v", err)
	}

	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %v", err)
	}

	return &Publisher{conn: conn, channel: channel, exchange: exchange}, nil
}

// Publish is best effort: failures are logged and never fail the request that
// triggered the event.
func (p *Publisher) Publish(routingKey string, data interface{}) {
	if p == nil {
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", routingKey, err)
		return
	}

	err = p.channel.Publish(p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Printf("failed to publish %s event: %v", routingKey, err)
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
