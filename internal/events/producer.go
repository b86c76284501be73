package events

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

const (
	OrderCreatedTopic  = "order.created"
	InvoiceIssuedTopic = "invoice.issued"
)

type OrderCreatedEvent struct {
	OrderID      int       `json:"order_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Origin       string    `json:"origin"`
	CreatedAt    time.Time `json:"created_at"`
	EventTime    time.Time `json:"event_time"`
}

type InvoiceIssuedEvent struct {
	InvoiceNumber int       `json:"invoice_number"`
	OrderID       int       `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	Total         float64   `json:"total"`
	IssuedAt      time.Time `json:"issued_at"`
	EventTime     time.Time `json:"event_time"`
}

// Producer publishes domain events to Kafka. A nil *Producer is valid and
// drops every event, so the core runs without a broker.
type Producer struct {
	producer sarama.SyncProducer
	logger   *logrus.Logger
}

func NewProducer(brokers string, logger *logrus.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer([]string{brokers}, config)
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: producer,
		logger:   logger,
	}, nil
}

func (p *Producer) PublishOrderCreated(event OrderCreatedEvent) error {
	if p == nil {
		return nil
	}
	event.EventTime = time.Now()
	return p.publish(OrderCreatedTopic, strconv.Itoa(event.OrderID), event)
}

func (p *Producer) PublishInvoiceIssued(event InvoiceIssuedEvent) error {
	if p == nil {
		return nil
	}
	event.EventTime = time.Now()
	return p.publish(InvoiceIssuedTopic, strconv.Itoa(event.InvoiceNumber), event)
}

func (p *Producer) publish(topic, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.WithError(err).Error("Failed to send message to Kafka")
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"topic":     topic,
		"partition": partition,
		"offset":    offset,
		"key":       key,
	}).Info("Event published to Kafka")

	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
