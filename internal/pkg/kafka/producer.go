package kafka

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"courier-rating/pkg/logger"
)

const producerTimeout = 5 * time.Second

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
}

func NewProducer(log logger.Logger, versionStr string, brokers []string) (*Producer, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Timeout = producerTimeout

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return &Producer{
		log: log.With(
			logger.NewField("brokers", brokers),
		),
		producer: producer,
	}, nil
}

// Publish отправляет сообщение с ключом key для партиционирования по заказу.
func (p *Producer) Publish(topic, key string, message []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(message),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send message to topic %s: %w", topic, err)
	}

	p.log.With(
		logger.NewField("topic", topic),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("message published")
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
