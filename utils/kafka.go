package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sharath018/seva-booking-backend/config"
)

// KafkaProducer writes JSON events to a single topic.
type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

var Kafka *KafkaProducer

// InitializeKafka sets up the shared producer. With no brokers configured it
// leaves Kafka nil and event publishing is skipped.
func InitializeKafka(cfg *config.Config) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("ℹ️ KAFKA_BROKERS not set, booking events will not be published")
		return
	}

	Kafka = &KafkaProducer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           50 * time.Millisecond,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		topic: cfg.KafkaTopic,
	}
	log.Printf("✅ Kafka producer ready (topic=%s, brokers=%v)", cfg.KafkaTopic, cfg.KafkaBrokers)
}

// Publish marshals payload and writes it keyed by key.
func (p *KafkaProducer) Publish(ctx context.Context, key string, payload interface{}) error {
	if p == nil || p.writer == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
