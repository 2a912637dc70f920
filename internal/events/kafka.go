package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

// KafkaSink mirrors every bus event onto a Kafka topic so external
// collaborators (order system, notification pipeline) can consume the stream
// without holding a connection to this service.
type KafkaSink struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaSink(brokers, topic string) (*KafkaSink, error) {
	config := kafka.ConfigMap{
		"bootstrap.servers": brokers,
	}

	producer, err := kafka.NewProducer(&config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	sink := &KafkaSink{
		producer: producer,
		topic:    topic,
	}
	sink.deliveryReport()
	return sink, nil
}

func (s *KafkaSink) deliveryReport() {
	go func() {
		for e := range s.producer.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					zap.L().Error("kafka delivery failed", zap.Error(ev.TopicPartition.Error))
				}
			}
		}
	}()
}

// Run consumes the bus subscription until the context is cancelled.
func (s *KafkaSink) Run(ctx context.Context, sub <-chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-sub:
			if !ok {
				return
			}
			s.send(e)
		}
	}
}

func (s *KafkaSink) send(e Event) {
	value, err := json.Marshal(e)
	if err != nil {
		zap.L().Error("failed to marshal event", zap.Error(err))
		return
	}

	topic := s.topic
	err = s.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(strconv.Itoa(e.AuctionID)),
		Value:          value,
	}, nil)
	if err != nil {
		zap.L().Error("failed to produce event to kafka",
			zap.String("type", string(e.Type)),
			zap.Error(err),
		)
	}
}

func (s *KafkaSink) Close() {
	s.producer.Flush(5000)
	s.producer.Close()
}
