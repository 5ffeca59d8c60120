package handler

import (
	"encoding/json"
	"time"

	"github.com/Astemirdum/car-rating-service/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

type StatsLog interface {
	Log(sl kafka.EventStats) error
}

type statsLog struct {
	producer sarama.AsyncProducer
	topic    string
}

func NewStatsLog(producer sarama.AsyncProducer, topic string) StatsLog {
	if producer == nil {
		return noopStatsLog{}
	}
	return &statsLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *statsLog) Log(sl kafka.EventStats) error {
	if sl.ID == "" {
		sl.ID = uuid.NewString()
	}
	if sl.Timestamp.IsZero() {
		sl.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(sl)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(sl.EventType),
		Value: sarama.ByteEncoder(data),
	}
	l.producer.Input() <- msg
	return nil
}

type noopStatsLog struct{}

func (noopStatsLog) Log(kafka.EventStats) error { return nil }
