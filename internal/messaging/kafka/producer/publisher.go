package producer

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// PublishEvent menulis satu event dengan header tipe event + aggregate,
// key = aggregate id supaya event satu kartu tetap berurutan.
func PublishEvent(ctx context.Context, writer *kafka.Writer, eventType, aggregateType, aggregateID string, payload []byte) error {
	msg := kafka.Message{
		Key:   []byte(aggregateID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "aggregate_type", Value: []byte(aggregateType)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
