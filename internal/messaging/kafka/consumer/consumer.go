package consumer

import (
	"context"
	"log"

	"github.com/nuriddinovv/furniAsia/internal/notification"
	"github.com/nuriddinovv/furniAsia/internal/order"

	"github.com/segmentio/kafka-go"
)

func ConsumeMessages(ctx context.Context, reader *kafka.Reader, notificationService notification.Service) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == order.EventOrderPlaced {
			if err := handleOrderPlaced(ctx, msg.Value, notificationService); err != nil {
				log.Printf("[CONSUMER] Error handling ORDER_PLACED: %v", err)
			} else {
				if err := reader.CommitMessages(ctx, msg); err != nil {
					log.Printf("[CONSUMER] Error committing message: %v", err)
				}
			}
		} else {
			// Skip unknown event types
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}
