package consumer

import (
	"context"
	"encoding/json"
	"log"

	"github.com/nuriddinovv/furniAsia/internal/notification"
	"github.com/nuriddinovv/furniAsia/internal/order"
)

func handleOrderPlaced(ctx context.Context, payload []byte, notificationService notification.Service) error {
	var data order.OrderPlacedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Recording order notification for card: %s", data.CardCode)

	if err := notificationService.RecordOrderPlaced(ctx, data.CardCode, data.DocNum, data.DocTotalUZS); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Notification recorded for card: %s", data.CardCode)
	return nil
}
