package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nuriddinovv/furniAsia/internal/messaging/kafka/consumer"
	"github.com/nuriddinovv/furniAsia/internal/notification"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	log.Println("[CONSUMER] Starting notification consumer...")

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}

	// 1. Connect to Redis (feed store)
	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	log.Println("[CONSUMER] Redis connected")

	notificationRepo := notification.NewRedisRepository(redisClient)
	notificationService := notification.NewService(notification.Deps{
		Repo:   notificationRepo,
		Logger: logger,
	})

	// 2. Setup Kafka reader
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "order.events",
		GroupID: "notification-consumer-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	// 3. Start consuming
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, notificationService)

	// 4. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
