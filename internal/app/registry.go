package app

import (
	"github.com/nuriddinovv/furniAsia/internal/cart"
	"github.com/nuriddinovv/furniAsia/internal/catalog"
	"github.com/nuriddinovv/furniAsia/internal/catalog/adapters"
	"github.com/nuriddinovv/furniAsia/internal/erp"
	"github.com/nuriddinovv/furniAsia/internal/notification"
	"github.com/nuriddinovv/furniAsia/internal/order"
	"github.com/nuriddinovv/furniAsia/internal/profile"
	"github.com/nuriddinovv/furniAsia/internal/shops"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, logger *zap.Logger, redisClient *redis.Client, kafkaWriter *kafka.Writer) {
	// --- Repositories ---
	cartRepo := cart.NewRedisRepository(redisClient)
	notificationRepo := notification.NewRedisRepository(redisClient)

	// --- Services ---
	erpService := erp.NewService(logger)
	catalogService := catalog.NewService(catalog.Deps{
		ErpSvc: erpService,
		Redis:  redisClient,
		Logger: logger,
	})

	// --- Adapters ---
	snapshotAdapter := adapters.NewSnapshotAdapter(catalogService)

	cartService := cart.NewService(cart.Deps{
		Repo:      cartRepo,
		Snapshots: snapshotAdapter,
		Logger:    logger,
	})
	orderService := order.NewService(order.Deps{
		CartSvc: cartService,
		ErpSvc:  erpService,
		Writer:  kafkaWriter,
		Logger:  logger,
	})
	shopsService := shops.NewService(shops.Deps{
		ErpSvc: erpService,
		Logger: logger,
	})
	profileService := profile.NewService(profile.Deps{
		ErpSvc: erpService,
		Logger: logger,
	})
	notificationService := notification.NewService(notification.Deps{
		Repo:   notificationRepo,
		Logger: logger,
	})

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService)
	shopsHandler := shops.NewHandler(shopsService)
	profileHandler := profile.NewHandler(profileService)
	notificationHandler := notification.NewHandler(notificationService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		order.RegisterRoutes(api, orderHandler)
		shops.RegisterRoutes(api, shopsHandler)
		profile.RegisterRoutes(api, profileHandler)
		notification.RegisterRoutes(api, notificationHandler)
	}
}
