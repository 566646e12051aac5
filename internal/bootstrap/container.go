package bootstrap

import (
	"context"
	"log"

	"devonn-assistant-be/internal/config"
	"devonn-assistant-be/internal/controller"
	"devonn-assistant-be/internal/pkg/logger"
	"devonn-assistant-be/internal/repository/contract"
	"devonn-assistant-be/internal/repository/implementation"
	"devonn-assistant-be/internal/repository/memory"
	"devonn-assistant-be/internal/service"
	"devonn-assistant-be/internal/websocket"
	"devonn-assistant-be/pkg/chat/conversation"
	"devonn-assistant-be/pkg/platform"

	pktNats "devonn-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	PlatformController  controller.IPlatformController
	AnalyticsController controller.IAnalyticsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	WebSocketHub *websocket.Hub
	Session      *conversation.Session
	Logger       logger.ILogger

	closers []func()
}

// NewContainer wires the application. db may be nil, which disables turn
// analytics. NATS and Redis are optional; failures to reach them are logged.
// The hub runs until ctx ends.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) *Container {
	c := &Container{}

	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c.Logger = sysLogger

	// 2. Event Bus
	// Publish waits for the consumer so events keep their order.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{BlockPublishUntilSubscriberAck: true},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS
	var exporter service.EventExporter
	natsPub, err := pktNats.NewExporter(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect NATS event exporter: %v", err)
	} else {
		exporter = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis, websocket fan-out stays local: %v", err)
		_ = rdb.Close()
		rdb = nil
	} else {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.Chat.WsLogFilePath)
	c.WebSocketHub = websocket.NewHub(rdb, wsLogger)
	go c.WebSocketHub.Run(ctx)

	// 4. Platform state
	deployment := platform.NewDeploymentTracker()
	apis := platform.NewAPIRegistry()
	processes := platform.NewProcessRegistry()
	snapshotRepo := memory.NewSnapshotRepository(
		conversation.ProviderSnapshot{Deployment: deployment, APIs: apis},
		cfg.Cache.SnapshotTTL,
		cfg.Cache.CleanupInterval,
	)

	// 5. Analytics store
	var turnRepo contract.TurnRecordRepository
	if db != nil {
		turnRepo = implementation.NewTurnRecordRepository(db)
	}

	// 6. Conversation
	publisherService := service.NewPublisherService(cfg.Chat.EventTopic, pubSub)
	c.Session = conversation.NewSession(
		conversation.DefaultPipeline(),
		conversation.Config{
			Greeting:      cfg.Chat.Greeting,
			ThinkingMin:   cfg.Chat.ThinkingMin,
			ThinkingMax:   cfg.Chat.ThinkingMax,
			FollowUpDelay: cfg.Chat.FollowUpDelay,
		},
		conversation.Options{
			Snapshots: snapshotRepo,
			Processes: processes,
			Events:    publisherService,
			Logger:    sysLogger,
		},
	)
	// Close the session before the bus so no late event hits a closed channel.
	c.closers = append([]func(){c.Session.Close}, c.closers...)

	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.Chat.EventTopic,
		c.WebSocketHub,
		exporter,
		turnRepo,
		sysLogger,
	)

	chatService := service.NewChatService(c.Session, sysLogger)
	platformService := service.NewPlatformService(deployment, apis, processes, snapshotRepo, sysLogger)
	analyticsService := service.NewAnalyticsService(turnRepo)

	// 7. Controllers
	c.ChatController = controller.NewChatController(chatService, c.WebSocketHub)
	c.PlatformController = controller.NewPlatformController(platformService)
	c.AnalyticsController = controller.NewAnalyticsController(analyticsService)

	c.closers = append(c.closers, func() { _ = sysLogger.Sync() })
	return c
}

// Close releases infrastructure in reverse dependency order.
func (c *Container) Close() {
	for _, closeFn := range c.closers {
		closeFn()
	}
}
