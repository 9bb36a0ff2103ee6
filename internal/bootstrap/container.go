package bootstrap

import (
	"context"
	"fmt"
	"log"

	"plagiarismpro-be/internal/config"
	"plagiarismpro-be/internal/controller"
	"plagiarismpro-be/internal/handler"
	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/internal/pkg/mailer"
	"plagiarismpro-be/internal/repository/contract"
	"plagiarismpro-be/internal/repository/implementation"
	"plagiarismpro-be/internal/repository/memory"
	"plagiarismpro-be/internal/repository/rediskv"
	"plagiarismpro-be/internal/service"
	"plagiarismpro-be/internal/websocket"
	"plagiarismpro-be/pkg/analysis"
	pktNats "plagiarismpro-be/pkg/nats"
	"plagiarismpro-be/pkg/token"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	ShellController    controller.IShellController
	AnalysisController controller.IAnalysisController
	HistoryController  controller.IHistoryController
	ViewController     controller.IViewController
	ReportController   controller.IReportController

	// WebSockets & Progress
	ProgressHandler *handler.ProgressHandler
	WebSocketHub    *websocket.Hub

	// Used by the server for the session guard and page redirects.
	AuthService     service.IAuthService
	AnalysisService service.IAnalysisService
	Logger          logger.ILogger

	cancel  context.CancelFunc
	closers []func()
}

// NewContainer wires every component. db is only needed for the postgres
// storage driver and may be nil otherwise.
func NewContainer(cfg *config.Config, db *gorm.DB) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	progressLogger := logger.NewIsolatedLogger(cfg.App.ProgressLogPath)

	ctx, cancel := context.WithCancel(context.Background())
	c := &Container{Logger: sysLogger, cancel: cancel}
	c.closers = append(c.closers, func() { _ = progressLogger.Sync() })

	// 2. Infrastructure
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	store, err := newDeviceStore(cfg, db, rdb)
	if err != nil {
		c.Close()
		return nil, err
	}

	var eventPublisher service.EventPublisher
	var natsSub *pktNats.Subscriber
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
		natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
			natsSub = nil
		} else {
			c.closers = append(c.closers, natsSub.Close)
		}
	}

	// Progress bus. Blocking publish keeps frames of a job in order.
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64, BlockPublishUntilSubscriberAck: true},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	wsHub := websocket.NewHub(rdb, progressLogger)
	go wsHub.Run(ctx)

	// 3. Repositories
	historyRepo := implementation.NewHistoryRepository(store, cfg.Storage.HistoryLimit, sysLogger)
	sessionRepo := implementation.NewSessionRepository(store, sysLogger)
	jobRepo := memory.NewJobRepository()
	sentIndicators := memory.NewIndicatorRepository(cfg.Report.EmailSentTTL)

	// 4. Services
	issuer := token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	var emailService mailer.IEmailService
	if cfg.SMTP.Enabled() {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
			sysLogger,
		)
	} else {
		emailService = mailer.NewLogEmailService(sysLogger)
	}

	workflow := analysis.NewWorkflow(cfg.Analysis.StepDelay, analysis.NewSynthesizer())

	authService := service.NewAuthService(sessionRepo, issuer, cfg.Auth.SimulatedDelay, eventPublisher, sysLogger)
	analysisService := service.NewAnalysisService(
		workflow,
		cfg.Analysis.MaxUploadBytes,
		jobRepo,
		historyRepo,
		pubSub,
		eventPublisher,
		sysLogger,
	)
	historyService := service.NewHistoryService(historyRepo, eventPublisher, sysLogger)
	reportService := service.NewReportService(
		historyService,
		sessionRepo,
		emailService,
		cfg.SMTP.Enabled(),
		sentIndicators,
		service.ReportDelays{Download: cfg.Report.DownloadDelay, Email: cfg.Report.EmailDelay},
		eventPublisher,
		sysLogger,
	)

	// Start Service (Worker)
	progressService := service.NewProgressService(pubSub, service.ProgressTopic, wsHub, progressLogger)
	if err := progressService.Consume(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("start progress consumer: %w", err)
	}

	if natsSub != nil {
		auditService := service.NewAuditService(natsSub, sysLogger)
		if err := auditService.Start(ctx); err != nil {
			log.Printf("[WARN] Failed to start audit consumer: %v", err)
		}
	}

	// 5. Controllers
	c.AuthController = controller.NewAuthController(authService)
	c.ShellController = controller.NewShellController(authService)
	c.AnalysisController = controller.NewAnalysisController(analysisService)
	c.HistoryController = controller.NewHistoryController(historyService)
	c.ViewController = controller.NewViewController(service.NewViewService())
	c.ReportController = controller.NewReportController(reportService)
	c.ProgressHandler = handler.NewProgressHandler(wsHub, progressLogger)
	c.WebSocketHub = wsHub
	c.AuthService = authService
	c.AnalysisService = analysisService

	return c, nil
}

func newDeviceStore(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (contract.DeviceStorageRepository, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		return memory.NewDeviceStorageRepository(), nil
	case config.StorageDriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("storage driver %q requires REDIS_URL", cfg.Storage.Driver)
		}
		return rediskv.NewDeviceStorageRepository(rdb), nil
	case config.StorageDriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("storage driver %q requires DB_CONNECTION_STRING", cfg.Storage.Driver)
		}
		return implementation.NewDeviceStorageRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Close waits for running analyses, then stops background workers and
// releases connections in reverse order.
func (c *Container) Close() {
	if c.AnalysisService != nil {
		c.AnalysisService.Drain()
	}
	c.cancel()
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
