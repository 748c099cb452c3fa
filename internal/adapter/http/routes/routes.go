package routes

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "repair_desk/docs"
	"repair_desk/internal/adapter/http/handlers"
	"repair_desk/internal/adapter/persistence/repository"
	"repair_desk/internal/config"
	"repair_desk/internal/infrastructure/database"
	"repair_desk/internal/infrastructure/metrics"
	"repair_desk/internal/infrastructure/payments"
	"repair_desk/internal/infrastructure/sms"
	"repair_desk/internal/infrastructure/storage"
	"repair_desk/internal/usecase"
	"repair_desk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers is the HTTP surface, one handler per resource.
type Handlers struct {
	Activity     *handlers.DeviceActivityHandler
	Devices      *handlers.DeviceHandler
	Payments     *handlers.PaymentHandler
	Attachments  *handlers.AttachmentHandler
	Notification *handlers.NotificationHandler
}

// Run will start the server
func Run(cfg *config.Config, logger *zap.Logger) error {
	h, err := buildHandlers(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Server.Mode)
	router := NewRouter(h, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("[server] listening", zap.String("addr", addr))
	return router.Run(addr)
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDeviceRoutes(v1, h)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Handlers, error) {
	awsCfg, err := database.NewAWSConfig(ctx, cfg)
	if err != nil {
		return Handlers{}, err
	}
	ddb := database.NewDynamoDBClient(awsCfg, cfg.AWS.DynamoDBEndpoint)
	t := cfg.Tables

	devices := repository.NewDeviceDynamoRepository(ddb, t.Devices)
	stores := usecase.RecordStores{
		Devices:     devices,
		Transitions: repository.NewTransitionDynamoRepository(ddb, t.Transitions),
		Remarks:     repository.NewRemarkDynamoRepository(ddb, t.Remarks),
		Payments:    repository.NewPaymentDynamoRepository(ddb, t.Payments),
		Attachments: repository.NewAttachmentDynamoRepository(ddb, t.Attachments),
		Ratings:     repository.NewRatingDynamoRepository(ddb, t.Ratings),
		AuditLogs:   repository.NewAuditLogDynamoRepository(ddb, t.AuditLogs),
		Points:      repository.NewPointsTransactionDynamoRepository(ddb, t.PointsTransactions),
		SMSLogs:     repository.NewSMSLogDynamoRepository(ddb, t.SMSLogs),
	}
	directory := repository.NewCachedUserDirectory(repository.NewUserDynamoDirectory(ddb, t.Users), cfg.Session.NameCacheTTL)
	audit := usecase.NewAuditTrail(stores.AuditLogs, logger)

	var fileStorage interfaces.IFileStorage
	if cfg.Storage.Bucket != "" {
		fileStorage = storage.NewS3Storage(storage.NewS3Client(awsCfg, cfg.AWS.S3Endpoint), cfg.Storage.Bucket, cfg.AWS.Region, cfg.Storage.PublicBaseURL)
	} else {
		logger.Warn("[server] attachment bucket not configured; uploads disabled")
	}

	var smsSender interfaces.ISMSSender
	if sender, err := sms.NewTwilioSender(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.FromNumber); err != nil {
		logger.Warn("[server] sms provider not configured", zap.Error(err))
	} else {
		smsSender = sender
	}

	var paymentGateway interfaces.IPaymentGateway
	if gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock, logger); err != nil {
		logger.Warn("[server] mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = gw
	}

	aggregator := usecase.NewDeviceActivityAggregator(usecase.NewRecordFetchers(stores, logger), logger)
	sessions := usecase.NewSessionRegistry(aggregator, directory, cfg.Session.TTL, logger)

	activityUseCase := usecase.NewDeviceActivityUseCase(sessions, devices)
	deviceUseCase := usecase.NewDeviceUseCase(devices, stores.Transitions, stores.Remarks, audit, logger)
	paymentUseCase := usecase.NewPaymentUseCase(stores.Payments, devices, paymentGateway, audit, usecase.PaymentOptions{
		GatewayMock:     cfg.MercadoPago.Mock,
		AccessToken:     cfg.MercadoPago.AccessToken,
		TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
		TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
	}, logger)
	attachmentUseCase := usecase.NewAttachmentUseCase(stores.Attachments, devices, fileStorage, audit, logger)
	notificationUseCase := usecase.NewNotificationUseCase(smsSender, stores.SMSLogs, logger)

	return Handlers{
		Activity:     handlers.NewDeviceActivityHandler(activityUseCase, logger),
		Devices:      handlers.NewDeviceHandler(deviceUseCase, logger),
		Payments:     handlers.NewPaymentHandler(paymentUseCase, cfg.MercadoPago.Mock, logger),
		Attachments:  handlers.NewAttachmentHandler(attachmentUseCase, logger),
		Notification: handlers.NewNotificationHandler(notificationUseCase),
	}, nil
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[server] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.GinMiddleware())
	router.Use(handlers.ActorMiddleware())
}

// requestLogger writes one line per request; the streaming and metrics
// endpoints are left out.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if path == "/metrics" || strings.HasSuffix(path, "/stream") {
			return
		}
		logger.Info("[http] request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
