package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/authgate-server/internal/api/authctx"
	grpcRouter "github.com/dtroode/authgate-server/internal/api/grpc/router"
	httpRouter "github.com/dtroode/authgate-server/internal/api/http/router"
	"github.com/dtroode/authgate-server/internal/config"
	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
	"github.com/dtroode/authgate-server/internal/notify"
	"github.com/dtroode/authgate-server/internal/repository/memory"
	"github.com/dtroode/authgate-server/internal/repository/mongo"
	"github.com/dtroode/authgate-server/internal/repository/postgres"
	"github.com/dtroode/authgate-server/internal/repository/redis"
	"github.com/dtroode/authgate-server/internal/server"
	"github.com/dtroode/authgate-server/internal/service"
	"github.com/dtroode/authgate-server/internal/storage/minio"
	"github.com/dtroode/authgate-server/internal/storage/s3"
	"github.com/dtroode/authgate-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.Open(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	var redisClient *goredis.Client
	if cfg.SessionBackend == "redis" || cfg.OTP.Backend == "redis" {
		redisClient, err = redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("failed to connect to redis", "error", err)
		}
		defer redisClient.Close()
	}

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)

	sessions, closeSessions, err := newSessionRegistry(ctx, cfg, db, redisClient)
	if err != nil {
		logger.Fatal("failed to initialize session registry", "error", err, "backend", cfg.SessionBackend)
	}
	defer closeSessions()

	otpStore, err := newOTPStore(cfg, redisClient)
	if err != nil {
		logger.Fatal("failed to initialize otp store", "error", err, "backend", cfg.OTP.Backend)
	}

	sender, err := newMailSender(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize mail sender", "error", err, "sender", cfg.Mail.Sender)
	}
	dispatcher := notify.NewDispatcher(sender, notify.MailParams{
		SiteName:   cfg.Mail.SiteName,
		SenderName: cfg.Mail.SenderName,
		Validity:   cfg.OTP.TTL,
	}, cfg.Mail.Timeout, logger)

	tokenCodec := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	passcodes := service.NewPasscodes(otpStore, cfg.OTP.TTL, cfg.OTP.Length, cfg.StoreTimeout, logger)

	authService := service.NewAuth(userRepo, profileRepo, sessions, tokenCodec, passcodes, dispatcher, cfg.StoreTimeout, logger)
	profileService := service.NewProfiles(profileRepo, cfg.StoreTimeout, logger)
	gate := service.NewGate(userRepo, sessions, tokenCodec, cfg.StoreTimeout, logger)
	ctxMgr := authctx.NewManager()

	grpcSrv := registerGRPCServer(logger, authService, profileService, gate, ctxMgr, fmt.Sprintf(":%s", cfg.GRPC.Port))
	httpSrv := registerHTTPServer(cfg.HTTP, logger, authService, profileService, gate, ctxMgr)

	servers := []struct {
		server model.Server
		layer  model.SecurityLayer
	}{
		{grpcSrv, securityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)},
		{httpSrv, securityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)},
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.server, s.layer)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
		}
	}
	wg.Wait()

	if err := dispatcher.Wait(shutdownCtx); err != nil {
		logger.Error("pending mail was not delivered", "error", err)
	}

	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func securityLayer(enableHTTPS bool, certFileName, privateKeyFileName string) model.SecurityLayer {
	if enableHTTPS {
		return server.NewTLSListener(certFileName, privateKeyFileName)
	}
	return server.NewPlainListener()
}

func registerGRPCServer(
	logger *logger.Logger,
	authService model.AuthService,
	profileService model.ProfileService,
	gate model.Authenticator,
	ctxMgr model.ContextManager,
	addr string,
) *server.GRPCServer {
	r := grpcRouter.New(authService, profileService, gate, ctxMgr, logger.With("transport", "grpc"))
	s := r.Register()

	reflection.Register(s)

	return server.NewGRPCServer(s, addr)
}

func registerHTTPServer(
	cfg config.HTTP,
	logger *logger.Logger,
	authService model.AuthService,
	profileService model.ProfileService,
	gate model.Authenticator,
	ctxMgr model.ContextManager,
) *server.HTTPServer {
	gin.SetMode(cfg.Mode)
	engine := httpRouter.New(authService, profileService, gate, ctxMgr, logger.With("transport", "http")).Register()
	return server.NewHTTPServer(engine, cfg.Address)
}

// newSessionRegistry returns the registry selected by SESSION_BACKEND and a
// function releasing its connection.
func newSessionRegistry(
	ctx context.Context,
	cfg *config.Config,
	db *postgres.Connection,
	redisClient *goredis.Client,
) (model.SessionRegistry, func(), error) {
	noop := func() {}

	switch cfg.SessionBackend {
	case "postgres":
		return postgres.NewSessionRepository(db), noop, nil
	case "redis":
		return redis.NewSessionRegistry(redisClient), noop, nil
	case "mongo":
		client, err := mongo.Connect(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		return mongo.NewSessionRegistry(coll), closeFn, nil
	case "memory":
		return memory.NewSessionRegistry(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}

func newOTPStore(cfg *config.Config, redisClient *goredis.Client) (model.OTPStore, error) {
	switch cfg.OTP.Backend {
	case "redis":
		return redis.NewOTPStore(redisClient), nil
	case "memory":
		return memory.NewOTPStore(), nil
	default:
		return nil, fmt.Errorf("unknown otp backend %q", cfg.OTP.Backend)
	}
}

func newMailSender(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.MailSender, error) {
	switch cfg.Mail.Sender {
	case "log":
		return notify.NewLogSender(logger), nil
	case "smtp":
		return notify.NewSMTPSender(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.SMTPUser, cfg.Mail.SMTPPassword, cfg.Mail.From), nil
	case "outbox":
		storage, err := newOutboxStorage(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return notify.NewOutboxSender(storage, cfg.Mail.From), nil
	default:
		return nil, fmt.Errorf("unknown mail sender %q", cfg.Mail.Sender)
	}
}

func newOutboxStorage(ctx context.Context, cfg *config.Config) (model.Storage, error) {
	switch cfg.Mail.OutboxBackend {
	case "minio":
		return minio.Dial(ctx, minio.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			UseSSL:    cfg.Storage.UseSSL,
			Bucket:    cfg.Storage.Bucket,
		})
	case "s3":
		return s3.New(ctx, s3.Options{
			Region:       cfg.S3.Region,
			Bucket:       cfg.S3.Bucket,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			BaseEndpoint: cfg.S3.BaseEndpoint,
		})
	default:
		return nil, fmt.Errorf("unknown outbox backend %q", cfg.Mail.OutboxBackend)
	}
}
