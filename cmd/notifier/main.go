package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	mqcontracts "github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/contracts/mq"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/config"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/handler"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/httpserver"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/mailer"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/mqhandler"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/repository"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/scheduler"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/service"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/db"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/logger"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/mq"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/redis"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting mixed-order-notifier...",
		zap.String("db_host", cfg.DB.Host),
		zap.Int("db_port", cfg.DB.Port),
		zap.String("mq_url", cfg.MQ.URL),
		zap.String("site", cfg.Site.URL),
	)

	// DB (host platform store, read-only)
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()

	// Redis (transient admin notices only)
	rdb := redis.NewClient(cfg.Redis)
	defer rdb.Close()

	// MQ publisher for outcome events
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("Failed to init MQ publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Repositories
	orderRepo := repository.NewOrderRepository(dbConn)
	noteRepo := repository.NewNoteRepository(dbConn)
	userRepo := repository.NewUserRepository(dbConn)

	// Mail boundary
	mail, err := mailer.New(cfg.SMTP, cfg.Site.URL, log)
	if err != nil {
		log.Fatal("Failed to init mailer", zap.Error(err))
	}
	renderer := mailer.NewRenderer(cfg.Site.AdminURL)

	// Services
	notices := service.NewNoticeStore(rdb, log)
	recipients := service.NewRecipientResolver(cfg.Notifications, userRepo, log)
	alertService := service.NewAlertService(orderRepo, noteRepo, recipients, renderer, mail, notices, publisher, log)
	digestService := service.NewDigestService(orderRepo, noteRepo, recipients, renderer, mail, publisher, log)

	// MQ handlers: the primary note event and the legacy comment event can
	// both fire for one note; the alert pipeline dedups.
	noteHandler := mqhandler.NewOrderNoteHandler(alertService, log)

	noteConsumer, err := mq.NewConsumer(cfg.MQ.URL, "order.note_added.q", mqcontracts.RoutingKeyOrderNoteAdded, log)
	if err != nil {
		log.Fatal("Failed to init note consumer", zap.Error(err))
	}
	defer noteConsumer.Close()
	noteConsumer.SetHandler(noteHandler.HandleNoteAdded)

	commentConsumer, err := mq.NewConsumer(cfg.MQ.URL, "order.comment_created.q", mqcontracts.RoutingKeyCommentCreated, log)
	if err != nil {
		log.Fatal("Failed to init comment consumer", zap.Error(err))
	}
	defer commentConsumer.Close()
	commentConsumer.SetHandler(noteHandler.HandleCommentCreated)

	go func() {
		if err := noteConsumer.StartConsuming(); err != nil {
			log.Fatal("Note consumer failed", zap.Error(err))
		}
	}()
	go func() {
		if err := commentConsumer.StartConsuming(); err != nil {
			log.Fatal("Comment consumer failed", zap.Error(err))
		}
	}()

	// Daily digest schedule
	digestScheduler := scheduler.New(cfg.Digest.Schedule, digestService.Run, log)
	if err := digestScheduler.Register(); err != nil {
		log.Fatal("Failed to schedule daily digest", zap.Error(err))
	}

	// HTTP server
	adminHandler := handler.NewAdminHandler(userRepo, digestService, notices, log)
	router := httpserver.NewRouter(adminHandler, userRepo, cfg.JWT.Secret, dbConn)
	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: router.Engine,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	log.Info("mixed-order-notifier is fully initialized and running")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down mixed-order-notifier gracefully...")

	digestScheduler.Unregister()

	noteConsumer.Close()
	commentConsumer.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}

	log.Info("mixed-order-notifier shutdown complete")
}
