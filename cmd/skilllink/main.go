package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"skilllink/config"
	"skilllink/internal/handler"
	"skilllink/internal/httpserver"
	"skilllink/internal/repository"
	"skilllink/internal/service/admin"
	"skilllink/internal/service/auth"
	"skilllink/pkg/db"
	"skilllink/pkg/logger"
	"skilllink/pkg/mq"
)

func main() {
	cfg := config.MustLoad()

	log := logger.NewLogger(cfg.Log)
	defer log.Sync()

	log.Info("Starting SkillLink...",
		zap.String("version", cfg.App.Version),
		zap.String("db_host", cfg.DB.Host),
		zap.Int("db_port", cfg.DB.Port),
		zap.String("db_name", cfg.DB.Name),
	)

	// DB
	session := db.NewSession(cfg.DB, log)
	connectCtx, connectCancel := context.WithTimeout(context.Background(), cfg.DB.ConnectTimeout+5*time.Second)
	err := session.Connect(connectCtx)
	connectCancel()
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}

	// MQ publisher is optional; without it status changes are not announced.
	var (
		eventPublisher admin.Publisher
		readiness      httpserver.Readiness
		publisher      *mq.Publisher
	)
	if cfg.MQ.URL != "" {
		publisher, err = mq.NewPublisher(cfg.MQ.URL, log)
		if err != nil {
			log.Warn("Event publisher unavailable, continuing without events", zap.Error(err))
		} else {
			eventPublisher = publisher
			readiness = publisher
		}
	}

	userRepo := repository.NewUserRepository(session, log)
	freelancerRepo := repository.NewFreelancerRepository(session, log)
	projectRepo := repository.NewProjectRepository(session, log)
	proposalRepo := repository.NewProposalRepository(session, log)
	contractRepo := repository.NewContractRepository(session, log)
	paymentRepo := repository.NewPaymentRepository(session, log)
	reviewRepo := repository.NewReviewRepository(session, log)
	skillRepo := repository.NewSkillRepository(session, log)
	adminRepo := repository.NewAdminRepository(session, log)

	authService := auth.NewService(userRepo, log)
	adminService := admin.NewService(userRepo, adminRepo, eventPublisher, log)

	router := httpserver.NewRouter(httpserver.Handlers{
		Freelancers: handler.NewFreelancerHandler(freelancerRepo, proposalRepo, reviewRepo, paymentRepo, log),
		Projects:    handler.NewProjectHandler(projectRepo, proposalRepo, log),
		Contracts:   handler.NewContractHandler(contractRepo, log),
		Search:      handler.NewSearchHandler(skillRepo, log),
		Admin:       handler.NewAdminHandler(adminService, log),
		Auth:        handler.NewAuthHandler(authService, log),
		Session:     handler.NewSessionHandler(session, log),
		About:       handler.About(cfg.App),
	}, session, readiness, log)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down SkillLink gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	if publisher != nil {
		publisher.Close()
	}

	log.Info("Closing database session...")
	session.Disconnect(shutdownCtx)

	log.Info("SkillLink shutdown complete")
}
