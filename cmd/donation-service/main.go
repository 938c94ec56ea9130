package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/gogreen/tree-donation-service/internal/config"
	httpapi "github.com/gogreen/tree-donation-service/internal/delivery/http"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/kafka"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/mapbox"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/metrics"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/migrate"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/postgres"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/postgres/repository"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/razorpay"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/smtp"
	"github.com/gogreen/tree-donation-service/internal/notification"
	donationuc "github.com/gogreen/tree-donation-service/internal/usecase/donation"
	useruc "github.com/gogreen/tree-donation-service/internal/usecase/user"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.DonationDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.DonationDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)
	sub := kafka.NewDefaultKafkaSubscriber(brokers)

	donationMetrics := metrics.NewDonationMetrics()

	// Outbound collaborators
	gateway := razorpay.NewClient(cfg.Razorpay)
	geocoder := mapbox.NewClient(cfg.Mapbox, cfg.Pricing.GeocodeResultLimit)
	mailer := smtp.NewMailer(cfg.SMTP)

	builder := notification.NewBuilder(cfg.Frontend.URL, cfg.Pricing.CarbonOffsetPerTree, geocoder)
	dispatcher := notification.NewDispatcher(pub, cfg.Notifications.Topic, donationMetrics)

	// Init repos
	donationRepo := repository.NewDefaultDonationRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	reviewRepo := repository.NewDefaultReviewRepository(db)
	sessionRepo := repository.NewDefaultSessionRepository(db)

	// Init usecases
	donationUsecase := donationuc.NewDefaultDonationUsecase(
		donationRepo,
		userRepo,
		gateway,
		dispatcher,
		builder,
		donationMetrics,
		cfg,
	)
	userUsecase := useruc.NewDefaultUserUsecase(
		userRepo,
		reviewRepo,
		sessionRepo,
		dispatcher,
		builder,
		mailer,
		cfg,
	)

	// Notification worker
	worker := notification.NewWorker(sub, pub, mailer, cfg.Notifications, donationMetrics)
	go func() {
		if err := worker.Run(context.Background()); err != nil {
			slog.Error("notification worker stopped", "error", err)
		}
	}()

	router := httpapi.NewRouter(cfg, userUsecase, donationUsecase, geocoder)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
