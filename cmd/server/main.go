package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/ankitmav/venue-booking/internal/auth"
	"github.com/ankitmav/venue-booking/internal/config"
	"github.com/ankitmav/venue-booking/internal/database"
	"github.com/ankitmav/venue-booking/internal/handler"
	"github.com/ankitmav/venue-booking/internal/notify"
	"github.com/ankitmav/venue-booking/internal/queue"
	"github.com/ankitmav/venue-booking/internal/repository"
	"github.com/ankitmav/venue-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// A missing secret stops the process here, before any request is served.
	tokens, err := auth.NewTokenService(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTTLMin, cfg.RefreshTTLDays)
	if err != nil {
		log.Fatalf("tokens: %v", err)
	}

	users := repository.NewUserRepo(db)
	bookings := repository.NewBookingRepo(db)
	reviews := repository.NewReviewRepo(db)

	mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom)
	broadcaster := queue.NewPublisher(cfg.AMQPURL)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and caching disabled")
	}

	// Background consumer mirrors broadcast events into logs/booking.log.
	go func() {
		if err := queue.StartConsumer(cfg.AMQPURL); err != nil {
			log.Printf("booking-consumer: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e, router.Deps{
		Auth:     handler.NewAuthHandler(cfg, users, tokens, mailer),
		Bookings: handler.NewBookingHandler(bookings, users, mailer, broadcaster, cfg.OwnerEmail),
		Admin:    handler.NewAdminHandler(bookings),
		Reviews:  handler.NewReviewHandler(reviews, users),
		Tokens:   tokens,
		RateCfg:  config.LoadRateLimitConfig(),
		Redis:    rdb,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
