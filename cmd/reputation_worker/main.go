package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/qaboard/qa-backend/config"
	"github.com/qaboard/qa-backend/internal/application"
	"github.com/qaboard/qa-backend/internal/domain/repository"
	pginfra "github.com/qaboard/qa-backend/internal/infrastructure/postgres"
)

// Applies reputation events from the queue to profiles. Events for users
// without a profile are dropped; transient store errors requeue the message.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.RabbitMQURL == "" || cfg.RabbitMQReputationQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	profiles := pginfra.NewProfileRepository(pool)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQReputationQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQReputationQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var ev application.ReputationEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			if ev.UserID == "" || ev.Delta == 0 {
				_ = msg.Ack(false)
				continue
			}

			c, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := apply(c, profiles, ev)
			cancel()
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					// no profile for this user yet, nothing to credit
					_ = msg.Ack(false)
					continue
				}
				log.Printf("apply %s failed: %v", ev.Reason, err)
				_ = msg.Nack(false, true)
				continue
			}
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("reputation worker listening on queue=%s", cfg.RabbitMQReputationQueue)
	<-stop
	log.Printf("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

func apply(ctx context.Context, profiles repository.ProfileRepository, ev application.ReputationEvent) error {
	profile, err := profiles.GetByUserID(ctx, ev.UserID)
	if err != nil {
		return err
	}
	_, err = profiles.AddReputation(ctx, profile.ID, ev.Delta)
	return err
}
