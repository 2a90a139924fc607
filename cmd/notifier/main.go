package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/minhvuq/planora/internal/config"
	"github.com/minhvuq/planora/internal/repository"
	"github.com/minhvuq/planora/internal/service"
	"github.com/minhvuq/planora/pkg/firebase"
	"github.com/minhvuq/planora/pkg/lock"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

func main() {
	// ==================== Load Config ====================
	cfg := config.Load()
	log.Printf("🚀 Starting Planora Activity Notifier [env=%s, interval=%s]", cfg.App.Env, cfg.Notifier.Interval)

	// ==================== Firebase (construct once, hold for process lifetime) ====================
	ctx := context.Background()
	app, err := firebase.NewApp(ctx, firebase.Credentials{
		ProjectID:   cfg.Firebase.ProjectID,
		PrivateKey:  cfg.Firebase.PrivateKey,
		ClientEmail: cfg.Firebase.ClientEmail,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize Firebase: %v", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to get Firestore client: %v", err)
	}
	defer firestoreClient.Close()
	log.Println("✅ Connected to Firestore")

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to get messaging client: %v", err)
	}
	log.Println("✅ Firebase FCM initialized")

	// ==================== Redis run lock (optional) ====================
	var rdb *redis.Client
	if addr := cfg.Redis.Addr(); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatalf("❌ Failed to connect to Redis: %v", err)
		}
		log.Println("✅ Connected to Redis (run lock enabled)")
	} else {
		log.Println("⚠️  Redis not configured, overlapping ticks are not excluded")
	}
	// TTL outlives one interval so a crashed holder can't wedge the schedule
	runLock := lock.New(rdb, "planora:notifier:run", 2*cfg.Notifier.Interval)

	// ==================== Initialize Layers ====================
	activityRepo := repository.NewActivityRepository(firestoreClient, cfg.Notifier.ActivitiesCollection)
	userRepo := repository.NewUserRepository(firestoreClient, cfg.Notifier.UsersCollection)
	notifier := service.NewNotifierService(activityRepo, userRepo, messagingClient)

	instanceID := uuid.New().String()

	// ==================== Schedule ====================
	c := cron.New()
	_, err = c.AddFunc("@every "+cfg.Notifier.Interval.String(), func() {
		acquired, err := runLock.TryAcquire(ctx, instanceID)
		if err != nil {
			log.Printf("⚠️  Run lock check failed, running anyway: %v", err)
		} else if !acquired {
			log.Println("⏭️  Another notifier instance is running, skipping tick")
			return
		}
		defer func() {
			if err := runLock.Release(ctx); err != nil {
				log.Printf("⚠️  Failed to release run lock: %v", err)
			}
		}()

		notifier.RunOnce(ctx)
	})
	if err != nil {
		log.Fatalf("❌ Failed to schedule notifier: %v", err)
	}

	c.Start()
	log.Printf("⏰ Notifier scheduled every %s", cfg.Notifier.Interval)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down notifier...")

	// Let an in-flight tick finish before exiting
	<-c.Stop().Done()
	log.Println("✅ Notifier exited gracefully")
}
