package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"roomchat/backend/internal/api/handler"
	"roomchat/backend/internal/auth"
	"roomchat/backend/internal/config"
	"roomchat/backend/internal/eventbus"
	"roomchat/backend/internal/registry"
	"roomchat/backend/internal/storage"
	"roomchat/backend/internal/usecase"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	if err := db.AutoMigrate(storage.Models()...); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting roomchat backend...")

	cfg := config.Load()
	db, rdb := setupDependencies(cfg)

	uow := storage.NewGormUnitOfWork(db)
	hasher := auth.NewBcryptHasher()
	tokens := auth.NewTokenService(cfg.AccessSecret, cfg.RefreshSecret)

	useCases := handler.UseCases{
		RegisterUser:  usecase.NewRegisterUser(uow, hasher),
		LoginUser:     usecase.NewLoginUser(uow, hasher),
		GetUser:       usecase.NewGetUser(uow),
		CreateRoom:    usecase.NewCreateRoom(uow),
		JoinRoom:      usecase.NewJoinRoom(uow),
		LeaveRoom:     usecase.NewLeaveRoom(uow),
		SendMessage:   usecase.NewSendMessage(uow),
		SystemMessage: usecase.NewCreateSystemMessage(uow),
		RoomHistory:   usecase.NewGetRoomHistory(uow),
	}

	reg := registry.New()
	bus := eventbus.NewRedisBus(rdb)

	// one long-lived subscription loop per process; cancelled at shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	events, err := bus.Subscribe(ctx, cfg.EventChannel)
	if err != nil {
		log.Fatalf("Failed to subscribe to %q: %v", cfg.EventChannel, err)
	}
	dispatcher := eventbus.NewDispatcher(reg)
	go dispatcher.Run(events)

	r := gin.Default()
	h := handler.NewHandler(useCases, tokens, reg, bus, cfg.EventChannel)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()
	log.Printf("Listening on %s", cfg.HTTPAddr)

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: server shutdown: %v", err)
	}
}
