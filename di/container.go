package di

import (
	"context"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/NDNewell/earnings-analytics/api"
	"github.com/NDNewell/earnings-analytics/api/earnings"
	"github.com/NDNewell/earnings-analytics/config"
	"github.com/NDNewell/earnings-analytics/dao/redis"
	"github.com/NDNewell/earnings-analytics/db"
	"github.com/NDNewell/earnings-analytics/server"
	"github.com/NDNewell/earnings-analytics/server/handlers"
	services "github.com/NDNewell/earnings-analytics/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient        db.RedisClient
	SnapshotDao        *redis.RedisSnapshotDAO
	EarningsAPI        earnings.EarningsAPI
	AnalyticsService   *services.AnalyticsService
	EarningsHandler    *handlers.EarningsHandler
	MuxRouter          *mux.Router
	Router             *server.Router
	EarningsHttpServer *server.EarningsHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string, cfg *config.Config) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize the snapshot cache tier. Redis being down only
	// disables caching; every request then fetches upstream directly.
	var redisClient db.RedisClient
	var snapshotDao *redis.RedisSnapshotDAO

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	cacheClient := db.NewCacheRedisClient(ctx, redisInternalClient)
	if err := cacheClient.Ping(); err != nil {
		log.Printf("Redis unreachable, snapshot caching disabled: %v", err)
	} else {
		redisClient = cacheClient
		snapshotDao = redis.NewRedisSnapshotDAO(
			redisClient, time.Duration(cfg.SnapshotTTLSeconds)*time.Second)
	}

	// Initialize the earnings API - mock outside prod
	var earningsApiClient earnings.EarningsAPI
	if env != "prod" {
		earningsApiClient = earnings.NewEarningsApiClientMock()
		log.Printf("Using mock earnings api")
	} else {
		log.Printf("Using prod earnings api")
		httpClient := api.NewHTTPClient(cfg.UpstreamBaseURL)
		earningsApiClient = earnings.NewEarningsApiClient(httpClient)
	}

	// Initialize service layer
	analyticsService := services.NewAnalyticsService(earningsApiClient, snapshotDao)

	// Initialize earnings handler
	earningsHandler := handlers.NewEarningsHandler(analyticsService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(earningsHandler, muxRouter)

	// Initialize earnings server
	earningsHttpServer := server.NewEarningsHttpServer(router, muxRouter, cfg.HTTPAddr)

	return &Container{
		RedisClient:        redisClient,
		SnapshotDao:        snapshotDao,
		EarningsAPI:        earningsApiClient,
		AnalyticsService:   analyticsService,
		EarningsHandler:    earningsHandler,
		MuxRouter:          muxRouter,
		Router:             router,
		EarningsHttpServer: earningsHttpServer,
	}
}
