package di

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"glucose-advisor/config"
	"glucose-advisor/dao/redis"
	"glucose-advisor/db"
	"glucose-advisor/metrics"
	"glucose-advisor/server"
	"glucose-advisor/server/handlers"
	services "glucose-advisor/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	Config            config.Config
	RedisClient       db.RedisClient
	RedisReadingsDao  *redis.RedisReadingsDAO
	Metrics           *metrics.Metrics
	GlucoseService    *services.GlucoseService
	FactsService      *services.FactsService
	GlucoseHandler    *handlers.GlucoseHandler
	MuxRouter         *mux.Router
	Router            *server.Router
	GlucoseHttpServer *server.GlucoseHttpServer

	// redisConn owns the go-redis pool in prod; nil with the mock.
	redisConn io.Closer
}

// NewContainer initializes and wires up all dependencies. Outside "prod" the
// in-memory Redis mock is used.
func NewContainer(cfg config.Config) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	var redisClient db.RedisClient
	var redisConn io.Closer
	if cfg.Env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		goRedisClient, err := db.NewGoRedisClient(ctx, redisInternalClient,
			cfg.RedisConnectRetries, config.REDIS_CONNECT_MAX_ELAPSED)
		if err != nil {
			if cerr := redisInternalClient.Close(); cerr != nil {
				log.Printf("Error closing redis client: %v", cerr)
			}
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		redisClient = goRedisClient
		redisConn = goRedisClient
	}
	redisClient = db.NewBreakerRedisClient(redisClient, config.REDIS_BREAKER_FAILURES, config.REDIS_BREAKER_OPEN_FOR)

	redisReadingsDao := redis.NewRedisReadingsDAO(redisClient, config.READINGS_HISTORY_SIZE,
		time.Duration(config.SESSION_COOKIE_MAX_AGE_SECONDS)*time.Second)

	m := metrics.NewMetrics()

	glucoseService := services.NewGlucoseService(redisReadingsDao, m)
	factsService := services.NewFactsServiceFromFile(
		config.GetResourcePath(config.DIABETES_FACTS_RESOURCE),
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)

	glucoseHandler := handlers.NewGlucoseHandler(glucoseService, factsService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(glucoseHandler, m, muxRouter)
	glucoseHttpServer := server.NewGlucoseHttpServer(router, muxRouter, cfg.Port, config.SHUTDOWN_TIMEOUT)

	return &Container{
		Config:            cfg,
		RedisClient:       redisClient,
		RedisReadingsDao:  redisReadingsDao,
		Metrics:           m,
		GlucoseService:    glucoseService,
		FactsService:      factsService,
		GlucoseHandler:    glucoseHandler,
		MuxRouter:         muxRouter,
		Router:            router,
		GlucoseHttpServer: glucoseHttpServer,
		redisConn:         redisConn,
	}, nil
}

// Close releases the Redis connection pool, if any. Safe to call more than once.
func (c *Container) Close() error {
	if c.redisConn == nil {
		return nil
	}
	err := c.redisConn.Close()
	c.redisConn = nil
	if err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}
	log.Println("Closed redis client")
	return nil
}
