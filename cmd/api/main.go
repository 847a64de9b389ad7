package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/court-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/court-scheduler/internal/db"
	"github.com/BruksfildServices01/court-scheduler/internal/logger"
	"github.com/BruksfildServices01/court-scheduler/internal/payments"
	"github.com/BruksfildServices01/court-scheduler/internal/routes"
	"github.com/BruksfildServices01/court-scheduler/internal/sweeper"
)

func main() {

	cfg := config.Load()
	logger.Init(os.Getenv("GIN_MODE") != "release")

	db := dbpkg.NewDB(cfg)

	// Redis é opcional: a corrida de dupla reserva quem fecha é o índice
	// único parcial do banco; o lock é só o caminho rápido.
	var redisClient *redis.Client
	rc := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rc.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, slot lock disabled")
	} else {
		redisClient = rc
	}

	var checkout payments.Checkout
	if cfg.MPAccessToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MPAccessToken)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init mercadopago client")
		}
		checkout = mp
	} else {
		log.Warn().Msg("MP_ACCESS_TOKEN not set, payment routes disabled")
	}

	r := gin.Default()

	r.Use(logger.GinLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	expireUC := routes.RegisterRoutes(r, db, cfg, redisClient, checkout)

	sw, err := sweeper.New(expireUC, cfg.SweepInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init sweeper")
	}
	if err := sw.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to start sweeper")
	}
	defer sw.Stop()

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
