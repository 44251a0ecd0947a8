package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/CareSlotLabs/hospital-scheduler/internal/config"
	dbpkg "github.com/CareSlotLabs/hospital-scheduler/internal/db"
	"github.com/CareSlotLabs/hospital-scheduler/internal/middleware"
	"github.com/CareSlotLabs/hospital-scheduler/internal/routes"
)

func main() {

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = time.RFC3339

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
