package main

import (
	"context"
	"time"

	"github.com/Trungproe/ResVibe/config"
	"github.com/Trungproe/ResVibe/handler"
	"github.com/Trungproe/ResVibe/logger"
	"github.com/Trungproe/ResVibe/middleware"
	"github.com/Trungproe/ResVibe/repository"
	"github.com/Trungproe/ResVibe/service"
	"github.com/Trungproe/ResVibe/urlcheck"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg := config.Load()

	logger.Init(logger.Config{
		ServiceName: "vibesync",
		Environment: cfg.Environment,
		LogFilePath: cfg.LogFilePath,
		HMACKey:     cfg.LogHMACKey,
		MaxSizeMB:   cfg.LogMaxSizeMB,
		MaxBackups:  cfg.LogMaxBackups,
		MaxAgeDays:  cfg.LogMaxAgeDays,
	})

	logger.Info(logger.EventServiceStartup, "VibeSync API starting", logger.Fields(
		"port", cfg.ServerPort,
		"environment", cfg.Environment,
	))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal(logger.EventDBError, "Failed to connect to MongoDB", logger.Fields("error", err.Error()))
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal(logger.EventDBError, "Failed to ping MongoDB", logger.Fields("error", err.Error()))
	}
	logger.Info(logger.EventDBConnection, "Connected to MongoDB", nil)

	db := client.Database(cfg.MongoDatabase)

	songRepo := repository.NewSongRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	userRepo := repository.NewUserRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	checker := urlcheck.NewChecker()

	songSvc := service.NewSongService(songRepo, artistRepo, checker)
	artistSvc := service.NewArtistService(artistRepo)
	albumSvc := service.NewAlbumService(albumRepo, artistRepo, songSvc)
	playlistSvc := service.NewPlaylistService(playlistRepo, songSvc)
	userSvc := service.NewUserService(userRepo, songSvc)
	searchSvc := service.NewSearchService(songSvc, artistRepo, albumRepo)
	recSvc := service.NewRecommendService(userRepo, songSvc)
	historySvc := service.NewHistoryService(historyRepo, songSvc)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.ValidateRequest())

	generalLimiter := middleware.NewRateLimiter(100, 1*time.Minute)
	r.Use(generalLimiter.Middleware())
	authLimiter := middleware.NewRateLimiter(5, 1*time.Minute)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.Static("/audio", cfg.AudioDir)

	handler.NewSongHandler(songSvc, cfg.JWTSecret).RegisterRoutes(r)
	handler.NewArtistHandler(artistSvc, songSvc, cfg.JWTSecret).RegisterRoutes(r)
	handler.NewAlbumHandler(albumSvc, cfg.JWTSecret).RegisterRoutes(r)
	handler.NewPlaylistHandler(playlistSvc, cfg.JWTSecret).RegisterRoutes(r)
	handler.NewUserHandler(userSvc, cfg.JWTSecret).RegisterRoutes(r, authLimiter)
	handler.NewSearchHandler(searchSvc).RegisterRoutes(r)
	handler.NewHistoryHandler(historySvc, recSvc, cfg.JWTSecret).RegisterRoutes(r)

	logger.Info(logger.EventServiceStartup, "Server starting", logger.Fields("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal(logger.EventGeneral, "Failed to start server", logger.Fields("error", err.Error()))
	}
}
