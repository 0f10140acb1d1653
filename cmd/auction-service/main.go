package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisClient "github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Emnet-tes/Art-Auction/internal/api/handlers"
	"github.com/Emnet-tes/Art-Auction/internal/api/middleware"
	"github.com/Emnet-tes/Art-Auction/internal/config"
	"github.com/Emnet-tes/Art-Auction/internal/infrastructure/mysql"
	"github.com/Emnet-tes/Art-Auction/internal/infrastructure/redis"
	"github.com/Emnet-tes/Art-Auction/internal/services"
	"github.com/Emnet-tes/Art-Auction/pkg/logger"
)

func main() {
	log := logger.New()
	log.Info("Starting Art Auction Service")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize Redis
	rdb := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	log.Info("Connected to Redis", "address", cfg.Redis.Address)

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		log.Error("Failed to connect to MySQL", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			log.Error("Failed to close MySQL connection", "error", err)
		}
	}(db)

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	// Test MySQL connection
	if err := db.PingContext(ctx); err != nil {
		log.Error("Failed to ping MySQL", "error", err)
		os.Exit(1)
	}
	log.Info("Connected to MySQL")

	// Initialize repositories
	artworkRepo := mysql.NewMySQLArtworkRepository(db)
	bidRepo := mysql.NewMySQLBidRepository(db)
	wonRepo := mysql.NewMySQLWonRepository(db)

	// Initialize leader election
	leaderElection := redis.NewRedisLeaderElection(rdb, cfg.Leader.TTL)

	// Initialize services
	catalogService := services.NewCatalogService(artworkRepo, log)
	bidService := services.NewBidService(artworkRepo, bidRepo, log)
	closerService := services.NewCloserService(artworkRepo, wonRepo, log)
	winService := services.NewWinService(wonRepo, log)

	scheduler := services.NewCronCloserScheduler(
		closerService, leaderElection, cfg.Instance.ID, cfg.Closer.Schedule, log)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomw.RequestID())
	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Format: `{"time":"${time_rfc3339}","id":"${id}","remote_ip":"${remote_ip}","host":"${host}","method":"${method}","uri":"${uri}","user_agent":"${user_agent}","status":${status},"error":"${error}","latency":${latency},"latency_human":"${latency_human}","bytes_in":${bytes_in},"bytes_out":${bytes_out}}` + "\n",
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			echo.GET, echo.HEAD, echo.PUT, echo.PATCH,
			echo.POST, echo.DELETE, echo.OPTIONS,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			middleware.HeaderUserID,
			middleware.HeaderUserName,
		},
		MaxAge: 86400,
	}))

	// Initialize handlers
	artworkHandler := handlers.NewArtworkHandler(catalogService, bidService, log)
	bidHandler := handlers.NewBidHandler(bidService, log)
	wonHandler := handlers.NewWonHandler(winService, log)
	cronHandler := handlers.NewCronHandler(closerService, log)

	requireUser := middleware.RequireUser()

	// API routes
	api := e.Group("/api/v1")
	api.GET("/artworks/", artworkHandler.List)
	api.POST("/artworks/", artworkHandler.Create, requireUser)
	api.GET("/artworks/:id/", artworkHandler.Get)
	api.PUT("/artworks/:id/", artworkHandler.Update, requireUser)
	api.PATCH("/artworks/:id/", artworkHandler.Update, requireUser)
	api.DELETE("/artworks/:id/", artworkHandler.Delete, requireUser)

	api.POST("/bids/", bidHandler.PlaceBid, requireUser)
	api.GET("/bids/my", bidHandler.MyBids, requireUser)
	api.GET("/bids/:artwork_id/", bidHandler.ListForArtwork)

	api.GET("/won/my", wonHandler.MyWins, requireUser)

	api.POST("/cron/close-auctions/", cronHandler.CloseAuctions,
		middleware.RequireServiceToken(cfg.Closer.ServiceToken))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   "art-auction",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   "1.0.0",
		})
	})

	// Start the scheduled closer
	if err := scheduler.Start(context.Background()); err != nil {
		log.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}

	// Keep trying for leadership so the scheduled sweep fails over when the
	// current leader goes away.
	go func() {
		for {
			became, err := leaderElection.BecomeLeader(context.Background(), cfg.Instance.ID)
			if err != nil {
				log.Error("Failed to attempt leadership", "error", err)
				time.Sleep(5 * time.Second)
				continue
			}
			if became {
				log.Info("Became auction closer leader", "instance_id", cfg.Instance.ID)
			}
			time.Sleep(10 * time.Second)
		}
	}()

	// Start server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting HTTP server", "address", serverAddr)

	go func() {
		if err := e.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down art auction service...")

	// Graceful shutdown
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := scheduler.Stop(); err != nil {
		log.Error("Failed to stop scheduler", "error", err)
	}
	if err := leaderElection.ReleaseLeadership(ctx, cfg.Instance.ID); err != nil {
		log.Error("Failed to release leadership", "error", err)
	}

	if err := e.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Art auction service stopped")
}
