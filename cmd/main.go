package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/config"
	"github.com/Mustafa1998-tech/ERPCompanySystem/db"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/guard"
	authhandler "github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/handler"
	authrepo "github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/repository/postgres"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/service"
	erphandler "github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/handler"
	erprepo "github.com/Mustafa1998-tech/ERPCompanySystem/internal/erp/repository/postgres"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const blockCleanupInterval = 10 * time.Minute

func main() {
	cfg := config.Load()

	logHandler := slog.NewJSONHandler(os.Stdout, nil)
	log := slog.New(logHandler)
	slog.SetDefault(log)

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Redis is an optional fast path for the IP block list.
	var blockCache guard.BlockCache
	if cfg.RedisURL != "" {
		redisClient, err := db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, ip block cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			blockCache = guard.NewRedisBlockCache(redisClient)
		}
	}

	userRepo := authrepo.NewUserRepository(pool)
	guardRepo := authrepo.NewGuardRepository(pool)

	loginGuard := guard.New(guardRepo, blockCache, log, guard.Config{
		MaxAttempts:   cfg.LoginMaxAttempts,
		AttemptWindow: time.Duration(cfg.AttemptWindowMin) * time.Minute,
		BlockDuration: time.Duration(cfg.IPBlockMin) * time.Minute,
	})

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience,
		cfg.AccessExpiryMin, cfg.RefreshExpiryDays)
	userService := service.NewUserService(userRepo, loginGuard, tokenService, log)
	twoFactorService := service.NewTwoFactorService(userRepo, cfg.JWTIssuer)

	store := erprepo.NewStore(pool)
	erpHandler := erphandler.New(erphandler.Config{
		Clients:           store.Clients,
		Suppliers:         store.Suppliers,
		Warehouses:        store.Warehouses,
		Products:          store.Products,
		Sales:             store.Sales,
		Purchases:         store.Purchases,
		Inventory:         store.Inventory,
		Reports:           store.Reports,
		LowStockThreshold: cfg.LowStockThreshold,
	})

	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(authhandler.Authenticate(tokenService))
	app.Use(authhandler.IPBlockMiddleware(loginGuard))

	authhandler.RegisterRoutes(app,
		authhandler.NewAuthHandler(userService),
		authhandler.NewUserHandler(userService),
		authhandler.NewTwoFactorHandler(twoFactorService),
	)
	erphandler.RegisterRoutes(app, erpHandler, authhandler.Authorize)

	go cleanBlocksLoop(ctx, loginGuard, log)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func cleanBlocksLoop(ctx context.Context, g *guard.Guard, log *slog.Logger) {
	ticker := time.NewTicker(blockCleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		removed, err := g.CleanExpiredBlocks(ctx)
		if err != nil {
			log.Warn("failed to clean expired ip blocks", "error", err)
			continue
		}
		if removed > 0 {
			log.Info("cleaned expired ip blocks", "removed", removed)
		}
	}
}
