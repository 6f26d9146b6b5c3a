package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hirewire/api/companies"
	companyHandlers "github.com/hirewire/api/companies/handlers"
	companyRepository "github.com/hirewire/api/companies/repository"
	companyServices "github.com/hirewire/api/companies/services"
	"github.com/hirewire/api/internal/cache"
	"github.com/hirewire/api/internal/database/postgres"
	"github.com/hirewire/api/internal/middleware/requestid"
	"github.com/hirewire/api/internal/pkg/log"
	platformconfig "github.com/hirewire/api/internal/platform/config"
	"github.com/hirewire/api/jobs"
	jobHandlers "github.com/hirewire/api/jobs/handlers"
	jobRepository "github.com/hirewire/api/jobs/repository"
	jobServices "github.com/hirewire/api/jobs/services"
	"github.com/hirewire/api/users"
	userHandlers "github.com/hirewire/api/users/handlers"
	userRepository "github.com/hirewire/api/users/repository"
	userServices "github.com/hirewire/api/users/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			// A handler that already wrote a response keeps it.
			if len(c.Response().Body()) > 0 {
				return nil
			}
			return c.Status(code).JSON(fiber.Map{
				"code":    "INTERNAL_ERROR",
				"message": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.WebDomain,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))

	ctx := context.Background()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Error("Failed to create postgres client: %v", err)
		os.Exit(1)
	}
	defer pgClient.Close()

	cacheService := newCache(cfg)
	if cacheService != nil {
		defer cacheService.Close()
	}

	companyRepo := companyRepository.NewPostgresRepository(pgClient)
	jobRepo := jobRepository.NewPostgresRepository(pgClient)
	userRepo := userRepository.NewPostgresRepository(pgClient)

	companyService := companyServices.NewCompanyService(companyRepo, cacheService, cfg.Cache.TTL)
	jobService := jobServices.NewJobService(jobRepo, cacheService, cfg.Cache.TTL)
	userService := userServices.NewUserService(userRepo)

	companies.RegisterRoutes(app, companyHandlers.NewCompanyHandler(companyService), cfg)
	jobs.RegisterRoutes(app, jobHandlers.NewJobHandler(jobService), cfg)
	users.RegisterRoutes(app, userHandlers.NewUserHandler(userService), cfg)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pgClient.HealthCheck(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("Starting %s on %s", cfg.App.Name, addr)
		if err := app.Listen(addr); err != nil {
			log.Error("Server stopped: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error("Shutdown failed: %v", err)
	}
}

// newCache picks the cache backend from config. A disabled cache returns
// nil, which the services treat as "no caching".
func newCache(cfg *platformconfig.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}
	if cfg.Cache.Backend == "redis" {
		redisCache, err := cache.NewRedisCache(cfg.Cache)
		if err != nil {
			log.Warn("Redis cache unavailable, falling back to in-memory: %v", err)
			return cache.NewMemoryCache()
		}
		return redisCache
	}
	return cache.NewMemoryCache()
}
