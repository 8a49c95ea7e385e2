package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"praktikum_backend/internals/configs"
	"praktikum_backend/internals/constants"
	database "praktikum_backend/internals/databases"
	authService "praktikum_backend/internals/features/users/auth/service"
	scheduler "praktikum_backend/internals/features/users/auth/scheduler"
	helper "praktikum_backend/internals/helpers"
	"praktikum_backend/internals/helpers/storage"
	"praktikum_backend/internals/logging"
	middlewares "praktikum_backend/internals/middlewares"
	"praktikum_backend/internals/observability"
	routes "praktikum_backend/internals/route"
	"praktikum_backend/internals/seeds"
)

func main() {
	logs, err := logging.Init(os.Getenv("LOG_LEVEL"), os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer logs.Closer()

	configs.LoadEnv()

	flushSentry, err := observability.InitSentry(configs.SentryDSN, configs.AppEnv, configs.GetEnv("APP_RELEASE"))
	if err != nil {
		zap.L().Warn("sentry init gagal", zap.Error(err))
	}
	defer flushSentry()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		// upload laporan 5 MiB + overhead multipart
		BodyLimit:    int(constants.MaxLaporanSize) + 1<<20,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  90 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromError(c, err)
		},
	})

	middlewares.SetupMiddlewares(app, configs.GetEnvDuration("REQUEST_TIMEOUT", 5*time.Second))

	// DB connect + pool + warm-up
	db, err := database.ConnectDB()
	if err != nil {
		zap.L().Fatal("koneksi DB gagal", zap.Error(err))
	}
	database.TunePool(db)
	database.WarmUp(db)

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 60*time.Second)
	if configs.GetEnvBool("DB_AUTO_MIGRATE", false) {
		sqlDB, err := db.DB()
		if err != nil {
			zap.L().Fatal("ambil sql.DB gagal", zap.Error(err))
		}
		if err := database.Migrate(bootCtx, sqlDB); err != nil {
			zap.L().Fatal("migrasi gagal", zap.Error(err))
		}
	}
	if err := seeds.RunAllSeeds(bootCtx, db); err != nil {
		zap.L().Error("seed gagal", zap.Error(err))
	}

	store, err := storage.NewFromEnv(bootCtx)
	if err != nil {
		zap.L().Fatal("inisialisasi storage gagal", zap.Error(err))
	}
	bootCancel()

	// token blacklist: Redis bila REDIS_URL ada, selain itu tabel Postgres
	var blacklist authService.BlacklistStore = authService.DBBlacklist{DB: db}
	var redisBL *authService.RedisBlacklist
	if configs.RedisURL != "" {
		redisBL, err = authService.NewRedisBlacklist(configs.RedisURL)
		if err != nil {
			zap.L().Warn("redis tidak tersedia, blacklist memakai Postgres", zap.Error(err))
		} else {
			blacklist = redisBL
		}
	}

	authSvc := authService.NewAuthService(db, blacklist, configs.JWTSecret, configs.JWTTTL)
	routes.SetupRoutes(app, routes.Deps{
		DB:        db,
		Store:     store,
		Auth:      authSvc,
		Blacklist: blacklist,
	})

	// scheduler setelah DB siap; berhenti saat shutdown
	schedCtx, schedCancel := context.WithCancel(context.Background())
	scheduler.StartBlacklistCleanupScheduler(schedCtx, db, configs.GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7))

	port := configs.GetEnv("PORT", "3000")
	go func() {
		zap.L().Info("listening", zap.String("port", port))
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			zap.L().Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("shutting down")

	schedCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		zap.L().Warn("shutdown fiber", zap.Error(err))
	}
	if redisBL != nil {
		_ = redisBL.Close()
	}
	database.Close(db)
}
