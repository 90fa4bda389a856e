package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/abaya-api/internal/application/analytics"
	"github.com/jhoicas/abaya-api/internal/application/auth"
	"github.com/jhoicas/abaya-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/abaya-api/internal/infrastructure/pdf"
	"github.com/jhoicas/abaya-api/internal/infrastructure/persistence"
	infraredis "github.com/jhoicas/abaya-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/abaya-api/internal/interfaces/http"
	"github.com/jhoicas/abaya-api/pkg/config"
	"github.com/jhoicas/abaya-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Montos como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	stores, err := persistence.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer stores.Close()

	// Esquema + relleno de is_delivered en pedidos heredados.
	if err := stores.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("migración")
	}

	// Lista de revocación: Redis si está configurado, memoria del proceso si no.
	var denylist auth.TokenDenylist = auth.NewMemoryDenylist()
	if cfg.Redis.Enabled() {
		rdb := infraredis.NewTokenDenylist(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rdb.Ping(pingCtx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer rdb.Close()
		denylist = rdb
		log.Info().Str("addr", cfg.Redis.Addr).Msg("revocación de tokens en Redis")
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: revocación de tokens en memoria (se pierde al reiniciar)")
	}

	authUC := auth.NewAuthUseCase(stores.Users, denylist, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	orderUC := usecase.NewOrderUseCase(stores.Orders, time.Now)
	designUC := usecase.NewDesignUseCase(stores.Designs, time.Now)
	customerUC := usecase.NewCustomerUseCase(stores.Orders)
	dashboardUC := analytics.NewDashboardUseCase(stores.Orders, stores.Designs, time.Now)
	salesUC := analytics.NewSalesUseCase(stores.Orders, stores.Designs, infrapdf.NewSalesReportGenerator(), cfg.App.Name, time.Now)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitBytes(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.Timeout(cfg.HTTP.RequestTimeout))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Abaya API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is running")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := stores.Ping(c.UserContext()); err != nil {
			log.Error().Err(err).Msg("health: almacenamiento")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": stores.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		OrderUC:          orderUC,
		DesignUC:         designUC,
		CustomerUC:       customerUC,
		DashboardUC:      dashboardUC,
		SalesUC:          salesUC,
		JWTSecret:        cfg.JWT.Secret,
		OpenRegistration: cfg.Auth.OpenRegistration,
		Logger:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
