package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/pg-hostel-api/internal/application/analytics"
	"github.com/jhoicas/pg-hostel-api/internal/application/auth"
	"github.com/jhoicas/pg-hostel-api/internal/application/ports"
	"github.com/jhoicas/pg-hostel-api/internal/application/residents"
	"github.com/jhoicas/pg-hostel-api/internal/application/usecase"
	"github.com/jhoicas/pg-hostel-api/internal/domain/housing"
	"github.com/jhoicas/pg-hostel-api/internal/domain/repository"
	infraai "github.com/jhoicas/pg-hostel-api/internal/infrastructure/ai"
	infracache "github.com/jhoicas/pg-hostel-api/internal/infrastructure/cache"
	"github.com/jhoicas/pg-hostel-api/internal/infrastructure/memory"
	"github.com/jhoicas/pg-hostel-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/pg-hostel-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pg-hostel-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pg-hostel-api/internal/interfaces/http"
	"github.com/jhoicas/pg-hostel-api/pkg/config"
	"github.com/jhoicas/pg-hostel-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// storage repositorios y serializador de mutaciones según STORAGE_DRIVER.
type storage struct {
	users      repository.UserRepository
	complaints repository.ComplaintRepository
	notices    repository.NoticeRepository
	tx         residents.TxRunner
	close      func()
}

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
		Str("storage", cfg.App.Storage).
		Int("total_rooms", cfg.PG.TotalRooms).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.close()

	// Caché del tablón: opcional, sin Redis se lee siempre de la base.
	var noticeCache ports.NoticeCache = ports.NopNoticeCache{}
	if cfg.Redis.Addr != "" {
		client, err := infracache.NewClient(ctx, cfg.Redis, cfg.App.Env == "production")
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, tablón sin caché")
		} else {
			defer client.Close()
			noticeCache = infracache.NewNoticeCache(client, cfg.Redis.NoticeTTL)
		}
	}

	m := metrics.New()
	layout := housing.Layout{FirstRoom: cfg.PG.FirstRoom, TotalRooms: cfg.PG.TotalRooms}

	authUC := auth.NewAuthUseCase(store.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, m, log.Component("auth"))
	if cfg.Bootstrap.Enabled() {
		created, err := authUC.BootstrapAdmin(ctx, cfg.Bootstrap.AdminName, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("crear cuenta Admin")
		}
		if created {
			log.Info().Str("email", cfg.Bootstrap.AdminEmail).Msg("cuenta Admin creada")
		}
	}

	residentUC := residents.NewResidentUseCase(store.users, store.tx, layout, m, log.Component("residents"))
	reportUC := residents.NewReportUseCase(store.users, layout, cfg.App.Name, infrapdf.NewMarotoPDFGenerator())
	complaintUC := usecase.NewComplaintUseCase(store.complaints, store.users, m, log.Component("complaints"))
	noticeUC := usecase.NewNoticeUseCase(store.notices, store.users, noticeCache, m, log.Component("notices"))
	dashboardUC := appanalytics.NewDashboardUseCase(store.users, store.complaints, noticeUC, layout)

	// Sin API key el asistente responde "Unable to reach server".
	var llm ports.LLMService
	if cfg.AI.AnthropicAPIKey != "" {
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	}
	assistantUC := usecase.NewAssistantUseCase(llm, noticeUC, log.Component("assistant"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodOptions}, ","),
	}))
	app.Use(httpRouter.MetricsMiddleware(m))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Smart PG API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ResidentUC:  residentUC,
		ReportUC:    reportUC,
		ComplaintUC: complaintUC,
		NoticeUC:    noticeUC,
		AssistantUC: assistantUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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

// openStorage abre PostgreSQL (con migraciones) o el almacén en memoria.
func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if cfg.App.Storage == config.StorageMemory {
		mem := memory.NewStore()
		return &storage{
			users:      mem.Users(),
			complaints: mem.Complaints(),
			notices:    mem.Notices(),
			tx:         mem,
			close:      func() {},
		}, nil
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &storage{
		users:      postgres.NewUserRepository(pool),
		complaints: postgres.NewComplaintRepository(pool),
		notices:    postgres.NewNoticeRepository(pool),
		tx:         postgres.NewTxRunner(pool),
		close:      pool.Close,
	}, nil
}
