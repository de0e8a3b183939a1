package router

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	descsvc "nadlan-backend/internal/application/descriptions"
	healthsvc "nadlan-backend/internal/application/health"
	listsvc "nadlan-backend/internal/application/listings"
	paysvc "nadlan-backend/internal/application/payments"
	"nadlan-backend/internal/config"
	"nadlan-backend/internal/domain"
	"nadlan-backend/internal/infrastructure/database"
	deschandler "nadlan-backend/internal/interfaces/handlers/descriptions"
	healthhandler "nadlan-backend/internal/interfaces/handlers/health"
	listhandler "nadlan-backend/internal/interfaces/handlers/listings"
	navhandler "nadlan-backend/internal/interfaces/handlers/navigation"
	payhandler "nadlan-backend/internal/interfaces/handlers/payments"
	pricehandler "nadlan-backend/internal/interfaces/handlers/pricing"
	statehandler "nadlan-backend/internal/interfaces/handlers/state"
	"nadlan-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"gorm.io/gorm"
)

func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	session, rdb, err := middleware.Session(middleware.SessionConfig{
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.IsProduction(),
	})
	if err != nil {
		return nil, nil, nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler(rdb),
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))
	app.Use(session)
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	store, db, err := openStore(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	checker := &healthsvc.Checker{Rdb: rdb, PingURLs: cfg.HealthPingURLs}
	if db != nil {
		checker.DB = &database.Pinger{DB: db}
	}
	hh := &healthhandler.Handlers{Checker: checker, HealthAdminKey: cfg.HealthAdminKey}
	app.Get("/", hh.Dashboard)
	app.Get("/reset", hh.Reset)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)

	ls := &listsvc.Service{Store: store}

	nh := &navhandler.Handlers{}
	ng := app.Group("/api/v1/navigation")
	ng.Get("/resolve", nh.Resolve)
	ng.Post("/navigate", nh.Navigate)

	sh := &statehandler.Handlers{Listings: ls}
	app.Get("/api/v1/state", sh.Get)
	app.Post("/api/v1/state/reset", sh.Reset)

	lh := &listhandler.Handlers{Service: ls}
	pg := app.Group("/api/v1/properties")
	pg.Get("/featured", lh.Featured)
	pg.Get("/search", lh.Search)
	pg.Get("/:id", lh.GetByID)
	pg.Post("/", lh.Publish)

	prh := &pricehandler.Handlers{}
	app.Get("/api/v1/pricing/plans", prh.Plans)
	app.Post("/api/v1/pricing/select", prh.Select)

	payh := &payhandler.Handlers{Processor: &paysvc.Simulator{Delay: cfg.PaymentDelay}}
	app.Post("/api/v1/payments/pay", payh.Pay)

	ds := &descsvc.Service{}
	if cfg.GeminiAPIKey != "" {
		ds.Generator = &descsvc.GeminiClient{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set; description enhancement will return the fallback text")
	}
	dh := &deschandler.Handlers{Service: ds}
	app.Post("/api/v1/descriptions/enhance", dh.Enhance)

	return app, db, rdb, nil
}

// openStore picks Postgres when DATABASE_URL is set and memory otherwise.
func openStore(cfg *config.Config) (listsvc.Store, *gorm.DB, error) {
	var demo []domain.Property
	if cfg.SeedDemoListings {
		demo = listsvc.DemoProperties(time.Now())
	}
	if cfg.DatabaseURL == "" {
		return listsvc.NewMemoryStore(demo), nil, nil
	}
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, nil, err
	}
	store := &listsvc.GormStore{DB: db}
	if err := store.Seed(context.Background(), demo); err != nil {
		return nil, nil, err
	}
	return store, db, nil
}

func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
