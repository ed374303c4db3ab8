package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/api"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/config"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/health"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/seed"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/session"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/store"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/telemetry"
)

// AppContext holds all constructed application dependencies shared across
// subcommands. It is built once in PersistentPreRunE and referenced by
// server.go and bootstrap.go.
type AppContext struct {
	cfg          *config.Config
	otelProvider *telemetry.Provider
	stores       *store.Stores
	sessions     *session.Manager
	seeder       *seed.Seeder
	router       *api.Router
}

// buildAppContext constructs all application dependencies from cfg:
//  1. Initialises the OTEL provider (best-effort, non-fatal)
//  2. Opens Postgres through gorm and migrates the schema
//  3. Connects the Redis session store
//  4. Creates the entity stores, seeder, and HTTP router
func buildAppContext(cfg *config.Config) (*AppContext, error) {
	app := &AppContext{cfg: cfg}

	// OTEL is best-effort: a missing collector must never block startup.
	// An empty endpoint disables telemetry entirely.
	if cfg.Telemetry.OTLPEndpoint == "" {
		slog.Info("OTEL telemetry disabled (no endpoint configured)")
	} else {
		tp, err := telemetry.InitProvider(
			context.Background(),
			cfg.Telemetry.OTLPEndpoint,
			cfg.Telemetry.ServiceName,
			cfg.Telemetry.OTLPInsecure,
		)
		if err != nil {
			slog.Warn("OTEL provider init failed — telemetry disabled", "err", err)
		} else {
			app.otelProvider = tp
		}
	}

	db, err := store.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := store.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	app.stores = store.New(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	app.sessions = session.NewManager(redisClient, cfg.Session.TTL)

	app.seeder = seed.New(
		app.stores.Roles,
		app.stores.Users,
		app.stores.Accounts,
		app.stores.Workspaces,
		app.stores.Members,
		seed.DefaultCatalog(),
		seed.Admin{
			Email:                cfg.Bootstrap.AdminEmail,
			Name:                 cfg.Bootstrap.AdminName,
			Password:             cfg.Bootstrap.AdminPassword,
			WorkspaceName:        cfg.Bootstrap.WorkspaceName,
			WorkspaceDescription: cfg.Bootstrap.WorkspaceDescription,
		},
	)

	pgProbe, err := store.NewProbe(db, store.NewBreaker("postgres"))
	if err != nil {
		return nil, fmt.Errorf("building postgres probe: %w", err)
	}
	redisProbe := session.NewProbe(redisClient, store.NewBreaker("redis"))

	app.router = api.NewRouter(api.Deps{
		Users:        app.stores.Users,
		Roles:        app.stores.Roles,
		Accounts:     app.stores.Accounts,
		Workspaces:   app.stores.Workspaces,
		Members:      app.stores.Members,
		Projects:     app.stores.Projects,
		Tasks:        app.stores.Tasks,
		Sessions:     app.sessions,
		Probers:      map[string]health.Prober{"postgres": pgProbe, "redis": redisProbe},
		SeedState:    app.seeder.State,
		CookieName:   cfg.Session.CookieName,
		CookieSecure: cfg.Session.Secure,
	}, api.RouterConfig{
		BasePath:       cfg.Server.BasePath,
		FrontendOrigin: cfg.CORS.FrontendOrigin,
		ServiceName:    cfg.Telemetry.ServiceName,
	})

	return app, nil
}
