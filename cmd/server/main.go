package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hausaware/langswitch/modules/api"
	"github.com/hausaware/langswitch/pkg/config"
	"github.com/hausaware/langswitch/pkg/cookie"
	"github.com/hausaware/langswitch/pkg/httpserver"
	"github.com/hausaware/langswitch/pkg/logger"
	"github.com/hausaware/langswitch/pkg/redis"
	"github.com/hausaware/langswitch/pkg/session"
	"github.com/hausaware/langswitch/pkg/translations"
)

type appConfig struct {
	HTTP    httpserver.Config
	Log     logger.Config
	Cookie  cookie.Config
	Session session.Config
	Redis   redis.Config

	// TranslationsSource selects the catalog provider: "static" or "redis".
	TranslationsSource string `env:"TRANSLATIONS_SOURCE" envDefault:"static"`

	// SessionStore selects session persistence: "memory" or "redis".
	SessionStore string `env:"SESSION_STORE" envDefault:"memory"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log,
		logger.WithContextExtractors(
			session.LogExtractor,
			api.LanguageLogExtractor,
		),
	)

	ctx := context.Background()

	needRedis := cfg.TranslationsSource == "redis" || cfg.SessionStore == "redis"
	var redisClient *goredis.Client
	if needRedis {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Error("failed to connect to redis", logger.Error(err))
			os.Exit(1)
		}
		defer client.Close()
		redisClient = client
	}

	var provider translations.Provider
	if cfg.TranslationsSource == "redis" {
		provider = translations.NewRedisProvider(redisClient)
	} else {
		// Static mode serves the built-in common strings only; catalog
		// data arrives via redis when TRANSLATIONS_SOURCE=redis.
		provider = translations.NewStaticProvider(nil)
	}

	cookieMgr, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		log.Error("failed to create cookie manager", logger.Error(err))
		os.Exit(1)
	}

	sessionOpts := []session.Option{
		session.WithCookieManager(cookieMgr),
	}
	if cfg.SessionStore == "redis" {
		sessionOpts = append(sessionOpts, session.WithStore(session.NewRedisStore(redisClient)))
	}
	sessions := session.NewFromConfig(cfg.Session, sessionOpts...)

	svc := api.NewService(provider, sessions, log)

	r := chi.NewRouter()
	r.Mount("/api", svc.Router())
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if redisClient != nil {
			if err := redis.Healthcheck(redisClient)(req.Context()); err != nil {
				log.ErrorContext(req.Context(), "healthcheck failed", logger.Error(err))
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
