package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"rawnaq.store/web/internal/catalog"
	"rawnaq.store/web/internal/config"
	"rawnaq.store/web/internal/events"
	"rawnaq.store/web/internal/i18n"
	mw "rawnaq.store/web/internal/middleware"
	"rawnaq.store/web/internal/pages"
	"rawnaq.store/web/internal/snapshot"
)

type application struct {
	cfg     config.Config
	log     *zap.Logger
	bundle  *i18n.Bundle
	render  *renderer
	catalog *catalog.Resolver
	pages   *pages.Store
	bus     *events.Bus
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := buildLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	app, err := newApplication(cfg, log)
	if err != nil {
		log.Fatal("startup failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0, // the event stream holds connections open
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("storefront listening", zap.String("addr", cfg.Addr), zap.Bool("dev", cfg.DevMode()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown incomplete", zap.Error(err))
	}
}

func buildLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.DevMode() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newApplication(cfg config.Config, log *zap.Logger) (*application, error) {
	bundle, err := i18n.Load(cfg.LocalesDir, cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}

	mw.ConfigureSessions(cfg.SessionKey, !cfg.DevMode())

	var store snapshot.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		store = snapshot.NewRedis(client, cfg.SnapshotTTL, "snap:", log)
		log.Info("snapshot store: redis", zap.String("addr", cfg.RedisAddr))
	} else {
		store = snapshot.NewMemory(cfg.SnapshotTTL, log)
		log.Info("snapshot store: in-memory")
	}

	render, err := newRenderer(cfg.TemplatesDir, cfg.DevMode(), bundle.T, log)
	if err != nil {
		return nil, err
	}

	resolver := catalog.NewResolver(
		catalog.NewClient(cfg.APIBaseURL, log),
		catalog.LoadStaticSet(cfg.ProductsFile, log),
		store,
		log,
	)

	pageStore := pages.NewStore(cfg.ContentDir, cfg.SnapshotTTL)
	if cfg.ContentAPIURL != "" {
		pageStore.UseRemote(cfg.ContentAPIURL)
	}

	return &application{
		cfg:     cfg,
		log:     log,
		bundle:  bundle,
		render:  render,
		catalog: resolver,
		pages:   pageStore,
		bus:     events.NewBus(),
	}, nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(app.log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(mw.Metrics)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.Locale(app.bundle))
	r.Use(mw.VaryLocale)
	r.Use(mw.CSRF)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(app.cfg.PublicDir+"/assets"))
	r.Handle("/assets/*", assets)

	r.Get("/", app.HomeHandler)

	r.Get("/collections", app.CollectionsIndexHandler)
	r.Get("/collections/{token}", app.CollectionHandler)
	r.Get("/collections/{token}/grid", app.CollectionGridFrag)

	r.Get("/categories", app.CategoriesIndexHandler)
	r.Get("/categories/{token}", app.CategoryHandler)
	r.Get("/categories/{token}/preview", app.CategoryPreviewFrag)

	r.Get("/cart", app.CartHandler)
	r.Get("/cart/count", app.CartCountFrag)
	r.Post("/cart/add", app.CartAddHandler)
	r.Post("/cart/remove", app.CartRemoveHandler)
	r.Get("/wishlist/count", app.WishlistCountFrag)
	r.Post("/wishlist/toggle", app.WishlistToggleHandler)

	r.Get("/events", app.EventStreamHandler)

	r.Get("/faq", app.FAQHandler)
	r.Get("/about", app.AboutHandler)
	r.Get("/policies/{slug}", app.PolicyHandler)

	r.NotFound(app.NotFoundHandler)
	return r
}
