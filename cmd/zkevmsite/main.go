package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"zkevmsite/internal/app"
	"zkevmsite/internal/content"
	"zkevmsite/internal/metrics"
	"zkevmsite/internal/tracker"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("zkevmsite exited", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg app.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	data := tracker.Default()
	for _, issue := range tracker.Validate(data) {
		logger.Warn("tracker data issue", zap.Stringer("issue", issue))
	}

	db, err := app.NewDB(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		logger.Info("mysql post source enabled")
	}

	embedded := app.EmbeddedContent()
	blogSources := []content.Source{content.FSSource{Label: "embedded", FS: embedded, Dir: "content/posts"}}
	learnSources := []content.Source{content.FSSource{Label: "embedded", FS: embedded, Dir: "content/learn"}}

	var watchDirs []string
	if cfg.ContentDir != "" {
		disk := os.DirFS(cfg.ContentDir)
		blogSources = append(blogSources, content.FSSource{Label: "disk", FS: disk, Dir: "posts"})
		learnSources = append(learnSources, content.FSSource{Label: "disk", FS: disk, Dir: "learn"})
		for _, sub := range []string{"posts", "learn"} {
			dir := filepath.Join(cfg.ContentDir, sub)
			if _, err := os.Stat(dir); err == nil {
				watchDirs = append(watchDirs, dir)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}
	}
	if db != nil {
		blogSources = append(blogSources, content.MySQLSource{DB: db})
	}

	blog := content.NewStore("blog", logger, blogSources...)
	learn := content.NewStore("learn", logger, learnSources...)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	handler, err := app.NewServer(app.Deps{
		Config:  cfg,
		Logger:  logger,
		Metrics: m,
		Data:    data,
		Blog:    blog,
		Learn:   learn,
	})
	if err != nil {
		return err
	}

	// Hooks are registered by NewServer, so the first load is counted too.
	reload := func(ctx context.Context) error {
		return errors.Join(blog.Reload(ctx), learn.Reload(ctx))
	}
	if err := reload(ctx); err != nil {
		return err
	}

	if cfg.ContentWatch && len(watchDirs) > 0 {
		go func() {
			if err := content.Watch(ctx, logger, content.DefaultDebounce, reload, watchDirs...); err != nil {
				logger.Error("content watcher stopped", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("zkevmsite listening",
			zap.String("addr", srv.Addr),
			zap.Int("posts", blog.Len()),
			zap.Int("chapters", learn.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
	return nil
}
