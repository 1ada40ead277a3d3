package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"ewintr.nl/ytchecklist/aggregate"
	"ewintr.nl/ytchecklist/fetcher"
	"ewintr.nl/ytchecklist/handler"
	"ewintr.nl/ytchecklist/storage"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	apiKey := getParam("YOUTUBE_API_KEY", "")
	if apiKey == "" {
		logger.Error("YOUTUBE_API_KEY is not set")
		os.Exit(1)
	}
	ytClient, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.Error("unable to create youtube service", slog.String("err", err.Error()))
		os.Exit(1)
	}
	yt := fetcher.NewYoutube(ytClient)

	timeout, err := time.ParseDuration(getParam("REQUEST_TIMEOUT", "30s"))
	if err != nil {
		logger.Error("unable to parse request timeout", slog.String("err", err.Error()))
		os.Exit(1)
	}
	maxPages, err := strconv.Atoi(getParam("MAX_PLAYLIST_PAGES", strconv.Itoa(aggregate.DefaultMaxPages)))
	if err != nil {
		logger.Error("invalid max playlist pages", slog.String("err", err.Error()))
		os.Exit(1)
	}
	agg := aggregate.New(yt, aggregate.Config{Timeout: timeout, MaxPages: maxPages}, logger)

	var lookupRepo storage.LookupRepository = storage.NewMemory()
	if host := getParam("POSTGRES_HOST", ""); host != "" {
		postgres, err := storage.NewPostgres(storage.PostgresInfo{
			Host:     host,
			Port:     getParam("POSTGRES_PORT", "5432"),
			User:     getParam("POSTGRES_USER", "ytchecklist"),
			Password: getParam("POSTGRES_PASSWORD", "ytchecklist"),
			Database: getParam("POSTGRES_DB", "ytchecklist"),
		})
		if err != nil {
			logger.Error("unable to connect to postgres", slog.String("err", err.Error()))
			os.Exit(1)
		}
		defer postgres.Close()
		lookupRepo = postgres
		logger.Info("recording lookups in postgres", slog.String("host", host))
	}

	rateLimit, err := strconv.ParseFloat(getParam("RATE_LIMIT", "10"), 64)
	if err != nil {
		logger.Error("invalid rate limit", slog.String("err", err.Error()))
		os.Exit(1)
	}
	rateBurst, err := strconv.Atoi(getParam("RATE_BURST", "20"))
	if err != nil {
		logger.Error("invalid rate burst", slog.String("err", err.Error()))
		os.Exit(1)
	}
	var limiter *rate.Limiter
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), rateBurst)
	}

	port, err := strconv.Atoi(getParam("API_PORT", "8080"))
	if err != nil {
		logger.Error("invalid port", slog.String("err", err.Error()))
		os.Exit(1)
	}
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler.NewServer(agg, lookupRepo, limiter, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
	}()
	logger.Info("http server started", slog.Int("port", port))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)
	<-done

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", slog.String("err", err.Error()))
	}

	logger.Info("service stopped")
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}
