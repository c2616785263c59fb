package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/precinct-results/cliparse"
	"github.com/danielhkuo/precinct-results/loader"
	"github.com/danielhkuo/precinct-results/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Pick the CSV source. Pages read the remote export when one is configured.
	var source loader.Source = loader.FileSource{Path: cfg.DataPath}
	if cfg.SourceURL != "" {
		source = loader.NewHTTPSource(cfg.SourceURL)
	}
	slog.Info("Election data source", "source", source.String(), "debug", cfg.Debug)

	// Create router
	handler := router.NewRouter(loader.New(source, cfg.Schema), cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "headers", cfg.Headers.Variant)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
