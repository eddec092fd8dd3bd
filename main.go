package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Set properties of the predefined Logger, including the log entry
	// prefix and a flag to disable printing the time, source file, and line
	// number.
	log.SetPrefix("lg/nutrition-calculator-api: ")
	log.SetFlags(0)

	cfg, err := loadConfig(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := &Handler{metrics: newMetrics(reg), gatherer: reg}
	router, err := newRouter(h, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building router: %v\n", err)
		os.Exit(1)
	}

	srv := &http.Server{Addr: cfg.Addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Starting gin app on %s...\n", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[main] shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown: %v", err)
	}
	log.Println("[main] server stopped")
}

// defaultShutdownTimeout bounds how long in-flight requests get on SIGTERM.
const defaultShutdownTimeout = 10 * time.Second
