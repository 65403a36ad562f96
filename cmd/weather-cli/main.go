package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-lookup/internal/app"
	"github.com/i474232898/weather-lookup/internal/client"
	"github.com/i474232898/weather-lookup/internal/presentation"
	"github.com/i474232898/weather-lookup/internal/scheduler"
	"github.com/i474232898/weather-lookup/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	serverURL := flag.String("server", envDefault("WEATHER_SERVER_URL", client.DefaultBaseURL), "weather-lookup API base URL")
	location := flag.String("location", "", "location to look up (default: detect from IP)")
	watch := flag.Duration("watch", 0, "refresh interval, e.g. 10m (0 = run once)")
	chart := flag.String("chart", "", "write an HTML chart of the hourly forecast to this file")
	flag.Parse()

	api := client.New(*serverURL)
	view := app.New(api, presentation.NewRenderer(nil), os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !api.CheckHealth(ctx) {
		log.Printf("INFO: server at %s did not report healthy", *serverURL)
	}

	if *location != "" {
		view.Search(ctx, *location)
	} else {
		view.Init(ctx)
	}

	if *chart != "" {
		if err := writeChart(*chart, view.State()); err != nil {
			log.Printf("ERROR: chart: %v", err)
		}
	}

	if *watch <= 0 {
		return
	}

	sched := scheduler.New(*watch, *watch, view.Refresh)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	<-ctx.Done()
}

func writeChart(path string, state *store.ViewState) error {
	forecast, err := state.Latest()
	if errors.Is(err, store.ErrNotFound) {
		return errors.New("no forecast loaded, chart not written")
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := presentation.RenderChart(f, forecast); err != nil {
		return err
	}
	log.Printf("INFO: chart written to %s", path)
	return nil
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
