package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"scheduleorganizer/internal/dependencies"
	"scheduleorganizer/internal/routers"
)

func main() {
	deps, err := dependencies.NewDependencies()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize dependencies")
	}

	configRouter := routers.AppConfigRouter()
	configServer := &http.Server{
		Addr:    ":8004",
		Handler: configRouter,
	}

	scheduleRouter := routers.ScheduleRouter()
	scheduleMux := http.NewServeMux()
	scheduleMux.Handle("/schedules", scheduleRouter)
	scheduleMux.Handle("/schedules/", scheduleRouter)
	scheduleMux.Handle("/health", routers.HealthCheckRouter())
	scheduleServer := &http.Server{
		Addr:    *deps.EnvManager.ServerAddr,
		Handler: scheduleMux,
	}

	go func() {
		log.Info("Starting HTTP Server on port 8004 for app config")
		if err := configServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("Server Error: ", err)
		}
	}()
	go func() {
		scheduleServer.SetKeepAlivesEnabled(true)
		log.Infof("Starting HTTP Server on %s for schedule pipeline", scheduleServer.Addr)
		if err := scheduleServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("Server Error: ", err)
		}
	}()

	//Listen for SIGINT/ SIGTERM signal to trigger shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Wait for all active requests to complete
	_ = configServer.Shutdown(ctx)
	_ = scheduleServer.Shutdown(ctx)

	log.Info("Server gracefully stopped")
}
