package routers

import (
	"net/http"

	"scheduleorganizer/internal/handlers"
	"scheduleorganizer/internal/middleware"
)

func HealthCheckRouter() http.Handler {
	middlewareStackForhc := middleware.CreateStack(middleware.Recovery, middleware.AddCorrelationID, middleware.Logging, middleware.AddHeaders)
	hc := middlewareStackForhc(handlers.HealthCheckHandler())
	healthCheckRouter := http.NewServeMux()
	healthCheckRouter.Handle("GET /health", hc)
	return healthCheckRouter
}
