package main

import (
	"log"
	"net/http"

	"paytrack-be/internal/config"
	"paytrack-be/internal/db"
	"paytrack-be/internal/logger"
	"paytrack-be/internal/middleware"
	"paytrack-be/internal/order"
	"paytrack-be/internal/payment"
	"paytrack-be/internal/tracking"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func setupRouter(orderHandler *order.Handler, trackingHandler *tracking.Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is running!"))
	}).Methods("GET")

	orderHandler.RegisterRoutes(r)
	trackingHandler.RegisterRoutes(r)

	return r
}

func setupCORS(allowedOrigin string) *cors.Cors {
	origins := []string{"*"}
	if allowedOrigin != "" {
		origins = []string{allowedOrigin}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID", "X-Device-ID"},
	})
}

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, gateway)
	orderHandler := order.NewHandler(orderSvc)

	trackingRepo := tracking.NewMemoryRepository()
	trackingHandler := tracking.NewHandler(trackingRepo)

	router := setupRouter(orderHandler, trackingHandler)

	handler := setupCORS(cfg.AllowedOrigin).Handler(
		logger.RequestIDMiddleware(
			logger.LoggingMiddleware(
				middleware.RateLimitMiddleware(router),
			),
		),
	)

	log.Printf("Server is running on Port %s", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, handler))
}
