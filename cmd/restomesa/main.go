package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/restomesa/restomesa/internal/api"
	"github.com/restomesa/restomesa/internal/catalog"
	"github.com/restomesa/restomesa/internal/events"
	"github.com/restomesa/restomesa/internal/invoices"
	"github.com/restomesa/restomesa/internal/orders"
	"github.com/restomesa/restomesa/internal/websocket"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}

	port := getEnv("RESTOMESA_PORT", "8080")
	kafkaBrokers := getEnv("KAFKA_BROKERS", "")

	// Services share the process lifetime; nothing is persisted.
	catalogSvc := catalog.NewService(logger)
	catalogSvc.Seed()
	orderSvc := orders.NewService(logger)
	invoiceSvc := invoices.NewService(orderSvc, logger)

	handler := api.NewHandler(catalogSvc, orderSvc, invoiceSvc, logger)

	// Kafka is optional: without brokers the services run standalone and
	// domain events are dropped.
	if kafkaBrokers != "" {
		producer, err := events.NewProducer(kafkaBrokers, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create Kafka producer")
		}
		defer producer.Close()
		handler.SetProducer(producer)
		logger.WithField("brokers", kafkaBrokers).Info("Kafka producer initialized")
	} else {
		logger.Info("KAFKA_BROKERS not set, domain events disabled")
	}

	hub := websocket.NewHub(logger)
	go hub.Run()
	handler.SetHub(hub)

	router := handler.Router()
	router.HandleFunc("/ws", hub.HandleWebSocket)
	router.Use(api.LoggingMiddleware(logger))

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", port).Info("Starting restomesa service")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server gracefully stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
