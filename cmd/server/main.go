// Package main wires the ledger core to its runtime dependencies and starts
// the HTTP server.
package main

import (
	"walletcore/internal/config"
	"walletcore/internal/events"
	"walletcore/internal/handlers"
	"walletcore/internal/repositories"
	"walletcore/internal/services/limits"
	"walletcore/internal/services/operation"
	"walletcore/internal/services/transfer"
	"walletcore/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if !config.IsProduction() {
		log.SetLevel(logrus.DebugLevel)
	}

	config.LoadEnv(log)

	db, err := repositories.InitDB(log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	cacheService := repositories.InitCache()
	defer cacheService.Close()

	var emitter events.Emitter = events.NewLogEmitter(log)
	if amqpURL := config.GetEnv("AMQP_URL", ""); amqpURL != "" {
		conn, err := amqp.Dial(amqpURL)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to AMQP broker")
		}
		defer conn.Close()
		amqpEmitter, err := events.NewAMQPEmitter(conn, config.GetEnv("AMQP_EXCHANGE", "walletcore.events"), log)
		if err != nil {
			log.WithError(err).Fatal("failed to set up AMQP emitter")
		}
		defer amqpEmitter.Close()
		emitter = amqpEmitter
	}

	ledgerRepo := repositories.NewLedgerRepository(db)
	walletRepo := repositories.NewWalletRepository(db, cacheService, log)
	limitRepo := repositories.NewLimitRepository(db)

	limitSvc := limits.NewService(limitRepo)
	operationSvc := operation.NewService(ledgerRepo, emitter, log)
	transferSvc := transfer.NewService(operationSvc, ledgerRepo, limitSvc, log)
	walletSvc := wallet.NewService(walletRepo, transferSvc, emitter, log)

	app := fiber.New()
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	handlers.SetupRoutes(app,
		handlers.NewOperationHandler(operationSvc),
		handlers.NewTransferHandler(transferSvc),
		handlers.NewWalletHandler(walletSvc),
		cacheService,
	)

	addr := ":" + config.GetEnv("PORT", "8080")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
