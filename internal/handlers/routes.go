package handlers

import (
	"walletcore/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the ledger endpoints.
func SetupRoutes(app *fiber.App, operations *OperationHandler, transfers *TransferHandler, wallets *WalletHandler, cacheService *cache.CacheService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{"status": "ok"}
		if cacheService != nil {
			if err := cacheService.HealthCheck(c.Context()); err != nil {
				status["cache"] = "unavailable"
			} else {
				status["cache"] = "ok"
			}
		}
		return c.JSON(status)
	})

	api := app.Group("/api/v1")
	api.Post("/operations/:id/accept", operations.Accept)
	api.Post("/operations/:id/revert", operations.Revert)
	api.Post("/transfers", transfers.Create)
	api.Delete("/wallets/:uuid", wallets.Delete)
}
