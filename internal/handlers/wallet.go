package handlers

import (
	"strconv"

	"walletcore/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	wallets wallet.Service
}

func NewWalletHandler(wallets wallet.Service) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

// Delete deactivates a wallet. The requesting user comes from the upstream
// gateway as a header; authentication itself lives outside this service. A
// backup wallet uuid is required when the wallet still holds balance.
func (h *WalletHandler) Delete(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Get("X-User-ID"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing or invalid user id"})
	}

	err = h.wallets.Delete(c.Context(), c.Params("uuid"), uint(userID), c.Query("backupWallet"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
