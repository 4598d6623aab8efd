package handlers

import (
	"errors"

	"walletcore/internal/models"
	"walletcore/internal/services/transfer"

	"github.com/gofiber/fiber/v2"
)

type TransferHandler struct {
	transfers transfer.Service
}

func NewTransferHandler(transfers transfer.Service) *TransferHandler {
	return &TransferHandler{transfers: transfers}
}

type transferPayload struct {
	OwnerID              uint                   `json:"ownerId"`
	OwnerWalletAccountID uint                   `json:"ownerWalletAccountId"`
	BeneficiaryID        uint                   `json:"beneficiaryId"`
	BeneficiaryWalletID  uint                   `json:"beneficiaryWalletId"`
	Value                int64                  `json:"value"`
	LimitTypeID          uint                   `json:"limitTypeId"`
	AnalysisTags         map[string]interface{} `json:"analysisTags"`
}

func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var payload transferPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	op, err := h.transfers.Transfer(c.Context(), transfer.TransferRequest{
		OwnerID:              payload.OwnerID,
		OwnerWalletAccountID: payload.OwnerWalletAccountID,
		BeneficiaryID:        payload.BeneficiaryID,
		BeneficiaryWalletID:  payload.BeneficiaryWalletID,
		Value:                payload.Value,
		LimitTypeID:          payload.LimitTypeID,
		AnalysisTags:         models.NewJSON(payload.AnalysisTags),
	})
	if err != nil {
		if errors.Is(err, transfer.ErrSameAccount) ||
			errors.Is(err, transfer.ErrDestinationAccountNotFound) ||
			errors.Is(err, transfer.ErrDestinationAccountNotActive) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(op)
}
