package handlers

import (
	"errors"

	"walletcore/internal/services/limits"
	"walletcore/internal/services/operation"
	"walletcore/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
)

// OperationHandler exposes the accept/revert engine over HTTP. Commands are
// validated upstream; these endpoints only translate between transport and
// the service contracts.
type OperationHandler struct {
	operations operation.Service
}

func NewOperationHandler(operations operation.Service) *OperationHandler {
	return &OperationHandler{operations: operations}
}

func (h *OperationHandler) Accept(c *fiber.Ctx) error {
	result, err := h.operations.Accept(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *OperationHandler) Revert(c *fiber.Ctx) error {
	result, err := h.operations.Revert(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// serviceError maps the core's error taxonomy onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, operation.ErrMissingData),
		errors.Is(err, operation.ErrInvalidValue),
		errors.Is(err, operation.ErrInvalidParticipants),
		errors.Is(err, wallet.ErrMissingData):
		status = fiber.StatusBadRequest
	case errors.Is(err, operation.ErrOperationNotFound),
		errors.Is(err, operation.ErrWalletAccountNotFound),
		errors.Is(err, wallet.ErrWalletNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, operation.ErrOperationInvalidState),
		errors.Is(err, operation.ErrWalletAccountNotActive),
		errors.Is(err, wallet.ErrWalletNotActive),
		errors.Is(err, wallet.ErrWalletCannotBeDeleted),
		errors.Is(err, wallet.ErrWalletAccountHasBalance):
		status = fiber.StatusConflict
	case errors.Is(err, operation.ErrInsufficientBalance),
		errors.Is(err, limits.ErrLimitExceeded),
		errors.Is(err, limits.ErrAmountBelowMinimum),
		errors.Is(err, limits.ErrAmountAboveMaximum):
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
