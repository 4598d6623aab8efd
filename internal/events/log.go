package events

import (
	"walletcore/internal/models"

	"github.com/sirupsen/logrus"
)

// LogEmitter writes events to the structured log. Useful as a default when
// no broker is configured and as the inner emitter in tests.
type LogEmitter struct {
	log *logrus.Logger
}

func NewLogEmitter(log *logrus.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

func (e *LogEmitter) AcceptedOperation(op *models.Operation) {
	e.log.WithFields(logrus.Fields{
		"event":     "acceptedOperation",
		"operation": op.ID,
		"type":      op.TransactionType,
		"value":     op.Value,
	}).Info("operation accepted")
}

func (e *LogEmitter) RevertedOperation(op *models.Operation) {
	e.log.WithFields(logrus.Fields{
		"event":     "revertedOperation",
		"operation": op.ID,
		"type":      op.TransactionType,
		"value":     op.Value,
	}).Info("operation reverted")
}

func (e *LogEmitter) WalletDeleted(wallet *models.Wallet) {
	e.log.WithFields(logrus.Fields{
		"event":  "walletDeleted",
		"wallet": wallet.UUID,
	}).Info("wallet deleted")
}
