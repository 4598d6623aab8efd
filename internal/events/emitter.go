// Package events carries domain events out of the ledger core. Emission
// happens after the owning transaction commits and is fire-and-forget;
// delivery guarantees belong to the bus behind the emitter, not to the
// engine.
package events

import "walletcore/internal/models"

// Emitter receives one call per domain event, after commit.
type Emitter interface {
	AcceptedOperation(op *models.Operation)
	RevertedOperation(op *models.Operation)
	WalletDeleted(wallet *models.Wallet)
}

// NoopEmitter discards all events.
type NoopEmitter struct{}

func (NoopEmitter) AcceptedOperation(*models.Operation) {}
func (NoopEmitter) RevertedOperation(*models.Operation) {}
func (NoopEmitter) WalletDeleted(*models.Wallet)        {}
