package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationSides(t *testing.T) {
	owner, account := uint(1), uint(10)

	op := &Operation{}
	assert.False(t, op.HasOwner())
	assert.False(t, op.HasBeneficiary())

	op.OwnerID = &owner
	assert.False(t, op.HasOwner(), "party without an account is not a side")

	op.OwnerWalletAccountID = &account
	assert.True(t, op.HasOwner())

	op.BeneficiaryID = &owner
	op.BeneficiaryWalletAccountID = &account
	assert.True(t, op.HasBeneficiary())
}

func TestOperationIsFinal(t *testing.T) {
	final := map[string]bool{
		OperationStatePending:  false,
		OperationStateAccepted: false,
		OperationStateDeclined: true,
		OperationStateReverted: true,
		OperationStateUndone:   true,
	}
	for state, want := range final {
		op := &Operation{State: state}
		assert.Equal(t, want, op.IsFinal(), state)
	}
}

func TestOperationLimitCheckStates(t *testing.T) {
	states := OperationLimitCheckStates()
	assert.ElementsMatch(t, []string{OperationStateAccepted, OperationStatePending}, states)
}
