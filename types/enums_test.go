package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaveStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to LeaveStatus
		ok       bool
	}{
		{LeavePending, LeaveApproved, true},
		{LeavePending, LeaveRejected, true},
		{LeavePending, LeaveCancelled, true},
		{LeavePending, LeaveFinalized, false},
		{LeaveApproved, LeaveCancelled, true},
		{LeaveApproved, LeaveFinalized, true},
		{LeaveApproved, LeaveRejected, false},
		{LeaveRejected, LeaveApproved, false},
		{LeaveCancelled, LeavePending, false},
		{LeaveFinalized, LeaveCancelled, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestContractStateTransitions(t *testing.T) {
	assert.True(t, ContractDraft.CanTransition(ContractActive))
	assert.True(t, ContractActive.CanTransition(ContractSuspended))
	assert.True(t, ContractSuspended.CanTransition(ContractActive))
	assert.True(t, ContractExpired.CanTransition(ContractActive))

	// Terminated is terminal.
	for _, to := range []ContractState{ContractDraft, ContractActive, ContractSuspended, ContractExpired} {
		assert.False(t, ContractTerminated.CanTransition(to), "TERMINATED -> %s", to)
	}
	assert.False(t, ContractDraft.CanTransition(ContractSuspended))
}

func TestReimbursementStatusTransitions(t *testing.T) {
	assert.True(t, ReimbursementPending.CanTransition(ReimbursementApproved))
	assert.True(t, ReimbursementApproved.CanTransition(ReimbursementPaid))
	assert.False(t, ReimbursementPending.CanTransition(ReimbursementPaid))
	assert.False(t, ReimbursementPaid.CanTransition(ReimbursementPending))
}

func TestMissionStatusTransitions(t *testing.T) {
	assert.True(t, MissionPlanned.CanTransition(MissionOngoing))
	assert.True(t, MissionOngoing.CanTransition(MissionCompleted))
	assert.True(t, MissionCompleted.CanTransition(MissionApproved))
	assert.False(t, MissionPlanned.CanTransition(MissionApproved))
	assert.False(t, MissionCancelled.CanTransition(MissionOngoing))
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, LeaveApproved.Valid())
	assert.False(t, LeaveStatus("SHIPPED").Valid())
	assert.True(t, ContractSuspended.Valid())
	assert.False(t, ContractState("PAUSED").Valid())
}
