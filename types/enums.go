package types

// The backend transmits lifecycle fields as bare strings. They are closed
// enumerations here, with the legal transitions spelled out so callers can
// reject an illegal decision before it goes over the wire.

type LeaveStatus string

const (
	LeavePending   LeaveStatus = "PENDING"
	LeaveApproved  LeaveStatus = "APPROVED"
	LeaveRejected  LeaveStatus = "REJECTED"
	LeaveCancelled LeaveStatus = "CANCELLED"
	LeaveFinalized LeaveStatus = "FINALIZED"
)

var leaveTransitions = map[LeaveStatus][]LeaveStatus{
	LeavePending:   {LeaveApproved, LeaveRejected, LeaveCancelled},
	LeaveApproved:  {LeaveCancelled, LeaveFinalized},
	LeaveRejected:  {},
	LeaveCancelled: {},
	LeaveFinalized: {},
}

func (s LeaveStatus) CanTransition(to LeaveStatus) bool {
	for _, next := range leaveTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s LeaveStatus) Valid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected, LeaveCancelled, LeaveFinalized:
		return true
	}
	return false
}

type ContractState string

const (
	ContractDraft      ContractState = "DRAFT"
	ContractActive     ContractState = "ACTIVE"
	ContractSuspended  ContractState = "SUSPENDED"
	ContractExpired    ContractState = "EXPIRED"
	ContractTerminated ContractState = "TERMINATED"
)

var contractTransitions = map[ContractState][]ContractState{
	ContractDraft:      {ContractActive, ContractTerminated},
	ContractActive:     {ContractSuspended, ContractExpired, ContractTerminated},
	ContractSuspended:  {ContractActive, ContractTerminated},
	ContractExpired:    {ContractActive},
	ContractTerminated: {},
}

func (s ContractState) CanTransition(to ContractState) bool {
	for _, next := range contractTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s ContractState) Valid() bool {
	switch s {
	case ContractDraft, ContractActive, ContractSuspended, ContractExpired, ContractTerminated:
		return true
	}
	return false
}

type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "ACTIVE"
	EmploymentOnLeave    EmploymentStatus = "ON_LEAVE"
	EmploymentSuspended  EmploymentStatus = "SUSPENDED"
	EmploymentTerminated EmploymentStatus = "TERMINATED"
)

type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountLocked   AccountStatus = "LOCKED"
	AccountDisabled AccountStatus = "DISABLED"
)

type ReimbursementStatus string

const (
	ReimbursementPending  ReimbursementStatus = "PENDING"
	ReimbursementApproved ReimbursementStatus = "APPROVED"
	ReimbursementRejected ReimbursementStatus = "REJECTED"
	ReimbursementPaid     ReimbursementStatus = "PAID"
)

var reimbursementTransitions = map[ReimbursementStatus][]ReimbursementStatus{
	ReimbursementPending:  {ReimbursementApproved, ReimbursementRejected},
	ReimbursementApproved: {ReimbursementPaid},
	ReimbursementRejected: {},
	ReimbursementPaid:     {},
}

func (s ReimbursementStatus) CanTransition(to ReimbursementStatus) bool {
	for _, next := range reimbursementTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type MissionStatus string

const (
	MissionPlanned   MissionStatus = "PLANNED"
	MissionOngoing   MissionStatus = "ONGOING"
	MissionCompleted MissionStatus = "COMPLETED"
	MissionApproved  MissionStatus = "APPROVED"
	MissionCancelled MissionStatus = "CANCELLED"
)

var missionTransitions = map[MissionStatus][]MissionStatus{
	MissionPlanned:   {MissionOngoing, MissionCancelled},
	MissionOngoing:   {MissionCompleted, MissionCancelled},
	MissionCompleted: {MissionApproved},
	MissionApproved:  {},
	MissionCancelled: {},
}

func (s MissionStatus) CanTransition(to MissionStatus) bool {
	for _, next := range missionTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// ExceptionType flags an attendance record that deviated from its shift.
type ExceptionType string

const (
	ExceptionTardiness  ExceptionType = "TARDINESS"
	ExceptionEarlyLeave ExceptionType = "EARLY_LEAVE"
	ExceptionOvertime   ExceptionType = "OVERTIME"
)
