package types

import "time"

// Leave is a leave type definition (annual, sick, unpaid, ...).
type Leave struct {
	LeaveID     int      `json:"leave_id"`
	Name        string   `json:"name"`
	Paid        bool     `json:"paid"`
	RequiresDoc bool     `json:"requires_doc"`
	MaxDays     *float64 `json:"max_days,omitempty"`
}

type LeaveRequest struct {
	RequestID   int         `json:"request_id"`
	EmployeeID  int         `json:"employee_id"`
	LeaveID     int         `json:"leave_id"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Duration    float64     `json:"duration"`
	Reason      *string     `json:"reason,omitempty"`
	Status      LeaveStatus `json:"status"`
	ApproverID  *int        `json:"approver_id,omitempty"`
	DecidedAt   *time.Time  `json:"decided_at,omitempty"`
	SubmittedAt time.Time   `json:"submitted_at"`

	Documents []LeaveDocument `json:"documents,omitempty"`
}

type LeaveDocument struct {
	DocumentID   int       `json:"document_id"`
	RequestID    int       `json:"request_id"`
	DocumentName string    `json:"document_name"`
	DocumentType *string   `json:"document_type,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// LeaveEntitlement tracks the per-employee-per-leave-type balance.
// remaining never exceeds entitlement.
type LeaveEntitlement struct {
	EntitlementID int     `json:"entitlement_id"`
	EmployeeID    int     `json:"employee_id"`
	LeaveID       int     `json:"leave_id"`
	Year          int     `json:"year"`
	Entitlement   float64 `json:"entitlement"`
	Remaining     float64 `json:"remaining"`
	CarriedOver   float64 `json:"carried_over,omitempty"`
}

type LeavePolicy struct {
	PolicyID         int      `json:"policy_id"`
	LeaveID          int      `json:"leave_id"`
	Entitlement      float64  `json:"entitlement"`
	CarryOverLimit   *float64 `json:"carry_over_limit,omitempty"`
	RequiresApproval bool     `json:"requires_approval"`
}

// LeaveEligibilityRule gates a leave type on service time or employment
// type.
type LeaveEligibilityRule struct {
	RuleID           int     `json:"rule_id"`
	LeaveID          int     `json:"leave_id"`
	MinServiceMonths *int    `json:"min_service_months,omitempty"`
	EmploymentType   *string `json:"employment_type,omitempty"`
}
