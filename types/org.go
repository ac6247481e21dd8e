package types

import "time"

type Department struct {
	DepartmentID int    `json:"department_id"`
	Name         string `json:"name"`
	ManagerID    *int   `json:"manager_id,omitempty"`
	ParentID     *int   `json:"parent_id,omitempty"`
}

type Position struct {
	PositionID   int     `json:"position_id"`
	Title        string  `json:"title"`
	DepartmentID *int    `json:"department_id,omitempty"`
	PayGradeID   *int    `json:"pay_grade_id,omitempty"`
	Description  *string `json:"description,omitempty"`
}

type Role struct {
	RoleID      int     `json:"role_id"`
	RoleName    string  `json:"role_name"`
	Description *string `json:"description,omitempty"`
}

type Permission struct {
	PermissionID int    `json:"permission_id"`
	Name         string `json:"name"`
	Resource     *string `json:"resource,omitempty"`
}

// RolePermission is the role/permission join record.
type RolePermission struct {
	RoleID       int `json:"role_id"`
	PermissionID int `json:"permission_id"`
}

// Currency carries the exchange rate against the payroll base currency.
type Currency struct {
	CurrencyID   int       `json:"currency_id"`
	Code         string    `json:"code"`
	Name         *string   `json:"name,omitempty"`
	ExchangeRate float64   `json:"exchange_rate"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type TaxForm struct {
	TaxFormID int     `json:"tax_form_id"`
	FormCode  string  `json:"form_code"`
	Country   *string `json:"country,omitempty"`
	Year      *int    `json:"year,omitempty"`
}

type TaxRule struct {
	RuleID     int      `json:"rule_id"`
	RuleName   string   `json:"rule_name"`
	LowerBound float64  `json:"lower_bound"`
	UpperBound *float64 `json:"upper_bound,omitempty"`
	Rate       float64  `json:"rate"`
}

type Notification struct {
	NotificationID int        `json:"notification_id"`
	EmployeeID     int        `json:"employee_id"`
	SenderID       *int       `json:"sender_id,omitempty"`
	Subject        *string    `json:"subject,omitempty"`
	Message        string     `json:"message"`
	Read           bool       `json:"read"`
	CreatedAt      time.Time  `json:"created_at"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}

type Reimbursement struct {
	ReimbursementID int                 `json:"reimbursement_id"`
	EmployeeID      int                 `json:"employee_id"`
	Amount          float64             `json:"amount"`
	CurrencyID      *int                `json:"currency_id,omitempty"`
	Description     *string             `json:"description,omitempty"`
	Status          ReimbursementStatus `json:"status"`
	ReviewerID      *int                `json:"reviewer_id,omitempty"`
	ReviewComment   *string             `json:"review_comment,omitempty"`
	SubmittedAt     time.Time           `json:"submitted_at"`
	ReviewedAt      *time.Time          `json:"reviewed_at,omitempty"`
}

type UserAccount struct {
	AccountID  int           `json:"account_id"`
	EmployeeID *int          `json:"employee_id,omitempty"`
	Email      string        `json:"email"`
	Role       string        `json:"role"`
	Status     AccountStatus `json:"status"`
	LastLogin  *time.Time    `json:"last_login,omitempty"`
}

// TeamStatistics is the manager dashboard read model.
type TeamStatistics struct {
	ManagerID       int     `json:"manager_id"`
	HeadCount       int     `json:"head_count"`
	PresentToday    int     `json:"present_today"`
	OnLeaveToday    int     `json:"on_leave_today"`
	PendingRequests int     `json:"pending_requests"`
	AvgWorkedHours  float64 `json:"avg_worked_hours"`
}

// DepartmentSummary aggregates head count and payroll cost per department.
type DepartmentSummary struct {
	DepartmentID int     `json:"department_id"`
	Name         string  `json:"name,omitempty"`
	HeadCount    int     `json:"head_count"`
	TotalCost    float64 `json:"total_cost"`
	OpenRequests int     `json:"open_requests,omitempty"`
}
