package types

import "time"

// Employee is the primary entity. Related records reference it by
// employee_id; the manager link is an id into the same table rather than an
// embedded object, so a roster can be checked for dangling references
// without walking a cyclic graph.
type Employee struct {
	EmployeeID       int              `json:"employee_id"`
	FirstName        string           `json:"first_name" validate:"required"`
	LastName         string           `json:"last_name" validate:"required"`
	Email            string           `json:"email" validate:"required,email"`
	Phone            *string          `json:"phone,omitempty"`
	Address          *string          `json:"address,omitempty"`
	DateOfBirth      *time.Time       `json:"date_of_birth,omitempty"`
	HireDate         *time.Time       `json:"hire_date,omitempty"`
	NationalID       *string          `json:"national_id,omitempty"`
	MaritalStatus    *string          `json:"marital_status,omitempty"`
	ManagerID        *int             `json:"manager_id,omitempty"`
	DepartmentID     int              `json:"department_id" validate:"required"`
	PositionID       int              `json:"position_id" validate:"required"`
	ContractID       *int             `json:"contract_id,omitempty"`
	TaxFormID        *int             `json:"tax_form_id,omitempty"`
	SalaryTypeID     *int             `json:"salary_type_id,omitempty"`
	PayGradeID       *int             `json:"pay_grade_id,omitempty"`
	EmploymentStatus EmploymentStatus `json:"employment_status,omitempty"`
	AccountStatus    AccountStatus    `json:"account_status,omitempty"`

	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
	Skills           []EmployeeSkill   `json:"skills,omitempty"`
	Roles            []EmployeeRole    `json:"roles,omitempty"`
	Attendances      []Attendance      `json:"attendances,omitempty"`
	LeaveRequests    []LeaveRequest    `json:"leave_requests,omitempty"`
	Notifications    []Notification    `json:"notifications,omitempty"`
	Reimbursements   []Reimbursement   `json:"reimbursements,omitempty"`
	ShiftAssignments []ShiftAssignment `json:"shift_assignments,omitempty"`
	Verifications    []Verification    `json:"verifications,omitempty"`
}

type EmergencyContact struct {
	ContactID    int     `json:"contact_id"`
	EmployeeID   int     `json:"employee_id"`
	ContactName  string  `json:"contact_name"`
	ContactPhone string  `json:"contact_phone"`
	Relationship *string `json:"relationship,omitempty"`
}

type Skill struct {
	SkillID   int     `json:"skill_id"`
	SkillName string  `json:"skill_name"`
	Category  *string `json:"category,omitempty"`
}

// EmployeeSkill is the employee/skill join record.
type EmployeeSkill struct {
	EmployeeID  int       `json:"employee_id"`
	SkillID     int       `json:"skill_id"`
	SkillName   string    `json:"skill_name,omitempty"`
	Proficiency *string   `json:"proficiency,omitempty"`
	AcquiredAt  *time.Time `json:"acquired_at,omitempty"`
}

// EmployeeRole is the employee/role join record.
type EmployeeRole struct {
	EmployeeID int        `json:"employee_id"`
	RoleID     int        `json:"role_id"`
	RoleName   string     `json:"role_name,omitempty"`
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
}

// EmployeeNote is a free-text observation recorded by a manager.
type EmployeeNote struct {
	NoteID     int       `json:"note_id"`
	EmployeeID int       `json:"employee_id"`
	ManagerID  int       `json:"manager_id"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

// EmployeeHierarchy is one edge of the reporting tree, kept as ids so the
// tree can be rebuilt and validated against the employee table.
type EmployeeHierarchy struct {
	EmployeeID int        `json:"employee_id"`
	ManagerID  int        `json:"manager_id"`
	Depth      int        `json:"depth,omitempty"`
	Since      *time.Time `json:"since,omitempty"`
}

// Verification records a certification or credential check.
type Verification struct {
	VerificationID int        `json:"verification_id"`
	EmployeeID     int        `json:"employee_id"`
	Certification  string     `json:"certification"`
	IssuedBy       *string    `json:"issued_by,omitempty"`
	IssuedAt       *time.Time `json:"issued_at,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	Verified       bool       `json:"verified"`
}

// TimelineEvent is one entry of the employment timeline view (hire,
// contract changes, promotions, terminations).
type TimelineEvent struct {
	EventID    int       `json:"event_id"`
	EmployeeID int       `json:"employee_id"`
	EventType  string    `json:"event_type"`
	Summary    string    `json:"summary,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DocumentRequest is an employee's request for an official document
// (employment letter, salary certificate).
type DocumentRequest struct {
	RequestID    int        `json:"request_id"`
	EmployeeID   int        `json:"employee_id"`
	DocumentType string     `json:"document_type"`
	Notes        *string    `json:"notes,omitempty"`
	RequestedAt  time.Time  `json:"requested_at"`
	FulfilledAt  *time.Time `json:"fulfilled_at,omitempty"`
}
