package types

import (
	"encoding/json"
	"fmt"
	"time"
)

type ContractType string

const (
	ContractFullTime   ContractType = "FULL_TIME"
	ContractPartTime   ContractType = "PART_TIME"
	ContractInternship ContractType = "INTERNSHIP"
	ContractConsultant ContractType = "CONSULTANT"
)

// ContractTerms is the type-specific half of a contract. Exactly one terms
// record exists per contract and its kind must match the discriminator.
type ContractTerms interface {
	Kind() ContractType
}

type FullTimeTerms struct {
	ContractID    int     `json:"contract_id"`
	WeeklyHours   float64 `json:"weekly_hours"`
	AnnualLeave   float64 `json:"annual_leave_days"`
	PensionScheme *string `json:"pension_scheme,omitempty"`
	NoticeDays    *int    `json:"notice_days,omitempty"`
}

func (FullTimeTerms) Kind() ContractType { return ContractFullTime }

type PartTimeTerms struct {
	ContractID  int      `json:"contract_id"`
	WeeklyHours float64  `json:"weekly_hours"`
	HourlyRate  float64  `json:"hourly_rate"`
	MinHours    *float64 `json:"min_hours,omitempty"`
}

func (PartTimeTerms) Kind() ContractType { return ContractPartTime }

type InternshipTerms struct {
	ContractID    int        `json:"contract_id"`
	Stipend       *float64   `json:"stipend,omitempty"`
	MentorID      *int       `json:"mentor_id,omitempty"`
	ConvertibleAt *time.Time `json:"convertible_at,omitempty"`
}

func (InternshipTerms) Kind() ContractType { return ContractInternship }

type ConsultantTerms struct {
	ContractID int     `json:"contract_id"`
	DailyRate  float64 `json:"daily_rate"`
	Agency     *string `json:"agency,omitempty"`
	MaxDays    *int    `json:"max_days,omitempty"`
}

func (ConsultantTerms) Kind() ContractType { return ContractConsultant }

// Contract is a tagged union over its specialization: the discriminator in
// Type selects which terms record applies, and the terms record's
// contract_id equals the contract's own id (shared primary key).
type Contract struct {
	ContractID   int           `json:"contract_id"`
	EmployeeID   int           `json:"employee_id"`
	Type         ContractType  `json:"type"`
	CurrentState ContractState `json:"current_state"`
	StartDate    *time.Time    `json:"start_date,omitempty"`
	EndDate      *time.Time    `json:"end_date,omitempty"`
	BaseSalary   *float64      `json:"base_salary,omitempty"`
	CurrencyID   *int          `json:"currency_id,omitempty"`
	SignedAt     *time.Time    `json:"signed_at,omitempty"`

	Terms        ContractTerms `json:"-"`
	Terminations []Termination `json:"terminations,omitempty"`
}

type contractWire struct {
	ContractID   int           `json:"contract_id"`
	EmployeeID   int           `json:"employee_id"`
	Type         ContractType  `json:"type"`
	CurrentState ContractState `json:"current_state"`
	StartDate    *time.Time    `json:"start_date,omitempty"`
	EndDate      *time.Time    `json:"end_date,omitempty"`
	BaseSalary   *float64      `json:"base_salary,omitempty"`
	CurrencyID   *int          `json:"currency_id,omitempty"`
	SignedAt     *time.Time    `json:"signed_at,omitempty"`
	Terminations []Termination `json:"terminations,omitempty"`

	FullTime   *FullTimeTerms   `json:"full_time,omitempty"`
	PartTime   *PartTimeTerms   `json:"part_time,omitempty"`
	Internship *InternshipTerms `json:"internship,omitempty"`
	Consultant *ConsultantTerms `json:"consultant,omitempty"`
}

func (c Contract) MarshalJSON() ([]byte, error) {
	wire := contractWire{
		ContractID:   c.ContractID,
		EmployeeID:   c.EmployeeID,
		Type:         c.Type,
		CurrentState: c.CurrentState,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		BaseSalary:   c.BaseSalary,
		CurrencyID:   c.CurrencyID,
		SignedAt:     c.SignedAt,
		Terminations: c.Terminations,
	}
	switch terms := c.Terms.(type) {
	case nil:
	case FullTimeTerms:
		wire.FullTime = &terms
	case PartTimeTerms:
		wire.PartTime = &terms
	case InternshipTerms:
		wire.Internship = &terms
	case ConsultantTerms:
		wire.Consultant = &terms
	default:
		return nil, fmt.Errorf("contract %d: unknown terms type %T", c.ContractID, c.Terms)
	}
	return json.Marshal(wire)
}

func (c *Contract) UnmarshalJSON(data []byte) error {
	var wire contractWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	c.ContractID = wire.ContractID
	c.EmployeeID = wire.EmployeeID
	c.Type = wire.Type
	c.CurrentState = wire.CurrentState
	c.StartDate = wire.StartDate
	c.EndDate = wire.EndDate
	c.BaseSalary = wire.BaseSalary
	c.CurrencyID = wire.CurrencyID
	c.SignedAt = wire.SignedAt
	c.Terminations = wire.Terminations
	c.Terms = nil
	switch c.Type {
	case ContractFullTime:
		if wire.FullTime != nil {
			c.Terms = *wire.FullTime
		}
	case ContractPartTime:
		if wire.PartTime != nil {
			c.Terms = *wire.PartTime
		}
	case ContractInternship:
		if wire.Internship != nil {
			c.Terms = *wire.Internship
		}
	case ContractConsultant:
		if wire.Consultant != nil {
			c.Terms = *wire.Consultant
		}
	}
	if c.Terms != nil {
		if id := termsContractID(c.Terms); id != 0 && id != c.ContractID {
			return fmt.Errorf("contract %d: terms record keyed to %d", c.ContractID, id)
		}
	}
	return nil
}

func termsContractID(terms ContractTerms) int {
	switch t := terms.(type) {
	case FullTimeTerms:
		return t.ContractID
	case PartTimeTerms:
		return t.ContractID
	case InternshipTerms:
		return t.ContractID
	case ConsultantTerms:
		return t.ContractID
	}
	return 0
}

// Termination closes out a contract; a contract may accumulate several if
// earlier terminations were reversed.
type Termination struct {
	TerminationID int        `json:"termination_id"`
	ContractID    int        `json:"contract_id"`
	Reason        *string    `json:"reason,omitempty"`
	NoticeGiven   *time.Time `json:"notice_given,omitempty"`
	EffectiveDate time.Time  `json:"effective_date"`
	InitiatedBy   *int       `json:"initiated_by,omitempty"`
	SeverancePaid *float64   `json:"severance_paid,omitempty"`
}
