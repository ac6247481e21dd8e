package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Payroll is one employee's pay over one period. The amounts are recorded
// independently; net_salary is expected to equal
// base_amount + adjustments + contributions - taxes but the backend owns
// that computation.
type Payroll struct {
	PayrollID     int        `json:"payroll_id"`
	EmployeeID    int        `json:"employee_id"`
	PeriodStart   time.Time  `json:"period_start"`
	PeriodEnd     time.Time  `json:"period_end"`
	BaseAmount    *float64   `json:"base_amount,omitempty"`
	Adjustments   *float64   `json:"adjustments,omitempty"`
	Contributions *float64   `json:"contributions,omitempty"`
	Taxes         *float64   `json:"taxes,omitempty"`
	NetSalary     *float64   `json:"net_salary,omitempty"`
	CurrencyID    *int       `json:"currency_id,omitempty"`
	GeneratedAt   *time.Time `json:"generated_at,omitempty"`
	FinalizedAt   *time.Time `json:"finalized_at,omitempty"`

	Items         []PayrollItem         `json:"items,omitempty"`
	Modifications []PayrollModification `json:"modifications,omitempty"`
}

// PayrollItem is a named line on a payroll record.
type PayrollItem struct {
	ItemID    int     `json:"item_id"`
	PayrollID int     `json:"payroll_id"`
	ItemName  string  `json:"item_name"`
	Amount    float64 `json:"amount"`
	Category  *string `json:"category,omitempty"`
}

// PayrollModification is the audit trail of a retroactive edit: the field
// touched, its value before and after, and the actor who made the change.
type PayrollModification struct {
	ModificationID int       `json:"modification_id"`
	PayrollID      int       `json:"payroll_id"`
	FieldName      string    `json:"field_name"`
	PreviousValue  *string   `json:"previous_value,omitempty"`
	NewValue       string    `json:"new_value"`
	ModifiedBy     int       `json:"modified_by"`
	ModifiedAt     time.Time `json:"modified_at"`
}

type PolicyType string

const (
	PolicyBonus     PolicyType = "BONUS"
	PolicyDeduction PolicyType = "DEDUCTION"
	PolicyLateness  PolicyType = "LATENESS"
	PolicyOvertime  PolicyType = "OVERTIME"
)

// PolicyTerms is the type-specific half of a payroll policy, selected by
// the policy's discriminator.
type PolicyTerms interface {
	Kind() PolicyType
}

type BonusTerms struct {
	PolicyID  int      `json:"policy_id"`
	BonusRate float64  `json:"bonus_rate"`
	AppliesTo *string  `json:"applies_to,omitempty"`
	Cap       *float64 `json:"cap,omitempty"`
}

func (BonusTerms) Kind() PolicyType { return PolicyBonus }

type DeductionTerms struct {
	PolicyID  int     `json:"policy_id"`
	Amount    float64 `json:"amount"`
	Recurring bool    `json:"recurring"`
	Reason    *string `json:"reason,omitempty"`
}

func (DeductionTerms) Kind() PolicyType { return PolicyDeduction }

type LatenessTerms struct {
	PolicyID         int     `json:"policy_id"`
	GraceMinutes     int     `json:"grace_minutes"`
	PenaltyPerMinute float64 `json:"penalty_per_minute"`
}

func (LatenessTerms) Kind() PolicyType { return PolicyLateness }

type OvertimeTerms struct {
	PolicyID      int      `json:"policy_id"`
	Multiplier    float64  `json:"multiplier"`
	DailyCapHours *float64 `json:"daily_cap_hours,omitempty"`
}

func (OvertimeTerms) Kind() PolicyType { return PolicyOvertime }

// PayrollPolicy is a tagged union over Bonus/Deduction/Lateness/Overtime
// terms, mirroring the contract specialization pattern.
type PayrollPolicy struct {
	PolicyID      int        `json:"policy_id"`
	PolicyName    string     `json:"policy_name"`
	Type          PolicyType `json:"type"`
	Active        bool       `json:"active"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`

	Terms PolicyTerms `json:"-"`
}

type policyWire struct {
	PolicyID      int        `json:"policy_id"`
	PolicyName    string     `json:"policy_name"`
	Type          PolicyType `json:"type"`
	Active        bool       `json:"active"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`

	Bonus     *BonusTerms     `json:"bonus,omitempty"`
	Deduction *DeductionTerms `json:"deduction,omitempty"`
	Lateness  *LatenessTerms  `json:"lateness,omitempty"`
	Overtime  *OvertimeTerms  `json:"overtime,omitempty"`
}

func (p PayrollPolicy) MarshalJSON() ([]byte, error) {
	wire := policyWire{
		PolicyID:      p.PolicyID,
		PolicyName:    p.PolicyName,
		Type:          p.Type,
		Active:        p.Active,
		EffectiveFrom: p.EffectiveFrom,
	}
	switch terms := p.Terms.(type) {
	case nil:
	case BonusTerms:
		wire.Bonus = &terms
	case DeductionTerms:
		wire.Deduction = &terms
	case LatenessTerms:
		wire.Lateness = &terms
	case OvertimeTerms:
		wire.Overtime = &terms
	default:
		return nil, fmt.Errorf("policy %d: unknown terms type %T", p.PolicyID, p.Terms)
	}
	return json.Marshal(wire)
}

func (p *PayrollPolicy) UnmarshalJSON(data []byte) error {
	var wire policyWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	p.PolicyID = wire.PolicyID
	p.PolicyName = wire.PolicyName
	p.Type = wire.Type
	p.Active = wire.Active
	p.EffectiveFrom = wire.EffectiveFrom
	p.Terms = nil
	switch p.Type {
	case PolicyBonus:
		if wire.Bonus != nil {
			p.Terms = *wire.Bonus
		}
	case PolicyDeduction:
		if wire.Deduction != nil {
			p.Terms = *wire.Deduction
		}
	case PolicyLateness:
		if wire.Lateness != nil {
			p.Terms = *wire.Lateness
		}
	case PolicyOvertime:
		if wire.Overtime != nil {
			p.Terms = *wire.Overtime
		}
	}
	return nil
}

type SalaryType struct {
	SalaryTypeID int     `json:"salary_type_id"`
	Name         string  `json:"name"`
	PayFrequency *string `json:"pay_frequency,omitempty"`
}

type PayGrade struct {
	PayGradeID int     `json:"pay_grade_id"`
	GradeName  string  `json:"grade_name"`
	MinSalary  float64 `json:"min_salary"`
	MaxSalary  float64 `json:"max_salary"`
	CurrencyID *int    `json:"currency_id,omitempty"`
}

type InsuranceBracket struct {
	BracketID    int      `json:"bracket_id"`
	BracketName  string   `json:"bracket_name"`
	LowerBound   float64  `json:"lower_bound"`
	UpperBound   *float64 `json:"upper_bound,omitempty"`
	EmployeeRate float64  `json:"employee_rate"`
	EmployerRate float64  `json:"employer_rate"`
}

// ShortTimeRule penalizes worked time below the shift's scheduled minutes.
type ShortTimeRule struct {
	RuleID           int      `json:"rule_id"`
	RuleName         string   `json:"rule_name"`
	ThresholdMinutes int      `json:"threshold_minutes"`
	PenaltyRate      *float64 `json:"penalty_rate,omitempty"`
}

type TerminationRule struct {
	RuleID        int      `json:"rule_id"`
	RuleName      string   `json:"rule_name"`
	NoticeDays    *int     `json:"notice_days,omitempty"`
	SeveranceRate *float64 `json:"severance_rate,omitempty"`
}

type AllowancePolicy struct {
	PolicyID   int     `json:"policy_id"`
	PolicyName string  `json:"policy_name"`
	Amount     float64 `json:"amount"`
	Frequency  *string `json:"frequency,omitempty"`
}

// PayrollSummary is the read model behind the monthly/department/employee
// summary endpoints.
type PayrollSummary struct {
	Scope         string     `json:"scope"`
	PeriodStart   *time.Time `json:"period_start,omitempty"`
	PeriodEnd     *time.Time `json:"period_end,omitempty"`
	EmployeeCount int        `json:"employee_count"`
	TotalGross    float64    `json:"total_gross"`
	TotalTaxes    float64    `json:"total_taxes"`
	TotalNet      float64    `json:"total_net"`
	CurrencyCode  *string    `json:"currency_code,omitempty"`
}

type TaxStatement struct {
	StatementID  int     `json:"statement_id"`
	EmployeeID   int     `json:"employee_id"`
	Year         int     `json:"year"`
	TaxableTotal float64 `json:"taxable_total"`
	TaxWithheld  float64 `json:"tax_withheld"`
	FormCode     *string `json:"form_code,omitempty"`
}
