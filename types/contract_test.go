package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestContractMarshalEmbedsTermsByKind(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c := Contract{
		ContractID:   3,
		EmployeeID:   11,
		Type:         ContractPartTime,
		CurrentState: ContractActive,
		StartDate:    &start,
		Terms:        PartTimeTerms{ContractID: 3, WeeklyHours: 20, HourlyRate: 31.5},
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &wire))
	require.Contains(t, wire, "part_time")
	require.NotContains(t, wire, "full_time")
	require.NotContains(t, wire, "terms")
}

func TestContractRoundTrip(t *testing.T) {
	original := Contract{
		ContractID:   8,
		EmployeeID:   2,
		Type:         ContractConsultant,
		CurrentState: ContractDraft,
		Terms:        ConsultantTerms{ContractID: 8, DailyRate: 640},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Contract
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, original.ContractID, decoded.ContractID)
	require.IsType(t, ConsultantTerms{}, decoded.Terms)
	require.Equal(t, 640.0, decoded.Terms.(ConsultantTerms).DailyRate)
}

func TestContractUnmarshalRejectsMismatchedTermsKey(t *testing.T) {
	raw := `{"contract_id":5,"employee_id":1,"type":"FULL_TIME","current_state":"ACTIVE",` +
		`"full_time":{"contract_id":9,"weekly_hours":40,"annual_leave_days":25}}`

	var c Contract
	err := json.Unmarshal([]byte(raw), &c)
	require.Error(t, err)
	require.Contains(t, err.Error(), "keyed to 9")
}

func TestContractUnmarshalIgnoresTermsOfWrongKind(t *testing.T) {
	// The discriminator wins: a part_time record on a FULL_TIME contract is
	// not surfaced as terms.
	raw := `{"contract_id":5,"employee_id":1,"type":"FULL_TIME","current_state":"ACTIVE",` +
		`"part_time":{"contract_id":5,"weekly_hours":20,"hourly_rate":30}}`

	var c Contract
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	require.Nil(t, c.Terms)
}

func TestPayrollPolicyRoundTrip(t *testing.T) {
	cap := 80.0
	original := PayrollPolicy{
		PolicyID:   4,
		PolicyName: "Night overtime",
		Type:       PolicyOvertime,
		Active:     true,
		Terms:      OvertimeTerms{PolicyID: 4, Multiplier: 1.5, DailyCapHours: &cap},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	require.Contains(t, string(data), `"overtime"`)

	var decoded PayrollPolicy
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.IsType(t, OvertimeTerms{}, decoded.Terms)
	require.Equal(t, 1.5, decoded.Terms.(OvertimeTerms).Multiplier)
}
