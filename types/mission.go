package types

import "time"

// Mission is a travel or external assignment owned by one employee and
// overseen by a manager.
type Mission struct {
	MissionID   int           `json:"mission_id"`
	EmployeeID  int           `json:"employee_id"`
	ManagerID   int           `json:"manager_id"`
	Destination string        `json:"destination"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	Budget      *float64      `json:"budget,omitempty"`
	CurrencyID  *int          `json:"currency_id,omitempty"`
	Status      MissionStatus `json:"status"`

	Team  []MissionTeamMember `json:"team,omitempty"`
	Tasks []MissionTask       `json:"tasks,omitempty"`
}

type MissionTeamMember struct {
	MissionID  int     `json:"mission_id"`
	EmployeeID int     `json:"employee_id"`
	TeamRole   *string `json:"team_role,omitempty"`
}

type MissionTask struct {
	TaskID      int        `json:"task_id"`
	MissionID   int        `json:"mission_id"`
	Description string     `json:"description"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
