package types

import "time"

type ShiftSchedule struct {
	ShiftID   int     `json:"shift_id"`
	Name      string  `json:"name"`
	ShiftType string  `json:"shift_type"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	ShiftDate *time.Time `json:"shift_date,omitempty"`
	BreakMinutes *int `json:"break_minutes,omitempty"`
}

// SplitShiftWindow is the second working window of a split shift.
type SplitShiftWindow struct {
	ShiftID     int    `json:"shift_id"`
	SecondStart string `json:"second_start"`
	SecondEnd   string `json:"second_end"`
}

type ShiftAssignment struct {
	AssignmentID int        `json:"assignment_id"`
	EmployeeID   int        `json:"employee_id"`
	ShiftID      int        `json:"shift_id"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	RotationDays *int       `json:"rotation_days,omitempty"`
	AssignedBy   *int       `json:"assigned_by,omitempty"`
}

// DepartmentShift applies a shift to a whole department from a date.
type DepartmentShift struct {
	DepartmentID  int        `json:"department_id"`
	ShiftID       int        `json:"shift_id"`
	EffectiveDate *time.Time `json:"effective_date,omitempty"`
}

// Attendance logs actual entry/exit against a shift. Exception flags the
// deviation, if any; Source traces which device produced the punch.
type Attendance struct {
	AttendanceID int                  `json:"attendance_id"`
	EmployeeID   int                  `json:"employee_id"`
	ShiftID      *int                 `json:"shift_id,omitempty"`
	WorkDate     time.Time            `json:"work_date"`
	EntryTime    *time.Time           `json:"entry_time,omitempty"`
	ExitTime     *time.Time           `json:"exit_time,omitempty"`
	WorkedHours  *float64             `json:"worked_hours,omitempty"`
	Exception    *AttendanceException `json:"exception,omitempty"`
	SourceID     *int                 `json:"source_id,omitempty"`
	DeviceID     *int                 `json:"device_id,omitempty"`
	Manual       bool                 `json:"manual,omitempty"`
	RecordedBy   *int                 `json:"recorded_by,omitempty"`
}

type AttendanceException struct {
	ExceptionID  int           `json:"exception_id"`
	AttendanceID int           `json:"attendance_id"`
	Type         ExceptionType `json:"type"`
	Minutes      *int          `json:"minutes,omitempty"`
	Note         *string       `json:"note,omitempty"`
}

// Punch is a single clock event on a flexible or multi-punch day.
type Punch struct {
	PunchID      int       `json:"punch_id"`
	EmployeeID   int       `json:"employee_id"`
	PunchTime    time.Time `json:"punch_time"`
	PunchType    *string   `json:"punch_type,omitempty"`
	DeviceID     *int      `json:"device_id,omitempty"`
}

type AttendanceCorrection struct {
	CorrectionID   int        `json:"correction_id"`
	AttendanceID   int        `json:"attendance_id"`
	EmployeeID     int        `json:"employee_id"`
	CorrectedEntry *time.Time `json:"corrected_entry,omitempty"`
	CorrectedExit  *time.Time `json:"corrected_exit,omitempty"`
	Reason         *string    `json:"reason,omitempty"`
	Status         string     `json:"status,omitempty"`
	RequestedAt    time.Time  `json:"requested_at"`
}

type MissedPunch struct {
	ReportID   int       `json:"report_id"`
	EmployeeID int       `json:"employee_id"`
	WorkDate   time.Time `json:"work_date"`
	PunchType  *string   `json:"punch_type,omitempty"`
	Reason     *string   `json:"reason,omitempty"`
	ReviewedBy *int      `json:"reviewed_by,omitempty"`
	ReportedAt time.Time `json:"reported_at"`
}

type Device struct {
	DeviceID   int     `json:"device_id"`
	SerialNo   string  `json:"serial_no"`
	Location   *string `json:"location,omitempty"`
	SourceID   *int    `json:"source_id,omitempty"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
}

type AttendanceSource struct {
	SourceID   int     `json:"source_id"`
	SourceName string  `json:"source_name"`
	Kind       *string `json:"kind,omitempty"`
}

// AttendanceEdit is the audit record of a manual change to an attendance
// row.
type AttendanceEdit struct {
	EditID        int       `json:"edit_id"`
	AttendanceID  int       `json:"attendance_id"`
	EditorID      int       `json:"editor_id"`
	PreviousValue *string   `json:"previous_value,omitempty"`
	NewValue      string    `json:"new_value"`
	Reason        *string   `json:"reason,omitempty"`
	EditedAt      time.Time `json:"edited_at"`
}

type HolidayOverride struct {
	OverrideID   int       `json:"override_id"`
	HolidayDate  time.Time `json:"holiday_date"`
	Name         string    `json:"name"`
	DepartmentID *int      `json:"department_id,omitempty"`
	AppliedBy    *int      `json:"applied_by,omitempty"`
}

// ShiftPolicy carries department-level attendance rules such as the
// first-in-last-out override.
type ShiftPolicy struct {
	PolicyID       int  `json:"policy_id"`
	DepartmentID   *int `json:"department_id,omitempty"`
	FirstInLastOut bool `json:"first_in_last_out"`
}
