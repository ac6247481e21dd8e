package mock

import (
	"fmt"
	"math/rand"
	"time"

	"hrportal/internal/auth"
	"hrportal/types"
)

var (
	seedFirstNames = []string{"Amira", "Omar", "Lina", "Karim", "Sara", "Youssef", "Nadia", "Hassan", "Mona", "Tarek", "Rania", "Ali", "Dina", "Sami", "Layla", "Fadi"}
	seedLastNames  = []string{"Haddad", "Mansour", "Khalil", "Saleh", "Nasser", "Aziz", "Farouk", "Ibrahim", "Zaki", "Hamdan", "Rashid", "Suleiman"}
	seedSkills     = []string{"Payroll Processing", "Conflict Resolution", "SQL", "Forecasting", "Recruiting", "First Aid", "Project Planning"}
	seedCities     = []string{"Berlin", "Dubai", "Cairo", "Lisbon", "Singapore", "Toronto"}
)

// NewDataset builds the deterministic prototyping world: identical seeds
// produce identical datasets, so UI fixtures stay stable across restarts.
func NewDataset(seed int64, employees int, seedPassword string) (*Dataset, error) {
	if employees < 5 {
		employees = 5
	}
	rng := rand.New(rand.NewSource(seed))
	d := &Dataset{}
	now := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

	d.Currencies = []types.Currency{
		{CurrencyID: d.nextIDLocked(), Code: "USD", ExchangeRate: 1},
		{CurrencyID: d.nextIDLocked(), Code: "EUR", ExchangeRate: 0.91},
		{CurrencyID: d.nextIDLocked(), Code: "AED", ExchangeRate: 3.67},
	}

	for _, name := range []string{"Engineering", "Finance", "People Operations", "Field Services"} {
		d.Departments = append(d.Departments, types.Department{DepartmentID: d.nextIDLocked(), Name: name})
	}
	for _, title := range []string{"Engineer", "Accountant", "HR Generalist", "Technician", "Team Lead"} {
		d.Positions = append(d.Positions, types.Position{PositionID: d.nextIDLocked(), Title: title})
	}

	d.Leaves = []types.Leave{
		{LeaveID: d.nextIDLocked(), Name: "Annual", Paid: true},
		{LeaveID: d.nextIDLocked(), Name: "Sick", Paid: true, RequiresDoc: true},
		{LeaveID: d.nextIDLocked(), Name: "Unpaid", Paid: false},
	}

	d.Shifts = []types.ShiftSchedule{
		{ShiftID: d.nextIDLocked(), Name: "Day", ShiftType: "FIXED", StartTime: "09:00", EndTime: "17:00"},
		{ShiftID: d.nextIDLocked(), Name: "Night", ShiftType: "FIXED", StartTime: "21:00", EndTime: "05:00"},
		{ShiftID: d.nextIDLocked(), Name: "Flex", ShiftType: "FLEXIBLE", StartTime: "07:00", EndTime: "19:00"},
	}

	passwordHash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return nil, err
	}

	// A handful of managers first so the rest can report to them.
	managerCount := employees / 10
	if managerCount < 2 {
		managerCount = 2
	}
	for i := 0; i < employees; i++ {
		first := seedFirstNames[rng.Intn(len(seedFirstNames))]
		last := seedLastNames[rng.Intn(len(seedLastNames))]
		dep := d.Departments[rng.Intn(len(d.Departments))]
		pos := d.Positions[rng.Intn(len(d.Positions))]
		e := types.Employee{
			EmployeeID:       d.nextIDLocked(),
			FirstName:        first,
			LastName:         last,
			Email:            fmt.Sprintf("%s.%s.%d@example.test", first, last, i),
			DepartmentID:     dep.DepartmentID,
			PositionID:       pos.PositionID,
			EmploymentStatus: types.EmploymentActive,
			AccountStatus:    types.AccountActive,
		}
		hire := now.AddDate(0, -rng.Intn(60), 0)
		e.HireDate = &hire
		if i >= managerCount {
			managerID := d.Employees[rng.Intn(managerCount)].EmployeeID
			e.ManagerID = &managerID
		}
		if rng.Intn(3) == 0 {
			skill := seedSkills[rng.Intn(len(seedSkills))]
			e.Skills = append(e.Skills, types.EmployeeSkill{EmployeeID: e.EmployeeID, SkillID: rng.Intn(len(seedSkills)) + 1, SkillName: skill})
		}
		d.Employees = append(d.Employees, e)

		role := auth.RoleEmployee
		switch {
		case i == 0:
			role = auth.RoleAdmin
		case i == 1:
			role = auth.RoleHR
		case i == 2:
			role = auth.RolePayroll
		case i < managerCount:
			role = auth.RoleManager
		}
		employeeID := e.EmployeeID
		d.Accounts = append(d.Accounts, Account{
			UserAccount: types.UserAccount{
				AccountID:  d.nextIDLocked(),
				EmployeeID: &employeeID,
				Email:      e.Email,
				Role:       role,
				Status:     types.AccountActive,
			},
			PasswordHash: passwordHash,
		})

		seedContract(d, rng, e, now)
		seedLeave(d, rng, e, now)
		seedAttendance(d, rng, e, now)
		seedPayroll(d, rng, e, now)

		if rng.Intn(6) == 0 {
			manager := d.Employees[rng.Intn(managerCount)]
			budget := float64(rng.Intn(4000) + 1000)
			d.Missions = append(d.Missions, types.Mission{
				MissionID:   d.nextIDLocked(),
				EmployeeID:  e.EmployeeID,
				ManagerID:   manager.EmployeeID,
				Destination: seedCities[rng.Intn(len(seedCities))],
				StartDate:   now.AddDate(0, 0, rng.Intn(30)),
				EndDate:     now.AddDate(0, 0, rng.Intn(30)+31),
				Budget:      &budget,
				Status:      types.MissionPlanned,
			})
		}
	}

	// Well-known logins for the prototyping UI.
	adminEmployee := d.Employees[0].EmployeeID
	d.Accounts = append(d.Accounts, Account{
		UserAccount: types.UserAccount{
			AccountID:  d.nextIDLocked(),
			EmployeeID: &adminEmployee,
			Email:      "admin@hrportal.test",
			Role:       auth.RoleAdmin,
			Status:     types.AccountActive,
		},
		PasswordHash: passwordHash,
	})

	return d, nil
}

func seedContract(d *Dataset, rng *rand.Rand, e types.Employee, now time.Time) {
	start := now.AddDate(-1, 0, 0)
	end := now.AddDate(0, rng.Intn(18), 0)
	salary := float64(rng.Intn(60000) + 30000)
	c := types.Contract{
		ContractID:   d.nextIDLocked(),
		EmployeeID:   e.EmployeeID,
		CurrentState: types.ContractActive,
		StartDate:    &start,
		EndDate:      &end,
		BaseSalary:   &salary,
	}
	switch rng.Intn(4) {
	case 0:
		c.Type = types.ContractFullTime
		c.Terms = types.FullTimeTerms{ContractID: c.ContractID, WeeklyHours: 40, AnnualLeave: 21}
	case 1:
		c.Type = types.ContractPartTime
		c.Terms = types.PartTimeTerms{ContractID: c.ContractID, WeeklyHours: 20, HourlyRate: salary / 2080}
	case 2:
		c.Type = types.ContractInternship
		stipend := 1200.0
		c.Terms = types.InternshipTerms{ContractID: c.ContractID, Stipend: &stipend}
	default:
		c.Type = types.ContractConsultant
		c.Terms = types.ConsultantTerms{ContractID: c.ContractID, DailyRate: salary / 230}
	}
	contractID := c.ContractID
	d.Contracts = append(d.Contracts, c)
	for i := range d.Employees {
		if d.Employees[i].EmployeeID == e.EmployeeID {
			d.Employees[i].ContractID = &contractID
		}
	}
}

func seedLeave(d *Dataset, rng *rand.Rand, e types.Employee, now time.Time) {
	for _, leave := range d.Leaves {
		entitlement := 21.0
		if !leave.Paid {
			entitlement = 30
		}
		taken := float64(rng.Intn(10))
		d.Entitlements = append(d.Entitlements, types.LeaveEntitlement{
			EntitlementID: d.nextIDLocked(),
			EmployeeID:    e.EmployeeID,
			LeaveID:       leave.LeaveID,
			Year:          now.Year(),
			Entitlement:   entitlement,
			Remaining:     entitlement - taken,
		})
	}
	if rng.Intn(2) == 0 {
		start := now.AddDate(0, 0, rng.Intn(60))
		end := start.AddDate(0, 0, rng.Intn(5)+1)
		d.LeaveRequests = append(d.LeaveRequests, types.LeaveRequest{
			RequestID:   d.nextIDLocked(),
			EmployeeID:  e.EmployeeID,
			LeaveID:     d.Leaves[rng.Intn(len(d.Leaves))].LeaveID,
			StartDate:   start,
			EndDate:     end,
			Duration:    end.Sub(start).Hours() / 24,
			Status:      types.LeavePending,
			SubmittedAt: now,
		})
	}
}

func seedAttendance(d *Dataset, rng *rand.Rand, e types.Employee, now time.Time) {
	shift := d.Shifts[rng.Intn(len(d.Shifts))]
	d.Assignments = append(d.Assignments, types.ShiftAssignment{
		AssignmentID: d.nextIDLocked(),
		EmployeeID:   e.EmployeeID,
		ShiftID:      shift.ShiftID,
		StartDate:    now.AddDate(0, -1, 0),
	})
	for day := 1; day <= 5; day++ {
		workDate := now.AddDate(0, 0, -day)
		entry := workDate.Add(9 * time.Hour).Add(time.Duration(rng.Intn(30)) * time.Minute)
		exit := entry.Add(8 * time.Hour)
		worked := exit.Sub(entry).Hours()
		shiftID := shift.ShiftID
		a := types.Attendance{
			AttendanceID: d.nextIDLocked(),
			EmployeeID:   e.EmployeeID,
			ShiftID:      &shiftID,
			WorkDate:     workDate,
			EntryTime:    &entry,
			ExitTime:     &exit,
			WorkedHours:  &worked,
		}
		if minutes := entry.Minute(); minutes > 15 {
			a.Exception = &types.AttendanceException{
				ExceptionID:  d.nextIDLocked(),
				AttendanceID: a.AttendanceID,
				Type:         types.ExceptionTardiness,
				Minutes:      &minutes,
			}
		}
		d.Attendances = append(d.Attendances, a)
	}
}

func seedPayroll(d *Dataset, rng *rand.Rand, e types.Employee, now time.Time) {
	for month := 1; month <= 3; month++ {
		periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -month, 0)
		periodEnd := periodStart.AddDate(0, 1, -1)
		base := float64(rng.Intn(5000) + 2500)
		adjustments := float64(rng.Intn(400))
		contributions := base * 0.05
		taxes := base * 0.18
		net := base + adjustments - contributions - taxes
		generated := periodEnd.AddDate(0, 0, 2)
		d.Payrolls = append(d.Payrolls, types.Payroll{
			PayrollID:     d.nextIDLocked(),
			EmployeeID:    e.EmployeeID,
			PeriodStart:   periodStart,
			PeriodEnd:     periodEnd,
			BaseAmount:    &base,
			Adjustments:   &adjustments,
			Contributions: &contributions,
			Taxes:         &taxes,
			NetSalary:     &net,
			GeneratedAt:   &generated,
		})
	}
}
