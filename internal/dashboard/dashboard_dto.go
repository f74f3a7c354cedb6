package dashboard

// Summary holds the headline counters shown at the top of the dashboard.
type Summary struct {
	TotalEmployees    int64 `json:"total_employees"`
	ActiveEmployees   int64 `json:"active_employees"`
	ResignedEmployees int64 `json:"resigned_employees"`
	LeftThisMonth     int64 `json:"left_this_month"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type DesignationCount struct {
	Designation string `json:"designation"`
	Count       int64  `json:"count"`
}

type StatsResponse struct {
	Summary            Summary            `json:"summary"`
	StatusDistribution []StatusCount      `json:"status_distribution"`
	MonthlyHiring      []MonthlyCount     `json:"monthly_hiring"`
	Designations       []DesignationCount `json:"designations"`
}
