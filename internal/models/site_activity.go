package models

import "time"

// SiteActivity is the legacy free-form activity log kept for older clients.
type SiteActivity struct {
	ID               uint64    `gorm:"primarykey" json:"id"`
	LogDate          string    `gorm:"type:date;not null" json:"log_date"`
	LogTime          string    `gorm:"type:varchar(20);not null" json:"log_time"`
	ProjectName      string    `gorm:"type:varchar(120);not null" json:"project_name"`
	DailyTarget      string    `gorm:"type:text" json:"daily_target"`
	HourlyActivity   string    `gorm:"type:text" json:"hourly_activity"`
	ProblemsFaced    string    `gorm:"type:text" json:"problems_faced"`
	ResolutionStatus string    `gorm:"type:varchar(50)" json:"resolution_status"`
	ProblemStart     *string   `gorm:"type:varchar(20)" json:"problem_start"`
	ProblemEnd       *string   `gorm:"type:varchar(20)" json:"problem_end"`
	SupportProblem   string    `gorm:"type:text" json:"support_problem"`
	SupportStart     *string   `gorm:"type:varchar(20)" json:"support_start"`
	SupportEnd       *string   `gorm:"type:varchar(20)" json:"support_end"`
	SupportEngineer  string    `gorm:"type:varchar(120)" json:"support_engineer"`
	EngineerRemark   string    `gorm:"type:text" json:"engineer_remark"`
	InchargeRemark   string    `gorm:"type:text" json:"incharge_remark"`
	CreatedAt        time.Time `json:"created_at"`
}

func (SiteActivity) TableName() string {
	return "site_activity"
}
