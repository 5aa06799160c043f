package models

import "time"

// HourlyReport is one row per (user, date, time slot) submission. There is
// deliberately no uniqueness constraint on that tuple; repeated submissions for the
// same slot create duplicate rows, matching the production data.
type HourlyReport struct {
	ID                                   uint64    `gorm:"primarykey" json:"id"`
	ReportDate                           string    `gorm:"type:date;not null" json:"report_date"`
	TimePeriod                           string    `gorm:"type:varchar(50);not null" json:"time_period"`
	ProjectName                          string    `gorm:"type:varchar(120);not null" json:"project_name"`
	DailyTarget                          string    `gorm:"type:text;not null" json:"daily_target"`
	HourlyActivity                       string    `gorm:"type:text;not null" json:"hourly_activity"`
	ProblemFacedByEngineerHourly         *string   `gorm:"type:text" json:"problem_faced_by_engineer_hourly"`
	ProblemResolvedOrNot                 *string   `gorm:"type:varchar(50)" json:"problem_resolved_or_not"`
	ProblemOccurStartTime                *string   `gorm:"type:varchar(20)" json:"problem_occur_start_time"`
	ProblemResolvedEndTime               *string   `gorm:"type:varchar(20)" json:"problem_resolved_end_time"`
	OnlineSupportRequiredForWhichProblem *string   `gorm:"type:text" json:"online_support_required_for_which_problem"`
	OnlineSupportTime                    *string   `gorm:"type:varchar(20)" json:"online_support_time"`
	OnlineSupportEndTime                 *string   `gorm:"type:varchar(20)" json:"online_support_end_time"`
	EngineerNameWhoGivesOnlineSupport    *string   `gorm:"type:varchar(120)" json:"engineer_name_who_gives_online_support"`
	EngineerRemark                       *string   `gorm:"type:text" json:"engineer_remark"`
	ProjectInchargeRemark                *string   `gorm:"type:text" json:"project_incharge_remark"`
	UserID                               uint64    `gorm:"index" json:"user_id"`
	CreatedAt                            time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (HourlyReport) TableName() string {
	return "hourly_reports"
}
