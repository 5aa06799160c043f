package models

import "time"

type LocationType string

const (
	LocationSite   LocationType = "site"
	LocationOffice LocationType = "office"
	LocationLeave  LocationType = "leave"
)

type DailyReport struct {
	ID                    uint64       `gorm:"primarykey" json:"id"`
	ReportDate            string       `gorm:"type:date;not null" json:"report_date"`
	InTime                string       `gorm:"type:varchar(20);not null" json:"in_time"`
	OutTime               string       `gorm:"type:varchar(20);not null" json:"out_time"`
	CustomerName          string       `gorm:"type:varchar(120);not null" json:"customer_name"`
	CustomerPerson        string       `gorm:"type:varchar(120);not null" json:"customer_person"`
	CustomerContact       string       `gorm:"type:varchar(20);not null" json:"customer_contact"`
	EndCustomerName       string       `gorm:"type:varchar(120);not null" json:"end_customer_name"`
	EndCustomerPerson     string       `gorm:"type:varchar(120);not null" json:"end_customer_person"`
	EndCustomerContact    string       `gorm:"type:varchar(20);not null" json:"end_customer_contact"`
	ProjectNo             string       `gorm:"type:varchar(120);not null" json:"project_no"`
	LocationType          LocationType `gorm:"type:varchar(20);not null" json:"location_type"`
	SiteLocation          *string      `gorm:"type:varchar(255)" json:"site_location"`
	LocationLat           *float64     `gorm:"type:decimal(10,8)" json:"location_lat"`
	LocationLng           *float64     `gorm:"type:decimal(11,8)" json:"location_lng"`
	MomReportPath         *string      `gorm:"type:varchar(255)" json:"mom_report_path"`
	DailyTargetPlanned    string       `gorm:"type:text;not null" json:"daily_target_planned"`
	DailyTargetAchieved   string       `gorm:"type:text;not null" json:"daily_target_achieved"`
	AdditionalActivity    *string      `gorm:"type:text" json:"additional_activity"`
	WhoAddedActivity      *string      `gorm:"type:varchar(120)" json:"who_added_activity"`
	DailyPendingTarget    *string      `gorm:"type:text" json:"daily_pending_target"`
	ReasonPendingTarget   *string      `gorm:"type:text" json:"reason_pending_target"`
	ProblemFaced          *string      `gorm:"type:text" json:"problem_faced"`
	ProblemResolved       *string      `gorm:"type:text" json:"problem_resolved"`
	OnlineSupportRequired *string      `gorm:"type:text" json:"online_support_required"`
	SupportEngineerName   *string      `gorm:"type:varchar(120)" json:"support_engineer_name"`
	SiteStartDate         string       `gorm:"type:date;not null" json:"site_start_date"`
	SiteEndDate           *string      `gorm:"type:date" json:"site_end_date"`
	// Incharge is free text naming the responsible person. It is NOT a foreign key
	// into users; the summary endpoint counts distinct values of it as-is.
	Incharge  string    `gorm:"type:varchar(120);not null" json:"incharge"`
	Remark    *string   `gorm:"type:text" json:"remark"`
	UserID    uint64    `gorm:"index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (DailyReport) TableName() string {
	return "daily_target_reports"
}
