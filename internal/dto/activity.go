package dto

import (
	"time"

	"github.com/vickhardth/site-pulse-api/internal/models"
)

// ReportType tags which source table an activity was projected from.
type ReportType string

const (
	ReportTypeDaily  ReportType = "daily"
	ReportTypeHourly ReportType = "hourly"
)

// ActivityDTO is the normalized, read-only projection of a daily or hourly report
// used for the combined feed. It is never persisted.
type ActivityDTO struct {
	ID                  uint64     `json:"id"`
	ReportDate          string     `json:"reportDate"`
	InTime              *string    `json:"inTime"`
	OutTime             *string    `json:"outTime"`
	ProjectNo           string     `json:"projectNo"`
	LocationType        *string    `json:"locationType"`
	DailyTargetAchieved string     `json:"dailyTargetAchieved"`
	ProblemFaced        *string    `json:"problemFaced"`
	Username            string     `json:"username"`
	CreatedAt           time.Time  `json:"createdAt"`
	ReportType          ReportType `json:"reportType"`
}

// FromDailyReport projects a daily report row into the common activity shape.
// The attributed username is the report's free-text incharge field.
func FromDailyReport(r models.DailyReport) ActivityDTO {
	locationType := string(r.LocationType)
	return ActivityDTO{
		ID:                  r.ID,
		ReportDate:          r.ReportDate,
		InTime:              &r.InTime,
		OutTime:             &r.OutTime,
		ProjectNo:           r.ProjectNo,
		LocationType:        &locationType,
		DailyTargetAchieved: r.DailyTargetAchieved,
		ProblemFaced:        r.ProblemFaced,
		Username:            r.Incharge,
		CreatedAt:           r.CreatedAt,
		ReportType:          ReportTypeDaily,
	}
}

// FromHourlyReport projects an hourly report row into the common activity shape.
// Hourly rows carry no in/out time or location; the username comes from the owning
// user record when it was preloaded.
func FromHourlyReport(r models.HourlyReport) ActivityDTO {
	return ActivityDTO{
		ID:                  r.ID,
		ReportDate:          r.ReportDate,
		ProjectNo:           r.ProjectName,
		DailyTargetAchieved: r.DailyTarget,
		ProblemFaced:        r.ProblemFacedByEngineerHourly,
		Username:            r.User.Username,
		CreatedAt:           r.CreatedAt,
		ReportType:          ReportTypeHourly,
	}
}
