package repository

import (
	"github.com/vickhardth/site-pulse-api/internal/models"
	"github.com/vickhardth/site-pulse-api/internal/utils"
)

// ActivityFilter holds the scoping and windowing options for the combined feed's
// source queries. A nil OwnerID means no ownership restriction (supervisory scope).
// MaxRows bounds how many newest rows each source contributes; a merged page of
// offset+limit rows never needs more than that many from either table.
type ActivityFilter struct {
	OwnerID *uint64
	MaxRows int
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// ListAll lists every user ordered by role (descending) then username (ascending)
	ListAll() ([]models.User, error)

	// ListByManagerID lists direct reports ordered by username
	ListByManagerID(managerID uint64) ([]models.User, error)
}

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// CreateDaily inserts a daily target report
	CreateDaily(report *models.DailyReport) error

	// FindDailyByID finds a daily report by ID
	FindDailyByID(id uint64) (*models.DailyReport, error)

	// UpdateDaily saves a daily report
	UpdateDaily(report *models.DailyReport) error

	// ListDailyByDate lists a user's daily reports for a date, newest first
	ListDailyByDate(userID uint64, date string) ([]models.DailyReport, error)

	// ListDailyActivities lists daily rows for the combined feed, newest first
	ListDailyActivities(filter ActivityFilter) ([]models.DailyReport, error)

	// CountDaily counts daily rows, scoped to an owner when given
	CountDaily(ownerID *uint64) (int64, error)

	// CountDistinctIncharge counts distinct values of the free-text incharge column
	CountDistinctIncharge() (int64, error)

	// CreateHourly inserts an hourly report
	CreateHourly(report *models.HourlyReport) error

	// FindHourlyByID finds an hourly report by ID
	FindHourlyByID(id uint64) (*models.HourlyReport, error)

	// UpdateHourly saves an hourly report
	UpdateHourly(report *models.HourlyReport) error

	// ListHourlyByDate lists a user's hourly reports for a date ordered by time period
	ListHourlyByDate(userID uint64, date string) ([]models.HourlyReport, error)

	// ListHourlyActivities lists hourly rows for the combined feed with their owners
	// preloaded, newest first
	ListHourlyActivities(filter ActivityFilter) ([]models.HourlyReport, error)
}

// SiteActivityRepository defines the interface for the legacy activity log
type SiteActivityRepository interface {
	// Create inserts a log entry
	Create(entry *models.SiteActivity) error

	// ListRecent returns a page of entries, newest first
	ListRecent(params utils.PaginationParams) ([]models.SiteActivity, error)
}
