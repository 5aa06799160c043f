package repository

import (
	"github.com/vickhardth/site-pulse-api/internal/models"
	"gorm.io/gorm"
)

// GormReportRepository is a GORM implementation of ReportRepository
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &GormReportRepository{db: db}
}

// CreateDaily inserts a daily target report
func (r *GormReportRepository) CreateDaily(report *models.DailyReport) error {
	return r.db.Create(report).Error
}

// FindDailyByID finds a daily report by ID
func (r *GormReportRepository) FindDailyByID(id uint64) (*models.DailyReport, error) {
	var report models.DailyReport
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateDaily saves a daily report
func (r *GormReportRepository) UpdateDaily(report *models.DailyReport) error {
	return r.db.Save(report).Error
}

// ListDailyByDate lists a user's daily reports for a date, newest first
func (r *GormReportRepository) ListDailyByDate(userID uint64, date string) ([]models.DailyReport, error) {
	var reports []models.DailyReport
	if err := r.db.Where("report_date = ? AND user_id = ?", date, userID).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListDailyActivities lists daily rows for the combined feed, newest first
func (r *GormReportRepository) ListDailyActivities(filter ActivityFilter) ([]models.DailyReport, error) {
	var reports []models.DailyReport

	query := r.db.Model(&models.DailyReport{}).Order("created_at DESC")
	if filter.OwnerID != nil {
		query = query.Where("user_id = ?", *filter.OwnerID)
	}
	if filter.MaxRows > 0 {
		query = query.Limit(filter.MaxRows)
	}

	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// CountDaily counts daily rows, scoped to an owner when given
func (r *GormReportRepository) CountDaily(ownerID *uint64) (int64, error) {
	var count int64
	query := r.db.Model(&models.DailyReport{})
	if ownerID != nil {
		query = query.Where("user_id = ?", *ownerID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountDistinctIncharge counts distinct values of the free-text incharge column
func (r *GormReportRepository) CountDistinctIncharge() (int64, error) {
	var count int64
	if err := r.db.Model(&models.DailyReport{}).
		Distinct("incharge").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateHourly inserts an hourly report
func (r *GormReportRepository) CreateHourly(report *models.HourlyReport) error {
	return r.db.Create(report).Error
}

// FindHourlyByID finds an hourly report by ID
func (r *GormReportRepository) FindHourlyByID(id uint64) (*models.HourlyReport, error) {
	var report models.HourlyReport
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateHourly saves an hourly report
func (r *GormReportRepository) UpdateHourly(report *models.HourlyReport) error {
	return r.db.Save(report).Error
}

// ListHourlyByDate lists a user's hourly reports for a date ordered by time period
func (r *GormReportRepository) ListHourlyByDate(userID uint64, date string) ([]models.HourlyReport, error) {
	var reports []models.HourlyReport
	if err := r.db.Where("report_date = ? AND user_id = ?", date, userID).
		Order("time_period ASC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListHourlyActivities lists hourly rows for the combined feed with owners preloaded,
// newest first
func (r *GormReportRepository) ListHourlyActivities(filter ActivityFilter) ([]models.HourlyReport, error) {
	var reports []models.HourlyReport

	query := r.db.Model(&models.HourlyReport{}).
		Preload("User").
		Order("created_at DESC")
	if filter.OwnerID != nil {
		query = query.Where("user_id = ?", *filter.OwnerID)
	}
	if filter.MaxRows > 0 {
		query = query.Limit(filter.MaxRows)
	}

	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
