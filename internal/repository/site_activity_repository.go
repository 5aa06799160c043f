package repository

import (
	"github.com/vickhardth/site-pulse-api/internal/database"
	"github.com/vickhardth/site-pulse-api/internal/models"
	"github.com/vickhardth/site-pulse-api/internal/utils"
	"gorm.io/gorm"
)

// GormSiteActivityRepository is a GORM implementation of SiteActivityRepository
type GormSiteActivityRepository struct {
	db *gorm.DB
}

// NewSiteActivityRepository creates a new SiteActivityRepository
func NewSiteActivityRepository(db *gorm.DB) SiteActivityRepository {
	return &GormSiteActivityRepository{db: db}
}

// Create inserts a log entry
func (r *GormSiteActivityRepository) Create(entry *models.SiteActivity) error {
	return r.db.Create(entry).Error
}

// ListRecent returns a page of entries, newest first
func (r *GormSiteActivityRepository) ListRecent(params utils.PaginationParams) ([]models.SiteActivity, error) {
	var entries []models.SiteActivity
	err := r.db.Scopes(database.Paginate(params)).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
