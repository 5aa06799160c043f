package services

import (
	"fmt"
	"sort"

	"github.com/vickhardth/site-pulse-api/internal/dto"
	"github.com/vickhardth/site-pulse-api/internal/models"
	"github.com/vickhardth/site-pulse-api/internal/repository"
)

// ActivityService merges the two report tables into one ordered, paginated feed,
// scoped by the requester's role.
type ActivityService struct {
	reportRepo repository.ReportRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(reportRepo repository.ReportRepository) *ActivityService {
	return &ActivityService{
		reportRepo: reportRepo,
	}
}

// ActivityPage is one page of the combined feed.
type ActivityPage struct {
	Activities []dto.ActivityDTO
	Page       int
	Limit      int
}

// ListActivities returns one page of the combined daily+hourly feed. Non-supervisory
// requesters see only their own rows; supervisory requesters see everyone's. Rows are
// ordered by creation time descending; the relative order of rows with identical
// timestamps is unspecified. A storage error always propagates — an empty page is a
// valid answer only when the tables really hold no matching rows.
func (s *ActivityService) ListActivities(requesterID uint64, requesterRole string, page, limit int) (*ActivityPage, error) {
	filter := repository.ActivityFilter{
		// Each source only ever contributes rows to the first offset+limit slots of
		// the merged sequence, so neither query needs to read past that window.
		MaxRows: page * limit,
	}
	if !models.ClassifyRole(requesterRole).IsSupervisory() {
		filter.OwnerID = &requesterID
	}

	daily, err := s.reportRepo.ListDailyActivities(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily reports: %w", err)
	}

	hourly, err := s.reportRepo.ListHourlyActivities(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hourly reports: %w", err)
	}

	activities := make([]dto.ActivityDTO, 0, len(daily)+len(hourly))
	for _, r := range daily {
		activities = append(activities, dto.FromDailyReport(r))
	}
	for _, r := range hourly {
		activities = append(activities, dto.FromHourlyReport(r))
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	offset := (page - 1) * limit
	if offset >= len(activities) {
		return &ActivityPage{Activities: []dto.ActivityDTO{}, Page: page, Limit: limit}, nil
	}
	end := offset + limit
	if end > len(activities) {
		end = len(activities)
	}

	return &ActivityPage{
		Activities: activities[offset:end],
		Page:       page,
		Limit:      limit,
	}, nil
}

// Summarize returns activity counts for the requester's visibility scope.
// Supervisory callers additionally get a distinct count of the incharge column as a
// rough active-employee figure; incharge is free text, so spelling variants fragment
// that count.
func (s *ActivityService) Summarize(requesterID uint64, requesterRole string) (*dto.SummaryDTO, error) {
	if models.ClassifyRole(requesterRole).IsSupervisory() {
		total, err := s.reportRepo.CountDaily(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to count activities: %w", err)
		}
		active, err := s.reportRepo.CountDistinctIncharge()
		if err != nil {
			return nil, fmt.Errorf("failed to count active employees: %w", err)
		}
		return &dto.SummaryDTO{TotalActivities: total, ActiveEmployees: &active}, nil
	}

	total, err := s.reportRepo.CountDaily(&requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to count activities: %w", err)
	}
	return &dto.SummaryDTO{TotalActivities: total}, nil
}
