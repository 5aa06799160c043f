package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/vickhardth/site-pulse-api/internal/errors"
	"github.com/vickhardth/site-pulse-api/internal/models"
	"github.com/vickhardth/site-pulse-api/internal/repository"
	"github.com/vickhardth/site-pulse-api/internal/utils"
)

// SiteActivityHandler serves the legacy free-form activity log.
type SiteActivityHandler struct {
	activityRepo repository.SiteActivityRepository
}

// NewSiteActivityHandler creates a new SiteActivityHandler.
func NewSiteActivityHandler(activityRepo repository.SiteActivityRepository) *SiteActivityHandler {
	return &SiteActivityHandler{
		activityRepo: activityRepo,
	}
}

// ListRecent returns a page of log entries, newest first. Without query parameters
// this is the 20 newest entries.
func (h *SiteActivityHandler) ListRecent(c *gin.Context) {
	entries, err := h.activityRepo.ListRecent(utils.GetPaginationParams(c))
	if err != nil {
		log.Printf("Failed to fetch site activity entries: %v", err)
		apierrors.InternalError(c, "Unable to fetch entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Create records a new log entry.
func (h *SiteActivityHandler) Create(c *gin.Context) {
	type SiteActivityRequest struct {
		LogDate          string  `json:"logDate"`
		LogTime          string  `json:"logTime"`
		ProjectName      string  `json:"projectName"`
		DailyTarget      string  `json:"dailyTarget"`
		HourlyActivity   string  `json:"hourlyActivity"`
		ProblemsFaced    string  `json:"problemsFaced"`
		ResolutionStatus string  `json:"resolutionStatus"`
		ProblemStart     *string `json:"problemStart"`
		ProblemEnd       *string `json:"problemEnd"`
		SupportProblem   string  `json:"supportProblem"`
		SupportStart     *string `json:"supportStart"`
		SupportEnd       *string `json:"supportEnd"`
		SupportEngineer  string  `json:"supportEngineer"`
		EngineerRemark   string  `json:"engineerRemark"`
		InchargeRemark   string  `json:"inchargeRemark"`
	}

	var req SiteActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	required := []struct {
		name  string
		value string
	}{
		{"logDate", req.LogDate},
		{"logTime", req.LogTime},
		{"projectName", req.ProjectName},
	}
	for _, field := range required {
		if field.value == "" {
			apierrors.UnprocessableEntity(c, field.name+" is required")
			return
		}
	}

	entry := &models.SiteActivity{
		LogDate:          req.LogDate,
		LogTime:          req.LogTime,
		ProjectName:      req.ProjectName,
		DailyTarget:      req.DailyTarget,
		HourlyActivity:   req.HourlyActivity,
		ProblemsFaced:    req.ProblemsFaced,
		ResolutionStatus: req.ResolutionStatus,
		ProblemStart:     req.ProblemStart,
		ProblemEnd:       req.ProblemEnd,
		SupportProblem:   req.SupportProblem,
		SupportStart:     req.SupportStart,
		SupportEnd:       req.SupportEnd,
		SupportEngineer:  req.SupportEngineer,
		EngineerRemark:   req.EngineerRemark,
		InchargeRemark:   req.InchargeRemark,
	}

	if err := h.activityRepo.Create(entry); err != nil {
		log.Printf("Failed to insert site activity entry: %v", err)
		apierrors.InternalError(c, "Unable to save entry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Entry recorded"})
}
