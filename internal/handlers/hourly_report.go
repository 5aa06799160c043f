package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/vickhardth/site-pulse-api/internal/errors"
	"github.com/vickhardth/site-pulse-api/internal/middleware"
	"github.com/vickhardth/site-pulse-api/internal/models"
	"github.com/vickhardth/site-pulse-api/internal/repository"
	"gorm.io/gorm"
)

// HourlyReportHandler handles hourly report submission, listing, and updates.
type HourlyReportHandler struct {
	reportRepo repository.ReportRepository
}

// NewHourlyReportHandler creates a new HourlyReportHandler.
func NewHourlyReportHandler(reportRepo repository.ReportRepository) *HourlyReportHandler {
	return &HourlyReportHandler{
		reportRepo: reportRepo,
	}
}

// HourlyReportRequest is the JSON body for create and update.
type HourlyReportRequest struct {
	ReportDate                           string  `json:"reportDate"`
	TimePeriod                           string  `json:"timePeriod"`
	ProjectName                          string  `json:"projectName"`
	DailyTarget                          string  `json:"dailyTarget"`
	HourlyActivity                       string  `json:"hourlyActivity"`
	ProblemFacedByEngineerHourly         *string `json:"problemFacedByEngineerHourly"`
	ProblemResolvedOrNot                 *string `json:"problemResolvedOrNot"`
	ProblemOccurStartTime                *string `json:"problemOccurStartTime"`
	ProblemResolvedEndTime               *string `json:"problemResolvedEndTime"`
	OnlineSupportRequiredForWhichProblem *string `json:"onlineSupportRequiredForWhichProblem"`
	OnlineSupportTime                    *string `json:"onlineSupportTime"`
	OnlineSupportEndTime                 *string `json:"onlineSupportEndTime"`
	EngineerNameWhoGivesOnlineSupport    *string `json:"engineerNameWhoGivesOnlineSupport"`
	EngineerRemark                       *string `json:"engineerRemark"`
	ProjectInchargeRemark                *string `json:"projectInchargeRemark"`
}

func (req *HourlyReportRequest) validate() error {
	if req.ReportDate == "" || req.TimePeriod == "" || req.ProjectName == "" ||
		req.DailyTarget == "" || req.HourlyActivity == "" {
		return errors.New("Date, time period, project name, daily target, and hourly activity are required")
	}
	return nil
}

func (req *HourlyReportRequest) apply(report *models.HourlyReport) {
	report.ReportDate = req.ReportDate
	report.TimePeriod = req.TimePeriod
	report.ProjectName = req.ProjectName
	report.DailyTarget = req.DailyTarget
	report.HourlyActivity = req.HourlyActivity
	report.ProblemFacedByEngineerHourly = req.ProblemFacedByEngineerHourly
	report.ProblemResolvedOrNot = req.ProblemResolvedOrNot
	report.ProblemOccurStartTime = req.ProblemOccurStartTime
	report.ProblemResolvedEndTime = req.ProblemResolvedEndTime
	report.OnlineSupportRequiredForWhichProblem = req.OnlineSupportRequiredForWhichProblem
	report.OnlineSupportTime = req.OnlineSupportTime
	report.OnlineSupportEndTime = req.OnlineSupportEndTime
	report.EngineerNameWhoGivesOnlineSupport = req.EngineerNameWhoGivesOnlineSupport
	report.EngineerRemark = req.EngineerRemark
	report.ProjectInchargeRemark = req.ProjectInchargeRemark
}

// ListByDate returns the caller's own hourly reports for a date, ordered by time
// period. Supervisors see their own rows here too; the combined feed is the
// cross-user view.
func (h *HourlyReportHandler) ListByDate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	reports, err := h.reportRepo.ListHourlyByDate(userID, c.Param("date"))
	if err != nil {
		log.Printf("Failed to fetch hourly reports: %v", err)
		apierrors.InternalError(c, "Unable to fetch hourly reports")
		return
	}

	c.JSON(http.StatusOK, reports)
}

// ListDailyTargetsByDate returns the caller's daily reports for a date, used by the
// client to auto-fill hourly report forms.
func (h *HourlyReportHandler) ListDailyTargetsByDate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	reports, err := h.reportRepo.ListDailyByDate(userID, c.Param("date"))
	if err != nil {
		log.Printf("Failed to fetch daily target reports: %v", err)
		apierrors.InternalError(c, "Unable to fetch daily target reports")
		return
	}

	c.JSON(http.StatusOK, reports)
}

// Create saves a new hourly report for the authenticated user. Nothing prevents two
// rows for the same (user, date, time period); see the model.
func (h *HourlyReportHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req HourlyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	report := &models.HourlyReport{UserID: userID}
	req.apply(report)

	if err := h.reportRepo.CreateHourly(report); err != nil {
		log.Printf("Failed to save hourly report: %v", err)
		apierrors.InternalError(c, "Unable to save hourly report")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Hourly report saved successfully",
		"id":      report.ID,
	})
}

// Update rewrites an hourly report. Ownership is enforced: non-supervisory callers
// may only update their own rows.
func (h *HourlyReportHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	role := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid report ID")
		return
	}

	var req HourlyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	report, err := h.reportRepo.FindHourlyByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Hourly report not found")
			return
		}
		log.Printf("Failed to load hourly report %d: %v", id, err)
		apierrors.InternalError(c, "Unable to update hourly report")
		return
	}

	if !models.ClassifyRole(role).IsSupervisory() && report.UserID != userID {
		apierrors.Forbidden(c, "Not authorized to update this hourly report")
		return
	}

	req.apply(report)

	if err := h.reportRepo.UpdateHourly(report); err != nil {
		log.Printf("Failed to update hourly report %d: %v", id, err)
		apierrors.InternalError(c, "Unable to update hourly report")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Hourly report updated successfully",
		"id":      id,
	})
}
