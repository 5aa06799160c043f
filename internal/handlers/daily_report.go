package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vickhardth/site-pulse-api/internal/constants"
	apierrors "github.com/vickhardth/site-pulse-api/internal/errors"
	"github.com/vickhardth/site-pulse-api/internal/middleware"
	"github.com/vickhardth/site-pulse-api/internal/models"
	"github.com/vickhardth/site-pulse-api/internal/repository"
	"github.com/vickhardth/site-pulse-api/internal/utils"
	"gorm.io/gorm"
)

// DailyReportHandler handles daily target report submission and updates, including
// the optional MOM report PDF attachment.
type DailyReportHandler struct {
	reportRepo repository.ReportRepository
	uploadDir  string
}

// NewDailyReportHandler creates a new DailyReportHandler.
func NewDailyReportHandler(reportRepo repository.ReportRepository, uploadDir string) *DailyReportHandler {
	return &DailyReportHandler{
		reportRepo: reportRepo,
		uploadDir:  uploadDir,
	}
}

// dailyReportForm carries the multipart form fields of a submission.
type dailyReportForm struct {
	ReportDate            string
	InTime                string
	OutTime               string
	CustomerName          string
	CustomerPerson        string
	CustomerContact       string
	EndCustomerName       string
	EndCustomerPerson     string
	EndCustomerContact    string
	ProjectNo             string
	LocationType          string
	SiteLocation          string
	LocationLat           string
	LocationLng           string
	DailyTargetPlanned    string
	DailyTargetAchieved   string
	AdditionalActivity    string
	WhoAddedActivity      string
	DailyPendingTarget    string
	ReasonPendingTarget   string
	ProblemFaced          string
	ProblemResolved       string
	OnlineSupportRequired string
	SupportEngineerName   string
	SiteStartDate         string
	SiteEndDate           string
	Incharge              string
	Remark                string
}

func bindDailyReportForm(c *gin.Context) dailyReportForm {
	return dailyReportForm{
		ReportDate:            c.PostForm("reportDate"),
		InTime:                c.PostForm("inTime"),
		OutTime:               c.PostForm("outTime"),
		CustomerName:          c.PostForm("customerName"),
		CustomerPerson:        c.PostForm("customerPerson"),
		CustomerContact:       c.PostForm("customerContact"),
		EndCustomerName:       c.PostForm("endCustomerName"),
		EndCustomerPerson:     c.PostForm("endCustomerPerson"),
		EndCustomerContact:    c.PostForm("endCustomerContact"),
		ProjectNo:             c.PostForm("projectNo"),
		LocationType:          c.PostForm("locationType"),
		SiteLocation:          c.PostForm("siteLocation"),
		LocationLat:           c.PostForm("locationLat"),
		LocationLng:           c.PostForm("locationLng"),
		DailyTargetPlanned:    c.PostForm("dailyTargetPlanned"),
		DailyTargetAchieved:   c.PostForm("dailyTargetAchieved"),
		AdditionalActivity:    c.PostForm("additionalActivity"),
		WhoAddedActivity:      c.PostForm("whoAddedActivity"),
		DailyPendingTarget:    c.PostForm("dailyPendingTarget"),
		ReasonPendingTarget:   c.PostForm("reasonPendingTarget"),
		ProblemFaced:          c.PostForm("problemFaced"),
		ProblemResolved:       c.PostForm("problemResolved"),
		OnlineSupportRequired: c.PostForm("onlineSupportRequired"),
		SupportEngineerName:   c.PostForm("supportEngineerName"),
		SiteStartDate:         c.PostForm("siteStartDate"),
		SiteEndDate:           c.PostForm("siteEndDate"),
		Incharge:              c.PostForm("incharge"),
		Remark:                c.PostForm("remark"),
	}
}

// applyDefaults fills the placeholder values a leave submission is allowed to omit
// and defaults the dates.
func (f *dailyReportForm) applyDefaults() {
	today := time.Now().Format("2006-01-02")
	if f.ReportDate == "" {
		f.ReportDate = today
	}
	if f.SiteStartDate == "" {
		f.SiteStartDate = today
	}

	if f.LocationType != string(models.LocationLeave) {
		return
	}
	defaultTo := func(field *string, fallback string) {
		if *field == "" {
			*field = fallback
		}
	}
	defaultTo(&f.InTime, "00:00")
	defaultTo(&f.OutTime, "00:00")
	defaultTo(&f.CustomerName, "N/A")
	defaultTo(&f.CustomerPerson, "N/A")
	defaultTo(&f.CustomerContact, "N/A")
	defaultTo(&f.EndCustomerName, "N/A")
	defaultTo(&f.EndCustomerPerson, "N/A")
	defaultTo(&f.EndCustomerContact, "N/A")
	defaultTo(&f.ProjectNo, "N/A")
	defaultTo(&f.DailyTargetPlanned, "N/A")
	defaultTo(&f.DailyTargetAchieved, "N/A")
	defaultTo(&f.Incharge, "N/A")
}

// validate enforces the location-type rules: leave skips the required-field check,
// site additionally requires captured coordinates and a location name.
func (f *dailyReportForm) validate() error {
	if f.LocationType != string(models.LocationLeave) {
		required := []string{
			f.InTime, f.OutTime, f.CustomerName, f.CustomerPerson, f.CustomerContact,
			f.EndCustomerName, f.EndCustomerPerson, f.EndCustomerContact,
			f.ProjectNo, f.LocationType, f.DailyTargetPlanned, f.DailyTargetAchieved,
			f.Incharge,
		}
		for _, v := range required {
			if v == "" {
				return errors.New("All required fields must be filled")
			}
		}
	}

	if f.LocationType == string(models.LocationSite) &&
		(f.SiteLocation == "" || f.LocationLat == "" || f.LocationLng == "") {
		return errors.New("Site location must be captured for site location type")
	}

	return nil
}

// apply copies the form onto a report row.
func (f *dailyReportForm) apply(report *models.DailyReport) {
	report.ReportDate = f.ReportDate
	report.InTime = f.InTime
	report.OutTime = f.OutTime
	report.CustomerName = f.CustomerName
	report.CustomerPerson = f.CustomerPerson
	report.CustomerContact = f.CustomerContact
	report.EndCustomerName = f.EndCustomerName
	report.EndCustomerPerson = f.EndCustomerPerson
	report.EndCustomerContact = f.EndCustomerContact
	report.ProjectNo = f.ProjectNo
	report.LocationType = models.LocationType(f.LocationType)
	report.SiteLocation = optionalString(f.SiteLocation)
	report.LocationLat = optionalFloat(f.LocationLat)
	report.LocationLng = optionalFloat(f.LocationLng)
	report.DailyTargetPlanned = f.DailyTargetPlanned
	report.DailyTargetAchieved = f.DailyTargetAchieved
	report.AdditionalActivity = optionalString(f.AdditionalActivity)
	report.WhoAddedActivity = optionalString(f.WhoAddedActivity)
	report.DailyPendingTarget = optionalString(f.DailyPendingTarget)
	report.ReasonPendingTarget = optionalString(f.ReasonPendingTarget)
	report.ProblemFaced = optionalString(f.ProblemFaced)
	report.ProblemResolved = optionalString(f.ProblemResolved)
	report.OnlineSupportRequired = optionalString(f.OnlineSupportRequired)
	report.SupportEngineerName = optionalString(f.SupportEngineerName)
	report.SiteStartDate = f.SiteStartDate
	report.SiteEndDate = optionalString(f.SiteEndDate)
	report.Incharge = f.Incharge
	report.Remark = optionalString(f.Remark)
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func optionalFloat(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Create saves a new daily target report for the authenticated user.
func (h *DailyReportHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	form := bindDailyReportForm(c)
	form.applyDefaults()
	if err := form.validate(); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	momReportPath, ok := h.saveAttachment(c)
	if !ok {
		return
	}

	report := &models.DailyReport{UserID: userID}
	form.apply(report)
	report.MomReportPath = optionalString(momReportPath)

	if err := h.reportRepo.CreateDaily(report); err != nil {
		utils.RemoveAttachment(momReportPath)
		log.Printf("Failed to save daily target report: %v", err)
		apierrors.InternalError(c, "Unable to save daily target report")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Daily target report saved successfully",
		"id":      report.ID,
	})
}

// Update rewrites an existing daily target report.
//
// Note: unlike hourly reports, daily report updates intentionally perform no
// ownership check; any authenticated caller may edit any report by id. Documented
// behavior pending product clarification.
func (h *DailyReportHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid report ID")
		return
	}

	form := bindDailyReportForm(c)
	form.applyDefaults()
	if err := form.validate(); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	report, err := h.reportRepo.FindDailyByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Report not found")
			return
		}
		log.Printf("Failed to load daily target report %d: %v", id, err)
		apierrors.InternalError(c, "Unable to update daily target report")
		return
	}

	momReportPath, ok := h.saveAttachment(c)
	if !ok {
		return
	}

	form.apply(report)
	if momReportPath != "" {
		report.MomReportPath = &momReportPath
	}

	if err := h.reportRepo.UpdateDaily(report); err != nil {
		utils.RemoveAttachment(momReportPath)
		log.Printf("Failed to update daily target report %d: %v", id, err)
		apierrors.InternalError(c, "Unable to update daily target report")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Daily target report updated successfully",
		"id":      id,
	})
}

// saveAttachment stores the optional PDF upload. Returns ("", true) when no file was
// sent and responds with the appropriate error itself when saving fails.
func (h *DailyReportHandler) saveAttachment(c *gin.Context) (string, bool) {
	file, err := c.FormFile(constants.AttachmentField)
	if err != nil {
		return "", true
	}

	path, err := utils.SaveAttachment(c, file, h.uploadDir)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrNotPDF), errors.Is(err, utils.ErrAttachmentTooBig):
			apierrors.BadRequest(c, err.Error())
		default:
			log.Printf("Failed to store attachment: %v", err)
			apierrors.InternalError(c, "Unable to store attachment")
		}
		return "", false
	}

	return path, true
}
