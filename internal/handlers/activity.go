package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vickhardth/site-pulse-api/internal/dto"
	apierrors "github.com/vickhardth/site-pulse-api/internal/errors"
	"github.com/vickhardth/site-pulse-api/internal/middleware"
	"github.com/vickhardth/site-pulse-api/internal/models"
	"github.com/vickhardth/site-pulse-api/internal/services"
	"github.com/vickhardth/site-pulse-api/internal/utils"
)

// ActivityHandler serves the combined activity feed and the directory endpoints
// built on the same role classification.
type ActivityHandler struct {
	activityService  *services.ActivityService
	directoryService *services.DirectoryService
	digestService    *services.DigestService
}

// NewActivityHandler creates a new ActivityHandler. digestService may be nil when no
// OpenAI key is configured.
func NewActivityHandler(activityService *services.ActivityService, directoryService *services.DirectoryService, digestService *services.DigestService) *ActivityHandler {
	return &ActivityHandler{
		activityService:  activityService,
		directoryService: directoryService,
		digestService:    digestService,
	}
}

// ListActivities returns one page of the combined daily+hourly feed, scoped by the
// caller's role.
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	role := middleware.GetUserRole(c)

	params := utils.GetPaginationParams(c)

	page, err := h.activityService.ListActivities(userID, role, params.Page, params.Limit)
	if err != nil {
		// A failed query must never masquerade as an empty feed: zero rows and a
		// broken database look identical to a supervisor otherwise.
		log.Printf("Failed to fetch activities: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Unable to fetch activities",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"activities": page.Activities,
		"pagination": utils.PaginationResponse{
			Page:  page.Page,
			Limit: page.Limit,
			Total: int64(len(page.Activities)),
		},
	})
}

// ListEmployees returns the full roster for supervisory callers.
func (h *ActivityHandler) ListEmployees(c *gin.Context) {
	role := middleware.GetUserRole(c)

	users, err := h.directoryService.ListAll(role)
	if err != nil {
		if errors.Is(err, services.ErrNotSupervisory) {
			apierrors.Forbidden(c, "Only Managers or Team Leaders can view all employees")
			return
		}
		log.Printf("Failed to fetch employees: %v", err)
		apierrors.InternalError(c, "Unable to fetch employees")
		return
	}

	c.JSON(http.StatusOK, gin.H{"employees": dto.ToEmployeeDTOs(users)})
}

// ListSubordinates returns the caller's direct reports for supervisory callers.
func (h *ActivityHandler) ListSubordinates(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	role := middleware.GetUserRole(c)

	users, err := h.directoryService.ListSubordinates(userID, role)
	if err != nil {
		if errors.Is(err, services.ErrNotSupervisory) {
			apierrors.Forbidden(c, "Only Team Leaders or Managers can view subordinates")
			return
		}
		log.Printf("Failed to fetch subordinates: %v", err)
		apierrors.InternalError(c, "Unable to fetch subordinates")
		return
	}

	c.JSON(http.StatusOK, gin.H{"subordinates": dto.ToEmployeeDTOs(users)})
}

// Summary returns activity counts scoped by the caller's role.
func (h *ActivityHandler) Summary(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	role := middleware.GetUserRole(c)

	summary, err := h.activityService.Summarize(userID, role)
	if err != nil {
		log.Printf("Failed to fetch summary: %v", err)
		apierrors.InternalError(c, "Unable to fetch summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// Digest returns a natural-language summary of the most recent activities.
// Supervisory only; 503 when the digest service is not configured.
func (h *ActivityHandler) Digest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	role := middleware.GetUserRole(c)

	if !models.ClassifyRole(role).IsSupervisory() {
		apierrors.Forbidden(c, "Only Managers or Team Leaders can request a digest")
		return
	}

	if h.digestService == nil {
		apierrors.ServiceUnavailable(c, "Digest service is not configured")
		return
	}

	page, err := h.activityService.ListActivities(userID, role, 1, 20)
	if err != nil {
		log.Printf("Failed to fetch activities for digest: %v", err)
		apierrors.InternalError(c, "Unable to fetch activities")
		return
	}

	digest, err := h.digestService.SummarizeActivities(c.Request.Context(), page.Activities)
	if err != nil {
		log.Printf("Failed to generate digest: %v", err)
		apierrors.InternalError(c, "Unable to generate digest")
		return
	}

	c.JSON(http.StatusOK, gin.H{"digest": digest})
}
