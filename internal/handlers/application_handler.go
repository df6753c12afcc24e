package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard/internal/dtos"
	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/store"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	Applications *store.ApplicationStore
}

func NewApplicationHandler(apps *store.ApplicationStore) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// Apply is the POST /applications endpoint, seekers only.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_id is required"})
		return
	}

	app, err := h.Applications.Create(middleware.UserID(c), req.JobID, req.CoverLetter)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyApplied):
			c.JSON(http.StatusConflict, gin.H{"error": "you already applied to this job"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		default:
			log.Printf("apply: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": app})
}

// Mine is the GET /applications/me endpoint, seekers only.
func (h *ApplicationHandler) Mine(c *gin.Context) {
	apps, err := h.Applications.ListForSeeker(middleware.UserID(c))
	if err != nil {
		log.Printf("my applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ForJob is the GET /applications/job/:jobId endpoint, job owner only.
func (h *ApplicationHandler) ForJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}

	apps, err := h.Applications.ListForJob(jobID, middleware.UserID(c))
	if err != nil {
		respondJobError(c, err, "job applications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// UpdateStatus is the PATCH /applications/:id/status endpoint, job owner
// only. Only the four known statuses are accepted.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dtos.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	app, err := h.Applications.UpdateStatus(id, middleware.UserID(c), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		case errors.Is(err, store.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "not your job posting"})
		default:
			log.Printf("update application status: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}
