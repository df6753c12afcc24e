package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"jobboard/internal/dtos"
	"jobboard/internal/middleware"
	"jobboard/internal/store"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	Jobs *store.JobStore
}

func NewJobHandler(jobs *store.JobStore) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// Search is the public GET /jobs endpoint.
func (h *JobHandler) Search(c *gin.Context) {
	jobs, err := h.Jobs.Search(store.JobFilters{
		Query:           c.Query("q"),
		Location:        c.Query("location"),
		JobType:         c.Query("job_type"),
		ExperienceLevel: c.Query("experience_level"),
	})
	if err != nil {
		log.Printf("job search: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Create is the POST /jobs endpoint, employers only.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and description are required"})
		return
	}

	job, err := h.Jobs.Create(middleware.UserID(c), store.JobFields{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryRange:     req.SalaryRange,
		Tags:            req.Tags,
	})
	if err != nil {
		log.Printf("create job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create job"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// Get is the public GET /jobs/:id endpoint. Every read counts as a view.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.Jobs.IncrementViews(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		log.Printf("get job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load job"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Update is the PUT /jobs/:id endpoint, owner only.
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dtos.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job, err := h.Jobs.Update(id, middleware.UserID(c), store.JobUpdate{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryRange:     req.SalaryRange,
		Tags:            req.Tags,
	})
	if err != nil {
		respondJobError(c, err, "update job")
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Delete is the DELETE /jobs/:id endpoint, owner only. Applications to the
// job are removed with it.
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Jobs.Delete(id, middleware.UserID(c)); err != nil {
		respondJobError(c, err, "delete job")
		return
	}
	c.Status(http.StatusNoContent)
}

// Mine is the GET /jobs/employer/mine/list endpoint: the employer's postings
// with application counts.
func (h *JobHandler) Mine(c *gin.Context) {
	jobs, err := h.Jobs.ListByEmployerWithStats(middleware.UserID(c))
	if err != nil {
		log.Printf("employer jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load jobs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func respondJobError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
	case errors.Is(err, store.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your job posting"})
	default:
		log.Printf("%s: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}

// pathID parses a numeric path parameter. A malformed id can never name an
// existing record, so it answers 404 rather than 400.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}
