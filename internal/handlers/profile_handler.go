package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"jobboard/internal/dtos"
	"jobboard/internal/middleware"
	"jobboard/internal/store"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	Profiles  *store.ProfileStore
	UploadDir string
}

func NewProfileHandler(profiles *store.ProfileStore, uploadDir string) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, UploadDir: uploadDir}
}

// GetSeeker is the GET /profiles/seeker/me endpoint. A missing profile is
// not an error; the client gets null and renders an empty form.
func (h *ProfileHandler) GetSeeker(c *gin.Context) {
	profile, err := h.Profiles.GetSeekerProfile(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"profile": nil})
			return
		}
		log.Printf("get seeker profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpsertSeeker is the POST /profiles/seeker/me endpoint. The body is a
// multipart form so it can carry an optional resume file; the stored profile
// keeps only the path.
func (h *ProfileHandler) UpsertSeeker(c *gin.Context) {
	var req dtos.SeekerProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	userID := middleware.UserID(c)

	resumePath := ""
	if file, err := c.FormFile("resume"); err == nil {
		name := fmt.Sprintf("resume-%d-%d%s", userID, time.Now().UnixNano(), filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(h.UploadDir, name)); err != nil {
			log.Printf("save resume: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store resume"})
			return
		}
		resumePath = "/uploads/" + name
	}

	profile, err := h.Profiles.UpsertSeekerProfile(userID, store.SeekerProfileFields{
		Headline:   req.Headline,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
		Location:   req.Location,
		ResumePath: resumePath,
	})
	if err != nil {
		log.Printf("upsert seeker profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// GetEmployer is the GET /profiles/employer/me endpoint.
func (h *ProfileHandler) GetEmployer(c *gin.Context) {
	profile, err := h.Profiles.GetEmployerProfile(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"profile": nil})
			return
		}
		log.Printf("get employer profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpsertEmployer is the POST /profiles/employer/me endpoint.
func (h *ProfileHandler) UpsertEmployer(c *gin.Context) {
	var req dtos.EmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company_name is required"})
		return
	}

	profile, err := h.Profiles.UpsertEmployerProfile(middleware.UserID(c), store.EmployerProfileFields{
		CompanyName: req.CompanyName,
		Website:     req.Website,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		log.Printf("upsert employer profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
