package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

// newTestRouter wires the full route table against an isolated in-memory
// database, mirroring the composition root.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.JobSeekerProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.Application{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	authHandler := NewAuthHandler(store.NewUserStore(db), testSecret)
	profileHandler := NewProfileHandler(store.NewProfileStore(db), t.TempDir())
	jobHandler := NewJobHandler(store.NewJobStore(db))
	applicationHandler := NewApplicationHandler(store.NewApplicationStore(db))

	requireAuth := middleware.RequireAuth(testSecret)
	seekerOnly := middleware.RequireRole(models.RoleJobSeeker)
	employerOnly := middleware.RequireRole(models.RoleEmployer)

	r := gin.New()
	r.GET("/health", HealthCheck)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", requireAuth, authHandler.Me)
	}

	jobRoutes := r.Group("/jobs")
	{
		jobRoutes.GET("", jobHandler.Search)
		jobRoutes.POST("", requireAuth, employerOnly, jobHandler.Create)
		jobRoutes.GET("/employer/mine/list", requireAuth, employerOnly, jobHandler.Mine)
		jobRoutes.GET("/:id", jobHandler.Get)
		jobRoutes.PUT("/:id", requireAuth, employerOnly, jobHandler.Update)
		jobRoutes.DELETE("/:id", requireAuth, employerOnly, jobHandler.Delete)
	}

	applicationRoutes := r.Group("/applications", requireAuth)
	{
		applicationRoutes.POST("", seekerOnly, applicationHandler.Apply)
		applicationRoutes.GET("/me", seekerOnly, applicationHandler.Mine)
		applicationRoutes.GET("/job/:jobId", employerOnly, applicationHandler.ForJob)
		applicationRoutes.PATCH("/:id/status", employerOnly, applicationHandler.UpdateStatus)
	}

	profileRoutes := r.Group("/profiles", requireAuth)
	{
		profileRoutes.GET("/seeker/me", seekerOnly, profileHandler.GetSeeker)
		profileRoutes.POST("/seeker/me", seekerOnly, profileHandler.UpsertSeeker)
		profileRoutes.GET("/employer/me", employerOnly, profileHandler.GetEmployer)
		profileRoutes.POST("/employer/me", employerOnly, profileHandler.UpsertEmployer)
	}

	return r, db
}

// doRequest performs an HTTP call against the test router.
func doRequest(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// registerUser registers an account through the API and returns its id and
// bearer token.
func registerUser(t *testing.T, r *gin.Engine, name, email, role string) (uint, string) {
	t.Helper()
	body := `{"name":"` + name + `","email":"` + email + `","password":"password123","role":"` + role + `"}`
	w := doRequest(t, r, http.MethodPost, "/auth/register", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: got %d: %s", email, w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	user := resp["user"].(map[string]interface{})
	return uint(user["id"].(float64)), resp["token"].(string)
}
