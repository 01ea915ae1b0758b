package job

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/auth"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/database"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/middleware"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/model"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var teardownFn func(context.Context, ...testcontainers.TerminateOption) error
	teardownFn, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardownFn != nil {
		_ = teardownFn(ctx)
	}
}

func jobEngine() *gin.Engine {
	jc := NewJobController(testDB)
	r := gin.New()
	r.GET("/jobs", jc.GetActiveJobs)
	r.GET("/jobs/:id", jc.GetJobByID)
	r.GET("/admin/jobs", middleware.RequireAuth(testDB), jc.GetAllJobs)
	r.POST("/admin/jobs", middleware.RequireAuth(testDB), jc.CreateJob)
	r.PUT("/admin/jobs/:id", middleware.RequireAuth(testDB), jc.UpdateJob)
	r.DELETE("/admin/jobs/:id", middleware.RequireAuth(testDB), jc.DeleteJob)
	return r
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, database.TestAdminUser.Username, database.TestSeedPassword)
	assert.NoError(t, err)
	return token
}

func TestGetActiveJobsHidesInactive(t *testing.T) {
	r := jobEngine()

	rec, list := testutil.MakeJSONListRequest("", r, "/jobs", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	ids := map[float64]bool{}
	for _, j := range list {
		assert.Equal(t, true, j["active"], "public listing leaked an inactive job")
		ids[j["id"].(float64)] = true
	}
	assert.True(t, ids[float64(database.TestJob1.ID)])
	assert.True(t, ids[float64(database.TestJob2.ID)])
	assert.False(t, ids[float64(database.TestJob3.ID)], "inactive job visible on public listing")
}

func TestGetJobByID(t *testing.T) {
	r := jobEngine()

	rec, resp := testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/jobs/%d", database.TestJob1.ID), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestJob1.Title, resp["title"])
}

func TestGetJobByIDInactiveAnswers404(t *testing.T) {
	r := jobEngine()

	rec, resp := testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/jobs/%d", database.TestJob3.ID), http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, fmt.Sprintf("Job not found with id: %d", database.TestJob3.ID), resp["error"])
}

func TestGetJobByIDAbsentAnswers404(t *testing.T) {
	r := jobEngine()

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/jobs/999999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetJobByIDBadID(t *testing.T) {
	r := jobEngine()

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/jobs/not-a-number", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAllJobsIncludesInactive(t *testing.T) {
	r := jobEngine()
	token := adminToken(t)

	rec, list := testutil.MakeJSONListRequest(token, r, "/admin/jobs", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	ids := map[float64]bool{}
	for _, j := range list {
		ids[j["id"].(float64)] = true
	}
	assert.True(t, ids[float64(database.TestJob3.ID)], "admin listing should include inactive jobs")
}

func TestAdminJobsRequireToken(t *testing.T) {
	r := jobEngine()

	rec, _ := testutil.MakeJSONListRequest("", r, "/admin/jobs", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{"title": "x"}, "", r, "/admin/jobs", http.MethodPost)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateJobDefaultsActive(t *testing.T) {
	r := jobEngine()
	token := adminToken(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"title":        "QA Engineer",
		"department":   "Engineering",
		"location":     "Pune",
		"type":         "Full-time",
		"description":  "Test robot firmware",
		"requirements": "pytest",
	}, token, r, "/admin/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code, "unexpected status, body: %s", rec.Body.String())

	assert.Equal(t, "QA Engineer", resp["title"])
	assert.Equal(t, true, resp["active"], "active should default to true when omitted")
	assert.NotEqual(t, float64(0), resp["id"])

	var stored model.Job
	assert.NoError(t, testDB.First(&stored, uint(resp["id"].(float64))).Error)
	assert.True(t, stored.Active)
}

func TestCreateJobExplicitInactive(t *testing.T) {
	r := jobEngine()
	token := adminToken(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"title":  "Hidden Role",
		"active": false,
	}, token, r, "/admin/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, false, resp["active"])
}

func TestUpdateJobReplacesFields(t *testing.T) {
	r := jobEngine()
	token := adminToken(t)

	created := model.Job{Title: "Temp", Department: "Ops", Active: true}
	assert.NoError(t, testDB.Create(&created).Error)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"title":    "Renamed",
		"location": "Remote",
		"active":   false,
	}, token, r, fmt.Sprintf("/admin/jobs/%d", created.ID), http.MethodPut)
	assert.Equal(t, http.StatusOK, rec.Code, "unexpected status, body: %s", rec.Body.String())

	assert.Equal(t, "Renamed", resp["title"])
	assert.Equal(t, false, resp["active"])
	// Omitted fields are replaced with their zero value, not kept.
	assert.Equal(t, "", resp["department"])

	var stored model.Job
	assert.NoError(t, testDB.First(&stored, created.ID).Error)
	assert.Equal(t, "Renamed", stored.Title)
	assert.False(t, stored.Active)
	assert.WithinDuration(t, created.CreatedAt, stored.CreatedAt, time.Second, "createdAt must survive updates")
}

func TestUpdateJobNotFound(t *testing.T) {
	r := jobEngine()
	token := adminToken(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{"title": "x"}, token, r, "/admin/jobs/999999", http.MethodPut)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found with id: 999999", resp["error"])
}

func TestDeleteJob(t *testing.T) {
	r := jobEngine()
	token := adminToken(t)

	created := model.Job{Title: "Doomed", Active: true}
	assert.NoError(t, testDB.Create(&created).Error)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, fmt.Sprintf("/admin/jobs/%d", created.ID), http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Job deleted successfully", resp["message"])

	var count int64
	assert.NoError(t, testDB.Model(&model.Job{}).Where("id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteJobNotFound(t *testing.T) {
	r := jobEngine()
	token := adminToken(t)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/admin/jobs/999999", http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteJobCascadesApplications(t *testing.T) {
	r := jobEngine()
	token := adminToken(t)

	created := model.Job{Title: "Short-lived", Active: true}
	assert.NoError(t, testDB.Create(&created).Error)

	app := model.Application{
		JobID:     created.ID,
		FullName:  "Cascade Victim",
		Email:     "cascade@example.com",
		Status:    model.ApplicationStatusNew,
		AppliedAt: time.Now(),
	}
	assert.NoError(t, testDB.Create(&app).Error)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, fmt.Sprintf("/admin/jobs/%d", created.ID), http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)

	var count int64
	assert.NoError(t, testDB.Model(&model.Application{}).Where("job_id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count, "applications should be removed with their job")
}
