// Package application provides HTTP handlers for job application related operations.
package application

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/database"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/model"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB *database.DBinstanceStruct
}

// NewApplicationController creates a new instance of ApplicationController
func NewApplicationController(db *database.DBinstanceStruct) *ApplicationController {
	return &ApplicationController{
		DB: db,
	}
}

// ApplyHandler handles a public job application submission. The referenced
// job must exist; when it does not, nothing is persisted.
// @Summary Submit a job application
// @Tags Applications
// @Accept json
// @Produce json
// @Param Application body model.ApplicationRequest true "Application fields"
// @Success 200 {object} utilities.MessageResponse "Submitted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 404 {object} utilities.ErrorResponse "Referenced job does not exist"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/apply [post]
func (ac *ApplicationController) ApplyHandler(c *gin.Context) {
	var req model.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	var job model.Job
	if err := ac.DB.First(&job, req.JobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: fmt.Sprintf("Job not found with ID: %d", req.JobID),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	app := model.Application{
		JobID:       job.ID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
		Status:      model.ApplicationStatusNew,
		AppliedAt:   time.Now(),
	}

	if err := ac.DB.Create(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Application submitted successfully"})
}

// GetAllApplications returns every application, newest first, with the
// referenced job embedded.
// @Summary List all applications (admin)
// @Tags Applications
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Application "Applications ordered by submission time descending"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/applications [get]
func (ac *ApplicationController) GetAllApplications(c *gin.Context) {
	var apps []model.Application
	if err := ac.DB.Preload("Job").Order("applied_at DESC").Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve applications: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, apps)
}

// UpdateApplicationStatus overwrites the status label of one application.
// Only NEW, REVIEWING and REJECTED are accepted.
// @Summary Update application status (admin)
// @Tags Applications
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application id"
// @Param Status body model.StatusUpdateRequest true "New status"
// @Success 200 {object} model.Application "Updated application"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or status"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/applications/{id}/status [patch]
func (ac *ApplicationController) UpdateApplicationStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid id: %s", c.Param("id")),
		})
		return
	}

	var req model.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Status must be one of NEW, REVIEWING, REJECTED",
		})
		return
	}

	var app model.Application
	if err := ac.DB.Preload("Job").First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "Application not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return
	}

	app.Status = req.Status
	if err := ac.DB.Save(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, app)
}
