// Package contact provides HTTP handlers for contact message related operations.
package contact

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

// ContactController handles contact message related endpoints
type ContactController struct {
	DB *database.DBinstanceStruct
}

// NewContactController creates a new instance of ContactController
func NewContactController(db *database.DBinstanceStruct) *ContactController {
	return &ContactController{
		DB: db,
	}
}

func (cc *ContactController) findMessage(c *gin.Context) (model.ContactMessage, bool) {
	var msg model.ContactMessage

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid id: %s", c.Param("id")),
		})
		return msg, false
	}

	if err := cc.DB.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "Message not found",
			})
			return msg, false
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve message: %s", err.Error()),
		})
		return msg, false
	}

	return msg, true
}

// SendMessageHandler handles a public contact form submission.
// @Summary Submit a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param Message body model.ContactRequest true "Message fields"
// @Success 200 {object} utilities.MessageResponse "Sent"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /contact [post]
func (cc *ContactController) SendMessageHandler(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	msg := model.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Read:      false,
		CreatedAt: time.Now(),
	}

	if err := cc.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to save message: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Message sent successfully"})
}

// GetAllMessages returns every contact message, newest first.
// @Summary List all contact messages (admin)
// @Tags Contact
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.ContactMessage "Messages ordered by creation time descending"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/messages [get]
func (cc *ContactController) GetAllMessages(c *gin.Context) {
	var msgs []model.ContactMessage
	if err := cc.DB.Order("created_at DESC").Find(&msgs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve messages: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, msgs)
}

// MarkMessageAsRead turns the read flag on. Calling it on an already-read
// message changes nothing and still succeeds.
// @Summary Mark contact message as read (admin)
// @Tags Contact
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Message id"
// @Success 200 {object} model.ContactMessage "Updated message"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Message not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/messages/{id}/read [patch]
func (cc *ContactController) MarkMessageAsRead(c *gin.Context) {
	msg, ok := cc.findMessage(c)
	if !ok {
		return
	}

	msg.Read = true
	if err := cc.DB.Model(&msg).Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update message: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, msg)
}

// DeleteMessage removes a contact message permanently.
// @Summary Delete contact message (admin)
// @Tags Contact
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Message id"
// @Success 200 {object} utilities.MessageResponse "Deleted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Message not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/messages/{id} [delete]
func (cc *ContactController) DeleteMessage(c *gin.Context) {
	msg, ok := cc.findMessage(c)
	if !ok {
		return
	}

	if err := cc.DB.Delete(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete message: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Message deleted successfully"})
}
