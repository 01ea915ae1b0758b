// Package blog provides HTTP handlers for blog post related operations.
package blog

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

// BlogController handles blog post related endpoints
type BlogController struct {
	DB *database.DBinstanceStruct
}

// NewBlogController creates a new instance of BlogController
func NewBlogController(db *database.DBinstanceStruct) *BlogController {
	return &BlogController{
		DB: db,
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid id: %s", c.Param("id")),
		})
		return 0, false
	}
	return uint(id), true
}

// GetAllBlogs returns every blog post, newest first.
// @Summary List blog posts
// @Tags Blogs
// @Produce json
// @Success 200 {array} model.Blog "Blog posts ordered by creation time descending"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /blogs [get]
func (bc *BlogController) GetAllBlogs(c *gin.Context) {
	var blogs []model.Blog
	if err := bc.DB.Order("created_at DESC").Find(&blogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve blogs: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// GetBlogByID returns one blog post.
// @Summary Get one blog post
// @Tags Blogs
// @Produce json
// @Param id path int true "Blog id"
// @Success 200 {object} model.Blog
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 404 {object} utilities.ErrorResponse "Blog not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /blogs/{id} [get]
func (bc *BlogController) GetBlogByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var blog model.Blog
	if err := bc.DB.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: fmt.Sprintf("Blog not found with id: %d", id),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve blog: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// CreateBlog persists a new blog post. A client-supplied createdAt is kept,
// otherwise both timestamps start at now.
// @Summary Create blog post (admin)
// @Tags Blogs
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Blog body model.BlogRequest true "Blog fields"
// @Success 201 {object} model.Blog "Created blog"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/blogs [post]
func (bc *BlogController) CreateBlog(c *gin.Context) {
	var req model.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	blog := model.Blog{
		EditableBlogInfo: req.EditableBlogInfo,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if req.CreatedAt != nil {
		blog.CreatedAt = *req.CreatedAt
	}

	if err := bc.DB.Create(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create blog: ", err),
		})
		return
	}

	c.JSON(http.StatusCreated, blog)
}

// UpdateBlog replaces every editable field of a blog post and refreshes the
// updated timestamp. The creation timestamp is never altered.
// @Summary Update blog post (admin)
// @Tags Blogs
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Blog id"
// @Param Blog body model.EditableBlogInfo true "Replacement fields"
// @Success 200 {object} model.Blog "Updated blog"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Blog not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/blogs/{id} [put]
func (bc *BlogController) UpdateBlog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var info model.EditableBlogInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	var blog model.Blog
	if err := bc.DB.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: fmt.Sprintf("Blog not found with id: %d", id),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve blog: %s", err.Error()),
		})
		return
	}

	blog.EditableBlogInfo = info
	blog.UpdatedAt = time.Now()

	if err := bc.DB.Save(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update blog: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// DeleteBlog removes a blog post permanently.
// @Summary Delete blog post (admin)
// @Tags Blogs
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Blog id"
// @Success 200 {object} utilities.MessageResponse "Deleted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Blog not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/blogs/{id} [delete]
func (bc *BlogController) DeleteBlog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var blog model.Blog
	if err := bc.DB.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: fmt.Sprintf("Blog not found with id: %d", id),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve blog: %s", err.Error()),
		})
		return
	}

	if err := bc.DB.Delete(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete blog: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Blog deleted successfully"})
}
