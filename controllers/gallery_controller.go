package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"furnish-shop/libs"
	"furnish-shop/models"
	"furnish-shop/store"
	"furnish-shop/utils"
)

type GalleryController struct {
	Store *store.Store
}

// GetGallery godoc
// @Summary List gallery images
// @Description Newest first, optionally filtered by category
// @Tags Gallery
// @Produce json
// @Param category query string false "Exact category match"
// @Success 200 {array} models.GalleryImage
// @Router /gallery [get]
func (ctrl *GalleryController) GetGallery(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "all" {
		category = ""
	}

	images, err := store.Read[models.GalleryImage](ctrl.Store, models.GallerySet)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to read gallery", Error: err.Error()})
		return
	}

	c.JSON(200, models.FilterGallery(images, category))
}

// UploadImage godoc
// @Summary Upload a gallery image
// @Description Validates title/category, image presence, size ceiling, and extension before storing
// @Tags Admin - Gallery
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param category formData string true "Category"
// @Param description formData string false "Description"
// @Param image formData file true "Image file"
// @Success 201 {object} models.GalleryImage
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/gallery [post]
func (ctrl *GalleryController) UploadImage(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	category := strings.TrimSpace(c.PostForm("category"))
	description := strings.TrimSpace(c.PostForm("description"))

	if title == "" || category == "" {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Title and category are required"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Image file is required"})
		return
	}

	imagePath, err := utils.SaveUpload(c, file, "gallery")
	if err != nil {
		c.JSON(uploadErrorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	if libs.CloudinaryEnabled() {
		if url, cerr := libs.UploadToCloudinary(utils.LocalPath(imagePath)); cerr == nil {
			utils.DeleteFile(imagePath)
			imagePath = url
		}
	}

	image := models.GalleryImage{
		ID:          utils.NewID(),
		Title:       title,
		Category:    category,
		Description: description,
		Image:       imagePath,
		CreatedAt:   time.Now().UTC(),
	}

	// The record is persisted only after the file write succeeded, so a
	// failed upload never leaves a dangling reference.
	_, err = store.Mutate(ctrl.Store, models.GallerySet, func(images []models.GalleryImage) ([]models.GalleryImage, error) {
		return append(images, image), nil
	})
	if err != nil {
		utils.DeleteFile(imagePath)
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to save gallery item", Error: err.Error()})
		return
	}

	c.JSON(201, image)
}

// DeleteImage godoc
// @Summary Delete gallery image
// @Description Removes the record and its stored file
// @Tags Admin - Gallery
// @Security BearerAuth
// @Produce json
// @Param id path string true "Gallery image ID"
// @Success 200 {object} models.DeleteResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/gallery/{id} [delete]
func (ctrl *GalleryController) DeleteImage(c *gin.Context) {
	id := c.Param("id")

	var removed models.GalleryImage
	_, err := store.Mutate(ctrl.Store, models.GallerySet, func(images []models.GalleryImage) ([]models.GalleryImage, error) {
		for i := range images {
			if images[i].ID == id {
				removed = images[i]
				return append(images[:i], images[i+1:]...), nil
			}
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Gallery item not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to delete gallery item", Error: err.Error()})
		return
	}

	utils.DeleteFile(removed.Image)
	c.JSON(200, models.DeleteResponse{Success: true, Message: "Gallery item deleted"})
}
