package controllers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"furnish-shop/models"
	"furnish-shop/store"
)

type ContentController struct {
	Store *store.Store
}

func upsertContent(items []models.ContentItem, key string, value json.RawMessage, now time.Time) []models.ContentItem {
	for i := range items {
		if items[i].Key == key {
			items[i].Value = value
			items[i].UpdatedAt = now
			return items
		}
	}
	return append(items, models.ContentItem{Key: key, Value: value, UpdatedAt: now})
}

// GetContent godoc
// @Summary Get site content
// @Description Returns one item when key is given, otherwise the full list
// @Tags Content
// @Produce json
// @Param key query string false "Content key"
// @Success 200 {array} models.ContentItem
// @Failure 404 {object} models.ErrorResponse
// @Router /content [get]
func (ctrl *ContentController) GetContent(c *gin.Context) {
	key := c.Query("key")

	content, err := store.Read[models.ContentItem](ctrl.Store, models.ContentSet)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to read content", Error: err.Error()})
		return
	}

	if key == "" {
		c.JSON(200, content)
		return
	}

	for _, item := range content {
		if item.Key == key {
			c.JSON(200, item)
			return
		}
	}

	c.JSON(404, models.ErrorResponse{Success: false, Message: "Content not found"})
}

// UpdateContent godoc
// @Summary Upsert one content item
// @Tags Admin - Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param key path string true "Content key"
// @Param request body models.ContentValueRequest true "Value"
// @Success 200 {object} models.ContentItem
// @Router /admin/content/{key} [put]
func (ctrl *ContentController) UpdateContent(c *gin.Context) {
	key := c.Param("key")

	var req models.ContentValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: validationMessage(err)})
		return
	}

	now := time.Now().UTC()
	var updated models.ContentItem
	_, err := store.Mutate(ctrl.Store, models.ContentSet, func(content []models.ContentItem) ([]models.ContentItem, error) {
		content = upsertContent(content, key, req.Value, now)
		for _, item := range content {
			if item.Key == key {
				updated = item
			}
		}
		return content, nil
	})
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update content", Error: err.Error()})
		return
	}

	c.JSON(200, updated)
}

// BulkUpdateContent godoc
// @Summary Upsert several content items at once
// @Tags Admin - Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object true "Key/value map"
// @Success 200 {array} models.ContentItem
// @Router /admin/content [put]
func (ctrl *ContentController) BulkUpdateContent(c *gin.Context) {
	var updates map[string]json.RawMessage
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}
	if len(updates) == 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "No updates supplied"})
		return
	}

	now := time.Now().UTC()
	updated, err := store.Mutate(ctrl.Store, models.ContentSet, func(content []models.ContentItem) ([]models.ContentItem, error) {
		for key, value := range updates {
			content = upsertContent(content, key, value, now)
		}
		return content, nil
	})
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update content", Error: err.Error()})
		return
	}

	c.JSON(200, updated)
}
