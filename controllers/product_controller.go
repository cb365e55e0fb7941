package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"furnish-shop/libs"
	"furnish-shop/models"
	"furnish-shop/store"
	"furnish-shop/utils"
)

type ProductController struct {
	Store *store.Store
}

func productCacheKey(category, status, search string) string {
	return fmt.Sprintf("products_list_c%s_s%s_q%s", category, status, search)
}

func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// saveProductImage stores an uploaded product image and, when remote media
// storage is configured, offloads it there and drops the local copy.
func saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	imagePath, err := utils.SaveUpload(c, file, "products")
	if err != nil {
		return "", err
	}
	if libs.CloudinaryEnabled() {
		if url, err := libs.UploadToCloudinary(utils.LocalPath(imagePath)); err == nil {
			utils.DeleteFile(imagePath)
			return url, nil
		} else {
			log.Println("Cloudinary upload failed, keeping local copy:", err)
		}
	}
	return imagePath, nil
}

func uploadErrorStatus(err error) int {
	if errors.Is(err, utils.ErrFileTooLarge) || errors.Is(err, utils.ErrBadFileType) {
		return 400
	}
	return 500
}

// GetProducts godoc
// @Summary List products
// @Description List products, optionally filtered by category, status, and search text
// @Tags Products
// @Produce json
// @Param category query string false "Exact category match"
// @Param status query string false "active or hidden"
// @Param search query string false "Case-insensitive match over name and description"
// @Success 200 {array} models.Product
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	status := strings.TrimSpace(c.Query("status"))
	search := strings.TrimSpace(c.Query("search"))

	cacheKey := productCacheKey(category, status, search)
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, err := store.Read[models.Product](ctrl.Store, models.ProductsSet)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to read products", Error: err.Error()})
		return
	}

	filtered := models.FilterProducts(products, category, status, search)

	if models.RedisClient != nil {
		if jsonData, err := json.Marshal(filtered); err == nil {
			models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(200, filtered)
}

// GetProductByID godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	products, err := store.Read[models.Product](ctrl.Store, models.ProductsSet)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to read products", Error: err.Error()})
		return
	}

	for _, p := range products {
		if p.ID == id {
			c.JSON(200, p)
			return
		}
	}

	c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
}

// CreateProduct godoc
// @Summary Create product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param category formData string true "Category"
// @Param price formData string true "Price"
// @Param description formData string false "Description"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	category := strings.TrimSpace(c.PostForm("category"))
	price := strings.TrimSpace(c.PostForm("price"))
	description := strings.TrimSpace(c.PostForm("description"))

	missing := []string{}
	if name == "" {
		missing = append(missing, "name")
	}
	if category == "" {
		missing = append(missing, "category")
	}
	if price == "" {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: strings.Join(missing, ", ") + " required"})
		return
	}

	image := ""
	if file, err := c.FormFile("image"); err == nil {
		image, err = saveProductImage(c, file)
		if err != nil {
			c.JSON(uploadErrorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
			return
		}
	}

	now := time.Now().UTC()
	product := models.Product{
		ID:          utils.NewID(),
		Name:        name,
		Category:    category,
		Price:       price,
		Description: description,
		Status:      models.ProductStatusActive,
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := store.Mutate(ctrl.Store, models.ProductsSet, func(products []models.Product) ([]models.Product, error) {
		return append(products, product), nil
	})
	if err != nil {
		utils.DeleteFile(image)
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to create product", Error: err.Error()})
		return
	}

	invalidateProductCache()
	c.JSON(201, product)
}

// UpdateProduct godoc
// @Summary Update product
// @Description Partial update; only the supplied form fields are overwritten
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param name formData string false "Product name"
// @Param category formData string false "Category"
// @Param price formData string false "Price"
// @Param description formData string false "Description"
// @Param image formData file false "Replacement image"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	patch := map[string]string{}
	for _, field := range []string{"name", "category", "price", "description"} {
		if v, ok := c.GetPostForm(field); ok {
			patch[field] = strings.TrimSpace(v)
		}
	}
	for _, field := range []string{"name", "category", "price"} {
		if v, ok := patch[field]; ok && v == "" {
			c.JSON(400, models.ErrorResponse{Success: false, Message: field + " cannot be empty"})
			return
		}
	}

	newImage := ""
	if file, err := c.FormFile("image"); err == nil {
		newImage, err = saveProductImage(c, file)
		if err != nil {
			c.JSON(uploadErrorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
			return
		}
	}

	var updated models.Product
	_, err := store.Mutate(ctrl.Store, models.ProductsSet, func(products []models.Product) ([]models.Product, error) {
		for i := range products {
			if products[i].ID != id {
				continue
			}
			p := &products[i]
			if v, ok := patch["name"]; ok {
				p.Name = v
			}
			if v, ok := patch["category"]; ok {
				p.Category = v
			}
			if v, ok := patch["price"]; ok {
				p.Price = v
			}
			if v, ok := patch["description"]; ok {
				p.Description = v
			}
			if newImage != "" {
				utils.DeleteFile(p.Image)
				p.Image = newImage
			}
			p.UpdatedAt = time.Now().UTC()
			updated = *p
			return products, nil
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		utils.DeleteFile(newImage)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update product", Error: err.Error()})
		return
	}

	invalidateProductCache()
	c.JSON(200, updated)
}

// ToggleVisibility godoc
// @Summary Toggle product visibility
// @Description Flip a product between active and hidden
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id}/visibility [patch]
func (ctrl *ProductController) ToggleVisibility(c *gin.Context) {
	id := c.Param("id")

	var updated models.Product
	_, err := store.Mutate(ctrl.Store, models.ProductsSet, func(products []models.Product) ([]models.Product, error) {
		for i := range products {
			if products[i].ID != id {
				continue
			}
			if products[i].Status == models.ProductStatusActive {
				products[i].Status = models.ProductStatusHidden
			} else {
				products[i].Status = models.ProductStatusActive
			}
			products[i].UpdatedAt = time.Now().UTC()
			updated = products[i]
			return products, nil
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update product", Error: err.Error()})
		return
	}

	invalidateProductCache()
	c.JSON(200, updated)
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Remove the product and its stored image file
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.DeleteResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	var removed models.Product
	_, err := store.Mutate(ctrl.Store, models.ProductsSet, func(products []models.Product) ([]models.Product, error) {
		for i := range products {
			if products[i].ID == id {
				removed = products[i]
				return append(products[:i], products[i+1:]...), nil
			}
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to delete product", Error: err.Error()})
		return
	}

	utils.DeleteFile(removed.Image)
	invalidateProductCache()
	c.JSON(200, models.DeleteResponse{Success: true, Message: "Product deleted"})
}
