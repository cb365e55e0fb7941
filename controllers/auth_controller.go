package controllers

import (
	"github.com/gin-gonic/gin"

	"furnish-shop/models"
	"furnish-shop/store"
	"furnish-shop/utils"
)

type AuthController struct {
	Store *store.Store
}

// Login godoc
// @Summary Admin login
// @Description Exchange the admin credential for a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: validationMessage(err)})
		return
	}

	var user models.User
	ok, err := ctrl.Store.Load(models.UserSet, &user)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to read credentials", Error: err.Error()})
		return
	}

	match := false
	if ok && user.Email == req.Email {
		match, _ = utils.VerifyPassword(user.Password, req.Password)
	}
	if !match {
		c.JSON(401, models.ErrorResponse{Success: false, Message: "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.Email, user.Name)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to issue token", Error: err.Error()})
		return
	}

	c.JSON(200, models.LoginResponse{Token: token, User: user.Public()})
}

// GetProfile godoc
// @Summary Current admin profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.PublicUser
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	c.JSON(200, models.PublicUser{
		Email: c.GetString("user_email"),
		Name:  c.GetString("user_name"),
	})
}
