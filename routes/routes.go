package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"furnish-shop/config"
	"furnish-shop/controllers"
	"furnish-shop/middleware"
	"furnish-shop/models"
	"furnish-shop/store"
)

func SetupRoutes(router *gin.Engine, s *store.Store) {
	emailSvc, err := models.NewEmailService()
	if err != nil {
		log.Println("Email notifications disabled:", err)
		emailSvc = nil
	}

	authCtrl := &controllers.AuthController{Store: s}
	productCtrl := &controllers.ProductController{Store: s}
	enquiryCtrl := &controllers.EnquiryController{Store: s, Email: emailSvc}
	appointmentCtrl := &controllers.AppointmentController{Store: s, Email: emailSvc}
	galleryCtrl := &controllers.GalleryController{Store: s}
	contentCtrl := &controllers.ContentController{Store: s}
	settingsCtrl := &controllers.SettingsController{Store: s}
	dashboardCtrl := &controllers.DashboardController{Store: s}

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Success: false, Message: "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Not found"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/login", authCtrl.Login)
	router.GET("/products", productCtrl.GetProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.POST("/enquiries", enquiryCtrl.CreateEnquiry)
	router.POST("/appointments", appointmentCtrl.CreateAppointment)
	router.GET("/gallery", galleryCtrl.GetGallery)
	router.GET("/content", contentCtrl.GetContent)
	router.GET("/settings", settingsCtrl.GetSettings)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/dashboard", dashboardCtrl.GetDashboard)
		admin.GET("/export", dashboardCtrl.ExportData)
		admin.POST("/import", dashboardCtrl.ImportData)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.PATCH("/products/:id/visibility", productCtrl.ToggleVisibility)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/enquiries", enquiryCtrl.GetEnquiries)
		admin.PATCH("/enquiries/:id/status", enquiryCtrl.UpdateEnquiryStatus)
		admin.DELETE("/enquiries/:id", enquiryCtrl.DeleteEnquiry)

		admin.GET("/appointments", appointmentCtrl.GetAppointments)
		admin.PATCH("/appointments/:id/status", appointmentCtrl.UpdateAppointmentStatus)
		admin.DELETE("/appointments/:id", appointmentCtrl.DeleteAppointment)

		admin.POST("/gallery", galleryCtrl.UploadImage)
		admin.DELETE("/gallery/:id", galleryCtrl.DeleteImage)

		admin.PUT("/content", contentCtrl.BulkUpdateContent)
		admin.PUT("/content/:key", contentCtrl.UpdateContent)

		admin.PUT("/settings", settingsCtrl.UpdateSettings)
	}

	router.Static("/uploads", config.AppConfig.UploadDir)
}
