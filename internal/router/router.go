package router

import (
	"github.com/aurea-joias/aurea-backend/config"
	"github.com/aurea-joias/aurea-backend/internal/app/controller"
	"github.com/aurea-joias/aurea-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController          *controller.AuthController
	categoryController      *controller.CategoryController
	attributeController     *controller.AttributeController
	productController       *controller.ProductController
	orderController         *controller.OrderController
	addressController       *controller.AddressController
	customRequestController *controller.CustomRequestController
	settingsController      *controller.SettingsController
	uploadController        *controller.UploadController
	authMiddleware          *middleware.AuthMiddleware
	config                  *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	attributeController *controller.AttributeController,
	productController *controller.ProductController,
	orderController *controller.OrderController,
	addressController *controller.AddressController,
	customRequestController *controller.CustomRequestController,
	settingsController *controller.SettingsController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:          authController,
		categoryController:      categoryController,
		attributeController:     attributeController,
		productController:       productController,
		orderController:         orderController,
		addressController:       addressController,
		customRequestController: customRequestController,
		settingsController:      settingsController,
		uploadController:        uploadController,
		authMiddleware:          authMiddleware,
		config:                  cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Aurea API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
			auth.PUT("/me", r.authMiddleware.Authenticate(), r.authController.UpdateMe)
			auth.POST("/phone/request", r.authMiddleware.Authenticate(), r.authController.RequestPhoneVerification)
			auth.POST("/phone/verify", r.authMiddleware.Authenticate(), r.authController.ConfirmPhoneVerification)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.ListCategories)
			categories.GET("/:slug", r.categoryController.GetCategory)

			categories.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireAdmin(),
				r.categoryController.CreateCategory,
			)
			categories.PUT("/:slug",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireAdmin(),
				r.categoryController.UpdateCategory,
			)
			categories.DELETE("/:slug",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireAdmin(),
				r.categoryController.DeleteCategory,
			)
		}

		attributes := v1.Group("/attributes")
		{
			attributes.GET("", r.attributeController.ListAttributes)
			attributes.GET("/:id", r.attributeController.GetAttribute)

			admin := attributes.Group("")
			admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				admin.POST("", r.attributeController.CreateAttribute)
				admin.PUT("/:id", r.attributeController.UpdateAttribute)
				admin.DELETE("/:id", r.attributeController.DeleteAttribute)
				admin.POST("/:id/values", r.attributeController.AddAttributeValue)
				admin.DELETE("/values/:id", r.attributeController.DeleteAttributeValue)
			}
		}

		products := v1.Group("/products")
		{
			// Staff see inactive products, so listing and detail run with
			// optional authentication.
			products.GET("", r.authMiddleware.OptionalAuthenticate(), r.productController.ListProducts)
			products.GET("/:slug", r.authMiddleware.OptionalAuthenticate(), r.productController.GetProduct)

			admin := products.Group("")
			admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				admin.POST("", r.productController.CreateProduct)
				admin.PUT("/:slug", r.productController.UpdateProduct)
				admin.DELETE("/:slug", r.productController.DeleteProduct)
				admin.DELETE("/images/:id", r.productController.DeleteProductImage)
			}
		}

		orders := v1.Group("/orders")
		orders.Use(r.authMiddleware.Authenticate())
		{
			orders.GET("", r.orderController.GetOrders)
			orders.POST("", r.orderController.CreateOrder)
			orders.GET("/export",
				r.authMiddleware.RequireAdmin(),
				r.orderController.ExportOrders,
			)
			orders.GET("/:id", r.orderController.GetOrderByID)
			orders.PUT("/:id/status",
				r.authMiddleware.RequireAdmin(),
				r.orderController.UpdateOrderStatus,
			)
		}

		addresses := v1.Group("/addresses")
		addresses.Use(r.authMiddleware.Authenticate())
		{
			addresses.GET("", r.addressController.ListAddresses)
			addresses.POST("", r.addressController.CreateAddress)
			addresses.GET("/:id", r.addressController.GetAddress)
			addresses.PUT("/:id", r.addressController.UpdateAddress)
			addresses.DELETE("/:id", r.addressController.DeleteAddress)
		}

		customRequests := v1.Group("/custom-requests")
		customRequests.Use(r.authMiddleware.Authenticate())
		{
			customRequests.GET("", r.customRequestController.ListCustomRequests)
			customRequests.POST("", r.customRequestController.CreateCustomRequest)
			customRequests.GET("/:id", r.customRequestController.GetCustomRequest)
			customRequests.PUT("/:id/status",
				r.authMiddleware.RequireAdmin(),
				r.customRequestController.UpdateCustomRequestStatus,
			)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", r.settingsController.GetSettings)
			settings.PUT("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireAdmin(),
				r.settingsController.UpdateSettings,
			)
		}

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
		{
			upload.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
