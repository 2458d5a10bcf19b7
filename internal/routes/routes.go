package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/menzofashion/menzo/internal/handlers"
	"github.com/menzofashion/menzo/internal/middleware"
)

// CORSMiddleware allows the storefront origin to talk to the API from the
// browser and answers preflight requests.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// SetupRouter wires the REST surface. Paths mirror the json-server layout the
// storefront consumes: bare collection arrays, PATCH partial updates, and a
// custom /search endpoint. Only order management is token-guarded.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware(h.Cfg.Server.CORSOrigin))

	// --- Ping (Public) ---
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong!"})
	})

	// --- Categories ---
	router.GET("/categories", h.GetAllCategories)
	router.POST("/categories", h.CreateCategory)
	router.PUT("/categories/:slug", h.UpdateCategory)
	router.DELETE("/categories/:slug", h.DeleteCategory)

	// --- Products ---
	router.GET("/products", h.GetAllProducts)
	router.GET("/products/:id", h.GetProduct)
	router.POST("/products", h.CreateProduct)
	router.PATCH("/products/:id", h.UpdateProduct)
	router.DELETE("/products/:id", h.DeleteProduct)

	// --- Offers ---
	router.GET("/offers", h.GetAllOffers)
	router.POST("/offers", h.CreateOffer)
	router.PATCH("/offers/:id", h.UpdateOffer)
	router.DELETE("/offers/:id", h.DeleteOffer)

	// --- Orders ---
	router.GET("/orders", h.GetAllOrders)
	router.GET("/orders/:id", h.GetOrder)
	router.POST("/orders", h.CreateOrder)

	// --- Reviews ---
	router.GET("/reviews", h.GetAllReviews)
	router.POST("/reviews", h.CreateReview)
	router.PUT("/reviews/:id", h.PutReview)
	router.DELETE("/reviews/:id", h.DeleteReview)

	// --- Search & Coupons ---
	router.GET("/search", h.SearchProducts)
	router.GET("/coupons", h.GetAllCoupons)

	// --- Admin ---
	router.POST("/admin/login", h.AdminLogin)

	// Order management is admin-driven; these are the only guarded routes.
	admin := router.Group("/")
	admin.Use(middleware.AdminMiddleware(h.Cfg.Admin.JWTSecret))
	{
		admin.PATCH("/orders/:id", h.UpdateOrderStatus)
		admin.DELETE("/orders/:id", h.DeleteOrder)
	}

	return router
}
