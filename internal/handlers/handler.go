package handlers

import (
	"errors"
	"net/http"

	"shop_api/internal/logger"
	"shop_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services     *service.Service
	log          *logger.Logger
	loginLimiter *LoginRateLimiter
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// UseLoginLimiter attaches a throttle to the login endpoint. Without one the
// endpoint is unthrottled and the policy is delegated to an outer proxy.
func (h *Handler) UseLoginLimiter(l *LoginRateLimiter) {
	h.loginLimiter = l
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	v1 := router.Group("/v1")
	{
		h.registerAuthRoutes(v1)
		h.registerProductRoutes(v1)
		h.registerWishlistRoutes(v1)
	}

	return router
}

func (h *Handler) registerAuthRoutes(v1 *gin.RouterGroup) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.loginLimiter.Middleware(), h.login)

		authed := auth.Group("", h.authMiddleware)
		authed.GET("/user", h.currentUser)
		authed.POST("/logout", h.logout)
	}
}

func (h *Handler) registerProductRoutes(v1 *gin.RouterGroup) {
	products := v1.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
	}
}

func (h *Handler) registerWishlistRoutes(v1 *gin.RouterGroup) {
	wishlist := v1.Group("/wishlist", h.authMiddleware)
	{
		wishlist.GET("", h.listWishlist)
		wishlist.POST("", h.addToWishlist)
		wishlist.DELETE("/:productId", h.removeFromWishlist)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

const (
	msgInvalidData     = "The given data is invalid."
	msgInternalFailure = "Something went wrong. Please try again later."
)

// respondServiceError maps domain errors to status codes. Anything outside the
// taxonomy is a 500 with a generic body; details go only to the log.
func (h *Handler) respondServiceError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": msgInvalidData, "errors": ve.Fields})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
	case errors.Is(err, service.ErrAlreadyInWishlist):
		c.JSON(http.StatusConflict, gin.H{"message": "Product already in wishlist."})
	case errors.Is(err, service.ErrNotInWishlist):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in wishlist."})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternalFailure})
	}
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed request body."})
		return false
	}
	return true
}
