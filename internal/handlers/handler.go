package handlers

import (
	"soleus_remote/internal/logger"
	"soleus_remote/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Capture status over WebSocket — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerCodeRoutes(api)
		h.registerACRoutes(api)
		h.registerCaptureRoutes(api)
	}
}

func (h *Handler) registerCodeRoutes(api *gin.RouterGroup) {
	codes := api.Group("/codes")
	{
		// Body example: {"mode":"TEMP","temperature":72,"fan_speed":"LOW"}
		codes.POST("/encode", h.encodeCode)
		codes.GET("/catalog", h.getCatalog)
		codes.GET("/info", h.getInfo)
	}
}

func (h *Handler) registerACRoutes(api *gin.RouterGroup) {
	ac := api.Group("/ac")
	{
		ac.POST("/command", h.sendCommand)
	}
}

func (h *Handler) registerCaptureRoutes(api *gin.RouterGroup) {
	captures := api.Group("/captures")
	{
		captures.GET("/", h.getCaptures)
		captures.GET("/status", h.getCaptureStatus)
	}
}
