package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/shenikar/cad_state_system/internal/config"
)

// NewRouter собирает gin.Engine: трассировка, метрики, Swagger UI и API v1 за проверкой ключа
func NewRouter(h *Handler, cfg *config.Config, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(RequestLoggerMiddleware(log))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	// Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(cfg, log))
	h.RegisterRoutes(protected)

	return router
}

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Сессия, синхронизация и смена
	session := api.Group("/session")
	{
		session.GET("", h.getSession)
		session.DELETE("", h.clearSession)
		session.POST("/sync", h.syncDetails)
		session.POST("/sync/initial", h.syncInitial)
		session.PUT("/patrol-group", h.setPatrolGroup)
		session.PUT("/sync-mode", h.setSyncMode)
		session.POST("/book-on", h.bookOn)
		session.POST("/book-off", h.bookOff)
		session.PUT("/status", h.updateStatus)
	}

	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.GET("/:id/details", h.getIncidentDetails)
		incidents.GET("/:id/resources", h.listIncidentResources)
	}

	resources := api.Group("/resources")
	{
		resources.GET("", h.listResources)
		resources.GET("/:callsign", h.getResource)
		resources.GET("/:callsign/details", h.getResourceDetails)
		resources.GET("/:callsign/officers", h.listResourceOfficers)
		resources.GET("/:callsign/incident", h.getResourceIncident)
	}

	officers := api.Group("/officers")
	{
		officers.GET("", h.listOfficers)
		officers.GET("/:id", h.getOfficer)
		officers.GET("/:id/details", h.getOfficerDetails)
	}

	api.GET("/patrols", h.listPatrols)
	api.GET("/patrols/:id", h.getPatrol)
	api.GET("/broadcasts", h.listBroadcasts)
	api.GET("/broadcasts/:id", h.getBroadcast)

	// Справочник и недавние идентификаторы
	api.POST("/manifest/sync", h.syncManifest)
	api.GET("/manifest/:collection", h.listManifestEntries)
	api.GET("/recent/:kind", h.listRecentIDs)

	api.GET("/events/ws", h.streamEvents)
}
