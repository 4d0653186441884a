package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/checklist/internal/services"
)

type Handler interface {
	HandleAuthMiddleware(c *gin.Context)

	HandleSubmitQuestionnaire(c *gin.Context)
	HandlePreviewQuestionnaire(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleSetTaskStatus(c *gin.Context)
	HandleToggleTaskStatus(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleGetProgress(c *gin.Context)
}

type handlerImpl struct {
	logger        zerolog.Logger
	jwtIssuer     string
	jwtSigningKey []byte
	generation    services.GenerationService
	tasks         services.TaskService
	progress      services.ProgressService
}

func New(
	logger zerolog.Logger,
	jwtIssuer string,
	jwtSigningKey string,
	generationService services.GenerationService,
	taskService services.TaskService,
	progressService services.ProgressService,
) Handler {
	return &handlerImpl{
		logger:        logger,
		jwtIssuer:     jwtIssuer,
		jwtSigningKey: []byte(jwtSigningKey),
		generation:    generationService,
		tasks:         taskService,
		progress:      progressService,
	}
}

// RegisterRoutes mounts the checklist API on router. Every route requires
// a bearer token.
func RegisterRoutes(router gin.IRouter, h Handler) {
	subjects := router.Group("/subjects/:subject_id", h.HandleAuthMiddleware)

	subjects.POST("/questionnaire", h.HandleSubmitQuestionnaire)
	subjects.POST("/questionnaire/preview", h.HandlePreviewQuestionnaire)

	subjects.GET("/tasks", h.HandleGetTasks)
	subjects.POST("/tasks", h.HandleCreateTask)
	subjects.PATCH("/tasks/:id", h.HandleUpdateTask)
	subjects.PUT("/tasks/:id/status", h.HandleSetTaskStatus)
	subjects.POST("/tasks/:id/toggle", h.HandleToggleTaskStatus)
	subjects.DELETE("/tasks/:id", h.HandleDeleteTask)

	subjects.GET("/progress", h.HandleGetProgress)
}
