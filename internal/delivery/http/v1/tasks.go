package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/checklist/internal/models"
	"github.com/adanyl0v/checklist/internal/services"
)

type getTaskResponse struct {
	ID             string    `json:"id"`
	SubjectID      string    `json:"subject_id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	CategoryLabel  string    `json:"category_label"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	IsPersonalized bool      `json:"is_personalized"`
	IsCustom       bool      `json:"is_custom"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newGetTaskResponse(task *models.Task) getTaskResponse {
	return getTaskResponse{
		ID:             task.ID,
		SubjectID:      task.SubjectID,
		Title:          task.Title,
		Category:       task.Category.String(),
		CategoryLabel:  task.Category.Label(),
		Description:    task.Description,
		Status:         task.Status.String(),
		IsPersonalized: task.IsPersonalized,
		IsCustom:       task.IsCustom,
		CreatedBy:      task.CreatedBy,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

// taskRef reads the subject and task ids from the path.
func (h *handlerImpl) taskRef(c *gin.Context) (services.TaskRef, bool) {
	ref := services.TaskRef{
		SubjectID: c.Param("subject_id"),
		ID:        c.Param("id"),
	}
	if ref.SubjectID == "" || ref.ID == "" {
		h.logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError(errMissingParam.Error()))
		return ref, false
	}
	return ref, true
}

func (h *handlerImpl) abortTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
	case errors.Is(err, services.ErrInvalidTaskStatus),
		errors.Is(err, services.ErrEmptyTitle),
		errors.Is(err, services.ErrInvalidCategory):
		abort(c, newBadRequestError(err.Error()))
	case errors.Is(err, services.ErrTaskNotCustom):
		abort(c, newConflictError(services.ErrTaskNotCustom.Error()))
	default:
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}

type createTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Category    *string `json:"category,omitempty" binding:"omitempty,max=64"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	actorID, _ := getStringFromContext(c, actorIDCtxKey)

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	params := services.CreateTaskParams{
		SubjectID: c.Param("subject_id"),
		ActorID:   actorID,
		Title:     req.Title,
	}
	if req.Description != nil {
		params.Description = *req.Description
	}
	if req.Category != nil {
		params.Category = *req.Category
	}

	task, err := h.tasks.CreateCustomTask(c, params)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		h.abortTaskError(c, err)
		return
	}

	h.logger.Info().Msg("created task")
	c.JSON(http.StatusCreated, newGetTaskResponse(task))
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	params := services.GetTasksParams{
		SubjectID: c.Param("subject_id"),
		Category:  c.Query("category"),
		Status:    models.Status(c.Query("status")),
		Origin:    c.Query("origin"),
	}
	switch params.Origin {
	case "", services.OriginPersonalized, services.OriginCustom:
	default:
		abort(c, newBadRequestError(errInvalidOrigin.Error()))
		return
	}

	tasks, err := h.tasks.GetTasks(c, params)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get tasks")
		h.abortTaskError(c, err)
		return
	}
	h.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")

	response := make([]getTaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newGetTaskResponse(task)
	}

	h.logger.Info().Msg("fetched tasks")
	c.JSON(http.StatusOK, response)
}

type updateTaskRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Category    *string `json:"category,omitempty" binding:"omitempty,max=64"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	ref, ok := h.taskRef(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.UpdateTask(c, services.UpdateTaskParams{
		SubjectID:   ref.SubjectID,
		ID:          ref.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to update task")
		h.abortTaskError(c, err)
		return
	}

	h.logger.Info().Msg("updated task")
	c.JSON(http.StatusOK, newGetTaskResponse(task))
}

func (h *handlerImpl) HandleSetTaskStatus(c *gin.Context) {
	ref, ok := h.taskRef(c)
	if !ok {
		return
	}

	status, ok := models.ParseStatus(c.Query("status"))
	if !ok {
		h.logger.Error().
			Str("status", c.Query("status")).
			Msg("invalid task status")
		abort(c, newBadRequestError(services.ErrInvalidTaskStatus.Error()))
		return
	}

	task, err := h.tasks.UpdateTaskStatus(c, services.UpdateTaskStatusParams{
		SubjectID: ref.SubjectID,
		ID:        ref.ID,
		Status:    status,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to update task status")
		h.abortTaskError(c, err)
		return
	}

	h.logger.Info().Msg("updated task status")
	c.JSON(http.StatusOK, newGetTaskResponse(task))
}

func (h *handlerImpl) HandleToggleTaskStatus(c *gin.Context) {
	ref, ok := h.taskRef(c)
	if !ok {
		return
	}

	task, err := h.tasks.ToggleTaskStatus(c, ref)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to toggle task status")
		h.abortTaskError(c, err)
		return
	}

	h.logger.Info().Msg("toggled task status")
	c.JSON(http.StatusOK, newGetTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	ref, ok := h.taskRef(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c, ref)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete task")
		h.abortTaskError(c, err)
		return
	}

	h.logger.Info().Msg("deleted task")
	c.Status(http.StatusNoContent)
}
